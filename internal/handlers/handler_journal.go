package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/services"
	"github.com/openbooks-dev/bookkeeping_backend/internal/dto"
	"github.com/openbooks-dev/bookkeeping_backend/internal/middleware"
)

type journalHandler struct {
	journalService services.JournalSvcFacade
}

func newJournalHandler(journalService services.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: journalService}
}

// createJournalEntryHandler godoc
// @Summary      Create a journal entry
// @Description  Creates a balanced journal entry. Each
// @Description  line carries exactly one of debitAmount or creditAmount;
// @Description  amounts are rounded half-up to whole units before the balance
// @Description  check, so an entry that balances in fractional input may still
// @Description  be rejected after rounding.
// @Tags         journal-entries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        companyID  path      string                         true  "Company ID"
// @Param        entry      body      dto.CreateJournalEntryRequest  true  "Entry details"
// @Success      201        {object}  dto.JournalEntryResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /companies/{companyID}/journal-entries [post]
func (h *journalHandler) createJournalEntryHandler(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid create journal entry request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	entry, err := h.journalService.CreateEntry(c.Request.Context(), c.Param("companyID"), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// getJournalEntryHandler godoc
// @Summary      Get a journal entry
// @Description  Retrieves a journal entry together with its lines.
// @Tags         journal-entries
// @Produce      json
// @Security     BearerAuth
// @Param        companyID  path      string  true  "Company ID"
// @Param        entryID    path      string  true  "Journal entry ID"
// @Success      200        {object}  dto.JournalEntryResponse
// @Failure      404        {object}  map[string]string
// @Router       /companies/{companyID}/journal-entries/{entryID} [get]
func (h *journalHandler) getJournalEntryHandler(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	entry, err := h.journalService.GetEntryByID(c.Request.Context(), c.Param("companyID"), c.Param("entryID"), actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// listJournalEntriesHandler godoc
// @Summary      List journal entries
// @Description  Lists entries newest first using token pagination. Pass the
// @Description  nextToken from the previous page to continue.
// @Tags         journal-entries
// @Produce      json
// @Security     BearerAuth
// @Param        companyID  path      string  true   "Company ID"
// @Param        limit      query     int     false  "Page size"  default(20)
// @Param        nextToken  query     string  false  "Pagination token"
// @Success      200        {object}  dto.ListJournalEntriesResponse
// @Router       /companies/{companyID}/journal-entries [get]
func (h *journalHandler) listJournalEntriesHandler(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid list journal entries params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.journalService.ListEntries(c.Request.Context(), c.Param("companyID"), actor, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// updateJournalEntryHandler godoc
// @Summary      Update a journal entry
// @Description  Updates the entry date or description. When lines are included
// @Description  the full line set is replaced atomically and must balance.
// @Tags         journal-entries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        companyID  path      string                         true  "Company ID"
// @Param        entryID    path      string                         true  "Journal entry ID"
// @Param        entry      body      dto.UpdateJournalEntryRequest  true  "Fields to update"
// @Success      200        {object}  dto.JournalEntryResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /companies/{companyID}/journal-entries/{entryID} [put]
func (h *journalHandler) updateJournalEntryHandler(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.UpdateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid update journal entry request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	entry, err := h.journalService.UpdateEntry(c.Request.Context(), c.Param("companyID"), c.Param("entryID"), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// deleteJournalEntryHandler godoc
// @Summary      Delete a journal entry
// @Description  Soft-deletes an entry and all of its lines. Deleting an
// @Description  already deleted entry is a no-op.
// @Tags         journal-entries
// @Security     BearerAuth
// @Param        companyID  path  string  true  "Company ID"
// @Param        entryID    path  string  true  "Journal entry ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /companies/{companyID}/journal-entries/{entryID} [delete]
func (h *journalHandler) deleteJournalEntryHandler(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	if err := h.journalService.DeleteEntry(c.Request.Context(), c.Param("companyID"), c.Param("entryID"), actor); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// addJournalLineHandler godoc
// @Summary      Add a line to a journal entry
// @Description  Appends a line to an existing entry. The entry must still
// @Description  balance afterwards or the addition is rejected.
// @Tags         journal-entries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        companyID  path      string                        true  "Company ID"
// @Param        entryID    path      string                        true  "Journal entry ID"
// @Param        line       body      dto.CreateJournalLineRequest  true  "Line details"
// @Success      200        {object}  dto.JournalEntryResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /companies/{companyID}/journal-entries/{entryID}/lines [post]
func (h *journalHandler) addJournalLineHandler(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.CreateJournalLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid add journal line request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	entry, err := h.journalService.AddLine(c.Request.Context(), c.Param("companyID"), c.Param("entryID"), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// updateJournalLineHandler godoc
// @Summary      Update a journal line
// @Description  Rewrites the amount or description of a single line. Setting a
// @Description  debit amount clears the credit side and vice versa. The entry
// @Description  must still balance afterwards.
// @Tags         journal-entries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        companyID  path      string                        true  "Company ID"
// @Param        entryID    path      string                        true  "Journal entry ID"
// @Param        lineID     path      string                        true  "Journal line ID"
// @Param        line       body      dto.UpdateJournalLineRequest  true  "Fields to update"
// @Success      200        {object}  dto.JournalEntryResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /companies/{companyID}/journal-entries/{entryID}/lines/{lineID} [put]
func (h *journalHandler) updateJournalLineHandler(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.UpdateJournalLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid update journal line request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	entry, err := h.journalService.UpdateLine(c.Request.Context(), c.Param("companyID"), c.Param("entryID"), c.Param("lineID"), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// deleteJournalLineHandler godoc
// @Summary      Delete a journal line
// @Description  Removes a single line. Rejected when the remaining lines would
// @Description  not balance, which includes removing either line of a
// @Description  two-line entry.
// @Tags         journal-entries
// @Produce      json
// @Security     BearerAuth
// @Param        companyID  path      string  true  "Company ID"
// @Param        entryID    path      string  true  "Journal entry ID"
// @Param        lineID     path      string  true  "Journal line ID"
// @Success      200        {object}  dto.JournalEntryResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /companies/{companyID}/journal-entries/{entryID}/lines/{lineID} [delete]
func (h *journalHandler) deleteJournalLineHandler(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	entry, err := h.journalService.DeleteLine(c.Request.Context(), c.Param("companyID"), c.Param("entryID"), c.Param("lineID"), actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

func registerJournalRoutes(group *gin.RouterGroup, journalService services.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	entries := group.Group("/companies/:companyID/journal-entries")
	{
		entries.POST("", h.createJournalEntryHandler)
		entries.GET("", h.listJournalEntriesHandler)
		entries.GET("/:entryID", h.getJournalEntryHandler)
		entries.PUT("/:entryID", h.updateJournalEntryHandler)
		entries.DELETE("/:entryID", h.deleteJournalEntryHandler)
		entries.POST("/:entryID/lines", h.addJournalLineHandler)
		entries.PUT("/:entryID/lines/:lineID", h.updateJournalLineHandler)
		entries.DELETE("/:entryID/lines/:lineID", h.deleteJournalLineHandler)
	}
}
