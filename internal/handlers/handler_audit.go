package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/services"
	"github.com/openbooks-dev/bookkeeping_backend/internal/dto"
	"github.com/openbooks-dev/bookkeeping_backend/internal/middleware"
)

type auditHandler struct {
	auditService services.AuditSvcFacade
}

func newAuditHandler(auditService services.AuditSvcFacade) *auditHandler {
	return &auditHandler{auditService: auditService}
}

// listAuditEventsHandler godoc
// @Summary      List audit events
// @Description  Lists recorded mutations of a company, newest first. Can be
// @Description  filtered by entity, action, user and date range.
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Param        companyID   path      string  true   "Company ID"
// @Param        entityType  query     string  false  "Filter by entity type"
// @Param        entityID    query     string  false  "Filter by entity ID"
// @Param        action      query     string  false  "Filter by action"
// @Param        userID      query     string  false  "Filter by acting user"
// @Param        fromDate    query     string  false  "Start date (YYYY-MM-DD)"
// @Param        toDate      query     string  false  "End date, inclusive (YYYY-MM-DD)"
// @Param        limit       query     int     false  "Page size"  default(50)
// @Param        offset      query     int     false  "Page offset"
// @Success      200         {object}  dto.ListAuditEventsResponse
// @Failure      403         {object}  map[string]string
// @Router       /companies/{companyID}/audit-logs [get]
func (h *auditHandler) listAuditEventsHandler(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var params dto.ListAuditEventsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid list audit events params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	events, err := h.auditService.ListEvents(c.Request.Context(), c.Param("companyID"), actor, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListAuditEventsResponse(events))
}

func registerAuditRoutes(group *gin.RouterGroup, auditService services.AuditSvcFacade) {
	h := newAuditHandler(auditService)
	group.GET("/companies/:companyID/audit-logs", h.listAuditEventsHandler)
}
