package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/services"
	"github.com/openbooks-dev/bookkeeping_backend/internal/dto"
	"github.com/openbooks-dev/bookkeeping_backend/internal/middleware"
)

type companyHandler struct {
	companyService services.CompanySvcFacade
}

func newCompanyHandler(companyService services.CompanySvcFacade) *companyHandler {
	return &companyHandler{companyService: companyService}
}

// createCompanyHandler godoc
// @Summary      Create a company
// @Description  Creates a new company. Restricted to elevated roles.
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        company  body      dto.CreateCompanyRequest  true  "Company details"
// @Success      201      {object}  dto.CompanyResponse
// @Failure      400      {object}  map[string]string
// @Failure      403      {object}  map[string]string
// @Router       /companies [post]
func (h *companyHandler) createCompanyHandler(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid create company request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCompanyResponse(company))
}

// getCompanyHandler godoc
// @Summary      Get a company
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        companyID  path      string  true  "Company ID"
// @Success      200        {object}  dto.CompanyResponse
// @Failure      404        {object}  map[string]string
// @Router       /companies/{companyID} [get]
func (h *companyHandler) getCompanyHandler(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	company, err := h.companyService.GetCompanyByID(c.Request.Context(), c.Param("companyID"), actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// listCompaniesHandler godoc
// @Summary      List companies
// @Description  Lists companies visible to the caller. Non-elevated roles only
// @Description  see their own company.
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        limit           query     int   false  "Page size"  default(50)
// @Param        offset          query     int   false  "Page offset"
// @Param        includeDeleted  query     bool  false  "Include soft-deleted companies (elevated only)"
// @Success      200             {object}  dto.ListCompaniesResponse
// @Router       /companies [get]
func (h *companyHandler) listCompaniesHandler(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var params dto.ListCompaniesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid list companies params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	companies, err := h.companyService.ListCompanies(c.Request.Context(), actor, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListCompaniesResponse(companies))
}

// updateCompanyHandler godoc
// @Summary      Update a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        companyID  path      string                    true  "Company ID"
// @Param        company    body      dto.UpdateCompanyRequest  true  "Fields to update"
// @Success      200        {object}  dto.CompanyResponse
// @Failure      404        {object}  map[string]string
// @Router       /companies/{companyID} [put]
func (h *companyHandler) updateCompanyHandler(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid update company request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	company, err := h.companyService.UpdateCompany(c.Request.Context(), c.Param("companyID"), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// deleteCompanyHandler godoc
// @Summary      Delete a company
// @Description  Soft-deletes a company. Deleting an already deleted company is
// @Description  a no-op. Restricted to elevated roles.
// @Tags         companies
// @Security     BearerAuth
// @Param        companyID  path  string  true  "Company ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /companies/{companyID} [delete]
func (h *companyHandler) deleteCompanyHandler(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	if err := h.companyService.DeleteCompany(c.Request.Context(), c.Param("companyID"), actor); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// reactivateCompanyHandler godoc
// @Summary      Reactivate a company
// @Description  Restores a soft-deleted company. Restricted to elevated roles.
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        companyID  path      string  true  "Company ID"
// @Success      200        {object}  dto.CompanyResponse
// @Failure      403        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /companies/{companyID}/reactivate [post]
func (h *companyHandler) reactivateCompanyHandler(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	company, err := h.companyService.ReactivateCompany(c.Request.Context(), c.Param("companyID"), actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

func registerCompanyRoutes(group *gin.RouterGroup, companyService services.CompanySvcFacade) {
	h := newCompanyHandler(companyService)

	companies := group.Group("/companies")
	{
		companies.POST("", h.createCompanyHandler)
		companies.GET("", h.listCompaniesHandler)
		companies.GET("/:companyID", h.getCompanyHandler)
		companies.PUT("/:companyID", h.updateCompanyHandler)
		companies.DELETE("/:companyID", h.deleteCompanyHandler)
		companies.POST("/:companyID/reactivate", h.reactivateCompanyHandler)
	}
}
