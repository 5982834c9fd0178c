package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/services"
	"github.com/openbooks-dev/bookkeeping_backend/internal/dto"
	"github.com/openbooks-dev/bookkeeping_backend/internal/middleware"
)

type categoryHandler struct {
	categoryService services.CategorySvcFacade
}

func newCategoryHandler(categoryService services.CategorySvcFacade) *categoryHandler {
	return &categoryHandler{categoryService: categoryService}
}

// createCategoryHandler godoc
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        companyID  path      string                     true  "Company ID"
// @Param        category   body      dto.CreateCategoryRequest  true  "Category details"
// @Success      201        {object}  dto.CategoryResponse
// @Failure      400        {object}  map[string]string
// @Failure      409        {object}  map[string]string
// @Router       /companies/{companyID}/categories [post]
func (h *categoryHandler) createCategoryHandler(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid create category request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), c.Param("companyID"), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// getCategoryHandler godoc
// @Summary      Get a category
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        companyID   path      string  true  "Company ID"
// @Param        categoryID  path      string  true  "Category ID"
// @Success      200         {object}  dto.CategoryResponse
// @Failure      404         {object}  map[string]string
// @Router       /companies/{companyID}/categories/{categoryID} [get]
func (h *categoryHandler) getCategoryHandler(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	category, err := h.categoryService.GetCategoryByID(c.Request.Context(), c.Param("companyID"), c.Param("categoryID"), actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// listCategoriesHandler godoc
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        companyID  path      string  true  "Company ID"
// @Success      200        {object}  dto.ListCategoriesResponse
// @Router       /companies/{companyID}/categories [get]
func (h *categoryHandler) listCategoriesHandler(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context(), c.Param("companyID"), actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListCategoriesResponse(categories))
}

// updateCategoryHandler godoc
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        companyID   path      string                     true  "Company ID"
// @Param        categoryID  path      string                     true  "Category ID"
// @Param        category    body      dto.UpdateCategoryRequest  true  "Fields to update"
// @Success      200         {object}  dto.CategoryResponse
// @Failure      404         {object}  map[string]string
// @Router       /companies/{companyID}/categories/{categoryID} [put]
func (h *categoryHandler) updateCategoryHandler(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid update category request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), c.Param("companyID"), c.Param("categoryID"), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// deleteCategoryHandler godoc
// @Summary      Delete a category
// @Description  Removes a category. Accounts referencing it are detached, not
// @Description  deleted.
// @Tags         categories
// @Security     BearerAuth
// @Param        companyID   path  string  true  "Company ID"
// @Param        categoryID  path  string  true  "Category ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /companies/{companyID}/categories/{categoryID} [delete]
func (h *categoryHandler) deleteCategoryHandler(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), c.Param("companyID"), c.Param("categoryID"), actor); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// moveAccountsHandler godoc
// @Summary      Move accounts between categories
// @Description  Moves every account of one category to another in bulk. A null
// @Description  category on either side means the uncategorized bucket.
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        companyID  path      string                  true  "Company ID"
// @Param        move       body      dto.MoveAccountsRequest true  "Source and target category"
// @Success      200        {object}  dto.MoveAccountsResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /companies/{companyID}/categories/move [post]
func (h *categoryHandler) moveAccountsHandler(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.MoveAccountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid move accounts request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	moved, err := h.categoryService.MoveAccounts(c.Request.Context(), c.Param("companyID"), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MoveAccountsResponse{Moved: moved})
}

func registerCategoryRoutes(group *gin.RouterGroup, categoryService services.CategorySvcFacade) {
	h := newCategoryHandler(categoryService)

	categories := group.Group("/companies/:companyID/categories")
	{
		categories.POST("", h.createCategoryHandler)
		categories.GET("", h.listCategoriesHandler)
		categories.POST("/move", h.moveAccountsHandler)
		categories.GET("/:categoryID", h.getCategoryHandler)
		categories.PUT("/:categoryID", h.updateCategoryHandler)
		categories.DELETE("/:categoryID", h.deleteCategoryHandler)
	}
}
