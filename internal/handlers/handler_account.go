package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/services"
	"github.com/openbooks-dev/bookkeeping_backend/internal/dto"
	"github.com/openbooks-dev/bookkeeping_backend/internal/middleware"
)

type accountHandler struct {
	accountService services.AccountSvcFacade
}

func newAccountHandler(accountService services.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountService: accountService}
}

// createAccountHandler godoc
// @Summary      Create an account
// @Description  Adds an account to the company's chart of accounts.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        companyID  path      string                   true  "Company ID"
// @Param        account    body      dto.CreateAccountRequest  true  "Account details"
// @Success      201        {object}  dto.AccountResponse
// @Failure      400        {object}  map[string]string
// @Failure      409        {object}  map[string]string
// @Router       /companies/{companyID}/accounts [post]
func (h *accountHandler) createAccountHandler(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid create account request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), c.Param("companyID"), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// getAccountHandler godoc
// @Summary      Get an account
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        companyID  path      string  true  "Company ID"
// @Param        accountID  path      string  true  "Account ID"
// @Success      200        {object}  dto.AccountResponse
// @Failure      404        {object}  map[string]string
// @Router       /companies/{companyID}/accounts/{accountID} [get]
func (h *accountHandler) getAccountHandler(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), c.Param("companyID"), c.Param("accountID"), actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccountsHandler godoc
// @Summary      List accounts
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        companyID   path      string  true   "Company ID"
// @Param        type        query     string  false  "Filter by account type"
// @Param        status      query     string  false  "Filter by status"
// @Param        categoryID  query     string  false  "Filter by category"
// @Param        limit       query     int     false  "Page size"  default(100)
// @Param        offset      query     int     false  "Page offset"
// @Success      200         {object}  dto.ListAccountsResponse
// @Router       /companies/{companyID}/accounts [get]
func (h *accountHandler) listAccountsHandler(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid list accounts params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), c.Param("companyID"), actor, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListAccountsResponse(accounts))
}

// updateAccountHandler godoc
// @Summary      Update an account
// @Description  Updates the name or category of an account. The account type
// @Description  is immutable once the account is created.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        companyID  path      string                   true  "Company ID"
// @Param        accountID  path      string                   true  "Account ID"
// @Param        account    body      dto.UpdateAccountRequest  true  "Fields to update"
// @Success      200        {object}  dto.AccountResponse
// @Failure      404        {object}  map[string]string
// @Router       /companies/{companyID}/accounts/{accountID} [put]
func (h *accountHandler) updateAccountHandler(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid update account request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), c.Param("companyID"), c.Param("accountID"), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deactivateAccountHandler godoc
// @Summary      Deactivate an account
// @Description  Marks an account inactive so it can no longer be used on new
// @Description  journal lines. Accounts are never hard deleted.
// @Tags         accounts
// @Security     BearerAuth
// @Param        companyID  path  string  true  "Company ID"
// @Param        accountID  path  string  true  "Account ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /companies/{companyID}/accounts/{accountID} [delete]
func (h *accountHandler) deactivateAccountHandler(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	if err := h.accountService.DeactivateAccount(c.Request.Context(), c.Param("companyID"), c.Param("accountID"), actor); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// reactivateAccountHandler godoc
// @Summary      Reactivate an account
// @Tags         accounts
// @Security     BearerAuth
// @Param        companyID  path  string  true  "Company ID"
// @Param        accountID  path  string  true  "Account ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /companies/{companyID}/accounts/{accountID}/reactivate [post]
func (h *accountHandler) reactivateAccountHandler(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	if err := h.accountService.ReactivateAccount(c.Request.Context(), c.Param("companyID"), c.Param("accountID"), actor); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func registerAccountRoutes(group *gin.RouterGroup, accountService services.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := group.Group("/companies/:companyID/accounts")
	{
		accounts.POST("", h.createAccountHandler)
		accounts.GET("", h.listAccountsHandler)
		accounts.GET("/:accountID", h.getAccountHandler)
		accounts.PUT("/:accountID", h.updateAccountHandler)
		accounts.DELETE("/:accountID", h.deactivateAccountHandler)
		accounts.POST("/:accountID/reactivate", h.reactivateAccountHandler)
	}
}
