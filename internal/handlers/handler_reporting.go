package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
	"github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/services"
	"github.com/openbooks-dev/bookkeeping_backend/internal/dto"
	"github.com/openbooks-dev/bookkeeping_backend/internal/middleware"
)

type reportingHandler struct {
	reportingService services.ReportingSvcFacade
}

func newReportingHandler(reportingService services.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: reportingService}
}

// parseOptionalStatus reads an account status query parameter, responding with
// 400 on an unknown value.
func parseOptionalStatus(c *gin.Context) (string, bool) {
	status := c.Query("status")
	if status != "" && status != string(domain.StatusActive) && status != string(domain.StatusInactive) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status, expected ACTIVE or INACTIVE"})
		return "", false
	}
	return status, true
}

// parseOptionalDate reads a YYYY-MM-DD query parameter, responding with 400 on
// a malformed value.
func parseOptionalDate(c *gin.Context, name string) (*time.Time, bool) {
	value := c.Query(name)
	t, present, err := dto.ParseReportDate(value)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Invalid report date",
			slog.String("param", name), slog.String("value", value))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + ", expected YYYY-MM-DD"})
		return nil, false
	}
	if !present {
		return nil, true
	}
	return &t, true
}

// getLedgerHandler godoc
// @Summary      Account ledger
// @Description  Lists the account's lines in chronological order with a
// @Description  running debit-minus-credit balance. When paginated, the first
// @Description  balance of a page continues from the rows before it.
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        companyID  path      string  true   "Company ID"
// @Param        accountID  path      string  true   "Account ID"
// @Param        fromDate   query     string  false  "Start date (YYYY-MM-DD, inclusive)"
// @Param        toDate     query     string  false  "End date (YYYY-MM-DD, inclusive)"
// @Param        limit      query     int     false  "Page size, 0 for all rows"
// @Param        offset     query     int     false  "Page offset"
// @Success      200        {object}  domain.LedgerReport
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /companies/{companyID}/reports/ledger/{accountID} [get]
func (h *reportingHandler) getLedgerHandler(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var params dto.LedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid ledger params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	report, err := h.reportingService.GetLedger(c.Request.Context(), c.Param("companyID"), c.Param("accountID"), actor, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// getTrialBalanceHandler godoc
// @Summary      Trial balance
// @Description  Sums debits and credits per account over an optional date
// @Description  window. Total debits always equal total credits.
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        companyID  path      string  true   "Company ID"
// @Param        fromDate   query     string  false  "Start date (YYYY-MM-DD, inclusive)"
// @Param        toDate     query     string  false  "End date (YYYY-MM-DD, inclusive)"
// @Param        status     query     string  false  "Filter accounts by status"
// @Success      200        {object}  domain.TrialBalanceReport
// @Failure      400        {object}  map[string]string
// @Router       /companies/{companyID}/reports/trial-balance [get]
func (h *reportingHandler) getTrialBalanceHandler(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	from, ok := parseOptionalDate(c, "fromDate")
	if !ok {
		return
	}
	to, ok := parseOptionalDate(c, "toDate")
	if !ok {
		return
	}
	status, ok := parseOptionalStatus(c)
	if !ok {
		return
	}

	report, err := h.reportingService.GetTrialBalance(c.Request.Context(), c.Param("companyID"), actor, from, to, status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// getBalanceSheetHandler godoc
// @Summary      Balance sheet
// @Description  Groups asset, liability and equity balances as of an optional
// @Description  date and reports whether the accounting equation holds.
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        companyID  path      string  true   "Company ID"
// @Param        asOf       query     string  false  "Report date (YYYY-MM-DD, inclusive)"
// @Param        status     query     string  false  "Filter accounts by status"
// @Success      200        {object}  domain.BalanceSheetReport
// @Failure      400        {object}  map[string]string
// @Router       /companies/{companyID}/reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheetHandler(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	asOf, ok := parseOptionalDate(c, "asOf")
	if !ok {
		return
	}
	status, ok := parseOptionalStatus(c)
	if !ok {
		return
	}

	report, err := h.reportingService.GetBalanceSheet(c.Request.Context(), c.Param("companyID"), actor, asOf, status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// getDashboardHandler godoc
// @Summary      Company dashboard
// @Description  Returns the revenue, expense and profit summary over an
// @Description  optional date window plus trailing 12-month profit/loss and
// @Description  entry-count series with empty months zero-filled.
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        companyID  path      string  true   "Company ID"
// @Param        fromDate   query     string  false  "Start date (YYYY-MM-DD, inclusive)"
// @Param        toDate     query     string  false  "End date (YYYY-MM-DD, inclusive)"
// @Success      200        {object}  dto.DashboardResponse
// @Failure      400        {object}  map[string]string
// @Router       /companies/{companyID}/reports/dashboard [get]
func (h *reportingHandler) getDashboardHandler(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	from, ok := parseOptionalDate(c, "fromDate")
	if !ok {
		return
	}
	to, ok := parseOptionalDate(c, "toDate")
	if !ok {
		return
	}

	resp, err := h.reportingService.GetDashboard(c.Request.Context(), c.Param("companyID"), actor, from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func registerReportingRoutes(group *gin.RouterGroup, reportingService services.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := group.Group("/companies/:companyID/reports")
	{
		reports.GET("/ledger/:accountID", h.getLedgerHandler)
		reports.GET("/trial-balance", h.getTrialBalanceHandler)
		reports.GET("/balance-sheet", h.getBalanceSheetHandler)
		reports.GET("/dashboard", h.getDashboardHandler)
	}
}
