package dto

import (
	"time"

	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
)

// LedgerParams defines query parameters for the account ledger report.
// Dates are inclusive and formatted as YYYY-MM-DD.
type LedgerParams struct {
	FromDate string `form:"fromDate" binding:"omitempty,dateonly"`
	ToDate   string `form:"toDate" binding:"omitempty,dateonly"`
	Limit    int    `form:"limit,default=0"` // 0 disables pagination
	Offset   int    `form:"offset,default=0"`
}

// ReportDateRangeParams defines the optional date window shared by the
// aggregate reports.
type ReportDateRangeParams struct {
	FromDate string `form:"fromDate" binding:"omitempty,dateonly"`
	ToDate   string `form:"toDate" binding:"omitempty,dateonly"`
}

// DashboardResponse combines the company summary with its monthly series.
type DashboardResponse struct {
	Summary        domain.CompanySummary      `json:"summary"`
	MonthlyPnL     []domain.MonthlyProfitLoss `json:"monthlyProfitLoss"`
	MonthlyEntries []domain.MonthlyEntryCount `json:"monthlyEntries"`
}

// ParseReportDate parses a YYYY-MM-DD query value; ok is false when the value
// is empty.
func ParseReportDate(value string) (time.Time, bool, error) {
	if value == "" {
		return time.Time{}, false, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}
