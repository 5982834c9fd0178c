package services

import (
	"context"
	"time"

	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
	"github.com/openbooks-dev/bookkeeping_backend/internal/dto"
)

// ReportingSvcFacade defines the read-only financial reports.
type ReportingSvcFacade interface {
	// GetLedger builds the ledger view for one account with running balances.
	GetLedger(ctx context.Context, companyID string, accountID string, actor domain.Actor, params dto.LedgerParams) (*domain.LedgerReport, error)

	// GetTrialBalance builds the trial balance over an optional date window,
	// optionally limited to accounts of one status.
	GetTrialBalance(ctx context.Context, companyID string, actor domain.Actor, from *time.Time, to *time.Time, status string) (*domain.TrialBalanceReport, error)

	// GetBalanceSheet builds the balance sheet as of an optional date,
	// optionally limited to accounts of one status.
	GetBalanceSheet(ctx context.Context, companyID string, actor domain.Actor, asOf *time.Time, status string) (*domain.BalanceSheetReport, error)

	// GetDashboard builds the company summary with the trailing 12-month
	// profit/loss and entry-count series.
	GetDashboard(ctx context.Context, companyID string, actor domain.Actor, from *time.Time, to *time.Time) (*dto.DashboardResponse, error)
}

// AuditSvcFacade defines read access to the audit trail.
type AuditSvcFacade interface {
	// ListEvents retrieves audit events of a company, newest first.
	ListEvents(ctx context.Context, companyID string, actor domain.Actor, params dto.ListAuditEventsParams) ([]domain.AuditEvent, error)
}
