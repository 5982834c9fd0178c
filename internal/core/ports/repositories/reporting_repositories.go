package repositories

import (
	"context"
	"time"

	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
)

// ReportingRepository defines the read-only aggregate queries behind the
// reports. All date windows are inclusive; nil means unbounded.
type ReportingRepository interface {
	// LedgerPage retrieves one page of ledger lines for an account in ledger
	// order, without running balances, plus the total line count over the
	// filtered set. A limit of 0 disables pagination.
	LedgerPage(ctx context.Context, companyID string, accountID string, from *time.Time, to *time.Time, limit int, offset int) ([]domain.LedgerLine, int64, error)

	// LedgerTotals sums debits, credits and net over the filtered line set.
	LedgerTotals(ctx context.Context, companyID string, accountID string, from *time.Time, to *time.Time) (domain.LedgerTotals, error)

	// LedgerOpeningNet sums debit-minus-credit over the lines preceding the
	// page at the given offset, seeding the running balance.
	LedgerOpeningNet(ctx context.Context, companyID string, accountID string, from *time.Time, to *time.Time, offset int) (int64, error)

	// TrialBalanceRows retrieves per-account debit and credit sums over all
	// non-deleted entries of the company, optionally limited to accounts of
	// one status. Accounts without activity appear with zero sums.
	TrialBalanceRows(ctx context.Context, companyID string, from *time.Time, to *time.Time, status string) ([]domain.TrialBalanceRow, error)

	// CompanySummary aggregates revenue, expense, entry count and active
	// account count for the dashboard.
	CompanySummary(ctx context.Context, companyID string, from *time.Time, to *time.Time) (*domain.CompanySummary, error)

	// MonthlyProfitLoss aggregates revenue and expense per calendar month for
	// the trailing months window.
	MonthlyProfitLoss(ctx context.Context, companyID string, months int) ([]domain.MonthlyProfitLoss, error)

	// MonthlyEntryCounts counts journal entries per calendar month for the
	// trailing months window.
	MonthlyEntryCounts(ctx context.Context, companyID string, months int) ([]domain.MonthlyEntryCount, error)
}
