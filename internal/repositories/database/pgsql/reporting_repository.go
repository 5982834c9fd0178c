package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
	portsrepo "github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// Ensure reportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// ledgerBaseQuery selects the ledger lines of one account over non-deleted
// entries, with an optional inclusive date window. Ledger order must be
// stable: entry date, line creation, line ID.
const ledgerBaseQuery = `
	FROM journal_lines l
	JOIN journal_entries e ON l.entry_id = e.entry_id
	WHERE e.company_id = $1
		AND l.account_id = $2
		AND e.deleted_at IS NULL
		AND ($3::timestamptz IS NULL OR e.entry_date >= $3)
		AND ($4::timestamptz IS NULL OR e.entry_date <= $4)
`

const ledgerOrderBy = `ORDER BY e.entry_date, l.created_at, l.line_id`

// LedgerPage retrieves one page of ledger lines plus the total count over the
// filtered set. A limit of 0 disables pagination.
func (r *reportingRepository) LedgerPage(ctx context.Context, companyID, accountID string, from, to *time.Time, limit, offset int) ([]domain.LedgerLine, int64, error) {
	query := `
		SELECT l.line_id, l.entry_id, e.entry_date, e.description, l.description,
		       COALESCE(l.debit_amount, 0), COALESCE(l.credit_amount, 0), l.created_at
	` + ledgerBaseQuery + `
	` + ledgerOrderBy + `
	LIMIT NULLIF($5, 0) OFFSET $6;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, accountID, from, to, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying ledger lines for account %s: %w", accountID, err)
	}
	defer rows.Close()

	lines := []domain.LedgerLine{}
	for rows.Next() {
		var l domain.LedgerLine
		if err := rows.Scan(
			&l.LineID,
			&l.EntryID,
			&l.EntryDate,
			&l.EntryDescription,
			&l.Description,
			&l.DebitAmount,
			&l.CreditAmount,
			&l.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning ledger line row: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating ledger line rows: %w", err)
	}

	var count int64
	countQuery := `SELECT COUNT(*)` + ledgerBaseQuery + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, companyID, accountID, from, to).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("error counting ledger lines for account %s: %w", accountID, err)
	}

	return lines, count, nil
}

// LedgerTotals sums debits, credits and net over the filtered line set.
func (r *reportingRepository) LedgerTotals(ctx context.Context, companyID, accountID string, from, to *time.Time) (domain.LedgerTotals, error) {
	query := `
		SELECT COALESCE(SUM(COALESCE(l.debit_amount, 0)), 0),
		       COALESCE(SUM(COALESCE(l.credit_amount, 0)), 0)
	` + ledgerBaseQuery + `;`

	var totals domain.LedgerTotals
	if err := r.Pool.QueryRow(ctx, query, companyID, accountID, from, to).Scan(&totals.Debit, &totals.Credit); err != nil {
		return domain.LedgerTotals{}, fmt.Errorf("error querying ledger totals for account %s: %w", accountID, err)
	}
	totals.Net = totals.Debit.Sub(totals.Credit)
	return totals, nil
}

// LedgerOpeningNet sums debit-minus-credit over the lines preceding the page
// at the given offset, seeding the running balance.
func (r *reportingRepository) LedgerOpeningNet(ctx context.Context, companyID, accountID string, from, to *time.Time, offset int) (int64, error) {
	if offset <= 0 {
		return 0, nil
	}
	query := `
		SELECT COALESCE(SUM(net), 0) FROM (
			SELECT COALESCE(l.debit_amount, 0) - COALESCE(l.credit_amount, 0) AS net
		` + ledgerBaseQuery + `
		` + ledgerOrderBy + `
			LIMIT $5
		) preceding;
	`
	var opening decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, companyID, accountID, from, to, offset).Scan(&opening); err != nil {
		return 0, fmt.Errorf("error querying opening balance for account %s: %w", accountID, err)
	}
	return opening.IntPart(), nil
}

// TrialBalanceRows retrieves per-account debit and credit sums over all
// non-deleted entries of the company, optionally limited to accounts of one
// status. Accounts with no activity in the window appear with zero sums.
func (r *reportingRepository) TrialBalanceRows(ctx context.Context, companyID string, from, to *time.Time, status string) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT
			a.account_id,
			a.name AS account_name,
			a.account_type,
			a.status,
			COALESCE(SUM(t.debit_amount), 0) AS total_debit,
			COALESCE(SUM(t.credit_amount), 0) AS total_credit
		FROM accounts a
		LEFT JOIN (
			SELECT l.account_id, COALESCE(l.debit_amount, 0) AS debit_amount, COALESCE(l.credit_amount, 0) AS credit_amount
			FROM journal_lines l
			JOIN journal_entries e ON l.entry_id = e.entry_id
			WHERE e.deleted_at IS NULL
				AND ($2::timestamptz IS NULL OR e.entry_date >= $2)
				AND ($3::timestamptz IS NULL OR e.entry_date <= $3)
		) t ON t.account_id = a.account_id
		WHERE a.company_id = $1
			AND ($4 = '' OR a.status = $4)
		GROUP BY a.account_id, a.name, a.account_type, a.status
		ORDER BY a.name;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, from, to, status)
	if err != nil {
		return nil, fmt.Errorf("error querying trial balance data: %w", err)
	}
	defer rows.Close()

	result := []domain.TrialBalanceRow{}
	for rows.Next() {
		var row domain.TrialBalanceRow
		var accountType, status string

		if err := rows.Scan(
			&row.AccountID,
			&row.AccountName,
			&accountType,
			&status,
			&row.Debit,
			&row.Credit,
		); err != nil {
			return nil, fmt.Errorf("error scanning trial balance row: %w", err)
		}

		row.AccountType = domain.AccountType(accountType)
		row.Status = domain.CommonStatus(status)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trial balance rows: %w", err)
	}

	return result, nil
}

// CompanySummary aggregates revenue, expense, entry count and active account
// count for the dashboard.
func (r *reportingRepository) CompanySummary(ctx context.Context, companyID string, from, to *time.Time) (*domain.CompanySummary, error) {
	summary := &domain.CompanySummary{}

	sumsQuery := `
		SELECT
			COALESCE(SUM(CASE WHEN a.account_type = 'REVENUE' THEN COALESCE(l.credit_amount, 0) - COALESCE(l.debit_amount, 0) ELSE 0 END), 0) AS revenue,
			COALESCE(SUM(CASE WHEN a.account_type = 'EXPENSE' THEN COALESCE(l.debit_amount, 0) - COALESCE(l.credit_amount, 0) ELSE 0 END), 0) AS expense
		FROM journal_lines l
		JOIN journal_entries e ON l.entry_id = e.entry_id
		JOIN accounts a ON l.account_id = a.account_id
		WHERE e.company_id = $1
			AND e.deleted_at IS NULL
			AND ($2::timestamptz IS NULL OR e.entry_date >= $2)
			AND ($3::timestamptz IS NULL OR e.entry_date <= $3);
	`
	if err := r.Pool.QueryRow(ctx, sumsQuery, companyID, from, to).Scan(&summary.TotalRevenue, &summary.TotalExpense); err != nil {
		return nil, fmt.Errorf("error querying summary sums for company %s: %w", companyID, err)
	}
	summary.NetProfit = summary.TotalRevenue.Sub(summary.TotalExpense)

	entryCountQuery := `
		SELECT COUNT(*)
		FROM journal_entries
		WHERE company_id = $1
			AND deleted_at IS NULL
			AND ($2::timestamptz IS NULL OR entry_date >= $2)
			AND ($3::timestamptz IS NULL OR entry_date <= $3);
	`
	if err := r.Pool.QueryRow(ctx, entryCountQuery, companyID, from, to).Scan(&summary.JournalEntryCount); err != nil {
		return nil, fmt.Errorf("error counting entries for company %s: %w", companyID, err)
	}

	accountCountQuery := `SELECT COUNT(*) FROM accounts WHERE company_id = $1 AND status = 'ACTIVE';`
	if err := r.Pool.QueryRow(ctx, accountCountQuery, companyID).Scan(&summary.ActiveAccountCount); err != nil {
		return nil, fmt.Errorf("error counting accounts for company %s: %w", companyID, err)
	}

	return summary, nil
}

// MonthlyProfitLoss aggregates revenue and expense per calendar month for the
// trailing months window. Months without activity are absent; the service
// densifies the series.
func (r *reportingRepository) MonthlyProfitLoss(ctx context.Context, companyID string, months int) ([]domain.MonthlyProfitLoss, error) {
	query := `
		SELECT
			to_char(date_trunc('month', e.entry_date), 'YYYY-MM') AS month,
			COALESCE(SUM(CASE WHEN a.account_type = 'REVENUE' THEN COALESCE(l.credit_amount, 0) - COALESCE(l.debit_amount, 0) ELSE 0 END), 0) AS revenue,
			COALESCE(SUM(CASE WHEN a.account_type = 'EXPENSE' THEN COALESCE(l.debit_amount, 0) - COALESCE(l.credit_amount, 0) ELSE 0 END), 0) AS expense
		FROM journal_lines l
		JOIN journal_entries e ON l.entry_id = e.entry_id
		JOIN accounts a ON l.account_id = a.account_id
		WHERE e.company_id = $1
			AND e.deleted_at IS NULL
			AND e.entry_date >= date_trunc('month', now()) - make_interval(months => $2 - 1)
		GROUP BY 1
		ORDER BY 1;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, months)
	if err != nil {
		return nil, fmt.Errorf("error querying monthly profit/loss for company %s: %w", companyID, err)
	}
	defer rows.Close()

	result := []domain.MonthlyProfitLoss{}
	for rows.Next() {
		var m domain.MonthlyProfitLoss
		if err := rows.Scan(&m.Month, &m.Revenue, &m.Expense); err != nil {
			return nil, fmt.Errorf("error scanning monthly profit/loss row: %w", err)
		}
		m.Net = m.Revenue.Sub(m.Expense)
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly profit/loss rows: %w", err)
	}
	return result, nil
}

// MonthlyEntryCounts counts journal entries per calendar month for the
// trailing months window.
func (r *reportingRepository) MonthlyEntryCounts(ctx context.Context, companyID string, months int) ([]domain.MonthlyEntryCount, error) {
	query := `
		SELECT to_char(date_trunc('month', entry_date), 'YYYY-MM') AS month, COUNT(*)
		FROM journal_entries
		WHERE company_id = $1
			AND deleted_at IS NULL
			AND entry_date >= date_trunc('month', now()) - make_interval(months => $2 - 1)
		GROUP BY 1
		ORDER BY 1;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, months)
	if err != nil {
		return nil, fmt.Errorf("error querying monthly entry counts for company %s: %w", companyID, err)
	}
	defer rows.Close()

	result := []domain.MonthlyEntryCount{}
	for rows.Next() {
		var m domain.MonthlyEntryCount
		if err := rows.Scan(&m.Month, &m.Count); err != nil {
			return nil, fmt.Errorf("error scanning monthly entry count row: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly entry count rows: %w", err)
	}
	return result, nil
}
