package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openbooks-dev/bookkeeping_backend/internal/apperrors"
	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
	portsrepo "github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/repositories"
	portssvc "github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/services"
	"github.com/openbooks-dev/bookkeeping_backend/internal/dto"
)

// trailingMonths is the window of the dashboard's monthly series.
const trailingMonths = 12

// reportingService builds the read-only financial reports.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	accountRepo   portsrepo.AccountReader
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, accountRepo portsrepo.AccountReader) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: reportingRepo,
		accountRepo:   accountRepo,
	}
}

// Ensure reportingService implements the portssvc.ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetLedger builds the ledger view for one account. Running balances
// accumulate debit minus credit for every account type, so credit-natured
// accounts carry negative balances. Balances are seeded with the net of all
// lines preceding the requested page, so a paginated read matches the
// unpaginated one.
func (s *reportingService) GetLedger(ctx context.Context, companyID, accountID string, actor domain.Actor, params dto.LedgerParams) (*domain.LedgerReport, error) {
	if err := s.AuthorizeCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, companyID, accountID)
	if err != nil {
		return nil, err
	}

	from, to, err := parseDateWindow(params.FromDate, params.ToDate)
	if err != nil {
		return nil, err
	}

	lines, count, err := s.reportingRepo.LedgerPage(ctx, companyID, accountID, from, to, params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}

	opening, err := s.reportingRepo.LedgerOpeningNet(ctx, companyID, accountID, from, to, params.Offset)
	if err != nil {
		return nil, err
	}
	balance := opening
	for i := range lines {
		balance += lines[i].DebitAmount - lines[i].CreditAmount
		lines[i].Balance = balance
	}

	totals, err := s.reportingRepo.LedgerTotals(ctx, companyID, accountID, from, to)
	if err != nil {
		return nil, err
	}

	return &domain.LedgerReport{
		Account:   *account,
		Lines:     lines,
		Totals:    totals,
		LineCount: count,
		Offset:    params.Offset,
		Limit:     params.Limit,
	}, nil
}

// GetTrialBalance builds the trial balance over an optional date window,
// optionally limited to accounts of one status. Each account's net is folded
// onto its natural side; the folded totals come out equal exactly when every
// entry balances.
func (s *reportingService) GetTrialBalance(ctx context.Context, companyID string, actor domain.Actor, from, to *time.Time, status string) (*domain.TrialBalanceReport, error) {
	if err := s.AuthorizeCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.TrialBalanceRows(ctx, companyID, from, to, status)
	if err != nil {
		return nil, err
	}

	report := &domain.TrialBalanceReport{
		Accounts: make([]domain.TrialBalanceRow, len(rows)),
		Totals: domain.TrialBalanceTotals{
			Debit:         decimal.Zero,
			Credit:        decimal.Zero,
			Net:           decimal.Zero,
			DebitBalance:  decimal.Zero,
			CreditBalance: decimal.Zero,
		},
	}

	for i, row := range rows {
		row.Net = row.Debit.Sub(row.Credit)
		if row.Net.IsPositive() {
			row.DebitBalance = row.Net
			row.CreditBalance = decimal.Zero
		} else {
			row.DebitBalance = decimal.Zero
			row.CreditBalance = row.Net.Neg()
		}
		report.Accounts[i] = row

		report.Totals.Debit = report.Totals.Debit.Add(row.Debit)
		report.Totals.Credit = report.Totals.Credit.Add(row.Credit)
		report.Totals.Net = report.Totals.Net.Add(row.Net)
		report.Totals.DebitBalance = report.Totals.DebitBalance.Add(row.DebitBalance)
		report.Totals.CreditBalance = report.Totals.CreditBalance.Add(row.CreditBalance)
	}

	return report, nil
}

// GetBalanceSheet builds the balance sheet as of an optional date. Only
// ASSET, LIABILITY and EQUITY accounts appear; each balance is clamped to
// the account's natural side and zero-balance accounts are omitted. The
// report notes whether assets equal liabilities plus equity.
func (s *reportingService) GetBalanceSheet(ctx context.Context, companyID string, actor domain.Actor, asOf *time.Time, status string) (*domain.BalanceSheetReport, error) {
	if err := s.AuthorizeCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.TrialBalanceRows(ctx, companyID, nil, asOf, status)
	if err != nil {
		return nil, err
	}

	newSection := func() domain.BalanceSheetSection {
		return domain.BalanceSheetSection{
			Total:    decimal.Zero,
			Accounts: []domain.BalanceSheetAccount{},
		}
	}
	report := &domain.BalanceSheetReport{
		Assets:      newSection(),
		Liabilities: newSection(),
		Equity:      newSection(),
	}

	for _, row := range rows {
		var section *domain.BalanceSheetSection
		switch row.AccountType {
		case domain.Asset:
			section = &report.Assets
		case domain.Liability:
			section = &report.Liabilities
		case domain.Equity:
			section = &report.Equity
		default:
			continue
		}
		// Balances off the account's natural side clamp to zero rather
		// than appearing negative.
		var balance decimal.Decimal
		if row.AccountType.DebitNatured() {
			balance = row.Debit.Sub(row.Credit)
		} else {
			balance = row.Credit.Sub(row.Debit)
		}
		if !balance.IsPositive() {
			continue
		}
		section.Accounts = append(section.Accounts, domain.BalanceSheetAccount{
			AccountID: row.AccountID,
			Name:      row.AccountName,
			Balance:   balance,
		})
		section.Total = section.Total.Add(balance)
	}

	report.EquationBalanced = report.Assets.Total.Equal(report.Liabilities.Total.Add(report.Equity.Total))
	return report, nil
}

// GetDashboard builds the company summary with the trailing 12-month series.
// Months without activity appear with zero values.
func (s *reportingService) GetDashboard(ctx context.Context, companyID string, actor domain.Actor, from, to *time.Time) (*dto.DashboardResponse, error) {
	if err := s.AuthorizeCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}

	summary, err := s.reportingRepo.CompanySummary(ctx, companyID, from, to)
	if err != nil {
		return nil, err
	}

	pnl, err := s.reportingRepo.MonthlyProfitLoss(ctx, companyID, trailingMonths)
	if err != nil {
		return nil, err
	}
	counts, err := s.reportingRepo.MonthlyEntryCounts(ctx, companyID, trailingMonths)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		Summary:        *summary,
		MonthlyPnL:     densifyMonthlyPnL(pnl, time.Now().UTC()),
		MonthlyEntries: densifyMonthlyCounts(counts, time.Now().UTC()),
	}, nil
}

// trailingMonthKeys returns the last trailingMonths month keys (YYYY-MM),
// oldest first, ending at the month of now.
func trailingMonthKeys(now time.Time) []string {
	keys := make([]string, trailingMonths)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(trailingMonths - 1), 0)
	for i := 0; i < trailingMonths; i++ {
		keys[i] = first.AddDate(0, i, 0).Format("2006-01")
	}
	return keys
}

func densifyMonthlyPnL(sparse []domain.MonthlyProfitLoss, now time.Time) []domain.MonthlyProfitLoss {
	byMonth := make(map[string]domain.MonthlyProfitLoss, len(sparse))
	for _, m := range sparse {
		byMonth[m.Month] = m
	}
	keys := trailingMonthKeys(now)
	result := make([]domain.MonthlyProfitLoss, len(keys))
	for i, key := range keys {
		if m, ok := byMonth[key]; ok {
			result[i] = m
		} else {
			result[i] = domain.MonthlyProfitLoss{
				Month:   key,
				Revenue: decimal.Zero,
				Expense: decimal.Zero,
				Net:     decimal.Zero,
			}
		}
	}
	return result
}

func densifyMonthlyCounts(sparse []domain.MonthlyEntryCount, now time.Time) []domain.MonthlyEntryCount {
	byMonth := make(map[string]int64, len(sparse))
	for _, m := range sparse {
		byMonth[m.Month] = m.Count
	}
	keys := trailingMonthKeys(now)
	result := make([]domain.MonthlyEntryCount, len(keys))
	for i, key := range keys {
		result[i] = domain.MonthlyEntryCount{Month: key, Count: byMonth[key]}
	}
	return result
}

// parseDateWindow parses optional YYYY-MM-DD bounds. The upper bound is
// shifted to the end of its day so it stays inclusive against timestamps.
func parseDateWindow(fromStr, toStr string) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if t, ok, err := dto.ParseReportDate(fromStr); err != nil {
		return nil, nil, fmt.Errorf("%w: invalid fromDate %q", apperrors.ErrValidation, fromStr)
	} else if ok {
		from = &t
	}
	if t, ok, err := dto.ParseReportDate(toStr); err != nil {
		return nil, nil, fmt.Errorf("%w: invalid toDate %q", apperrors.ErrValidation, toStr)
	} else if ok {
		end := t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		to = &end
	}
	return from, to, nil
}
