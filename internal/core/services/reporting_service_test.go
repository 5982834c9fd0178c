package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/openbooks-dev/bookkeeping_backend/internal/apperrors"
	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
	portssvc "github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/services"
	"github.com/openbooks-dev/bookkeeping_backend/internal/core/services"
	"github.com/openbooks-dev/bookkeeping_backend/internal/dto"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockAccountRepo   *MockAccountRepository
	service           portssvc.ReportingSvcFacade
	companyID         string
	actor             domain.Actor
	cashAccount       domain.Account
	revenueAccount    domain.Account
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo, suite.mockAccountRepo)

	suite.companyID = uuid.NewString()
	suite.actor = domain.Actor{
		UserID:    uuid.NewString(),
		CompanyID: suite.companyID,
		Role:      domain.RoleCompanyUser,
	}
	suite.cashAccount = domain.Account{
		AccountID:   uuid.NewString(),
		CompanyID:   suite.companyID,
		Name:        "Cash",
		AccountType: domain.Asset,
		Status:      domain.StatusActive,
	}
	suite.revenueAccount = domain.Account{
		AccountID:   uuid.NewString(),
		CompanyID:   suite.companyID,
		Name:        "Sales",
		AccountType: domain.Revenue,
		Status:      domain.StatusActive,
	}
}

// --- GetLedger ---

func (suite *ReportingServiceTestSuite) TestGetLedger_RunningBalances() {
	ctx := context.Background()
	lines := []domain.LedgerLine{
		{LineID: uuid.NewString(), DebitAmount: 100},
		{LineID: uuid.NewString(), DebitAmount: 50},
	}

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.companyID, suite.cashAccount.AccountID).
		Return(&suite.cashAccount, nil).Once()
	suite.mockReportingRepo.On("LedgerPage", mock.Anything, suite.companyID, suite.cashAccount.AccountID, (*time.Time)(nil), (*time.Time)(nil), 0, 0).
		Return(lines, int64(2), nil).Once()
	suite.mockReportingRepo.On("LedgerOpeningNet", mock.Anything, suite.companyID, suite.cashAccount.AccountID, (*time.Time)(nil), (*time.Time)(nil), 0).
		Return(int64(0), nil).Once()
	suite.mockReportingRepo.On("LedgerTotals", mock.Anything, suite.companyID, suite.cashAccount.AccountID, (*time.Time)(nil), (*time.Time)(nil)).
		Return(domain.LedgerTotals{Debit: decimal.NewFromInt(150), Credit: decimal.Zero, Net: decimal.NewFromInt(150)}, nil).Once()

	report, err := suite.service.GetLedger(ctx, suite.companyID, suite.cashAccount.AccountID, suite.actor, dto.LedgerParams{})

	suite.Require().NoError(err)
	suite.Require().Len(report.Lines, 2)
	suite.Equal(int64(100), report.Lines[0].Balance)
	suite.Equal(int64(150), report.Lines[1].Balance)
	suite.Equal(int64(2), report.LineCount)
}

func (suite *ReportingServiceTestSuite) TestGetLedger_PageContinuesFromOpeningNet() {
	ctx := context.Background()
	// Offset past a 100 debit; the page holds one 30 credit.
	lines := []domain.LedgerLine{
		{LineID: uuid.NewString(), CreditAmount: 30},
	}

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.companyID, suite.cashAccount.AccountID).
		Return(&suite.cashAccount, nil).Once()
	suite.mockReportingRepo.On("LedgerPage", mock.Anything, suite.companyID, suite.cashAccount.AccountID, (*time.Time)(nil), (*time.Time)(nil), 1, 1).
		Return(lines, int64(2), nil).Once()
	suite.mockReportingRepo.On("LedgerOpeningNet", mock.Anything, suite.companyID, suite.cashAccount.AccountID, (*time.Time)(nil), (*time.Time)(nil), 1).
		Return(int64(100), nil).Once()
	suite.mockReportingRepo.On("LedgerTotals", mock.Anything, suite.companyID, suite.cashAccount.AccountID, (*time.Time)(nil), (*time.Time)(nil)).
		Return(domain.LedgerTotals{}, nil).Once()

	report, err := suite.service.GetLedger(ctx, suite.companyID, suite.cashAccount.AccountID, suite.actor, dto.LedgerParams{Limit: 1, Offset: 1})

	suite.Require().NoError(err)
	suite.Require().Len(report.Lines, 1)
	suite.Equal(int64(70), report.Lines[0].Balance)
}

func (suite *ReportingServiceTestSuite) TestGetLedger_CreditNaturedAccountRunsNegative() {
	ctx := context.Background()
	// Balances are debit minus credit for every account type, so a revenue
	// account's balance goes negative as it is credited.
	lines := []domain.LedgerLine{
		{LineID: uuid.NewString(), CreditAmount: 100},
		{LineID: uuid.NewString(), DebitAmount: 20},
	}

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.companyID, suite.revenueAccount.AccountID).
		Return(&suite.revenueAccount, nil).Once()
	suite.mockReportingRepo.On("LedgerPage", mock.Anything, suite.companyID, suite.revenueAccount.AccountID, (*time.Time)(nil), (*time.Time)(nil), 0, 0).
		Return(lines, int64(2), nil).Once()
	suite.mockReportingRepo.On("LedgerOpeningNet", mock.Anything, suite.companyID, suite.revenueAccount.AccountID, (*time.Time)(nil), (*time.Time)(nil), 0).
		Return(int64(0), nil).Once()
	suite.mockReportingRepo.On("LedgerTotals", mock.Anything, suite.companyID, suite.revenueAccount.AccountID, (*time.Time)(nil), (*time.Time)(nil)).
		Return(domain.LedgerTotals{}, nil).Once()

	report, err := suite.service.GetLedger(ctx, suite.companyID, suite.revenueAccount.AccountID, suite.actor, dto.LedgerParams{})

	suite.Require().NoError(err)
	suite.Equal(int64(-100), report.Lines[0].Balance)
	suite.Equal(int64(-80), report.Lines[1].Balance)
}

func (suite *ReportingServiceTestSuite) TestGetLedger_InvalidDateRejected() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.companyID, suite.cashAccount.AccountID).
		Return(&suite.cashAccount, nil).Once()

	_, err := suite.service.GetLedger(ctx, suite.companyID, suite.cashAccount.AccountID, suite.actor, dto.LedgerParams{
		FromDate: "28-08-2026",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestGetLedger_CrossCompanyForbidden() {
	ctx := context.Background()
	otherActor := domain.Actor{UserID: uuid.NewString(), CompanyID: uuid.NewString(), Role: domain.RoleCompanyUser}

	_, err := suite.service.GetLedger(ctx, suite.companyID, suite.cashAccount.AccountID, otherActor, dto.LedgerParams{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- GetTrialBalance ---

func (suite *ReportingServiceTestSuite) TestGetTrialBalance_FoldsNetsOntoNaturalSide() {
	ctx := context.Background()
	rows := []domain.TrialBalanceRow{
		{
			AccountID:   suite.cashAccount.AccountID,
			AccountName: "Cash",
			AccountType: domain.Asset,
			Debit:       decimal.NewFromInt(150),
			Credit:      decimal.NewFromInt(50),
		},
		{
			AccountID:   suite.revenueAccount.AccountID,
			AccountName: "Sales",
			AccountType: domain.Revenue,
			Debit:       decimal.Zero,
			Credit:      decimal.NewFromInt(100),
		},
	}

	suite.mockReportingRepo.On("TrialBalanceRows", mock.Anything, suite.companyID, (*time.Time)(nil), (*time.Time)(nil), "").
		Return(rows, nil).Once()

	report, err := suite.service.GetTrialBalance(ctx, suite.companyID, suite.actor, nil, nil, "")

	suite.Require().NoError(err)
	suite.Require().Len(report.Accounts, 2)

	cash := report.Accounts[0]
	suite.True(cash.Net.Equal(decimal.NewFromInt(100)))
	suite.True(cash.DebitBalance.Equal(decimal.NewFromInt(100)))
	suite.True(cash.CreditBalance.IsZero())

	sales := report.Accounts[1]
	suite.True(sales.Net.Equal(decimal.NewFromInt(-100)))
	suite.True(sales.DebitBalance.IsZero())
	suite.True(sales.CreditBalance.Equal(decimal.NewFromInt(100)))

	// Balanced books: total debits equal total credits, folded sides too.
	suite.True(report.Totals.Debit.Equal(decimal.NewFromInt(150)))
	suite.True(report.Totals.Credit.Equal(decimal.NewFromInt(150)))
	suite.True(report.Totals.Net.IsZero())
	suite.True(report.Totals.DebitBalance.Equal(report.Totals.CreditBalance))
}

func (suite *ReportingServiceTestSuite) TestGetTrialBalance_IncludesZeroActivityAccounts() {
	ctx := context.Background()
	rows := []domain.TrialBalanceRow{
		{
			AccountID:   suite.cashAccount.AccountID,
			AccountName: "Cash",
			AccountType: domain.Asset,
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
		},
	}

	suite.mockReportingRepo.On("TrialBalanceRows", mock.Anything, suite.companyID, (*time.Time)(nil), (*time.Time)(nil), "").
		Return(rows, nil).Once()

	report, err := suite.service.GetTrialBalance(ctx, suite.companyID, suite.actor, nil, nil, "")

	suite.Require().NoError(err)
	suite.Require().Len(report.Accounts, 1)
	suite.True(report.Accounts[0].Net.IsZero())
}

func (suite *ReportingServiceTestSuite) TestGetTrialBalance_StatusFilterPassedThrough() {
	ctx := context.Background()

	suite.mockReportingRepo.On("TrialBalanceRows", mock.Anything, suite.companyID, (*time.Time)(nil), (*time.Time)(nil), "ACTIVE").
		Return([]domain.TrialBalanceRow{}, nil).Once()

	_, err := suite.service.GetTrialBalance(ctx, suite.companyID, suite.actor, nil, nil, "ACTIVE")

	suite.Require().NoError(err)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

// --- GetBalanceSheet ---

func (suite *ReportingServiceTestSuite) TestGetBalanceSheet_EquationBalanced() {
	ctx := context.Background()
	rows := []domain.TrialBalanceRow{
		{AccountID: uuid.NewString(), AccountName: "Cash", AccountType: domain.Asset,
			Debit: decimal.NewFromInt(200), Credit: decimal.NewFromInt(50)},
		{AccountID: uuid.NewString(), AccountName: "Loan", AccountType: domain.Liability,
			Debit: decimal.Zero, Credit: decimal.NewFromInt(100)},
		{AccountID: uuid.NewString(), AccountName: "Owner equity", AccountType: domain.Equity,
			Debit: decimal.Zero, Credit: decimal.NewFromInt(50)},
		// Revenue accounts stay out of the balance sheet.
		{AccountID: uuid.NewString(), AccountName: "Sales", AccountType: domain.Revenue,
			Debit: decimal.Zero, Credit: decimal.NewFromInt(999)},
	}

	suite.mockReportingRepo.On("TrialBalanceRows", mock.Anything, suite.companyID, (*time.Time)(nil), (*time.Time)(nil), "").
		Return(rows, nil).Once()

	report, err := suite.service.GetBalanceSheet(ctx, suite.companyID, suite.actor, nil, "")

	suite.Require().NoError(err)
	suite.True(report.Assets.Total.Equal(decimal.NewFromInt(150)))
	suite.True(report.Liabilities.Total.Equal(decimal.NewFromInt(100)))
	suite.True(report.Equity.Total.Equal(decimal.NewFromInt(50)))
	suite.Len(report.Assets.Accounts, 1)
	suite.True(report.EquationBalanced)
}

func (suite *ReportingServiceTestSuite) TestGetBalanceSheet_ClampsAndOmitsZeroBalances() {
	ctx := context.Background()
	// The overdrawn account clamps to zero on its natural side and drops out
	// of the section instead of appearing negative.
	rows := []domain.TrialBalanceRow{
		{AccountID: uuid.NewString(), AccountName: "Overdrawn bank", AccountType: domain.Asset,
			Debit: decimal.NewFromInt(50), Credit: decimal.NewFromInt(120)},
		{AccountID: uuid.NewString(), AccountName: "Cash", AccountType: domain.Asset,
			Debit: decimal.NewFromInt(100), Credit: decimal.Zero},
		{AccountID: uuid.NewString(), AccountName: "Dormant loan", AccountType: domain.Liability,
			Debit: decimal.Zero, Credit: decimal.Zero},
	}

	suite.mockReportingRepo.On("TrialBalanceRows", mock.Anything, suite.companyID, (*time.Time)(nil), (*time.Time)(nil), "").
		Return(rows, nil).Once()

	report, err := suite.service.GetBalanceSheet(ctx, suite.companyID, suite.actor, nil, "")

	suite.Require().NoError(err)
	suite.Require().Len(report.Assets.Accounts, 1)
	suite.Equal("Cash", report.Assets.Accounts[0].Name)
	suite.True(report.Assets.Total.Equal(decimal.NewFromInt(100)))
	suite.Empty(report.Liabilities.Accounts)
	suite.True(report.Liabilities.Total.IsZero())
}

func (suite *ReportingServiceTestSuite) TestGetBalanceSheet_EquationNotBalanced() {
	ctx := context.Background()
	// Retained earnings missing from equity, so assets exceed the other side.
	rows := []domain.TrialBalanceRow{
		{AccountID: uuid.NewString(), AccountName: "Cash", AccountType: domain.Asset,
			Debit: decimal.NewFromInt(200), Credit: decimal.Zero},
		{AccountID: uuid.NewString(), AccountName: "Loan", AccountType: domain.Liability,
			Debit: decimal.Zero, Credit: decimal.NewFromInt(100)},
	}

	suite.mockReportingRepo.On("TrialBalanceRows", mock.Anything, suite.companyID, (*time.Time)(nil), (*time.Time)(nil), "").
		Return(rows, nil).Once()

	report, err := suite.service.GetBalanceSheet(ctx, suite.companyID, suite.actor, nil, "")

	suite.Require().NoError(err)
	suite.False(report.EquationBalanced)
}

// --- GetDashboard ---

func (suite *ReportingServiceTestSuite) TestGetDashboard_DensifiesMonthlySeries() {
	ctx := context.Background()
	currentMonth := time.Now().UTC().Format("2006-01")
	summary := &domain.CompanySummary{
		TotalRevenue:       decimal.NewFromInt(500),
		TotalExpense:       decimal.NewFromInt(300),
		NetProfit:          decimal.NewFromInt(200),
		JournalEntryCount:  7,
		ActiveAccountCount: 4,
	}
	sparsePnL := []domain.MonthlyProfitLoss{
		{Month: currentMonth, Revenue: decimal.NewFromInt(500), Expense: decimal.NewFromInt(300), Net: decimal.NewFromInt(200)},
	}
	sparseCounts := []domain.MonthlyEntryCount{
		{Month: currentMonth, Count: 7},
	}

	suite.mockReportingRepo.On("CompanySummary", mock.Anything, suite.companyID, (*time.Time)(nil), (*time.Time)(nil)).
		Return(summary, nil).Once()
	suite.mockReportingRepo.On("MonthlyProfitLoss", mock.Anything, suite.companyID, 12).
		Return(sparsePnL, nil).Once()
	suite.mockReportingRepo.On("MonthlyEntryCounts", mock.Anything, suite.companyID, 12).
		Return(sparseCounts, nil).Once()

	resp, err := suite.service.GetDashboard(ctx, suite.companyID, suite.actor, nil, nil)

	suite.Require().NoError(err)
	suite.Require().Len(resp.MonthlyPnL, 12)
	suite.Require().Len(resp.MonthlyEntries, 12)

	// The series ends at the current month and zero-fills the rest.
	last := resp.MonthlyPnL[11]
	suite.Equal(currentMonth, last.Month)
	suite.True(last.Net.Equal(decimal.NewFromInt(200)))
	suite.True(resp.MonthlyPnL[0].Revenue.IsZero())
	suite.Equal(int64(7), resp.MonthlyEntries[11].Count)
	suite.Equal(int64(0), resp.MonthlyEntries[0].Count)
	suite.True(resp.Summary.NetProfit.Equal(decimal.NewFromInt(200)))
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
