package services_test

import (
	"context"
	"time"

	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
	portsrepo "github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock JournalRepository ---

type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, companyID string, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, companyID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.JournalLine, error) {
	args := m.Called(ctx, entryIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.JournalLine), args.Error(1)
}

func (m *MockJournalRepository) ListEntriesByCompany(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, companyID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.JournalEntry), returnedNextToken, args.Error(2)
}

func (m *MockJournalRepository) CreateEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	args := m.Called(ctx, entry, lines)
	return args.Error(0)
}

func (m *MockJournalRepository) AddLine(ctx context.Context, companyID string, line domain.JournalLine) error {
	args := m.Called(ctx, companyID, line)
	return args.Error(0)
}

func (m *MockJournalRepository) UpdateLine(ctx context.Context, companyID string, line domain.JournalLine) error {
	args := m.Called(ctx, companyID, line)
	return args.Error(0)
}

func (m *MockJournalRepository) DeleteLine(ctx context.Context, companyID string, entryID string, lineID string) error {
	args := m.Called(ctx, companyID, entryID, lineID)
	return args.Error(0)
}

func (m *MockJournalRepository) ReplaceLines(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	args := m.Called(ctx, entry, lines)
	return args.Error(0)
}

func (m *MockJournalRepository) UpdateEntryHeader(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) SoftDeleteEntry(ctx context.Context, companyID string, entryID string, deletedBy string, deletedAt time.Time) error {
	args := m.Called(ctx, companyID, entryID, deletedBy, deletedAt)
	return args.Error(0)
}

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, companyID string, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, companyID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByCompany(ctx context.Context, companyID string, filter portsrepo.AccountFilter, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, companyID, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) SetAccountStatus(ctx context.Context, companyID string, accountID string, status domain.CommonStatus, updatedBy string) error {
	args := m.Called(ctx, companyID, accountID, status, updatedBy)
	return args.Error(0)
}

// --- Mock CategoryRepository ---

type MockCategoryRepository struct {
	mock.Mock
}

var _ portsrepo.CategoryRepositoryFacade = (*MockCategoryRepository)(nil)

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, companyID string, categoryID string) (*domain.AccountCategory, error) {
	args := m.Called(ctx, companyID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountCategory), args.Error(1)
}

func (m *MockCategoryRepository) ListCategoriesByCompany(ctx context.Context, companyID string) ([]domain.AccountCategory, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountCategory), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.AccountCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.AccountCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, companyID string, categoryID string, updatedBy string) error {
	args := m.Called(ctx, companyID, categoryID, updatedBy)
	return args.Error(0)
}

func (m *MockCategoryRepository) MoveAccounts(ctx context.Context, companyID string, fromCategoryID *string, toCategoryID *string, updatedBy string) (int64, error) {
	args := m.Called(ctx, companyID, fromCategoryID, toCategoryID, updatedBy)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock CompanyRepository ---

type MockCompanyRepository struct {
	mock.Mock
}

var _ portsrepo.CompanyRepositoryFacade = (*MockCompanyRepository)(nil)

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) ListCompanies(ctx context.Context, limit int, offset int, includeDeleted bool) ([]domain.Company, error) {
	args := m.Called(ctx, limit, offset, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) SoftDeleteCompany(ctx context.Context, companyID string, deletedBy string, deletedAt time.Time) error {
	args := m.Called(ctx, companyID, deletedBy, deletedAt)
	return args.Error(0)
}

func (m *MockCompanyRepository) ReactivateCompany(ctx context.Context, companyID string, updatedBy string) error {
	args := m.Called(ctx, companyID, updatedBy)
	return args.Error(0)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsersByCompany(ctx context.Context, companyID string, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, userID, passwordHash, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockUserRepository) SoftDeleteUser(ctx context.Context, userID string, deletedBy string, deletedAt time.Time) error {
	args := m.Called(ctx, userID, deletedBy, deletedAt)
	return args.Error(0)
}

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) LedgerPage(ctx context.Context, companyID string, accountID string, from *time.Time, to *time.Time, limit int, offset int) ([]domain.LedgerLine, int64, error) {
	args := m.Called(ctx, companyID, accountID, from, to, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.LedgerLine), args.Get(1).(int64), args.Error(2)
}

func (m *MockReportingRepository) LedgerTotals(ctx context.Context, companyID string, accountID string, from *time.Time, to *time.Time) (domain.LedgerTotals, error) {
	args := m.Called(ctx, companyID, accountID, from, to)
	return args.Get(0).(domain.LedgerTotals), args.Error(1)
}

func (m *MockReportingRepository) LedgerOpeningNet(ctx context.Context, companyID string, accountID string, from *time.Time, to *time.Time, offset int) (int64, error) {
	args := m.Called(ctx, companyID, accountID, from, to, offset)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportingRepository) TrialBalanceRows(ctx context.Context, companyID string, from *time.Time, to *time.Time, status string) ([]domain.TrialBalanceRow, error) {
	args := m.Called(ctx, companyID, from, to, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Error(1)
}

func (m *MockReportingRepository) CompanySummary(ctx context.Context, companyID string, from *time.Time, to *time.Time) (*domain.CompanySummary, error) {
	args := m.Called(ctx, companyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanySummary), args.Error(1)
}

func (m *MockReportingRepository) MonthlyProfitLoss(ctx context.Context, companyID string, months int) ([]domain.MonthlyProfitLoss, error) {
	args := m.Called(ctx, companyID, months)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyProfitLoss), args.Error(1)
}

func (m *MockReportingRepository) MonthlyEntryCounts(ctx context.Context, companyID string, months int) ([]domain.MonthlyEntryCount, error) {
	args := m.Called(ctx, companyID, months)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyEntryCount), args.Error(1)
}

// --- Mock AuditRepository ---

type MockAuditRepository struct {
	mock.Mock
}

var _ portsrepo.AuditRepositoryFacade = (*MockAuditRepository)(nil)

func (m *MockAuditRepository) Record(ctx context.Context, event domain.AuditEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockAuditRepository) ListEvents(ctx context.Context, companyID string, filter portsrepo.AuditFilter, limit int, offset int) ([]domain.AuditEvent, error) {
	args := m.Called(ctx, companyID, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditEvent), args.Error(1)
}
