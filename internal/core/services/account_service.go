package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/openbooks-dev/bookkeeping_backend/internal/apperrors"
	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
	portsrepo "github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/repositories"
	portssvc "github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/services"
	"github.com/openbooks-dev/bookkeeping_backend/internal/dto"
)

// accountService provides chart-of-accounts operations.
type accountService struct {
	BaseService
	accountRepo  portsrepo.AccountRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
	companyRepo  portsrepo.CompanyReader
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, categoryRepo portsrepo.CategoryRepositoryFacade, companyRepo portsrepo.CompanyReader, auditSink portsrepo.AuditSink) portssvc.AccountSvcFacade {
	return &accountService{
		BaseService:  BaseService{AuditSink: auditSink},
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
		companyRepo:  companyRepo,
	}
}

// Ensure accountService implements the portssvc.AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// checkCategory verifies an optional category reference belongs to the company.
func (s *accountService) checkCategory(ctx context.Context, companyID string, categoryID *string) error {
	if categoryID == nil {
		return nil
	}
	if _, err := s.categoryRepo.FindCategoryByID(ctx, companyID, *categoryID); err != nil {
		return fmt.Errorf("%w: category %s not found in company", apperrors.ErrValidation, *categoryID)
	}
	return nil
}

// CreateAccount creates a new account in the company's chart of accounts.
func (s *accountService) CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, actor domain.Actor) (*domain.Account, error) {
	if err := s.AuthorizeCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}

	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company.IsDeleted() {
		return nil, apperrors.ErrNotFound
	}

	accountType := domain.AccountType(req.AccountType)
	if !domain.ValidAccountType(accountType) {
		return nil, fmt.Errorf("%w: invalid account type %q", apperrors.ErrValidation, req.AccountType)
	}
	if err := s.checkCategory(ctx, companyID, req.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		CompanyID:   companyID,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		AccountType: accountType,
		Status:      domain.StatusActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("company_id", companyID), slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("company_id", companyID))
	s.RecordAudit(ctx, actor, companyID, domain.AuditCreate, "account", account.AccountID, nil)
	return &account, nil
}

// GetAccountByID retrieves an account by ID.
func (s *accountService) GetAccountByID(ctx context.Context, companyID, accountID string, actor domain.Actor) (*domain.Account, error) {
	if err := s.AuthorizeCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}
	return s.accountRepo.FindAccountByID(ctx, companyID, accountID)
}

// ListAccounts retrieves the company's accounts.
func (s *accountService) ListAccounts(ctx context.Context, companyID string, actor domain.Actor, params dto.ListAccountsParams) ([]domain.Account, error) {
	if err := s.AuthorizeCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}
	filter := portsrepo.AccountFilter{
		Type:       params.Type,
		Status:     params.Status,
		CategoryID: params.CategoryID,
	}
	return s.accountRepo.ListAccountsByCompany(ctx, companyID, filter, params.Limit, params.Offset)
}

// UpdateAccount updates name or category of an account. The account type is
// immutable once lines may reference the account.
func (s *accountService) UpdateAccount(ctx context.Context, companyID, accountID string, req dto.UpdateAccountRequest, actor domain.Actor) (*domain.Account, error) {
	if err := s.AuthorizeCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, companyID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			account.CategoryID = nil
		} else {
			if err := s.checkCategory(ctx, companyID, req.CategoryID); err != nil {
				return nil, err
			}
			account.CategoryID = req.CategoryID
		}
	}
	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = actor.UserID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		return nil, err
	}

	s.RecordAudit(ctx, actor, companyID, domain.AuditUpdate, "account", accountID, nil)
	return account, nil
}

// DeactivateAccount marks an account inactive. Inactive accounts keep their
// history but reject new journal lines.
func (s *accountService) DeactivateAccount(ctx context.Context, companyID, accountID string, actor domain.Actor) error {
	if err := s.AuthorizeCompany(ctx, actor, companyID); err != nil {
		return err
	}

	if err := s.accountRepo.SetAccountStatus(ctx, companyID, accountID, domain.StatusInactive, actor.UserID); err != nil {
		return err
	}

	s.LogInfo(ctx, "Account deactivated", slog.String("account_id", accountID), slog.String("company_id", companyID))
	s.RecordAudit(ctx, actor, companyID, domain.AuditUpdate, "account", accountID, map[string]any{
		"status": string(domain.StatusInactive),
	})
	return nil
}

// ReactivateAccount marks an inactive account active again.
func (s *accountService) ReactivateAccount(ctx context.Context, companyID, accountID string, actor domain.Actor) error {
	if err := s.AuthorizeCompany(ctx, actor, companyID); err != nil {
		return err
	}

	if err := s.accountRepo.SetAccountStatus(ctx, companyID, accountID, domain.StatusActive, actor.UserID); err != nil {
		return err
	}

	s.RecordAudit(ctx, actor, companyID, domain.AuditUpdate, "account", accountID, map[string]any{
		"status": string(domain.StatusActive),
	})
	return nil
}
