package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
	portsrepo "github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/repositories"
	portssvc "github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/services"
	"github.com/openbooks-dev/bookkeeping_backend/internal/dto"
)

// categoryService provides account category operations.
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade, auditSink portsrepo.AuditSink) portssvc.CategorySvcFacade {
	return &categoryService{
		BaseService:  BaseService{AuditSink: auditSink},
		categoryRepo: categoryRepo,
	}
}

// Ensure categoryService implements the portssvc.CategorySvcFacade interface
var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

// CreateCategory creates a new account category.
func (s *categoryService) CreateCategory(ctx context.Context, companyID string, req dto.CreateCategoryRequest, actor domain.Actor) (*domain.AccountCategory, error) {
	if err := s.AuthorizeCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	category := domain.AccountCategory{
		CategoryID:  uuid.NewString(),
		CompanyID:   companyID,
		Name:        req.Name,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("company_id", companyID), slog.String("name", req.Name))
		return nil, err
	}

	s.RecordAudit(ctx, actor, companyID, domain.AuditCreate, "account_category", category.CategoryID, nil)
	return &category, nil
}

// GetCategoryByID retrieves a category by ID.
func (s *categoryService) GetCategoryByID(ctx context.Context, companyID, categoryID string, actor domain.Actor) (*domain.AccountCategory, error) {
	if err := s.AuthorizeCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}
	return s.categoryRepo.FindCategoryByID(ctx, companyID, categoryID)
}

// ListCategories retrieves all categories of a company.
func (s *categoryService) ListCategories(ctx context.Context, companyID string, actor domain.Actor) ([]domain.AccountCategory, error) {
	if err := s.AuthorizeCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}
	return s.categoryRepo.ListCategoriesByCompany(ctx, companyID)
}

// UpdateCategory updates name or description of a category.
func (s *categoryService) UpdateCategory(ctx context.Context, companyID, categoryID string, req dto.UpdateCategoryRequest, actor domain.Actor) (*domain.AccountCategory, error) {
	if err := s.AuthorizeCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, companyID, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	category.LastUpdatedAt = time.Now().UTC()
	category.LastUpdatedBy = actor.UserID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		return nil, err
	}

	s.RecordAudit(ctx, actor, companyID, domain.AuditUpdate, "account_category", categoryID, nil)
	return category, nil
}

// MoveAccounts moves every account of one category to another. A nil category
// means the "uncategorized" bucket on either side. Both categories, when
// given, must belong to the company.
func (s *categoryService) MoveAccounts(ctx context.Context, companyID string, req dto.MoveAccountsRequest, actor domain.Actor) (int64, error) {
	if err := s.AuthorizeCompany(ctx, actor, companyID); err != nil {
		return 0, err
	}

	if equalCategoryRef(req.FromCategoryID, req.ToCategoryID) {
		return 0, nil
	}
	if req.FromCategoryID != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, companyID, *req.FromCategoryID); err != nil {
			return 0, err
		}
	}
	if req.ToCategoryID != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, companyID, *req.ToCategoryID); err != nil {
			return 0, err
		}
	}

	moved, err := s.categoryRepo.MoveAccounts(ctx, companyID, req.FromCategoryID, req.ToCategoryID, actor.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to move accounts", slog.String("company_id", companyID))
		return 0, err
	}

	s.RecordAudit(ctx, actor, companyID, domain.AuditUpdate, "account_category", categoryRefString(req.ToCategoryID), map[string]any{
		"moved": moved,
		"from":  categoryRefString(req.FromCategoryID),
	})
	return moved, nil
}

func equalCategoryRef(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func categoryRefString(ref *string) string {
	if ref == nil {
		return "uncategorized"
	}
	return *ref
}

// DeleteCategory removes a category. Accounts referencing it are detached,
// not deleted.
func (s *categoryService) DeleteCategory(ctx context.Context, companyID, categoryID string, actor domain.Actor) error {
	if err := s.AuthorizeCompany(ctx, actor, companyID); err != nil {
		return err
	}

	if err := s.categoryRepo.DeleteCategory(ctx, companyID, categoryID, actor.UserID); err != nil {
		return err
	}

	s.LogInfo(ctx, "Category deleted", slog.String("category_id", categoryID), slog.String("company_id", companyID))
	s.RecordAudit(ctx, actor, companyID, domain.AuditDelete, "account_category", categoryID, nil)
	return nil
}
