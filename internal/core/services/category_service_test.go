package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/openbooks-dev/bookkeeping_backend/internal/apperrors"
	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
	portssvc "github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/services"
	"github.com/openbooks-dev/bookkeeping_backend/internal/core/services"
	"github.com/openbooks-dev/bookkeeping_backend/internal/dto"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	mockCategoryRepo *MockCategoryRepository
	mockAuditRepo    *MockAuditRepository
	service          portssvc.CategorySvcFacade
	companyID        string
	actor            domain.Actor
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockAuditRepo = new(MockAuditRepository)
	suite.service = services.NewCategoryService(suite.mockCategoryRepo, suite.mockAuditRepo)

	suite.companyID = uuid.NewString()
	suite.actor = domain.Actor{
		UserID:    uuid.NewString(),
		CompanyID: suite.companyID,
		Role:      domain.RoleCompanyAdmin,
	}

	suite.mockAuditRepo.On("Record", mock.Anything, mock.AnythingOfType("domain.AuditEvent")).Return(nil).Maybe()
}

func (suite *CategoryServiceTestSuite) category(name string) *domain.AccountCategory {
	return &domain.AccountCategory{
		CategoryID: uuid.NewString(),
		CompanyID:  suite.companyID,
		Name:       name,
	}
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_Success() {
	ctx := context.Background()

	suite.mockCategoryRepo.On("SaveCategory", mock.Anything, mock.MatchedBy(func(c domain.AccountCategory) bool {
		return c.CompanyID == suite.companyID && c.Name == "Operating expenses"
	})).Return(nil).Once()

	category, err := suite.service.CreateCategory(ctx, suite.companyID, dto.CreateCategoryRequest{
		Name: "Operating expenses",
	}, suite.actor)

	suite.Require().NoError(err)
	suite.NotEmpty(category.CategoryID)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

// --- MoveAccounts ---

func (suite *CategoryServiceTestSuite) TestMoveAccounts_Success() {
	ctx := context.Background()
	from := suite.category("Old")
	to := suite.category("New")

	suite.mockCategoryRepo.On("FindCategoryByID", mock.Anything, suite.companyID, from.CategoryID).
		Return(from, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", mock.Anything, suite.companyID, to.CategoryID).
		Return(to, nil).Once()
	suite.mockCategoryRepo.On("MoveAccounts", mock.Anything, suite.companyID, &from.CategoryID, &to.CategoryID, suite.actor.UserID).
		Return(int64(3), nil).Once()

	moved, err := suite.service.MoveAccounts(ctx, suite.companyID, dto.MoveAccountsRequest{
		FromCategoryID: &from.CategoryID,
		ToCategoryID:   &to.CategoryID,
	}, suite.actor)

	suite.Require().NoError(err)
	suite.Equal(int64(3), moved)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestMoveAccounts_UncategorizedSource() {
	ctx := context.Background()
	to := suite.category("New")

	suite.mockCategoryRepo.On("FindCategoryByID", mock.Anything, suite.companyID, to.CategoryID).
		Return(to, nil).Once()
	suite.mockCategoryRepo.On("MoveAccounts", mock.Anything, suite.companyID, (*string)(nil), &to.CategoryID, suite.actor.UserID).
		Return(int64(2), nil).Once()

	moved, err := suite.service.MoveAccounts(ctx, suite.companyID, dto.MoveAccountsRequest{
		ToCategoryID: &to.CategoryID,
	}, suite.actor)

	suite.Require().NoError(err)
	suite.Equal(int64(2), moved)
}

func (suite *CategoryServiceTestSuite) TestMoveAccounts_SameCategoryNoOp() {
	ctx := context.Background()
	categoryID := uuid.NewString()

	moved, err := suite.service.MoveAccounts(ctx, suite.companyID, dto.MoveAccountsRequest{
		FromCategoryID: &categoryID,
		ToCategoryID:   &categoryID,
	}, suite.actor)

	suite.Require().NoError(err)
	suite.Equal(int64(0), moved)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "MoveAccounts", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestMoveAccounts_UnknownTargetRejected() {
	ctx := context.Background()
	missing := uuid.NewString()

	suite.mockCategoryRepo.On("FindCategoryByID", mock.Anything, suite.companyID, missing).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.MoveAccounts(ctx, suite.companyID, dto.MoveAccountsRequest{
		ToCategoryID: &missing,
	}, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "MoveAccounts", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestMoveAccounts_CrossCompanyForbidden() {
	ctx := context.Background()
	otherActor := domain.Actor{UserID: uuid.NewString(), CompanyID: uuid.NewString(), Role: domain.RoleCompanyUser}

	_, err := suite.service.MoveAccounts(ctx, suite.companyID, dto.MoveAccountsRequest{}, otherActor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
