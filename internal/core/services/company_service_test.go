package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/openbooks-dev/bookkeeping_backend/internal/apperrors"
	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
	portssvc "github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/services"
	"github.com/openbooks-dev/bookkeeping_backend/internal/core/services"
	"github.com/openbooks-dev/bookkeeping_backend/internal/dto"
)

type CompanyServiceTestSuite struct {
	suite.Suite
	mockCompanyRepo *MockCompanyRepository
	mockAuditRepo   *MockAuditRepository
	service         portssvc.CompanySvcFacade
	admin           domain.Actor
}

func (suite *CompanyServiceTestSuite) SetupTest() {
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.mockAuditRepo = new(MockAuditRepository)
	suite.service = services.NewCompanyService(suite.mockCompanyRepo, suite.mockAuditRepo)

	suite.admin = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleSuperAdmin}

	suite.mockAuditRepo.On("Record", mock.Anything, mock.AnythingOfType("domain.AuditEvent")).Return(nil).Maybe()
}

func (suite *CompanyServiceTestSuite) TestCreateCompany_Success() {
	ctx := context.Background()

	suite.mockCompanyRepo.On("SaveCompany", mock.Anything, mock.MatchedBy(func(c domain.Company) bool {
		return c.Name == "Acme Ltd" && c.Status == domain.StatusActive
	})).Return(nil).Once()

	company, err := suite.service.CreateCompany(ctx, dto.CreateCompanyRequest{Name: "Acme Ltd"}, suite.admin)

	suite.Require().NoError(err)
	suite.NotEmpty(company.CompanyID)
	suite.Equal(suite.admin.UserID, company.CreatedBy)
	suite.mockCompanyRepo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestCreateCompany_NonElevatedForbidden() {
	ctx := context.Background()
	companyAdmin := domain.Actor{UserID: uuid.NewString(), CompanyID: uuid.NewString(), Role: domain.RoleCompanyAdmin}

	_, err := suite.service.CreateCompany(ctx, dto.CreateCompanyRequest{Name: "Acme Ltd"}, companyAdmin)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockCompanyRepo.AssertNotCalled(suite.T(), "SaveCompany", mock.Anything, mock.Anything)
}

func (suite *CompanyServiceTestSuite) TestListCompanies_ScopedActorSeesOwnCompanyOnly() {
	ctx := context.Background()
	companyID := uuid.NewString()
	scoped := domain.Actor{UserID: uuid.NewString(), CompanyID: companyID, Role: domain.RoleCompanyUser}

	suite.mockCompanyRepo.On("FindCompanyByID", mock.Anything, companyID).
		Return(&domain.Company{CompanyID: companyID, Name: "Own"}, nil).Once()

	companies, err := suite.service.ListCompanies(ctx, scoped, dto.ListCompaniesParams{Limit: 50})

	suite.Require().NoError(err)
	suite.Require().Len(companies, 1)
	suite.Equal(companyID, companies[0].CompanyID)
	suite.mockCompanyRepo.AssertNotCalled(suite.T(), "ListCompanies", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CompanyServiceTestSuite) TestListCompanies_ElevatedActorListsAll() {
	ctx := context.Background()

	suite.mockCompanyRepo.On("ListCompanies", mock.Anything, 50, 0, true).
		Return([]domain.Company{{CompanyID: uuid.NewString()}, {CompanyID: uuid.NewString()}}, nil).Once()

	companies, err := suite.service.ListCompanies(ctx, suite.admin, dto.ListCompaniesParams{Limit: 50, IncludeDeleted: true})

	suite.Require().NoError(err)
	suite.Len(companies, 2)
}

func (suite *CompanyServiceTestSuite) TestUpdateCompany_SetsStatus() {
	ctx := context.Background()
	companyID := uuid.NewString()
	status := string(domain.StatusInactive)

	suite.mockCompanyRepo.On("FindCompanyByID", mock.Anything, companyID).
		Return(&domain.Company{CompanyID: companyID, Name: "Acme Ltd", Status: domain.StatusActive}, nil).Once()
	suite.mockCompanyRepo.On("UpdateCompany", mock.Anything, mock.MatchedBy(func(c domain.Company) bool {
		return c.CompanyID == companyID && c.Status == domain.StatusInactive && c.Name == "Acme Ltd"
	})).Return(nil).Once()

	company, err := suite.service.UpdateCompany(ctx, companyID, dto.UpdateCompanyRequest{Status: &status}, suite.admin)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusInactive, company.Status)
	suite.mockCompanyRepo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestUpdateCompany_CompanyUserForbidden() {
	ctx := context.Background()
	companyID := uuid.NewString()
	user := domain.Actor{UserID: uuid.NewString(), CompanyID: companyID, Role: domain.RoleCompanyUser}

	_, err := suite.service.UpdateCompany(ctx, companyID, dto.UpdateCompanyRequest{}, user)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *CompanyServiceTestSuite) TestUpdateCompany_DeletedCompanyNotFound() {
	ctx := context.Background()
	companyID := uuid.NewString()
	deletedAt := time.Now()

	suite.mockCompanyRepo.On("FindCompanyByID", mock.Anything, companyID).
		Return(&domain.Company{CompanyID: companyID, DeletedAt: &deletedAt}, nil).Once()

	_, err := suite.service.UpdateCompany(ctx, companyID, dto.UpdateCompanyRequest{}, suite.admin)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CompanyServiceTestSuite) TestDeleteCompany_Idempotent() {
	ctx := context.Background()
	companyID := uuid.NewString()

	// The repository treats deleting an already-deleted company as a no-op.
	suite.mockCompanyRepo.On("SoftDeleteCompany", mock.Anything, companyID, suite.admin.UserID, mock.AnythingOfType("time.Time")).
		Return(nil).Twice()

	suite.Require().NoError(suite.service.DeleteCompany(ctx, companyID, suite.admin))
	suite.Require().NoError(suite.service.DeleteCompany(ctx, companyID, suite.admin))
	suite.mockCompanyRepo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestReactivateCompany_Success() {
	ctx := context.Background()
	companyID := uuid.NewString()

	suite.mockCompanyRepo.On("ReactivateCompany", mock.Anything, companyID, suite.admin.UserID).
		Return(nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByID", mock.Anything, companyID).
		Return(&domain.Company{CompanyID: companyID, Status: domain.StatusActive}, nil).Once()

	company, err := suite.service.ReactivateCompany(ctx, companyID, suite.admin)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusActive, company.Status)
}

func TestCompanyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyServiceTestSuite))
}
