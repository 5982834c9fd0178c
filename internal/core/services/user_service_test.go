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
	"github.com/openbooks-dev/bookkeeping_backend/internal/platform/config"
	"github.com/openbooks-dev/bookkeeping_backend/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo  *MockUserRepository
	mockAuditRepo *MockAuditRepository
	cfg           *config.Config
	service       portssvc.UserSvcFacade
	companyID     string
	admin         domain.Actor
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockAuditRepo = new(MockAuditRepository)
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret-key",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "test",
	}
	suite.service = services.NewUserService(suite.mockUserRepo, suite.cfg, suite.mockAuditRepo)

	suite.companyID = uuid.NewString()
	suite.admin = domain.Actor{
		UserID:    uuid.NewString(),
		CompanyID: suite.companyID,
		Role:      domain.RoleCompanyAdmin,
	}

	suite.mockAuditRepo.On("Record", mock.Anything, mock.AnythingOfType("domain.AuditEvent")).Return(nil).Maybe()
}

func (suite *UserServiceTestSuite) activeUser(password string) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	companyID := suite.companyID
	return &domain.User{
		UserID:       uuid.NewString(),
		CompanyID:    &companyID,
		Name:         "Jo Bookkeeper",
		Email:        "jo@example.com",
		PasswordHash: hash,
		UserRole:     domain.RoleCompanyUser,
		Status:       domain.StatusActive,
	}
}

// --- Login ---

func (suite *UserServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	user := suite.activeUser("correct horse battery")

	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, user.Email).
		Return(user, nil).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{Email: user.Email, Password: "correct horse battery"})

	suite.Require().NoError(err)
	suite.NotEmpty(resp.Token)
	suite.Equal(user.UserID, resp.User.UserID)

	claims, err := utils.ParseAndValidateJWT(resp.Token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal(user.UserID, claims.Subject)
	suite.Equal(suite.companyID, claims.CompanyID)
	suite.Equal(string(domain.RoleCompanyUser), claims.Role)
}

func (suite *UserServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	user := suite.activeUser("correct horse battery")

	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, user.Email).
		Return(user, nil).Once()

	_, err := suite.service.Login(ctx, dto.LoginRequest{Email: user.Email, Password: "wrong"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.ErrorIs(err, services.ErrInvalidCredentials)
}

func (suite *UserServiceTestSuite) TestLogin_UnknownEmailIndistinguishable() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, "nobody@example.com").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Login(ctx, dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrInvalidCredentials)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestLogin_InactiveUserRejected() {
	ctx := context.Background()
	user := suite.activeUser("correct horse battery")
	user.Status = domain.StatusInactive

	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, user.Email).
		Return(user, nil).Once()

	_, err := suite.service.Login(ctx, dto.LoginRequest{Email: user.Email, Password: "correct horse battery"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- User management ---

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Name:     "New User",
		Email:    "new@example.com",
		Password: "longenoughpw",
		Role:     "COMPANY_USER",
	}

	suite.mockUserRepo.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.CompanyID != nil && *u.CompanyID == suite.companyID && u.PasswordHash != req.Password
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, suite.companyID, req, suite.admin)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleCompanyUser, user.UserRole)
	suite.True(utils.CheckPasswordHash(req.Password, user.PasswordHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_ElevatedRoleGrantForbidden() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Name:     "Wannabe",
		Email:    "admin@example.com",
		Password: "longenoughpw",
		Role:     "SUPER_ADMIN",
	}

	_, err := suite.service.CreateUser(ctx, suite.companyID, req, suite.admin)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_ElevatedUserHasNoCompany() {
	ctx := context.Background()
	superAdmin := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleSuperAdmin}
	req := dto.CreateUserRequest{
		Name:     "Moderator",
		Email:    "mod@example.com",
		Password: "longenoughpw",
		Role:     "MODERATOR",
	}

	suite.mockUserRepo.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.CompanyID == nil && u.UserRole == domain.RoleModerator
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, suite.companyID, req, superAdmin)

	suite.Require().NoError(err)
	suite.Nil(user.CompanyID)
}

func (suite *UserServiceTestSuite) TestCreateUser_CompanyUserForbidden() {
	ctx := context.Background()
	plainUser := domain.Actor{UserID: uuid.NewString(), CompanyID: suite.companyID, Role: domain.RoleCompanyUser}

	_, err := suite.service.CreateUser(ctx, suite.companyID, dto.CreateUserRequest{
		Name: "X", Email: "x@example.com", Password: "longenoughpw", Role: "COMPANY_USER",
	}, plainUser)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestGetUserByID_CrossCompanyHidden() {
	ctx := context.Background()
	otherCompanyID := uuid.NewString()
	target := &domain.User{UserID: uuid.NewString(), CompanyID: &otherCompanyID}

	suite.mockUserRepo.On("FindUserByID", mock.Anything, target.UserID).
		Return(target, nil).Once()

	_, err := suite.service.GetUserByID(ctx, target.UserID, suite.admin)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestUpdateUser_RoleEscalationForbidden() {
	ctx := context.Background()
	companyID := suite.companyID
	target := &domain.User{UserID: uuid.NewString(), CompanyID: &companyID, UserRole: domain.RoleCompanyUser}
	elevated := "MODERATOR"

	suite.mockUserRepo.On("FindUserByID", mock.Anything, target.UserID).
		Return(target, nil).Once()

	_, err := suite.service.UpdateUser(ctx, suite.companyID, target.UserID, dto.UpdateUserRequest{Role: &elevated}, suite.admin)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestDeleteUser_SelfDeleteRejected() {
	ctx := context.Background()

	err := suite.service.DeleteUser(ctx, suite.companyID, suite.admin.UserID, suite.admin)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SoftDeleteUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	ctx := context.Background()
	companyID := suite.companyID
	target := &domain.User{UserID: uuid.NewString(), CompanyID: &companyID, UserRole: domain.RoleCompanyUser}

	suite.mockUserRepo.On("FindUserByID", mock.Anything, target.UserID).
		Return(target, nil).Once()
	suite.mockUserRepo.On("SoftDeleteUser", mock.Anything, target.UserID, suite.admin.UserID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := suite.service.DeleteUser(ctx, suite.companyID, target.UserID, suite.admin)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- Profile ---

func (suite *UserServiceTestSuite) TestGetProfile_ReturnsOwnRecord() {
	ctx := context.Background()
	user := suite.activeUser("irrelevant")
	actor := domain.Actor{UserID: user.UserID, CompanyID: suite.companyID, Role: domain.RoleCompanyUser}

	suite.mockUserRepo.On("FindUserByID", mock.Anything, user.UserID).
		Return(user, nil).Once()

	got, err := suite.service.GetProfile(ctx, actor)

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
}

func (suite *UserServiceTestSuite) TestChangePassword_Success() {
	ctx := context.Background()
	user := suite.activeUser("old password here")
	actor := domain.Actor{UserID: user.UserID, CompanyID: suite.companyID, Role: domain.RoleCompanyUser}

	suite.mockUserRepo.On("FindUserByID", mock.Anything, user.UserID).
		Return(user, nil).Once()
	suite.mockUserRepo.On("UpdatePassword", mock.Anything, user.UserID, mock.MatchedBy(func(hash string) bool {
		return hash != "new password here" && utils.CheckPasswordHash("new password here", hash)
	}), user.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.ChangePassword(ctx, dto.ChangePasswordRequest{
		CurrentPassword: "old password here",
		NewPassword:     "new password here",
	}, actor)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestChangePassword_WrongCurrentRejected() {
	ctx := context.Background()
	user := suite.activeUser("old password here")
	actor := domain.Actor{UserID: user.UserID, CompanyID: suite.companyID, Role: domain.RoleCompanyUser}

	suite.mockUserRepo.On("FindUserByID", mock.Anything, user.UserID).
		Return(user, nil).Once()

	err := suite.service.ChangePassword(ctx, dto.ChangePasswordRequest{
		CurrentPassword: "not the old password",
		NewPassword:     "new password here",
	}, actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdatePassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
