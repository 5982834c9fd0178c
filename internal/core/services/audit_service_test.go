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
	portsrepo "github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/repositories"
	portssvc "github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/services"
	"github.com/openbooks-dev/bookkeeping_backend/internal/core/services"
	"github.com/openbooks-dev/bookkeeping_backend/internal/dto"
)

type AuditServiceTestSuite struct {
	suite.Suite
	mockAuditRepo *MockAuditRepository
	service       portssvc.AuditSvcFacade
	companyID     string
	actor         domain.Actor
}

func (suite *AuditServiceTestSuite) SetupTest() {
	suite.mockAuditRepo = new(MockAuditRepository)
	suite.service = services.NewAuditService(suite.mockAuditRepo)

	suite.companyID = uuid.NewString()
	suite.actor = domain.Actor{
		UserID:    uuid.NewString(),
		CompanyID: suite.companyID,
		Role:      domain.RoleCompanyAdmin,
	}
}

func (suite *AuditServiceTestSuite) TestListEvents_PassesFilterThrough() {
	ctx := context.Background()
	events := []domain.AuditEvent{{EventID: uuid.NewString(), CompanyID: suite.companyID}}

	suite.mockAuditRepo.On("ListEvents", mock.Anything, suite.companyID, mock.MatchedBy(func(f portsrepo.AuditFilter) bool {
		return f.EntityType == "journal_entry" && f.Action == "UPDATE" && f.UserID == "" &&
			f.FromDate == nil && f.ToDate == nil
	}), 50, 0).Return(events, nil).Once()

	got, err := suite.service.ListEvents(ctx, suite.companyID, suite.actor, dto.ListAuditEventsParams{
		EntityType: "journal_entry",
		Action:     "UPDATE",
		Limit:      50,
	})

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func (suite *AuditServiceTestSuite) TestListEvents_DateWindowInclusiveEnd() {
	ctx := context.Background()

	suite.mockAuditRepo.On("ListEvents", mock.Anything, suite.companyID, mock.MatchedBy(func(f portsrepo.AuditFilter) bool {
		if f.FromDate == nil || f.ToDate == nil {
			return false
		}
		from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		// End of the toDate day, so same-day events are included.
		return f.FromDate.Equal(from) && f.ToDate.After(time.Date(2026, 8, 28, 23, 59, 59, 0, time.UTC))
	}), 50, 0).Return([]domain.AuditEvent{}, nil).Once()

	_, err := suite.service.ListEvents(ctx, suite.companyID, suite.actor, dto.ListAuditEventsParams{
		FromDate: "2026-08-01",
		ToDate:   "2026-08-28",
		Limit:    50,
	})

	suite.Require().NoError(err)
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func (suite *AuditServiceTestSuite) TestListEvents_InvalidDateRejected() {
	ctx := context.Background()

	_, err := suite.service.ListEvents(ctx, suite.companyID, suite.actor, dto.ListAuditEventsParams{
		FromDate: "01-08-2026",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAuditRepo.AssertNotCalled(suite.T(), "ListEvents", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuditServiceTestSuite) TestListEvents_CrossCompanyForbidden() {
	ctx := context.Background()
	other := uuid.NewString()

	_, err := suite.service.ListEvents(ctx, other, suite.actor, dto.ListAuditEventsParams{Limit: 50})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockAuditRepo.AssertNotCalled(suite.T(), "ListEvents", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuditServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}
