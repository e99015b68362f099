package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mercapos/mercapos_backend/internal/apperrors"
	"github.com/mercapos/mercapos_backend/internal/core/domain"
	portssvc "github.com/mercapos/mercapos_backend/internal/core/ports/services"
	"github.com/mercapos/mercapos_backend/internal/core/services"
	"github.com/mercapos/mercapos_backend/internal/dto"
)

// --- Mock CashSessionRepository ---
type MockCashSessionRepository struct {
	mock.Mock
}

func (m *MockCashSessionRepository) FindOpenSession(ctx context.Context, ownerID domain.OwnerID) (*domain.CashSession, error) {
	args := m.Called(ctx, ownerID)
	var session *domain.CashSession
	if args.Get(0) != nil {
		session = args.Get(0).(*domain.CashSession)
	}
	return session, args.Error(1)
}

func (m *MockCashSessionRepository) ListClosedSessions(ctx context.Context, ownerID domain.OwnerID, limit int) ([]domain.CashSession, error) {
	args := m.Called(ctx, ownerID, limit)
	var sessions []domain.CashSession
	if args.Get(0) != nil {
		sessions = args.Get(0).([]domain.CashSession)
	}
	return sessions, args.Error(1)
}

func (m *MockCashSessionRepository) SaveSession(ctx context.Context, session domain.CashSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockCashSessionRepository) AppendMovement(ctx context.Context, ownerID domain.OwnerID, movement domain.CashMovement) (*domain.CashSession, error) {
	args := m.Called(ctx, ownerID, movement)
	var session *domain.CashSession
	if args.Get(0) != nil {
		session = args.Get(0).(*domain.CashSession)
	}
	return session, args.Error(1)
}

func (m *MockCashSessionRepository) SettleSale(ctx context.Context, ownerID domain.OwnerID, method domain.PaymentMethod, amount decimal.Decimal) error {
	args := m.Called(ctx, ownerID, method, amount)
	return args.Error(0)
}

func (m *MockCashSessionRepository) SettleSaleInTx(ctx context.Context, tx pgx.Tx, ownerID domain.OwnerID, method domain.PaymentMethod, amount decimal.Decimal) error {
	args := m.Called(ctx, tx, ownerID, method, amount)
	return args.Error(0)
}

func (m *MockCashSessionRepository) CloseSession(ctx context.Context, ownerID domain.OwnerID, actualCash decimal.Decimal, notes, photoURL string) (*domain.CashSession, error) {
	args := m.Called(ctx, ownerID, actualCash, notes, photoURL)
	var session *domain.CashSession
	if args.Get(0) != nil {
		session = args.Get(0).(*domain.CashSession)
	}
	return session, args.Error(1)
}

// --- Test Suite ---
type CashSessionServiceTestSuite struct {
	suite.Suite
	mockSessionRepo *MockCashSessionRepository
	service         portssvc.CashSessionSvcFacade
	ownerID         domain.OwnerID
}

func (suite *CashSessionServiceTestSuite) SetupTest() {
	suite.mockSessionRepo = new(MockCashSessionRepository)
	suite.service = services.NewCashSessionService(suite.mockSessionRepo)
	suite.ownerID = domain.OwnerID("owner-1")
}

func (suite *CashSessionServiceTestSuite) TestOpenSession_ExpectedCashStartsAtFloat() {
	ctx := context.Background()
	initial := decimal.RequireFromString("150")

	suite.mockSessionRepo.On("SaveSession", ctx, mock.MatchedBy(func(s domain.CashSession) bool {
		return s.OwnerID == suite.ownerID &&
			s.Status == domain.SessionOpen &&
			s.InitialCash.Equal(initial) &&
			s.ExpectedCash.Equal(initial) &&
			s.SessionID != ""
	})).Return(nil).Once()

	session, err := suite.service.OpenSession(ctx, suite.ownerID, "owner-1", initial)

	suite.Require().NoError(err)
	suite.Require().NotNil(session)
	suite.True(session.ExpectedCash.Equal(initial))
	suite.mockSessionRepo.AssertExpectations(suite.T())
}

func (suite *CashSessionServiceTestSuite) TestOpenSession_NegativeFloatRejected() {
	ctx := context.Background()

	session, err := suite.service.OpenSession(ctx, suite.ownerID, "owner-1", decimal.RequireFromString("-5"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(session)
	suite.mockSessionRepo.AssertNotCalled(suite.T(), "SaveSession")
}

func (suite *CashSessionServiceTestSuite) TestOpenSession_AlreadyOpenConflict() {
	ctx := context.Background()

	suite.mockSessionRepo.On("SaveSession", ctx, mock.Anything).
		Return(apperrors.ErrConflict).Once()

	session, err := suite.service.OpenSession(ctx, suite.ownerID, "owner-1", decimal.RequireFromString("100"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Nil(session)
	suite.mockSessionRepo.AssertExpectations(suite.T())
}

func (suite *CashSessionServiceTestSuite) TestCurrentSession_NoneOpenIsNotAnError() {
	ctx := context.Background()

	suite.mockSessionRepo.On("FindOpenSession", ctx, suite.ownerID).
		Return(nil, apperrors.ErrNotFound).Once()

	session, err := suite.service.CurrentSession(ctx, suite.ownerID)

	suite.Require().NoError(err)
	suite.Nil(session)
	suite.mockSessionRepo.AssertExpectations(suite.T())
}

func (suite *CashSessionServiceTestSuite) TestRecordExpense_ReturnsRefreshedExpectedCash() {
	ctx := context.Background()
	refreshed := &domain.CashSession{
		SessionID:    "sess-1",
		OwnerID:      suite.ownerID,
		ExpectedCash: decimal.RequireFromString("130"),
		Status:       domain.SessionOpen,
	}

	suite.mockSessionRepo.On("AppendMovement", ctx, suite.ownerID, mock.MatchedBy(func(mv domain.CashMovement) bool {
		return mv.Kind == domain.MovementExpense &&
			mv.Amount.Equal(decimal.RequireFromString("20")) &&
			mv.Description == "supplier delivery" &&
			mv.MovementID != ""
	})).Return(refreshed, nil).Once()

	movement, expectedCash, err := suite.service.RecordExpense(ctx, suite.ownerID, dto.CreateMovementRequest{
		Amount:      decimal.RequireFromString("20"),
		Description: "supplier delivery",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(movement)
	suite.Equal("sess-1", movement.SessionID)
	suite.True(expectedCash.Equal(decimal.RequireFromString("130")))
	suite.mockSessionRepo.AssertExpectations(suite.T())
}

func (suite *CashSessionServiceTestSuite) TestRecordWithdrawal_NonPositiveAmountRejected() {
	ctx := context.Background()

	movement, _, err := suite.service.RecordWithdrawal(ctx, suite.ownerID, dto.CreateMovementRequest{
		Amount:      decimal.Zero,
		Description: "bank drop",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(movement)
	suite.mockSessionRepo.AssertNotCalled(suite.T(), "AppendMovement")
}

func (suite *CashSessionServiceTestSuite) TestRecordExpense_NoOpenSessionConflict() {
	ctx := context.Background()

	suite.mockSessionRepo.On("AppendMovement", ctx, suite.ownerID, mock.Anything).
		Return(nil, apperrors.ErrConflict).Once()

	movement, _, err := suite.service.RecordExpense(ctx, suite.ownerID, dto.CreateMovementRequest{
		Amount:      decimal.RequireFromString("10"),
		Description: "ice",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Nil(movement)
	suite.mockSessionRepo.AssertExpectations(suite.T())
}

func (suite *CashSessionServiceTestSuite) TestCloseSession_PassesCountedCashThrough() {
	ctx := context.Background()
	actual := decimal.RequireFromString("125")
	diff := decimal.RequireFromString("-5")
	closedAt := time.Now().UTC()
	closed := &domain.CashSession{
		SessionID:    "sess-1",
		OwnerID:      suite.ownerID,
		ExpectedCash: decimal.RequireFromString("130"),
		ActualCash:   &actual,
		Difference:   &diff,
		ClosedAt:     &closedAt,
		Status:       domain.SessionClosed,
	}

	suite.mockSessionRepo.On("CloseSession", ctx, suite.ownerID, actual, "short", "http://img").
		Return(closed, nil).Once()

	session, err := suite.service.CloseSession(ctx, suite.ownerID, dto.CloseSessionRequest{
		ActualCash:      &actual,
		ClosingNotes:    "short",
		ClosingPhotoURL: "http://img",
	})

	suite.Require().NoError(err)
	suite.Equal(domain.SessionClosed, session.Status)
	suite.mockSessionRepo.AssertExpectations(suite.T())
}

func (suite *CashSessionServiceTestSuite) TestCloseSession_NegativeCountRejected() {
	ctx := context.Background()
	actual := decimal.RequireFromString("-1")

	session, err := suite.service.CloseSession(ctx, suite.ownerID, dto.CloseSessionRequest{ActualCash: &actual})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(session)
	suite.mockSessionRepo.AssertNotCalled(suite.T(), "CloseSession")
}

func (suite *CashSessionServiceTestSuite) TestListSessionHistory_DefaultsLimit() {
	ctx := context.Background()

	suite.mockSessionRepo.On("ListClosedSessions", ctx, suite.ownerID, 30).
		Return([]domain.CashSession{}, nil).Once()

	_, err := suite.service.ListSessionHistory(ctx, suite.ownerID, 0)

	suite.Require().NoError(err)
	suite.mockSessionRepo.AssertExpectations(suite.T())
}

func TestCashSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CashSessionServiceTestSuite))
}
