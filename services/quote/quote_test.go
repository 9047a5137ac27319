package quote

import (
	"context"
	"errors"
	"testing"

	"weeklychef/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockQuoteRepo is a mock implementation of quoteRepo.QuoteRepository.
type MockQuoteRepo struct {
	mock.Mock
}

func (m *MockQuoteRepo) Create(ctx context.Context, q models.QuoteRequest) (string, error) {
	args := m.Called(ctx, q)
	return args.String(0), args.Error(1)
}

func (m *MockQuoteRepo) GetByID(ctx context.Context, id string) (*models.QuoteRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.QuoteRequest), args.Error(1)
}

func (m *MockQuoteRepo) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockDispatcher is a mock implementation of notification.Dispatcher.
type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) BookingConfirmed(ctx context.Context, b *models.Booking) []models.ChannelReport {
	args := m.Called(ctx, b)
	return args.Get(0).([]models.ChannelReport)
}

func (m *MockDispatcher) QuoteReceived(ctx context.Context, q *models.QuoteRequest) []models.ChannelReport {
	args := m.Called(ctx, q)
	return args.Get(0).([]models.ChannelReport)
}

func validInput() models.QuoteRequestInput {
	return models.QuoteRequestInput{
		CustomerName:  "Marco",
		CustomerEmail: "m@x.com",
		City:          "Roma",
		StartDate:     "2026-05-04",
		NumGuests:     12,
	}
}

func TestRequestQuote_BelowGuestFloorRejected(t *testing.T) {
	repo := &MockQuoteRepo{}
	svc := &DefaultService{Repo: repo, Logger: zap.NewNop()}

	input := validInput()
	input.NumGuests = 9

	_, err := svc.RequestQuote(context.Background(), input)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	repo.AssertNotCalled(t, "Create")
}

func TestRequestQuote_MissingFieldsRejected(t *testing.T) {
	repo := &MockQuoteRepo{}
	svc := &DefaultService{Repo: repo, Logger: zap.NewNop()}

	input := validInput()
	input.CustomerEmail = ""

	_, err := svc.RequestQuote(context.Background(), input)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	repo.AssertNotCalled(t, "Create")
}

func TestRequestQuote_CreatesPendingAndNotifies(t *testing.T) {
	repo := &MockQuoteRepo{}
	notifier := &MockDispatcher{}
	svc := &DefaultService{Repo: repo, Notifier: notifier, Logger: zap.NewNop()}

	repo.On("Create", mock.Anything, mock.MatchedBy(func(q models.QuoteRequest) bool {
		return q.Status == models.QuoteStatusPending && q.NumGuests == 12
	})).Return("q1", nil)
	notifier.On("QuoteReceived", mock.Anything, mock.MatchedBy(func(q *models.QuoteRequest) bool {
		return q.ID == "q1"
	})).Return([]models.ChannelReport{{Channel: models.ChannelOperatorEmail, Sent: true}})

	q, err := svc.RequestQuote(context.Background(), validInput())

	assert.NoError(t, err)
	assert.Equal(t, "q1", q.ID)
	assert.Equal(t, models.QuoteStatusPending, q.Status)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestRequestQuote_RepoFailure(t *testing.T) {
	repo := &MockQuoteRepo{}
	svc := &DefaultService{Repo: repo, Logger: zap.NewNop()}

	repo.On("Create", mock.Anything, mock.Anything).Return("", assert.AnError)

	_, err := svc.RequestQuote(context.Background(), validInput())

	assert.Error(t, err)
	var verr *ValidationError
	assert.False(t, errors.As(err, &verr))
}
