package checkout

import (
	"context"
	"errors"
	"testing"

	"weeklychef/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockBookingRepo is a mock implementation of bookingRepo.BookingRepository.
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking models.Booking) (string, error) {
	args := m.Called(ctx, booking)
	return args.String(0), args.Error(1)
}

func (m *MockBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepo) SetSessionRef(ctx context.Context, id, sessionID string) error {
	args := m.Called(ctx, id, sessionID)
	return args.Error(0)
}

func (m *MockBookingRepo) Confirm(ctx context.Context, id, paymentRef string) (bool, error) {
	args := m.Called(ctx, id, paymentRef)
	return args.Bool(0), args.Error(1)
}

// MockPaymentProvider is a mock implementation of PaymentProvider.
type MockPaymentProvider struct {
	mock.Mock
}

func (m *MockPaymentProvider) CreateSession(ctx context.Context, booking *models.Booking) (string, string, error) {
	args := m.Called(ctx, booking)
	return args.String(0), args.String(1), args.Error(2)
}

func priceOf(v int64) *int64 {
	return &v
}

func validRequest() models.CheckoutRequest {
	return models.CheckoutRequest{
		CustomerName:  "Ana",
		CustomerEmail: "a@x.com",
		City:          "Milano",
		StartDate:     "2026-03-02",
		NumGuests:     4,
		Plan:          "standard",
		TotalPrice:    priceOf(250000),
	}
}

func newService(repo *MockBookingRepo, provider *MockPaymentProvider) *DefaultService {
	return &DefaultService{
		Repo:     repo,
		Provider: provider,
		Logger:   zap.NewNop(),
	}
}

func TestCreateSession_MissingFields(t *testing.T) {
	mutations := map[string]func(*models.CheckoutRequest){
		"customer_name":  func(r *models.CheckoutRequest) { r.CustomerName = "" },
		"customer_email": func(r *models.CheckoutRequest) { r.CustomerEmail = "" },
		"city":           func(r *models.CheckoutRequest) { r.City = "" },
		"start_date":     func(r *models.CheckoutRequest) { r.StartDate = "" },
		"num_guests":     func(r *models.CheckoutRequest) { r.NumGuests = 0 },
		"plan":           func(r *models.CheckoutRequest) { r.Plan = "" },
		"total_price":    func(r *models.CheckoutRequest) { r.TotalPrice = nil },
	}

	for field, mutate := range mutations {
		repo := &MockBookingRepo{}
		provider := &MockPaymentProvider{}
		svc := newService(repo, provider)

		req := validRequest()
		mutate(&req)

		_, err := svc.CreateSession(context.Background(), req)

		var verr *ValidationError
		assert.ErrorAs(t, err, &verr, "field=%s", field)
		repo.AssertNotCalled(t, "Create")
		provider.AssertNotCalled(t, "CreateSession")
	}
}

func TestCreateSession_PriceMismatchRejected(t *testing.T) {
	repo := &MockBookingRepo{}
	provider := &MockPaymentProvider{}
	svc := newService(repo, provider)

	req := validRequest()
	req.TotalPrice = priceOf(199)

	_, err := svc.CreateSession(context.Background(), req)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	repo.AssertNotCalled(t, "Create")
}

func TestCreateSession_PriceWithinTolerance(t *testing.T) {
	repo := &MockBookingRepo{}
	provider := &MockPaymentProvider{}
	svc := newService(repo, provider)
	svc.PriceTolerance = 100

	req := validRequest()
	req.TotalPrice = priceOf(250050)

	repo.On("Create", mock.Anything, mock.Anything).Return("bk-1", nil)
	provider.On("CreateSession", mock.Anything, mock.Anything).Return("cs_1", "https://pay.example/cs_1", nil)
	repo.On("SetSessionRef", mock.Anything, "bk-1", "cs_1").Return(nil)

	url, err := svc.CreateSession(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, "https://pay.example/cs_1", url)
}

func TestCreateSession_HappyPath(t *testing.T) {
	repo := &MockBookingRepo{}
	provider := &MockPaymentProvider{}
	svc := newService(repo, provider)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(b models.Booking) bool {
		return b.Status == models.BookingStatusPending &&
			b.EndDate == "2026-03-06" &&
			b.Plan == "standard" &&
			b.TotalPrice == 250000
	})).Return("bk-1", nil)
	provider.On("CreateSession", mock.Anything, mock.MatchedBy(func(b *models.Booking) bool {
		return b.ID == "bk-1"
	})).Return("cs_123", "https://checkout.stripe.com/pay/cs_123", nil)
	repo.On("SetSessionRef", mock.Anything, "bk-1", "cs_123").Return(nil)

	url, err := svc.CreateSession(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/pay/cs_123", url)
	repo.AssertExpectations(t)
	provider.AssertExpectations(t)
}

func TestCreateSession_WeekendAddOnsExtendEndDate(t *testing.T) {
	repo := &MockBookingRepo{}
	provider := &MockPaymentProvider{}
	svc := newService(repo, provider)

	req := validRequest()
	req.AddSaturday = true
	req.AddSunday = true
	req.TotalPrice = priceOf(410000)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(b models.Booking) bool {
		return b.EndDate == "2026-03-08"
	})).Return("bk-2", nil)
	provider.On("CreateSession", mock.Anything, mock.Anything).Return("cs_2", "https://pay.example/cs_2", nil)
	repo.On("SetSessionRef", mock.Anything, "bk-2", "cs_2").Return(nil)

	_, err := svc.CreateSession(context.Background(), req)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateSession_UnknownPlanFallsBackToStandard(t *testing.T) {
	repo := &MockBookingRepo{}
	provider := &MockPaymentProvider{}
	svc := newService(repo, provider)

	req := validRequest()
	req.Plan = "gold"

	repo.On("Create", mock.Anything, mock.MatchedBy(func(b models.Booking) bool {
		return b.Plan == "standard"
	})).Return("bk-3", nil)
	provider.On("CreateSession", mock.Anything, mock.Anything).Return("cs_3", "https://pay.example/cs_3", nil)
	repo.On("SetSessionRef", mock.Anything, "bk-3", "cs_3").Return(nil)

	_, err := svc.CreateSession(context.Background(), req)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateSession_CustomPlanSkipsPriceCheck(t *testing.T) {
	repo := &MockBookingRepo{}
	provider := &MockPaymentProvider{}
	svc := newService(repo, provider)

	req := validRequest()
	req.Plan = "custom"
	req.NumGuests = 14
	req.TotalPrice = priceOf(1234500)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(b models.Booking) bool {
		return b.Plan == "custom" && b.TotalPrice == 1234500
	})).Return("bk-4", nil)
	provider.On("CreateSession", mock.Anything, mock.Anything).Return("cs_4", "https://pay.example/cs_4", nil)
	repo.On("SetSessionRef", mock.Anything, "bk-4", "cs_4").Return(nil)

	_, err := svc.CreateSession(context.Background(), req)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateSession_InsertFailureIsFatal(t *testing.T) {
	repo := &MockBookingRepo{}
	provider := &MockPaymentProvider{}
	svc := newService(repo, provider)

	repo.On("Create", mock.Anything, mock.Anything).Return("", errors.New("connection refused"))

	_, err := svc.CreateSession(context.Background(), validRequest())

	var perr *PersistenceError
	assert.ErrorAs(t, err, &perr)
	provider.AssertNotCalled(t, "CreateSession")
}

func TestCreateSession_ProviderFailure(t *testing.T) {
	repo := &MockBookingRepo{}
	provider := &MockPaymentProvider{}
	svc := newService(repo, provider)

	repo.On("Create", mock.Anything, mock.Anything).Return("bk-5", nil)
	provider.On("CreateSession", mock.Anything, mock.Anything).Return("", "", errors.New("stripe down"))

	_, err := svc.CreateSession(context.Background(), validRequest())

	var perr *ProviderError
	assert.ErrorAs(t, err, &perr)
	repo.AssertNotCalled(t, "SetSessionRef")
}

func TestCreateSession_SessionRefPersistFailureIsNotFatal(t *testing.T) {
	repo := &MockBookingRepo{}
	provider := &MockPaymentProvider{}
	svc := newService(repo, provider)

	repo.On("Create", mock.Anything, mock.Anything).Return("bk-6", nil)
	provider.On("CreateSession", mock.Anything, mock.Anything).Return("cs_6", "https://pay.example/cs_6", nil)
	repo.On("SetSessionRef", mock.Anything, "bk-6", "cs_6").Return(errors.New("write timeout"))

	url, err := svc.CreateSession(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.Equal(t, "https://pay.example/cs_6", url)
}
