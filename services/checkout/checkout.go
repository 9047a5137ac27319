package checkout

import (
	"context"

	bookingRepo "weeklychef/database/repository/booking"
	"weeklychef/models"
	"weeklychef/services/pricing"

	"go.uber.org/zap"
)

// Service validates a checkout request, persists a pending booking, and
// issues the payment redirect URL.
type Service interface {
	CreateSession(ctx context.Context, req models.CheckoutRequest) (string, error)
}

// DefaultService is the production implementation.
type DefaultService struct {
	Repo     bookingRepo.BookingRepository
	Provider PaymentProvider
	// PriceTolerance is the accepted gap, in euro cents, between the
	// client-sent total and the recomputed table price.
	PriceTolerance int64
	Logger         *zap.Logger
}

// CreateSession runs the checkout sequence: validate, insert pending row,
// create payment session keyed to the row, best-effort persist the session
// reference, return the redirect URL.
func (s *DefaultService) CreateSession(ctx context.Context, req models.CheckoutRequest) (string, error) {
	booking, err := s.buildBooking(req)
	if err != nil {
		return "", err
	}

	id, err := s.Repo.Create(ctx, *booking)
	if err != nil {
		return "", &PersistenceError{Err: err}
	}
	booking.ID = id

	sessionID, redirectURL, err := s.Provider.CreateSession(ctx, booking)
	if err != nil {
		return "", &ProviderError{Err: err}
	}

	// The session already exists at the provider; losing this write must not
	// fail the checkout. The reconciler keys on the metadata token, never on
	// this column.
	if err := s.Repo.SetSessionRef(ctx, id, sessionID); err != nil {
		s.Logger.Warn("failed to persist checkout session reference",
			zap.String("bookingID", id),
			zap.String("sessionID", sessionID),
			zap.Error(err))
	}

	return redirectURL, nil
}

func (s *DefaultService) buildBooking(req models.CheckoutRequest) (*models.Booking, error) {
	switch {
	case req.CustomerName == "":
		return nil, newValidationError("customer_name is required")
	case req.CustomerEmail == "":
		return nil, newValidationError("customer_email is required")
	case req.City == "":
		return nil, newValidationError("city is required")
	case req.StartDate == "":
		return nil, newValidationError("start_date is required")
	case req.NumGuests <= 0:
		return nil, newValidationError("num_guests is required")
	case req.Plan == "":
		return nil, newValidationError("plan is required")
	case req.TotalPrice == nil:
		return nil, newValidationError("total_price is required")
	}

	plan, err := pricing.ParsePlan(req.Plan)
	if err != nil {
		// Lenient on purpose: unknown plan forms fold to standard so older
		// frontends keep working, but loudly enough to spot client bugs.
		s.Logger.Warn("unrecognized plan, falling back to standard",
			zap.String("plan", req.Plan), zap.Error(err))
		plan = pricing.PlanStandard
	}

	if _, hasTable := pricing.Details(plan); hasTable {
		expected := pricing.PriceFor(plan, req.AddSaturday, req.AddSunday)
		diff := expected - *req.TotalPrice
		if diff < 0 {
			diff = -diff
		}
		if diff > s.PriceTolerance {
			return nil, newValidationError("total_price %d does not match plan price %d", *req.TotalPrice, expected)
		}
	}

	endDate, err := models.DeriveEndDate(req.StartDate, req.AddSaturday, req.AddSunday)
	if err != nil {
		return nil, newValidationError("start_date must be an ISO date: %v", err)
	}

	return &models.Booking{
		CustomerName:       req.CustomerName,
		CustomerEmail:      req.CustomerEmail,
		CustomerPhone:      req.CustomerPhone,
		City:               req.City,
		StartDate:          req.StartDate,
		EndDate:            endDate,
		NumGuests:          req.NumGuests,
		Plan:               string(plan),
		AddSaturday:        req.AddSaturday,
		AddSunday:          req.AddSunday,
		DietaryPreferences: req.DietaryPreferences,
		TotalPrice:         *req.TotalPrice,
		Status:             models.BookingStatusPending,
	}, nil
}
