package quote

import (
	"context"
	"fmt"

	quoteRepo "weeklychef/database/repository/quote"
	"weeklychef/models"
	"weeklychef/services/notification"

	"go.uber.org/zap"
)

// MinGuests is the custom-inquiry floor; smaller parties use the fixed plans.
const MinGuests = 10

// ValidationError reports missing or invalid quote input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// Service persists custom quote requests.
type Service interface {
	RequestQuote(ctx context.Context, input models.QuoteRequestInput) (*models.QuoteRequest, error)
}

// DefaultService is the production implementation.
type DefaultService struct {
	Repo     quoteRepo.QuoteRepository
	Notifier notification.Dispatcher
	Logger   *zap.Logger
}

// RequestQuote validates and persists a pending quote request, then informs
// the operator best-effort.
func (s *DefaultService) RequestQuote(ctx context.Context, input models.QuoteRequestInput) (*models.QuoteRequest, error) {
	switch {
	case input.CustomerName == "":
		return nil, &ValidationError{Msg: "customer_name is required"}
	case input.CustomerEmail == "":
		return nil, &ValidationError{Msg: "customer_email is required"}
	case input.City == "":
		return nil, &ValidationError{Msg: "city is required"}
	case input.StartDate == "":
		return nil, &ValidationError{Msg: "start_date is required"}
	case input.NumGuests < MinGuests:
		return nil, &ValidationError{Msg: fmt.Sprintf("num_guests must be at least %d for a custom quote", MinGuests)}
	}

	q := models.QuoteRequest{
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		City:          input.City,
		StartDate:     input.StartDate,
		NumGuests:     input.NumGuests,
		AddSaturday:   input.AddSaturday,
		AddSunday:     input.AddSunday,
		Notes:         input.Notes,
		Status:        models.QuoteStatusPending,
	}

	id, err := s.Repo.Create(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to create quote request: %w", err)
	}
	q.ID = id

	if s.Notifier != nil {
		reports := s.Notifier.QuoteReceived(ctx, &q)
		if notification.AnyFailed(reports) {
			s.Logger.Warn("quote notification partially failed",
				zap.String("quoteID", id), zap.Any("reports", reports))
		}
	}

	return &q, nil
}
