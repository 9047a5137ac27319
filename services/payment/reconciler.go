package payment

import (
	"context"
	"encoding/json"
	"fmt"

	bookingRepo "weeklychef/database/repository/booking"
	"weeklychef/models"
	"weeklychef/services/notification"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

// eventCheckoutCompleted is the only event type that triggers the
// pending -> confirmed transition. Everything else is acknowledged and ignored.
const eventCheckoutCompleted = "checkout.session.completed"

// SignatureError reports a missing or failed webhook signature check. It is
// the only reconciler failure surfaced to the provider; everything downstream
// degrades to an acknowledgment, because a non-2xx response would make the
// provider retry an already-applied transition.
type SignatureError struct {
	Err error
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("webhook signature verification failed: %v", e.Err)
}

func (e *SignatureError) Unwrap() error { return e.Err }

// Reconciler applies verified payment events to booking rows.
type Reconciler interface {
	HandleEvent(ctx context.Context, payload []byte, sigHeader string) error
}

// DefaultReconciler is the production implementation.
type DefaultReconciler struct {
	Repo          bookingRepo.BookingRepository
	Notifier      notification.Dispatcher
	Events        ProcessedEventStore
	WebhookSecret string
	Logger        *zap.Logger
}

// HandleEvent verifies the event signature, applies the confirmed transition
// at most once, and dispatches notifications. A non-nil return always means
// the signature check failed; every later failure is logged and acknowledged.
func (r *DefaultReconciler) HandleEvent(ctx context.Context, payload []byte, sigHeader string) error {
	if sigHeader == "" || r.WebhookSecret == "" {
		return &SignatureError{Err: fmt.Errorf("signature header or secret missing")}
	}

	event, err := webhook.ConstructEventWithOptions(payload, sigHeader, r.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return &SignatureError{Err: err}
	}

	if event.Type != eventCheckoutCompleted {
		r.Logger.Debug("ignoring webhook event", zap.String("type", string(event.Type)))
		return nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		r.Logger.Error("failed to decode checkout session from event", zap.Error(err))
		return nil
	}

	bookingID := session.Metadata["booking_id"]
	if bookingID == "" {
		// Malformed or foreign event. Acknowledge so the provider stops retrying.
		r.Logger.Warn("checkout event without booking_id metadata", zap.String("eventID", event.ID))
		return nil
	}

	if r.Events != nil {
		first, err := r.Events.MarkProcessed(ctx, event.ID)
		if err != nil {
			// Dedup store down: fall through to the conditional update, which
			// still guards the transition itself.
			r.Logger.Warn("processed-event store unavailable", zap.Error(err))
		} else if !first {
			r.Logger.Info("duplicate webhook delivery, already processed",
				zap.String("eventID", event.ID), zap.String("bookingID", bookingID))
			return nil
		}
	}

	var paymentRef string
	if session.PaymentIntent != nil {
		paymentRef = session.PaymentIntent.ID
	}

	transitioned, err := r.Repo.Confirm(ctx, bookingID, paymentRef)
	if err != nil {
		r.Logger.Error("failed to confirm booking",
			zap.String("bookingID", bookingID), zap.Error(err))
		return nil
	}
	if !transitioned {
		r.Logger.Info("booking already confirmed, skipping notifications",
			zap.String("bookingID", bookingID))
		return nil
	}

	booking, err := r.Repo.GetByID(ctx, bookingID)
	if err != nil {
		r.Logger.Error("confirmed booking could not be refetched",
			zap.String("bookingID", bookingID), zap.Error(err))
		return nil
	}
	if booking.EndDate == "" {
		if endDate, err := models.DeriveEndDate(booking.StartDate, booking.AddSaturday, booking.AddSunday); err == nil {
			booking.EndDate = endDate
		}
	}

	reports := r.Notifier.BookingConfirmed(ctx, booking)
	if notification.AnyFailed(reports) {
		r.Logger.Warn("some confirmation notifications failed",
			zap.String("bookingID", bookingID), zap.Any("reports", reports))
	} else {
		r.Logger.Info("booking confirmed and notifications dispatched",
			zap.String("bookingID", bookingID))
	}
	return nil
}
