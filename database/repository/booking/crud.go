package bookingRepo

import (
	"context"
	"errors"
	"time"

	"weeklychef/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no booking matches the given id.
var ErrNotFound = errors.New("booking not found")

// Create inserts a new pending booking and returns its ID.
func (r *mongoBookingRepo) Create(ctx context.Context, booking models.Booking) (string, error) {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	if booking.Status == "" {
		booking.Status = models.BookingStatusPending
	}
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return "", err
	}
	return booking.ID, nil
}

// GetByID returns a booking by its ID.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// SetSessionRef records the checkout session reference, only if none is set yet.
func (r *mongoBookingRepo) SetSessionRef(ctx context.Context, id, sessionID string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id, "stripe_session_id": ""},
		bson.M{"$set": bson.M{
			"stripe_session_id": sessionID,
			"updated_at":        time.Now(),
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// Either the booking is gone or the reference is already set.
		exists, err := r.coll.CountDocuments(ctx, bson.M{"id": id})
		if err != nil {
			return err
		}
		if exists == 0 {
			return ErrNotFound
		}
	}
	return nil
}

// Confirm applies the pending -> confirmed transition. The status filter makes
// the update a no-op on rows already confirmed.
func (r *mongoBookingRepo) Confirm(ctx context.Context, id, paymentRef string) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id, "status": models.BookingStatusPending},
		bson.M{"$set": bson.M{
			"status":                models.BookingStatusConfirmed,
			"stripe_payment_intent": paymentRef,
			"updated_at":            time.Now(),
		}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}
