package bookingRepo

import (
	"context"

	"weeklychef/database"
	"weeklychef/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository owns durable booking rows.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// SetSessionRef stores the checkout session reference. The reference is
	// immutable once set; setting it again is a no-op.
	SetSessionRef(ctx context.Context, id, sessionID string) error
	// Confirm transitions a pending booking to confirmed and records the
	// payment reference. It reports whether the transition actually happened,
	// so duplicate webhook deliveries resolve to a harmless no-op.
	Confirm(ctx context.Context, id, paymentRef string) (bool, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("weeklychef")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
