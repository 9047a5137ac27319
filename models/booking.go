package models

import "time"

// Booking lifecycle statuses. A booking moves from pending to confirmed on a
// verified payment event; pending bookings whose checkout is abandoned are
// simply never confirmed.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a private-chef reservation row.
type Booking struct {
	ID                  string    `bson:"id" json:"id"`
	CustomerName        string    `bson:"customer_name" json:"customer_name"`
	CustomerEmail       string    `bson:"customer_email" json:"customer_email"`
	CustomerPhone       string    `bson:"customer_phone,omitempty" json:"customer_phone,omitempty"`
	City                string    `bson:"city" json:"city"`
	StartDate           string    `bson:"start_date" json:"start_date"` // "YYYY-MM-DD"
	EndDate             string    `bson:"end_date,omitempty" json:"end_date,omitempty"`
	NumGuests           int       `bson:"num_guests" json:"num_guests"`
	Plan                string    `bson:"plan" json:"plan"`
	AddSaturday         bool      `bson:"add_saturday" json:"add_saturday"`
	AddSunday           bool      `bson:"add_sunday" json:"add_sunday"`
	DietaryPreferences  string    `bson:"dietary_preferences,omitempty" json:"dietary_preferences,omitempty"`
	TotalPrice          int64     `bson:"total_price" json:"total_price"` // euro cents
	StripeSessionID     string    `bson:"stripe_session_id" json:"stripe_session_id,omitempty"`
	StripePaymentIntent string    `bson:"stripe_payment_intent" json:"stripe_payment_intent,omitempty"`
	Status              string    `bson:"status" json:"status"`
	CreatedAt           time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time `bson:"updated_at" json:"updated_at"`
}

// DeriveEndDate computes the last service day: start date plus the Monday to
// Friday week plus one day per enabled weekend add-on.
func DeriveEndDate(startDate string, addSaturday, addSunday bool) (string, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return "", err
	}
	days := 4
	if addSaturday {
		days++
	}
	if addSunday {
		days++
	}
	return start.AddDate(0, 0, days).Format("2006-01-02"), nil
}

// CheckoutRequest is the canonical checkout payload, bound from either a JSON
// or a form-encoded body. TotalPrice is a pointer so an absent price can be
// told apart from zero.
type CheckoutRequest struct {
	CustomerName       string `json:"customer_name" form:"customer_name"`
	CustomerEmail      string `json:"customer_email" form:"customer_email"`
	CustomerPhone      string `json:"customer_phone" form:"customer_phone"`
	City               string `json:"city" form:"city"`
	StartDate          string `json:"start_date" form:"start_date"`
	NumGuests          int    `json:"num_guests" form:"num_guests"`
	Plan               string `json:"plan" form:"plan"`
	AddSaturday        bool   `json:"add_saturday" form:"add_saturday"`
	AddSunday          bool   `json:"add_sunday" form:"add_sunday"`
	DietaryPreferences string `json:"dietary_preferences" form:"dietary_preferences"`
	TotalPrice         *int64 `json:"total_price" form:"total_price"`
}
