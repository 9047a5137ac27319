package models

import "time"

// QuoteRequest statuses. Only "pending" is assigned by the request path; the
// rest are operator-driven.
const (
	QuoteStatusPending   = "pending"
	QuoteStatusContacted = "contacted"
	QuoteStatusQuoted    = "quoted"
	QuoteStatusConverted = "converted"
	QuoteStatusDeclined  = "declined"
)

// QuoteRequest represents a custom inquiry for parties of ten or more guests.
type QuoteRequest struct {
	ID            string    `bson:"id" json:"id"`
	CustomerName  string    `bson:"customer_name" json:"customer_name"`
	CustomerEmail string    `bson:"customer_email" json:"customer_email"`
	CustomerPhone string    `bson:"customer_phone,omitempty" json:"customer_phone,omitempty"`
	City          string    `bson:"city" json:"city"`
	StartDate     string    `bson:"start_date" json:"start_date"`
	NumGuests     int       `bson:"num_guests" json:"num_guests"`
	AddSaturday   bool      `bson:"add_saturday" json:"add_saturday"`
	AddSunday     bool      `bson:"add_sunday" json:"add_sunday"`
	Notes         string    `bson:"notes" json:"notes"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// QuoteRequestInput is the inbound payload for the quote endpoint.
type QuoteRequestInput struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	City          string `json:"city"`
	StartDate     string `json:"start_date"`
	NumGuests     int    `json:"num_guests"`
	AddSaturday   bool   `json:"add_saturday"`
	AddSunday     bool   `json:"add_sunday"`
	Notes         string `json:"notes"`
}
