package notification

import (
	"context"

	"weeklychef/models"
)

// Channel selects the Twilio transport for a message.
type Channel string

const (
	ChannelSMS      Channel = "sms"
	ChannelWhatsApp Channel = "whatsapp"
)

// Mailer sends one transactional email.
type Mailer interface {
	Send(ctx context.Context, from, to, subject, html string) error
}

// Messenger sends one SMS or WhatsApp message.
type Messenger interface {
	Send(ctx context.Context, to, body string, channel Channel) error
}

// Dispatcher composes and fans out the customer and operator messages for a
// confirmed booking or an inbound quote request. Channels are fire-and-forget
// and mutually independent; the per-channel reports exist so the manual
// repair endpoint can tell an operator which sends to re-trigger.
type Dispatcher interface {
	BookingConfirmed(ctx context.Context, booking *models.Booking) []models.ChannelReport
	QuoteReceived(ctx context.Context, quote *models.QuoteRequest) []models.ChannelReport
}
