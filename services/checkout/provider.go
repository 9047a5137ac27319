package checkout

import (
	"context"
	"fmt"

	"weeklychef/models"
	"weeklychef/services/pricing"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

const productImage = "https://images.unsplash.com/photo-1556910103-1c02745a30bf?auto=format&fit=crop&w=1600&q=80"

// PaymentProvider creates hosted payment-collection sessions. The booking ID
// travels in the session metadata as the correlation token the webhook
// reconciler later relies on.
type PaymentProvider interface {
	CreateSession(ctx context.Context, booking *models.Booking) (sessionID, redirectURL string, err error)
}

// StripeProvider implements PaymentProvider on Stripe Checkout.
type StripeProvider struct {
	api        *client.API
	successURL string
	cancelURL  string
}

// NewStripeProvider builds a provider with its own API client so tests and
// alternate environments never share mutable package state.
func NewStripeProvider(apiKey, successURL, cancelURL string) *StripeProvider {
	api := &client.API{}
	api.Init(apiKey, nil)
	return &StripeProvider{
		api:        api,
		successURL: successURL,
		cancelURL:  cancelURL,
	}
}

// CreateSession opens a Stripe Checkout session priced from the booking row.
func (p *StripeProvider) CreateSession(ctx context.Context, booking *models.Booking) (string, string, error) {
	name := "Weekly Private Chef"
	if d, ok := pricing.Details(pricing.Plan(booking.Plan)); ok {
		name = d.Name
	}
	description := fmt.Sprintf("%d guests • %s • Starts %s", booking.NumGuests, booking.City, booking.StartDate)

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(p.successURL),
		CancelURL:          stripe.String(p.cancelURL),
		CustomerEmail:      stripe.String(booking.CustomerEmail),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyEUR)),
					UnitAmount: stripe.Int64(booking.TotalPrice),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(name),
						Description: stripe.String(description),
						Images:      stripe.StringSlice([]string{productImage}),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx
	params.AddMetadata("booking_id", booking.ID)

	sess, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		return "", "", err
	}
	return sess.ID, sess.URL, nil
}
