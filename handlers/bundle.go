package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Checkout and payment endpoints.
	CreateCheckout gin.HandlerFunc
	StripeWebhook  gin.HandlerFunc

	// Quote endpoints.
	RequestQuote gin.HandlerFunc

	// Operator endpoints.
	NotifyBooking gin.HandlerFunc
}
