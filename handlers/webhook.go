package handlers

import (
	"errors"
	"net/http"

	"weeklychef/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WebhookHandler exposes the payment-provider webhook endpoint.
type WebhookHandler struct {
	Reconciler payment.Reconciler
	Logger     *zap.Logger
}

// NewWebhookHandler returns a WebhookHandler.
func NewWebhookHandler(rec payment.Reconciler, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{Reconciler: rec, Logger: logger}
}

// StripeWebhook verifies and applies an inbound payment event. Only a
// signature failure produces a non-2xx response; the provider retries
// indefinitely on anything else, so downstream errors still acknowledge.
func (h *WebhookHandler) StripeWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable request body"})
		return
	}

	sig := c.GetHeader("Stripe-Signature")
	if err := h.Reconciler.HandleEvent(c.Request.Context(), payload, sig); err != nil {
		var serr *payment.SignatureError
		if errors.As(err, &serr) {
			h.Logger.Warn("webhook rejected", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "webhook signature verification failed"})
			return
		}
		h.Logger.Error("webhook processing error", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
