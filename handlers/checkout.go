package handlers

import (
	"errors"
	"net/http"

	"weeklychef/models"
	"weeklychef/services/checkout"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler exposes the checkout-creation endpoint.
type CheckoutHandler struct {
	Svc    checkout.Service
	Logger *zap.Logger
}

// NewCheckoutHandler returns a CheckoutHandler.
func NewCheckoutHandler(svc checkout.Service, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{Svc: svc, Logger: logger}
}

// CreateCheckout accepts a JSON or form-encoded booking request and responds
// with the payment redirect URL.
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	var req models.CheckoutRequest
	// ShouldBind negotiates on Content-Type, folding JSON and form bodies
	// into the one canonical request structure.
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	url, err := h.Svc.CreateSession(c.Request.Context(), req)
	if err != nil {
		var verr *checkout.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Msg})
			return
		}
		h.Logger.Error("checkout session creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create checkout session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
