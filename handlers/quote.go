package handlers

import (
	"errors"
	"net/http"

	"weeklychef/models"
	"weeklychef/services/quote"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuoteHandler exposes the custom-quote endpoint.
type QuoteHandler struct {
	Svc    quote.Service
	Logger *zap.Logger
}

// NewQuoteHandler returns a QuoteHandler.
func NewQuoteHandler(svc quote.Service, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{Svc: svc, Logger: logger}
}

// RequestQuote accepts a custom inquiry for parties of ten or more guests.
func (h *QuoteHandler) RequestQuote(c *gin.Context) {
	var input models.QuoteRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	q, err := h.Svc.RequestQuote(c.Request.Context(), input)
	if err != nil {
		var verr *quote.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Msg})
			return
		}
		h.Logger.Error("quote request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create quote request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      q.ID,
		"message": "Quote request received successfully",
	})
}
