package handlers

import (
	"errors"
	"net/http"

	bookingRepo "weeklychef/database/repository/booking"
	"weeklychef/models"
	"weeklychef/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes operator recovery endpoints.
type AdminHandler struct {
	Repo     bookingRepo.BookingRepository
	Notifier notification.Dispatcher
	Logger   *zap.Logger
}

// NewAdminHandler returns an AdminHandler.
func NewAdminHandler(repo bookingRepo.BookingRepository, notifier notification.Dispatcher, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Repo: repo, Notifier: notifier, Logger: logger}
}

// NotifyBooking re-sends the customer and operator notifications for a
// booking, reporting per-channel status so failed channels can be
// re-triggered after an outage.
func (h *AdminHandler) NotifyBooking(c *gin.Context) {
	var input struct {
		BookingID string `json:"booking_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "booking_id is required"})
		return
	}

	booking, err := h.Repo.GetByID(c.Request.Context(), input.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		h.Logger.Error("failed to fetch booking", zap.String("bookingID", input.BookingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch booking"})
		return
	}
	if booking.EndDate == "" {
		if endDate, derr := models.DeriveEndDate(booking.StartDate, booking.AddSaturday, booking.AddSunday); derr == nil {
			booking.EndDate = endDate
		}
	}

	reports := h.Notifier.BookingConfirmed(c.Request.Context(), booking)
	if notification.AnyFailed(reports) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Some notifications failed. Check server logs for details.",
			"details": reports,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "All notifications sent successfully",
		"details": reports,
	})
}
