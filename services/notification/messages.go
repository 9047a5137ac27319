package notification

import (
	"fmt"

	"weeklychef/models"
	"weeklychef/services/pricing"
)

const confirmationSubject = "Your Weekly Private Chef – Booking Confirmed"

// confirmationEmailHTML renders the customer confirmation email body.
func confirmationEmailHTML(b *models.Booking) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; color: #111;">
  <h2>Booking Confirmed</h2>
  <p>Thank you for your booking. Your payment has been received and your weekly private chef service is confirmed.</p>
  <p><strong>Name:</strong> %s</p>
  <p><strong>City:</strong> %s</p>
  <p><strong>Service Dates:</strong> %s to %s</p>
  <p><strong>Guests:</strong> %d</p>
  <p><strong>Total:</strong> %s</p>
  <p>Our team will contact you within 24–48 hours to finalize details and menu planning.</p>
</div>`,
		b.CustomerName, b.City, b.StartDate, b.EndDate, b.NumGuests, pricing.FormatPrice(b.TotalPrice))
}

// operatorEmailHTML renders the internal booking-paid email.
func operatorEmailHTML(b *models.Booking) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; color: #111;">
  <h2>Booking Paid</h2>
  <p><strong>Customer:</strong> %s (%s)</p>
  <p><strong>Phone:</strong> %s</p>
  <p><strong>City:</strong> %s</p>
  <p><strong>Service Dates:</strong> %s to %s</p>
  <p><strong>Guests:</strong> %d</p>
  <p><strong>Plan:</strong> %s</p>
  <p><strong>Total:</strong> %s</p>
</div>`,
		b.CustomerName, b.CustomerEmail, b.CustomerPhone, b.City, b.StartDate, b.EndDate,
		b.NumGuests, b.Plan, pricing.FormatPrice(b.TotalPrice))
}

// customerWhatsAppMessage renders the customer confirmation message.
func customerWhatsAppMessage(b *models.Booking) string {
	return fmt.Sprintf("[CONFERMA CLIENTE] Dear %s, your booking for %s is confirmed! We look forward to serving you. Our team will be in touch shortly.",
		b.CustomerName, b.City)
}

// operatorWhatsAppMessage renders the internal booking-paid message.
func operatorWhatsAppMessage(b *models.Booking) string {
	return fmt.Sprintf("[NOTIFICA CHEF] Booking Paid - %s. Total: %s. Plan: %s.",
		b.CustomerName, pricing.FormatPrice(b.TotalPrice), b.Plan)
}

const quoteSubject = "New Custom Quote Request"

// quoteEmailHTML renders the internal quote-request email.
func quoteEmailHTML(q *models.QuoteRequest) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; color: #111;">
  <h2>New Quote Request</h2>
  <p><strong>Customer:</strong> %s (%s)</p>
  <p><strong>Phone:</strong> %s</p>
  <p><strong>City:</strong> %s</p>
  <p><strong>Start Date:</strong> %s</p>
  <p><strong>Guests:</strong> %d</p>
  <p><strong>Notes:</strong> %s</p>
  <p>Respond within 24 hours.</p>
</div>`,
		q.CustomerName, q.CustomerEmail, q.CustomerPhone, q.City, q.StartDate, q.NumGuests, q.Notes)
}
