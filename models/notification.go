package models

// Notification channels.
const (
	ChannelCustomerEmail    = "customer_email"
	ChannelOperatorEmail    = "operator_email"
	ChannelCustomerWhatsApp = "customer_whatsapp"
	ChannelOperatorWhatsApp = "operator_whatsapp"
)

// ChannelReport records the outcome of one channel-recipient send. Channels
// are independent; a failed report never rolls back a sibling.
type ChannelReport struct {
	Channel string `json:"channel"`
	Sent    bool   `json:"sent"`
	Skipped bool   `json:"skipped,omitempty"`
	Error   string `json:"error,omitempty"`
}
