package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioMessenger implements Messenger on the Twilio messaging API.
type TwilioMessenger struct {
	client       *twilio.RestClient
	fromSMS      string
	fromWhatsApp string
	// defaultCountryCode is prepended to numbers lacking an international
	// prefix. Lossy for non-default-country numbers; known limitation.
	defaultCountryCode string
}

// NewTwilioMessenger builds a messenger from account credentials and sender numbers.
func NewTwilioMessenger(accountSID, authToken, fromSMS, fromWhatsApp, defaultCountryCode string) *TwilioMessenger {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioMessenger{
		client:             client,
		fromSMS:            fromSMS,
		fromWhatsApp:       fromWhatsApp,
		defaultCountryCode: defaultCountryCode,
	}
}

// Send delivers a single message over the selected channel.
func (m *TwilioMessenger) Send(ctx context.Context, to, body string, channel Channel) error {
	from := m.fromSMS
	if channel == ChannelWhatsApp {
		from = m.fromWhatsApp
		to = normalizeWhatsApp(to, m.defaultCountryCode)
	}
	if from == "" {
		return fmt.Errorf("twilio sender number for %s not configured", channel)
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(body)

	if _, err := m.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio %s send to %s: %w", channel, to, err)
	}
	return nil
}

// normalizeWhatsApp formats a phone number for the WhatsApp channel: strip
// any existing channel prefix, prepend the default country code when the
// number has no international prefix, then re-add the channel prefix.
func normalizeWhatsApp(number, defaultCountryCode string) string {
	clean := strings.TrimSpace(strings.TrimPrefix(number, "whatsapp:"))
	if !strings.HasPrefix(clean, "+") {
		clean = defaultCountryCode + clean
	}
	return "whatsapp:" + clean
}
