package notification

import (
	"context"
	"sync"

	"weeklychef/models"

	"go.uber.org/zap"
)

// DefaultDispatcher is the production Dispatcher.
type DefaultDispatcher struct {
	Mailer    Mailer
	Messenger Messenger

	FromCustomer  string // sender for customer-facing email
	FromSystem    string // sender for internal email
	OperatorEmail string
	OperatorPhone string

	Logger *zap.Logger
}

type channelTask struct {
	channel string
	run     func(ctx context.Context) error
	skip    bool
}

// fanOut runs every task concurrently and joins without short-circuiting, so
// one failed channel never blocks a sibling.
func (d *DefaultDispatcher) fanOut(ctx context.Context, tasks []channelTask) []models.ChannelReport {
	reports := make([]models.ChannelReport, len(tasks))
	var wg sync.WaitGroup
	for i, task := range tasks {
		if task.skip {
			reports[i] = models.ChannelReport{Channel: task.channel, Skipped: true}
			continue
		}
		wg.Add(1)
		go func(i int, task channelTask) {
			defer wg.Done()
			if err := task.run(ctx); err != nil {
				d.Logger.Error("notification channel failed",
					zap.String("channel", task.channel), zap.Error(err))
				reports[i] = models.ChannelReport{Channel: task.channel, Error: err.Error()}
				return
			}
			reports[i] = models.ChannelReport{Channel: task.channel, Sent: true}
		}(i, task)
	}
	wg.Wait()
	return reports
}

// BookingConfirmed sends the confirmed-booking messages to customer and
// operator across email and WhatsApp.
func (d *DefaultDispatcher) BookingConfirmed(ctx context.Context, booking *models.Booking) []models.ChannelReport {
	tasks := []channelTask{
		{
			channel: models.ChannelCustomerEmail,
			run: func(ctx context.Context) error {
				return d.Mailer.Send(ctx, d.FromCustomer, booking.CustomerEmail,
					confirmationSubject, confirmationEmailHTML(booking))
			},
		},
		{
			channel: models.ChannelOperatorEmail,
			skip:    d.OperatorEmail == "",
			run: func(ctx context.Context) error {
				return d.Mailer.Send(ctx, d.FromSystem, d.OperatorEmail,
					"Booking Paid – "+booking.CustomerName, operatorEmailHTML(booking))
			},
		},
		{
			channel: models.ChannelCustomerWhatsApp,
			skip:    booking.CustomerPhone == "",
			run: func(ctx context.Context) error {
				return d.Messenger.Send(ctx, booking.CustomerPhone,
					customerWhatsAppMessage(booking), ChannelWhatsApp)
			},
		},
		{
			channel: models.ChannelOperatorWhatsApp,
			skip:    d.OperatorPhone == "",
			run: func(ctx context.Context) error {
				return d.Messenger.Send(ctx, d.OperatorPhone,
					operatorWhatsAppMessage(booking), ChannelWhatsApp)
			},
		},
	}
	return d.fanOut(ctx, tasks)
}

// QuoteReceived informs the operator about a new custom inquiry.
func (d *DefaultDispatcher) QuoteReceived(ctx context.Context, quote *models.QuoteRequest) []models.ChannelReport {
	tasks := []channelTask{
		{
			channel: models.ChannelOperatorEmail,
			skip:    d.OperatorEmail == "",
			run: func(ctx context.Context) error {
				return d.Mailer.Send(ctx, d.FromSystem, d.OperatorEmail,
					quoteSubject, quoteEmailHTML(quote))
			},
		},
		{
			channel: models.ChannelOperatorWhatsApp,
			skip:    d.OperatorPhone == "",
			run: func(ctx context.Context) error {
				return d.Messenger.Send(ctx, d.OperatorPhone,
					"[NOTIFICA CHEF] New quote request from "+quote.CustomerName+" ("+quote.City+").", ChannelWhatsApp)
			},
		},
	}
	return d.fanOut(ctx, tasks)
}

// AnyFailed reports whether at least one non-skipped channel failed.
func AnyFailed(reports []models.ChannelReport) bool {
	for _, r := range reports {
		if !r.Sent && !r.Skipped {
			return true
		}
	}
	return false
}
