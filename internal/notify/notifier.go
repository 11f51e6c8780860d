package notify

import (
	"context"

	"cleanbook/pkg/logger"
	"cleanbook/pkg/model"
)

// Notifier fans booking lifecycle changes out to email and SMS. Every send
// is individually awaited but best-effort: a provider failure is logged at
// WARN and the caller never sees it.
type Notifier struct {
	email      EmailSender
	sms        SMSSender
	baseURL    string
	adminEmail string
	log        *logger.Logger
}

func NewNotifier(email EmailSender, sms SMSSender, baseURL, adminEmail string, log *logger.Logger) *Notifier {
	return &Notifier{
		email:      email,
		sms:        sms,
		baseURL:    baseURL,
		adminEmail: adminEmail,
		log:        log,
	}
}

// BookingCreated sends the customer confirmation email, the admin copy, and
// the customer confirmation SMS.
func (n *Notifier) BookingCreated(ctx context.Context, b *model.Booking) {
	n.sendEmail(ctx, b.ContactInfo.Email, BookingCreatedEmail(n.baseURL, b), nil)
	n.sendEmail(ctx, n.adminEmail, AdminBookingCreatedEmail(n.baseURL, b), nil)
	n.sendSMS(ctx, b.ContactInfo.Phone, BookingCreatedSMS(b))
}

// BookingUpdated sends the status-transition email and the generic SMS.
func (n *Notifier) BookingUpdated(ctx context.Context, previousStatus string, b *model.Booking) {
	n.sendEmail(ctx, b.ContactInfo.Email, BookingUpdatedEmail(n.baseURL, previousStatus, b), nil)
	n.sendSMS(ctx, b.ContactInfo.Phone, BookingUpdatedSMS(b))
}

// CleanerAssigned notifies the cleaner and the customer.
func (n *Notifier) CleanerAssigned(ctx context.Context, b *model.Booking, c *model.Cleaner) {
	n.sendEmail(ctx, c.ContactInfo.Email, CleanerAssignmentEmail(n.baseURL, b, c), nil)
	n.sendEmail(ctx, b.ContactInfo.Email, CustomerAssignmentEmail(n.baseURL, b, c), nil)
}

// CleanerWelcome sends the one-time welcome email to a new cleaner.
func (n *Notifier) CleanerWelcome(ctx context.Context, c *model.Cleaner) {
	n.sendEmail(ctx, c.ContactInfo.Email, CleanerWelcomeEmail(c), nil)
}

func (n *Notifier) sendEmail(ctx context.Context, to string, content EmailContent, bcc []string) {
	if to == "" {
		return
	}
	if err := n.email.SendEmail(ctx, to, content.Subject, content.HTML, bcc); err != nil {
		n.log.Warn("Failed to send email",
			"to", to,
			"subject", content.Subject,
			"error", err,
		)
		return
	}
	n.log.Info("Email sent", "to", to, "subject", content.Subject)
}

func (n *Notifier) sendSMS(ctx context.Context, to, body string) {
	if to == "" {
		return
	}
	if err := n.sms.SendSMS(ctx, to, body); err != nil {
		n.log.Warn("Failed to send SMS", "to", to, "error", err)
		return
	}
	n.log.Info("SMS sent", "to", to)
}
