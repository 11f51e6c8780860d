package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridEmailSender struct {
	client *sendgrid.Client
	from   string
}

func NewSendGridEmailSender(apiKey, fromEmail string) EmailSender {
	return &sendGridEmailSender{
		client: sendgrid.NewSendClient(apiKey),
		from:   fromEmail,
	}
}

func (s *sendGridEmailSender) SendEmail(ctx context.Context, to, subject, htmlBody string, bcc []string) error {
	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail("", s.from))
	message.Subject = subject

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail("", to))
	for _, addr := range bcc {
		personalization.AddBCCs(mail.NewEmail("", addr))
	}
	message.AddPersonalizations(personalization)
	message.AddContent(mail.NewContent("text/html", htmlBody))

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected message: status %d", resp.StatusCode)
	}
	return nil
}
