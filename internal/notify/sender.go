// Package notify wraps the email and SMS providers and owns the
// notification content for every booking lifecycle change. Dispatch is
// best-effort everywhere: failures are logged and never fail or roll back
// the mutation that triggered them. No retries, no queueing.
package notify

import "context"

// EmailSender dispatches one email via the external provider.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, htmlBody string, bcc []string) error
}

// SMSSender dispatches one SMS via the external provider.
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) error
}
