package mailer

import "errors"

var (
	// ErrNotConfigured is returned when no SendGrid API key is set.
	// Confirmation emails are best-effort, so callers log and move on.
	ErrNotConfigured = errors.New("mailer client: sendgrid api key not configured")

	// ErrSendFailed is returned when SendGrid rejects or fails the send.
	ErrSendFailed = errors.New("mailer client: failed to send email")
)
