package mailer

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/elegantcut/booking-service/internal/i18n"
)

// Logger is the logging interface used by the client.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client sends booking confirmation emails through SendGrid.
type Client struct {
	apiKey    string
	fromEmail string
	fromName  string
	log       Logger
}

// NewClient creates a mailer client. An empty API key leaves the client
// in a disabled state where every send returns ErrNotConfigured.
func NewClient(apiKey, fromEmail, fromName string, log Logger) *Client {
	return &Client{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		log:       log,
	}
}

// SendConfirmation sends the confirmation email for a persisted
// reservation.
func (c *Client) SendConfirmation(ctx context.Context, email ConfirmationEmail) error {
	if c.apiKey == "" || c.fromEmail == "" {
		return ErrNotConfigured
	}

	subject := i18n.Translate(email.Locale, i18n.KeyEmailSubject)
	plain := c.plainBody(email)
	html := c.htmlBody(email)

	from := mail.NewEmail(c.fromName, c.fromEmail)
	to := mail.NewEmail(email.ClientName, email.ClientEmail)
	message := mail.NewSingleEmail(from, subject, to, plain, html)

	client := sendgrid.NewSendClient(c.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("%w: sendgrid returned status %d: %s",
			ErrSendFailed, response.StatusCode, response.Body)
	}

	c.log.Info("Confirmation email sent to %s (status=%d)", email.ClientEmail, response.StatusCode)
	return nil
}

func (c *Client) plainBody(e ConfirmationEmail) string {
	t := func(key i18n.Key) string { return i18n.Translate(e.Locale, key) }

	return fmt.Sprintf(
		t(i18n.KeyEmailGreeting)+"\n\n"+
			t(i18n.KeyEmailIntro)+"\n\n"+
			"%s: %s\n"+
			"%s: %s\n"+
			"%s: %s\n"+
			"%s: %s\n"+
			"%s: %.2f$\n\n"+
			t(i18n.KeyEmailOutro)+"\n",
		e.ClientName,
		t(i18n.KeyEmailLabelService), e.ServiceName,
		t(i18n.KeyEmailLabelStaff), e.StaffName,
		t(i18n.KeyEmailLabelDate), e.AppointmentDate,
		t(i18n.KeyEmailLabelTime), e.AppointmentTime,
		t(i18n.KeyEmailLabelPrice), e.Price,
	)
}

func (c *Client) htmlBody(e ConfirmationEmail) string {
	t := func(key i18n.Key) string { return i18n.Translate(e.Locale, key) }

	return fmt.Sprintf(
		"<p>"+t(i18n.KeyEmailGreeting)+"</p>"+
			"<p>"+t(i18n.KeyEmailIntro)+"</p>"+
			"<table>"+
			"<tr><td>%s</td><td>%s</td></tr>"+
			"<tr><td>%s</td><td>%s</td></tr>"+
			"<tr><td>%s</td><td>%s</td></tr>"+
			"<tr><td>%s</td><td>%s</td></tr>"+
			"<tr><td>%s</td><td>%.2f$</td></tr>"+
			"</table>"+
			"<p>"+t(i18n.KeyEmailOutro)+"</p>",
		e.ClientName,
		t(i18n.KeyEmailLabelService), e.ServiceName,
		t(i18n.KeyEmailLabelStaff), e.StaffName,
		t(i18n.KeyEmailLabelDate), e.AppointmentDate,
		t(i18n.KeyEmailLabelTime), e.AppointmentTime,
		t(i18n.KeyEmailLabelPrice), e.Price,
	)
}
