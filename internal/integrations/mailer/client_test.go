package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elegantcut/booking-service/internal/i18n"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testEmail(loc i18n.Locale) ConfirmationEmail {
	return ConfirmationEmail{
		ClientName:      "Luc Tremblay",
		ClientEmail:     "luc@example.com",
		ServiceName:     "Coupe / Haircut",
		StaffName:       "Hamed",
		AppointmentDate: "mardi 10 mars 2026",
		AppointmentTime: "10:00",
		Price:           35,
		Locale:          loc,
	}
}

func TestSendConfirmation_NotConfigured(t *testing.T) {
	c := NewClient("", "bookings@elegantcutz.ca", "Elegant Cutz", nopLogger{})
	err := c.SendConfirmation(context.Background(), testEmail(i18n.LocaleFR))
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestPlainBody_FR(t *testing.T) {
	c := NewClient("key", "bookings@elegantcutz.ca", "Elegant Cutz", nopLogger{})
	body := c.plainBody(testEmail(i18n.LocaleFR))

	assert.Contains(t, body, "Bonjour Luc Tremblay,")
	assert.Contains(t, body, "Service: Coupe / Haircut")
	assert.Contains(t, body, "Barbier: Hamed")
	assert.Contains(t, body, "Date: mardi 10 mars 2026")
	assert.Contains(t, body, "Heure: 10:00")
	assert.Contains(t, body, "Prix: 35.00$")
}

func TestPlainBody_EN(t *testing.T) {
	c := NewClient("key", "bookings@elegantcutz.ca", "Elegant Cutz", nopLogger{})
	body := c.plainBody(testEmail(i18n.LocaleEN))

	assert.Contains(t, body, "Hello Luc Tremblay,")
	assert.Contains(t, body, "Barber: Hamed")
}

func TestHTMLBody(t *testing.T) {
	c := NewClient("key", "bookings@elegantcutz.ca", "Elegant Cutz", nopLogger{})
	body := c.htmlBody(testEmail(i18n.LocaleFR))

	assert.Contains(t, body, "<td>Coupe / Haircut</td>")
	assert.Contains(t, body, "<td>35.00$</td>")
}
