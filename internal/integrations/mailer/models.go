package mailer

import "github.com/elegantcut/booking-service/internal/i18n"

// ConfirmationEmail is the payload of the booking confirmation message.
// AppointmentDate is already human-readable and localized.
type ConfirmationEmail struct {
	ClientName      string
	ClientEmail     string
	ServiceName     string
	StaffName       string
	AppointmentDate string
	AppointmentTime string
	Price           float64
	Locale          i18n.Locale
}
