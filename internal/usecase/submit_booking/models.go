package submit_booking

import (
	"time"

	"github.com/elegantcut/booking-service/internal/domain"
	"github.com/elegantcut/booking-service/internal/i18n"
	"github.com/elegantcut/booking-service/pkg/types"
)

// Request is a completed booking selection ready for persistence.
type Request struct {
	Service   *domain.Service
	Staff     *domain.StaffMember
	Date      time.Time
	StartTime types.TimeString
	Customer  domain.CustomerInfo
	Locale    i18n.Locale
}

// Response carries the persisted reservation and the display price
// breakdown.
type Response struct {
	Reservation *domain.Reservation
	Quote       domain.PriceQuote
}
