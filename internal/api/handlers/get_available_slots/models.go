package get_available_slots

import (
	"time"

	"github.com/elegantcut/booking-service/internal/domain"
	getAvailableSlots "github.com/elegantcut/booking-service/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	StaffID string   `json:"staffId"`
	Date    string   `json:"date"`
	Slots   []string `json:"slots"` // slot start times, template order
}

// FromUseCaseResponse converts the use case response to the HTTP response.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = s.String()
	}
	return &AvailableSlotsResponse{
		StaffID: resp.StaffID,
		Date:    resp.Date.Format(domain.DateFormat),
		Slots:   slots,
	}
}

// ToUseCaseRequest builds the use case request from path and query data.
func ToUseCaseRequest(staffID, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	return &getAvailableSlots.Request{
		StaffID: staffID,
		Date:    date,
	}, nil
}
