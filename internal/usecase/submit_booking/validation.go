package submit_booking

import (
	"fmt"
	"strings"
)

// validateRequest checks the four step predicates: service, staff, date
// and time, and non-blank contact details after trimming.
func validateRequest(req *Request) error {
	if req.Service == nil {
		return fmt.Errorf("%w: service is required", ErrIncompleteSelection)
	}
	if req.Staff == nil {
		return fmt.Errorf("%w: staff member is required", ErrIncompleteSelection)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrIncompleteSelection)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: time is required", ErrIncompleteSelection)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrIncompleteSelection, err)
	}
	if strings.TrimSpace(req.Customer.Name) == "" {
		return fmt.Errorf("%w: customer name is required", ErrIncompleteSelection)
	}
	if strings.TrimSpace(req.Customer.Email) == "" {
		return fmt.Errorf("%w: customer email is required", ErrIncompleteSelection)
	}
	if strings.TrimSpace(req.Customer.Phone) == "" {
		return fmt.Errorf("%w: customer phone is required", ErrIncompleteSelection)
	}
	return nil
}
