// Package bookingflow implements the 4-step selection state machine of
// the booking dialog: service, staff member, date and time, then contact
// details. The flow is an explicitly owned object, one instance per
// booking session, mutated only through its own methods rather than a
// globally reachable store.
package bookingflow

import (
	"strings"
	"sync"
	"time"

	"github.com/elegantcut/booking-service/internal/domain"
	"github.com/elegantcut/booking-service/pkg/types"
)

// Step is one of the four selection steps.
type Step int

const (
	StepService Step = iota + 1
	StepStaff
	StepDateTime
	StepContact
)

// Selection is a snapshot of the in-flight choices.
type Selection struct {
	Service  *domain.Service
	Staff    *domain.StaffMember
	Date     *time.Time
	Time     *types.TimeString
	Customer domain.CustomerInfo
}

// Flow is the booking state machine. All methods are safe for concurrent
// use; within one session the flow is the single owner of its selection.
type Flow struct {
	mu        sync.Mutex
	step      Step
	sel       Selection
	slots     []types.TimeString
	slotsRev  uint64 // bumped whenever the (staff, date) pair changes
	completed bool
}

// New creates a flow honoring the pre-selection entry policy:
// service and staff pre-supplied opens at step 3, service alone at step 2,
// staff alone at step 1 (a service is still required).
func New(preService *domain.Service, preStaff *domain.StaffMember) *Flow {
	f := &Flow{step: StepService}
	switch {
	case preService != nil && preStaff != nil:
		f.sel.Service = preService
		f.sel.Staff = preStaff
		f.step = StepDateTime
	case preService != nil:
		f.sel.Service = preService
		f.step = StepStaff
	case preStaff != nil:
		f.sel.Staff = preStaff
	}
	return f
}

// Step returns the current step.
func (f *Flow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// Completed reports whether the flow ended in a confirmed reservation.
func (f *Flow) Completed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.completed
}

// Selection returns a snapshot of the current choices.
func (f *Flow) Selection() Selection {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sel
}

// CanProceed evaluates the completeness predicate of the given step
// against the current selection.
func (f *Flow) CanProceed(step Step) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.canProceed(step)
}

func (f *Flow) canProceed(step Step) bool {
	switch step {
	case StepService:
		return f.sel.Service != nil
	case StepStaff:
		return f.sel.Staff != nil
	case StepDateTime:
		return f.sel.Date != nil && f.sel.Time != nil
	case StepContact:
		return strings.TrimSpace(f.sel.Customer.Name) != "" &&
			strings.TrimSpace(f.sel.Customer.Email) != "" &&
			strings.TrimSpace(f.sel.Customer.Phone) != ""
	default:
		return false
	}
}

// Advance moves to the next step. Refused while the current step is
// incomplete or at the last step; the refusal carries no data loss.
func (f *Flow) Advance() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.completed {
		return ErrFlowCompleted
	}
	if f.step >= StepContact {
		return ErrAtLastStep
	}
	if !f.canProceed(f.step) {
		return ErrStepIncomplete
	}
	f.step++
	return nil
}

// Retreat moves back one step. Always allowed above step 1, regardless of
// completeness; selections are kept.
func (f *Flow) Retreat() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.completed {
		return ErrFlowCompleted
	}
	if f.step <= StepService {
		return ErrAtFirstStep
	}
	f.step--
	return nil
}

// Reset returns the flow to its initial empty state.
func (f *Flow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.step = StepService
	f.sel = Selection{}
	f.slots = nil
	f.slotsRev++
	f.completed = false
}

// SetService selects the service.
func (f *Flow) SetService(svc *domain.Service) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.completed {
		return ErrFlowCompleted
	}
	f.sel.Service = svc
	return nil
}

// SetStaff selects the staff member. Any loaded slots belong to the
// previous staff member and are invalidated.
func (f *Flow) SetStaff(m *domain.StaffMember) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.completed {
		return ErrFlowCompleted
	}
	f.sel.Staff = m
	f.slots = nil
	f.slotsRev++
	return nil
}

// SetDate selects the calendar date. The previously selected time is
// always cleared, even when the same date is selected again: a time is
// only meaningful relative to a date.
func (f *Flow) SetDate(date time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.completed {
		return ErrFlowCompleted
	}
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	f.sel.Date = &d
	f.sel.Time = nil
	f.slots = nil
	f.slotsRev++
	return nil
}

// SetTime selects the slot start time. A date must be selected first.
func (f *Flow) SetTime(t types.TimeString) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.completed {
		return ErrFlowCompleted
	}
	if f.sel.Date == nil {
		return ErrNoDateSelected
	}
	f.sel.Time = &t
	return nil
}

// SetCustomerInfo records the contact details.
func (f *Flow) SetCustomerInfo(info domain.CustomerInfo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.completed {
		return ErrFlowCompleted
	}
	f.sel.Customer = info
	return nil
}

// MarkCompleted freezes the flow after a successful submission.
func (f *Flow) MarkCompleted() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completed = true
}

// BeginSlotsLoad captures the (staff, date, revision) triple for an
// availability fetch. ok is false while either is unset. The revision
// ties the in-flight fetch to the pair it was issued for.
func (f *Flow) BeginSlotsLoad() (staffID string, date time.Time, rev uint64, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sel.Staff == nil || f.sel.Date == nil {
		return "", time.Time{}, 0, false
	}
	return f.sel.Staff.ID, *f.sel.Date, f.slotsRev, true
}

// ApplySlots stores a fetched slot list, unless the (staff, date) pair
// changed since the fetch started. A stale result is discarded and the
// method reports false; discarding is not an error.
func (f *Flow) ApplySlots(rev uint64, slots []types.TimeString) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if rev != f.slotsRev {
		return false
	}
	f.slots = slots
	return true
}

// Slots returns the most recently applied availability for the current
// (staff, date) pair.
func (f *Flow) Slots() []types.TimeString {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.slots == nil {
		return nil
	}
	out := make([]types.TimeString, len(f.slots))
	copy(out, f.slots)
	return out
}
