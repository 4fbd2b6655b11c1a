package bookingflow

import "errors"

var (
	// ErrStepIncomplete is returned when advance or submit is attempted
	// while the current step's selection is incomplete. Callers refuse the
	// action without surfacing a failure to the user.
	ErrStepIncomplete = errors.New("bookingflow: current step is incomplete")

	// ErrAtFirstStep is returned when retreating from step 1.
	ErrAtFirstStep = errors.New("bookingflow: already at the first step")

	// ErrAtLastStep is returned when advancing past the final step.
	ErrAtLastStep = errors.New("bookingflow: already at the last step")

	// ErrNoDateSelected is returned when a time is set without a date.
	ErrNoDateSelected = errors.New("bookingflow: no date selected")

	// ErrFlowCompleted is returned when mutating a flow that already
	// produced a confirmed reservation.
	ErrFlowCompleted = errors.New("bookingflow: flow already completed")
)
