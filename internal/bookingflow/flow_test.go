package bookingflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elegantcut/booking-service/internal/domain"
	"github.com/elegantcut/booking-service/pkg/types"
)

var (
	haircut = &domain.Service{ID: "haircut", Name: "Coupe Homme", Price: 35, DurationMinutes: 45, StaffIDs: []string{"hamed"}}
	hamed   = &domain.StaffMember{ID: "hamed", Name: "Hamed"}

	someDay = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
)

func completeContact() domain.CustomerInfo {
	return domain.CustomerInfo{Name: "Luc", Email: "luc@example.com", Phone: "514-555-0101"}
}

func TestNew_EntryPolicy(t *testing.T) {
	assert.Equal(t, StepService, New(nil, nil).Step())
	assert.Equal(t, StepStaff, New(haircut, nil).Step())
	assert.Equal(t, StepDateTime, New(haircut, hamed).Step())

	// Staff alone still requires a service, so the flow opens at step 1.
	f := New(nil, hamed)
	assert.Equal(t, StepService, f.Step())
	assert.Equal(t, hamed, f.Selection().Staff)
}

func TestCanProceed_Table(t *testing.T) {
	f := New(nil, nil)
	assert.False(t, f.CanProceed(StepService))
	assert.False(t, f.CanProceed(StepStaff))
	assert.False(t, f.CanProceed(StepDateTime))
	assert.False(t, f.CanProceed(StepContact))

	require.NoError(t, f.SetService(haircut))
	assert.True(t, f.CanProceed(StepService))

	require.NoError(t, f.SetStaff(hamed))
	assert.True(t, f.CanProceed(StepStaff))

	require.NoError(t, f.SetDate(someDay))
	assert.False(t, f.CanProceed(StepDateTime), "date without time is not enough")
	require.NoError(t, f.SetTime("10:00"))
	assert.True(t, f.CanProceed(StepDateTime))

	require.NoError(t, f.SetCustomerInfo(domain.CustomerInfo{Name: "Luc", Email: " ", Phone: "514-555-0101"}))
	assert.False(t, f.CanProceed(StepContact), "blank-after-trim email")
	require.NoError(t, f.SetCustomerInfo(completeContact()))
	assert.True(t, f.CanProceed(StepContact))
}

func TestAdvance_RefusedWhileIncomplete(t *testing.T) {
	f := New(nil, nil)

	err := f.Advance()
	assert.ErrorIs(t, err, ErrStepIncomplete)
	assert.Equal(t, StepService, f.Step(), "refusal leaves the step unchanged")

	require.NoError(t, f.SetService(haircut))
	require.NoError(t, f.Advance())
	assert.Equal(t, StepStaff, f.Step())
}

func TestAdvance_AtLastStep(t *testing.T) {
	f := New(haircut, hamed)
	require.NoError(t, f.SetDate(someDay))
	require.NoError(t, f.SetTime("10:00"))
	require.NoError(t, f.Advance())
	assert.Equal(t, StepContact, f.Step())

	assert.ErrorIs(t, f.Advance(), ErrAtLastStep)
}

func TestRetreat_AlwaysAllowedAboveFirst(t *testing.T) {
	f := New(haircut, hamed)
	assert.Equal(t, StepDateTime, f.Step())

	// No date or time chosen, retreat is still fine and loses nothing.
	require.NoError(t, f.Retreat())
	assert.Equal(t, StepStaff, f.Step())
	assert.Equal(t, haircut, f.Selection().Service)
	assert.Equal(t, hamed, f.Selection().Staff)

	require.NoError(t, f.Retreat())
	assert.ErrorIs(t, f.Retreat(), ErrAtFirstStep)
}

func TestSetDate_AlwaysClearsTime(t *testing.T) {
	f := New(haircut, hamed)
	require.NoError(t, f.SetDate(someDay))
	require.NoError(t, f.SetTime("10:00"))

	// Re-selecting the very same date still clears the time.
	require.NoError(t, f.SetDate(someDay))
	assert.Nil(t, f.Selection().Time)

	require.NoError(t, f.SetTime("10:30"))
	require.NoError(t, f.SetDate(someDay.AddDate(0, 0, 1)))
	assert.Nil(t, f.Selection().Time)
}

func TestSetTime_RequiresDate(t *testing.T) {
	f := New(haircut, hamed)
	assert.ErrorIs(t, f.SetTime("10:00"), ErrNoDateSelected)
}

func TestReset(t *testing.T) {
	f := New(haircut, hamed)
	require.NoError(t, f.SetDate(someDay))
	require.NoError(t, f.SetTime("10:00"))
	require.NoError(t, f.SetCustomerInfo(completeContact()))

	f.Reset()

	assert.Equal(t, StepService, f.Step())
	assert.Equal(t, Selection{}, f.Selection())
	assert.Nil(t, f.Slots())
	assert.False(t, f.Completed())
}

func TestSlotsLoad_StaleResultDiscarded(t *testing.T) {
	f := New(haircut, hamed)
	require.NoError(t, f.SetDate(someDay))

	staffID, date, rev, ok := f.BeginSlotsLoad()
	require.True(t, ok)
	assert.Equal(t, "hamed", staffID)
	assert.True(t, date.Equal(someDay))

	// The date changes while the fetch is in flight.
	require.NoError(t, f.SetDate(someDay.AddDate(0, 0, 1)))

	applied := f.ApplySlots(rev, []types.TimeString{"10:00", "10:30"})
	assert.False(t, applied, "stale result must be discarded")
	assert.Nil(t, f.Slots())

	// A fetch for the current pair lands normally.
	_, _, rev2, ok := f.BeginSlotsLoad()
	require.True(t, ok)
	assert.True(t, f.ApplySlots(rev2, []types.TimeString{"11:00"}))
	assert.Equal(t, []types.TimeString{"11:00"}, f.Slots())
}

func TestSlotsLoad_RequiresStaffAndDate(t *testing.T) {
	f := New(haircut, nil)
	_, _, _, ok := f.BeginSlotsLoad()
	assert.False(t, ok)
}

func TestMarkCompleted_FreezesFlow(t *testing.T) {
	f := New(haircut, hamed)
	require.NoError(t, f.SetDate(someDay))
	require.NoError(t, f.SetTime("10:00"))
	require.NoError(t, f.Advance())
	require.NoError(t, f.SetCustomerInfo(completeContact()))

	f.MarkCompleted()

	assert.True(t, f.Completed())
	assert.ErrorIs(t, f.Advance(), ErrFlowCompleted)
	assert.ErrorIs(t, f.Retreat(), ErrFlowCompleted)
	assert.ErrorIs(t, f.SetService(haircut), ErrFlowCompleted)
	assert.ErrorIs(t, f.SetDate(someDay), ErrFlowCompleted)
}
