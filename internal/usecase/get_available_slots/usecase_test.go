package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elegantcut/booking-service/internal/domain"
	"github.com/elegantcut/booking-service/pkg/types"
)

type mockReservationRepo struct {
	slots      []domain.BookedSlot
	err        error
	calls      int
	gotStaffID string
	gotDate    time.Time
}

func (m *mockReservationRepo) GetBookedSlots(ctx context.Context, staffID string, date time.Time) ([]domain.BookedSlot, error) {
	m.calls++
	m.gotStaffID = staffID
	m.gotDate = date
	return m.slots, m.err
}

type mockCatalog struct {
	staff map[string]*domain.StaffMember
}

func (m *mockCatalog) StaffByID(id string) (*domain.StaffMember, bool) {
	s, ok := m.staff[id]
	return s, ok
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testStaff() *domain.StaffMember {
	return &domain.StaffMember{
		ID:   "hamed",
		Name: "Hamed",
		Availability: domain.WeeklyAvailability{
			// Monday is a short day, Tuesday a normal one, Sunday off.
			time.Monday:  {"10:00", "10:30", "11:00", "11:30"},
			time.Tuesday: {"10:00", "10:30", "11:00"},
		},
	}
}

func newTestUseCase(repo *mockReservationRepo, now time.Time) *UseCase {
	return &UseCase{
		reservationRepo: repo,
		catalog:         &mockCatalog{staff: map[string]*domain.StaffMember{"hamed": testStaff()}},
		timeProvider:    &fixedClock{now: now},
		logger:          nopLogger{},
	}
}

// 2026-03-09 is a Monday.
var monday = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

func TestExecute_FullTemplateOnFutureDay(t *testing.T) {
	repo := &mockReservationRepo{}
	uc := newTestUseCase(repo, monday.Add(12*time.Hour))

	tuesday := monday.AddDate(0, 0, 1)
	resp, err := uc.Execute(context.Background(), &Request{StaffID: "hamed", Date: tuesday})
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"10:00", "10:30", "11:00"}, resp.Slots)
	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, "hamed", repo.gotStaffID)
}

func TestExecute_OffDayReturnsEmptyWithoutStorageCall(t *testing.T) {
	repo := &mockReservationRepo{}
	uc := newTestUseCase(repo, monday.Add(12*time.Hour))

	sunday := monday.AddDate(0, 0, 6)
	resp, err := uc.Execute(context.Background(), &Request{StaffID: "hamed", Date: sunday})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.NotNil(t, resp.Slots)
	assert.Zero(t, repo.calls, "off-day must not query storage")
}

func TestExecute_TodayKeepsOnlyStrictlyLaterSlots(t *testing.T) {
	repo := &mockReservationRepo{}
	// Now is exactly 10:30 on Monday: the 10:30 slot is excluded too.
	uc := newTestUseCase(repo, monday.Add(10*time.Hour+30*time.Minute))

	resp, err := uc.Execute(context.Background(), &Request{StaffID: "hamed", Date: monday})
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"11:00", "11:30"}, resp.Slots)
}

func TestExecute_BookedSlotsExcludedOrderPreserved(t *testing.T) {
	repo := &mockReservationRepo{
		slots: []domain.BookedSlot{{StartTime: "10:30", DurationMinutes: 30}},
	}
	uc := newTestUseCase(repo, monday.Add(8*time.Hour))

	tuesday := monday.AddDate(0, 0, 1)
	resp, err := uc.Execute(context.Background(), &Request{StaffID: "hamed", Date: tuesday})
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"10:00", "11:00"}, resp.Slots)
}

func TestExecute_FullyBookedDayIsEmpty(t *testing.T) {
	repo := &mockReservationRepo{
		slots: []domain.BookedSlot{
			{StartTime: "10:00"}, {StartTime: "10:30"}, {StartTime: "11:00"},
		},
	}
	uc := newTestUseCase(repo, monday.Add(8*time.Hour))

	tuesday := monday.AddDate(0, 0, 1)
	resp, err := uc.Execute(context.Background(), &Request{StaffID: "hamed", Date: tuesday})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
}

func TestExecute_UnknownStaff(t *testing.T) {
	repo := &mockReservationRepo{}
	uc := newTestUseCase(repo, monday.Add(8*time.Hour))

	_, err := uc.Execute(context.Background(), &Request{StaffID: "nobody", Date: monday})
	assert.ErrorIs(t, err, ErrStaffNotFound)
	assert.Zero(t, repo.calls)
}

func TestExecute_PastDate(t *testing.T) {
	repo := &mockReservationRepo{}
	uc := newTestUseCase(repo, monday.Add(8*time.Hour))

	_, err := uc.Execute(context.Background(), &Request{StaffID: "hamed", Date: monday.AddDate(0, 0, -1)})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_BookingWindowBoundary(t *testing.T) {
	repo := &mockReservationRepo{}
	uc := newTestUseCase(repo, monday.Add(8*time.Hour))

	// Day 30 (inclusive) is 2026-04-08, a Wednesday the staff member is
	// off: selectable window-wise, resolves to an empty list.
	day30 := monday.AddDate(0, 0, domain.MaxAdvanceBookingDays)
	resp, err := uc.Execute(context.Background(), &Request{StaffID: "hamed", Date: day30})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)

	day31 := monday.AddDate(0, 0, domain.MaxAdvanceBookingDays+1)
	_, err = uc.Execute(context.Background(), &Request{StaffID: "hamed", Date: day31})
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &mockReservationRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(repo, monday.Add(8*time.Hour))

	tuesday := monday.AddDate(0, 0, 1)
	_, err := uc.Execute(context.Background(), &Request{StaffID: "hamed", Date: tuesday})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestIsDateSelectable(t *testing.T) {
	staff := testStaff()
	now := monday.Add(12 * time.Hour)

	assert.True(t, IsDateSelectable(staff, monday, now), "today with a template is selectable")
	assert.True(t, IsDateSelectable(staff, monday.AddDate(0, 0, 1), now))
	assert.False(t, IsDateSelectable(staff, monday.AddDate(0, 0, 6), now), "off-day weekday")
	assert.False(t, IsDateSelectable(staff, monday.AddDate(0, 0, -1), now), "past date")

	// Day 30 is a Wednesday (off), day 28 a Monday (works), day 35 a
	// Monday beyond the window.
	assert.True(t, IsDateSelectable(staff, monday.AddDate(0, 0, 28), now))
	assert.False(t, IsDateSelectable(staff, monday.AddDate(0, 0, 35), now))
	assert.False(t, IsDateSelectable(nil, monday, now))
}
