package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elegantcut/booking-service/internal/domain"
)

func TestServiceByID(t *testing.T) {
	svc, ok := ServiceByID("haircut")
	require.True(t, ok)
	assert.Equal(t, "Coupe / Haircut", svc.Name)
	assert.Equal(t, 35.0, svc.Price)

	_, ok = ServiceByID("nope")
	assert.False(t, ok)
}

func TestStaffByID(t *testing.T) {
	m, ok := StaffByID("hamed")
	require.True(t, ok)
	assert.Equal(t, "Hamed", m.Name)

	_, ok = StaffByID("nope")
	assert.False(t, ok)
}

func TestStaffForService_MatchesServiceStaffIDs(t *testing.T) {
	for _, svc := range Services() {
		members := StaffForService(svc.ID)
		assert.Len(t, members, len(svc.StaffIDs), "service %s", svc.ID)
		for _, m := range members {
			assert.True(t, svc.CanBePerformedBy(m.ID), "service %s lists staff %s", svc.ID, m.ID)
		}
	}
}

func TestServicesForStaff_Inverse(t *testing.T) {
	for _, m := range Staff() {
		for _, svc := range ServicesForStaff(m.ID) {
			assert.True(t, svc.CanBePerformedBy(m.ID))
		}
	}
}

func TestEveryStaffMemberHasValidTemplates(t *testing.T) {
	for _, m := range Staff() {
		assert.NotEmpty(t, m.Availability, "staff %s has no availability", m.ID)
		for day, slots := range m.Availability {
			require.NotEmpty(t, slots, "staff %s: empty template on %s", m.ID, day)
			for i, s := range slots {
				require.NoError(t, s.Validate(), "staff %s %s slot %d", m.ID, day, i)
				if i > 0 {
					assert.True(t, slots[i-1].IsBefore(s),
						"staff %s %s: template out of order at %d", m.ID, day, i)
				}
			}
		}
		assert.NotContains(t, m.Availability, time.Sunday, "salon is closed on Sunday")
	}
}

func TestEveryServiceReferencesKnownStaff(t *testing.T) {
	for _, svc := range Services() {
		require.NotEmpty(t, svc.StaffIDs, "service %s has no staff", svc.ID)
		for _, id := range svc.StaffIDs {
			_, ok := StaffByID(id)
			assert.True(t, ok, "service %s references unknown staff %s", svc.ID, id)
		}
		assert.Greater(t, svc.Price, 0.0, "service %s", svc.ID)
		assert.Greater(t, svc.DurationMinutes, 0, "service %s", svc.ID)
	}
}

func TestServicesByCategory(t *testing.T) {
	nails := ServicesByCategory(domain.CategoryNails)
	require.NotEmpty(t, nails)
	for _, svc := range nails {
		assert.Equal(t, domain.CategoryNails, svc.Category)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	first := Services()[0].ID
	list := Services()
	list[0].ID = "mutated"
	assert.Equal(t, first, Services()[0].ID)

	svc, ok := ServiceByID("haircut")
	require.True(t, ok)
	svc.Name = "mutated"
	again, _ := ServiceByID("haircut")
	assert.Equal(t, "Coupe / Haircut", again.Name)
}
