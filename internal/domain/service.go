package domain

// ServiceCategory groups services on the catalog surface.
type ServiceCategory string

const (
	CategoryHaircut ServiceCategory = "haircut"
	CategoryBeard   ServiceCategory = "beard"
	CategoryCombo   ServiceCategory = "combo"
	CategorySpecial ServiceCategory = "special"
	CategoryExtra   ServiceCategory = "extra"
	CategoryNails   ServiceCategory = "nails"
	CategoryOther   ServiceCategory = "other"
)

// IsValidServiceCategory reports whether s names a known category.
func IsValidServiceCategory(s string) bool {
	switch ServiceCategory(s) {
	case CategoryHaircut, CategoryBeard, CategoryCombo, CategorySpecial,
		CategoryExtra, CategoryNails, CategoryOther:
		return true
	default:
		return false
	}
}

// Service is an offerable salon service. Reference data compiled into the
// catalog at build time, never mutated at runtime.
type Service struct {
	ID              string
	Name            string
	Description     string
	DurationMinutes int
	Price           float64 // untaxed base price, CAD
	Category        ServiceCategory
	Popular         bool
	StaffIDs        []string // staff members authorized to perform the service
}

// CanBePerformedBy reports whether the staff member is authorized to
// perform this service.
func (s *Service) CanBePerformedBy(staffID string) bool {
	for _, id := range s.StaffIDs {
		if id == staffID {
			return true
		}
	}
	return false
}
