package catalog

import (
	"fmt"
	"time"

	"github.com/elegantcut/booking-service/internal/domain"
	"github.com/elegantcut/booking-service/pkg/types"
)

// halfHourGrid generates the inclusive list of slot start times from first
// to last on a 30-minute grid. Templates are authored in ascending order
// by construction.
func halfHourGrid(first, last types.TimeString) []types.TimeString {
	start, err := first.Minutes()
	if err != nil {
		panic(fmt.Sprintf("catalog: bad template time %q: %v", first, err))
	}
	end, err := last.Minutes()
	if err != nil {
		panic(fmt.Sprintf("catalog: bad template time %q: %v", last, err))
	}

	slots := make([]types.TimeString, 0, (end-start)/30+1)
	for m := start; m <= end; m += 30 {
		slots = append(slots, types.TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)))
	}
	return slots
}

// salonWeek is the shop-wide weekly template: closed Sunday, shorter
// Monday and Saturday, late Thursday and Friday.
func salonWeek() domain.WeeklyAvailability {
	return domain.WeeklyAvailability{
		time.Monday:    halfHourGrid("10:00", "15:30"),
		time.Tuesday:   halfHourGrid("10:00", "18:30"),
		time.Wednesday: halfHourGrid("10:00", "18:30"),
		time.Thursday:  halfHourGrid("10:00", "19:30"),
		time.Friday:    halfHourGrid("10:00", "19:30"),
		time.Saturday:  halfHourGrid("10:00", "17:30"),
	}
}

var services = []domain.Service{
	{
		ID:              "special-december-vip",
		Name:            "[SPÉCIAL DÉCEMBRE] Service VIP",
		Description:     "Coupe complète + taille de barbe + serviette chaude + masque visage. 45$ au lieu de 75$. Sans barbe: 35$. Offre limitée à décembre!",
		DurationMinutes: 30,
		Price:           45,
		Category:        domain.CategorySpecial,
		Popular:         true,
		StaffIDs:        []string{"hamed", "vincent", "ikram"},
	},
	{
		ID:              "haircut",
		Name:            "Coupe / Haircut",
		DurationMinutes: 30,
		Price:           35,
		Category:        domain.CategoryHaircut,
		StaffIDs:        []string{"ikram", "vincent"},
	},
	{
		ID:              "haircut-beard",
		Name:            "Coupe & Barbe / Haircut & Beard",
		DurationMinutes: 45,
		Price:           45,
		Category:        domain.CategoryCombo,
		Popular:         true,
		StaffIDs:        []string{"ikram", "vincent"},
	},
	{
		ID:              "haircut-kids",
		Name:            "Coupe Enfant",
		Description:     "Pour enfants de 0 à 12 ans.",
		DurationMinutes: 30,
		Price:           25,
		Category:        domain.CategoryHaircut,
		StaffIDs:        []string{"vincent"},
	},
	{
		ID:              "skinfade",
		Name:            "Skinfade / Haircut (Coupe Cheveux)",
		DurationMinutes: 30,
		Price:           40,
		Category:        domain.CategoryHaircut,
		Popular:         true,
		StaffIDs:        []string{"hamed"},
	},
	{
		ID:              "kids-skinfade",
		Name:            "Kids Skinfade (Coupe Enfants)",
		Description:     "Pour enfants de 0 à 12 ans.",
		DurationMinutes: 30,
		Price:           30,
		Category:        domain.CategoryHaircut,
		StaffIDs:        []string{"hamed", "ikram"},
	},
	{
		ID:              "skinfade-beard",
		Name:            "Skinfade & Beard (Cheveux & Barbe)",
		DurationMinutes: 30,
		Price:           50,
		Category:        domain.CategoryCombo,
		StaffIDs:        []string{"hamed"},
	},
	{
		ID:              "curly-hair",
		Name:            "Curly Hair (Perm Frisés)",
		DurationMinutes: 60,
		Price:           90,
		Category:        domain.CategorySpecial,
		StaffIDs:        []string{"hamed"},
	},
	{
		ID:              "line-up",
		Name:            "Line Up (Contour)",
		DurationMinutes: 10,
		Price:           30,
		Category:        domain.CategoryHaircut,
		StaffIDs:        []string{"hamed"},
	},
	{
		ID:              "black-mask",
		Name:            "Black Mask (Masque Noir)",
		DurationMinutes: 10,
		Price:           15,
		Category:        domain.CategoryExtra,
		StaffIDs:        []string{"hamed"},
	},
	{
		ID:              "face-nose-waxing",
		Name:            "Face & Nose Waxing (Epilation Faciale + Nez)",
		DurationMinutes: 15,
		Price:           15,
		Category:        domain.CategoryExtra,
		StaffIDs:        []string{"hamed", "ikram"},
	},
	{
		ID:              "mens-facial-cleansing",
		Name:            "Men's Facial Cleansing / Soin du Visage Homme",
		Description:     "Nettoyage en profondeur et hydratation pour une peau éclatante. Deep cleansing and hydration for a fresh, healthy look.",
		DurationMinutes: 60,
		Price:           120,
		Category:        domain.CategoryExtra,
		StaffIDs:        []string{"hamed"},
	},
	{
		ID:              "nail-art",
		Name:            "Nail Art (Supplément)",
		Description:     "Design nail art simple ou détaillé (prix selon design). Simple or advanced nail art design.",
		DurationMinutes: 20,
		Price:           10,
		Category:        domain.CategoryNails,
		StaffIDs:        []string{"anosha"},
	},
	{
		ID:              "mani-pedi-combo",
		Name:            "Mani + Pedi Combo",
		Description:     "Soin complet des mains et pieds en une seule visite. Complete hand and foot care in one appointment.",
		DurationMinutes: 90,
		Price:           65,
		Category:        domain.CategoryNails,
		Popular:         true,
		StaffIDs:        []string{"anosha"},
	},
	{
		ID:              "manicure-classique",
		Name:            "Manicure Classique",
		Description:     "Nettoyage des cuticules, limage des ongles et vernis. Clean cuticles, nail shaping and polish.",
		DurationMinutes: 40,
		Price:           25,
		Category:        domain.CategoryNails,
		StaffIDs:        []string{"anosha"},
	},
	{
		ID:              "pedicure-spa",
		Name:            "Pédicure Spa",
		Description:     "Pédicure spa relaxante avec bain de pieds, exfoliation et soin des ongles. Relaxing spa pedicure with foot soak, exfoliation and nail care.",
		DurationMinutes: 60,
		Price:           40,
		Category:        domain.CategoryNails,
		StaffIDs:        []string{"anosha"},
	},
	{
		ID:              "premium-vip-package",
		Name:            "Premium VIP Package",
		Description:     "Coupe + barbe + soin facial VIP. Nettoyage, exfoliation, vapeur, masque anti-âge, tonification, hydratation et massage relaxant.",
		DurationMinutes: 60,
		Price:           180,
		Category:        domain.CategoryOther,
		Popular:         true,
		StaffIDs:        []string{"hamed"},
	},
	{
		ID:              "contour",
		Name:            "Contour",
		DurationMinutes: 30,
		Price:           25,
		Category:        domain.CategoryOther,
		StaffIDs:        []string{"vincent", "ikram"},
	},
}

var staff = []domain.StaffMember{
	{
		ID:           "hamed",
		Name:         "Hamed",
		Role:         "Owner Barber & Stylist",
		Rating:       5.0,
		Reviews:      156,
		Specialties:  []string{"Skinfade", "Curly Hair", "Facial"},
		Availability: salonWeek(),
	},
	{
		ID:           "vincent",
		Name:         "Vincent",
		Role:         "Junior Barber & Stylist",
		Rating:       4.9,
		Reviews:      98,
		Specialties:  []string{"Coupe Classique", "Coupe Enfant", "Contour"},
		Availability: salonWeek(),
	},
	{
		ID:           "ikram",
		Name:         "Ikram",
		Role:         "Barber & Stylist",
		Rating:       4.9,
		Reviews:      87,
		Specialties:  []string{"Coupe", "Barbe", "Kids Skinfade"},
		Availability: salonWeek(),
	},
	{
		ID:           "anosha",
		Name:         "Anosha",
		Role:         "Nail Artist | Manicure & Pedicure",
		Rating:       4.8,
		Reviews:      67,
		Specialties:  []string{"Manucure", "Pédicure", "Nail Art"},
		Availability: salonWeek(),
	},
}
