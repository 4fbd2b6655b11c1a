// Package i18n provides the localized texts the booking core emits
// (confirmation emails, user-facing error messages). Keys are a typed
// enumeration rather than free-form dot paths so a missing translation is
// a compile-time error at the call site.
package i18n

// Locale selects a message table. French is the salon's default.
type Locale string

const (
	LocaleFR Locale = "fr"
	LocaleEN Locale = "en"
)

// DefaultLocale is used when a session does not specify one.
const DefaultLocale = LocaleFR

// Key identifies one translatable message.
type Key string

const (
	KeyEmailSubject      Key = "email.subject"
	KeyEmailGreeting     Key = "email.greeting"
	KeyEmailIntro        Key = "email.intro"
	KeyEmailLabelService Key = "email.label.service"
	KeyEmailLabelStaff   Key = "email.label.staff"
	KeyEmailLabelDate    Key = "email.label.date"
	KeyEmailLabelTime    Key = "email.label.time"
	KeyEmailLabelPrice   Key = "email.label.price"
	KeyEmailOutro        Key = "email.outro"

	KeyErrSlotTaken   Key = "error.slot_taken"
	KeyErrPersistence Key = "error.persistence"
)

var tables = map[Locale]map[Key]string{
	LocaleFR: {
		KeyEmailSubject:      "Votre rendez-vous chez Elegant Cutz est confirmé",
		KeyEmailGreeting:     "Bonjour %s,",
		KeyEmailIntro:        "Votre rendez-vous a été enregistré avec succès.",
		KeyEmailLabelService: "Service",
		KeyEmailLabelStaff:   "Barbier",
		KeyEmailLabelDate:    "Date",
		KeyEmailLabelTime:    "Heure",
		KeyEmailLabelPrice:   "Prix",
		KeyEmailOutro:        "Merci d'avoir choisi Elegant Cutz. À bientôt!",
		KeyErrSlotTaken:      "ce créneau vient d'être réservé, veuillez en choisir un autre",
		KeyErrPersistence:    "une erreur est survenue lors de la réservation, veuillez réessayer",
	},
	LocaleEN: {
		KeyEmailSubject:      "Your appointment at Elegant Cutz is confirmed",
		KeyEmailGreeting:     "Hello %s,",
		KeyEmailIntro:        "Your appointment has been booked successfully.",
		KeyEmailLabelService: "Service",
		KeyEmailLabelStaff:   "Barber",
		KeyEmailLabelDate:    "Date",
		KeyEmailLabelTime:    "Time",
		KeyEmailLabelPrice:   "Price",
		KeyEmailOutro:        "Thank you for choosing Elegant Cutz. See you soon!",
		KeyErrSlotTaken:      "this time slot has just been booked, please pick another one",
		KeyErrPersistence:    "something went wrong while booking, please try again",
	},
}

// ParseLocale normalizes a client-supplied locale tag. Empty input maps
// to the default; anything other than the supported tags is rejected.
func ParseLocale(s string) (Locale, bool) {
	switch Locale(s) {
	case "":
		return DefaultLocale, true
	case LocaleFR:
		return LocaleFR, true
	case LocaleEN:
		return LocaleEN, true
	default:
		return "", false
	}
}

// Translate resolves key in the given locale, falling back to French and
// finally to the key string itself when unresolved.
func Translate(loc Locale, key Key) string {
	if table, ok := tables[loc]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := tables[DefaultLocale][key]; ok {
		return msg
	}
	return string(key)
}
