package i18n

import (
	"fmt"
	"time"
)

var frWeekdays = [...]string{
	"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
}

var frMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// FormatLongDate renders a calendar date the way it appears in the
// confirmation email, e.g. "jeudi 5 mars 2026" or "Thursday, March 5, 2026".
func FormatLongDate(loc Locale, date time.Time) string {
	if loc == LocaleEN {
		return date.Format("Monday, January 2, 2006")
	}
	return fmt.Sprintf("%s %d %s %d",
		frWeekdays[date.Weekday()], date.Day(), frMonths[date.Month()-1], date.Year())
}
