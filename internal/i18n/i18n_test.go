package i18n

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	assert.Equal(t, "Barbier", Translate(LocaleFR, KeyEmailLabelStaff))
	assert.Equal(t, "Barber", Translate(LocaleEN, KeyEmailLabelStaff))

	// Unknown locale falls back to French.
	assert.Equal(t, "Barbier", Translate("de", KeyEmailLabelStaff))

	// Unknown key falls back to the key string.
	assert.Equal(t, "nope", Translate(LocaleFR, Key("nope")))
}

func TestParseLocale(t *testing.T) {
	loc, ok := ParseLocale("")
	assert.True(t, ok)
	assert.Equal(t, DefaultLocale, loc)

	loc, ok = ParseLocale("en")
	assert.True(t, ok)
	assert.Equal(t, LocaleEN, loc)

	_, ok = ParseLocale("de")
	assert.False(t, ok)
}

func TestFormatLongDate(t *testing.T) {
	date := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC) // a Thursday

	assert.Equal(t, "jeudi 5 mars 2026", FormatLongDate(LocaleFR, date))
	assert.Equal(t, "Thursday, March 5, 2026", FormatLongDate(LocaleEN, date))
}
