package i18n

import "strings"

// Locale selects a translation table. There is no package-level current
// locale: callers thread the locale through explicitly.

type Locale string

const (
	Arabic  Locale = "ar"
	English Locale = "en"
)

// Translate renders a key in the given locale, interpolating {{param}}
// placeholders. Unknown locales and missing keys fall back to Arabic, then to
// the key itself.

func Translate(locale Locale, key string, params map[string]string) string {
	table, ok := tables[locale]
	if !ok {
		table = tables[Arabic]
	}

	text, ok := table[key]
	if !ok {
		text, ok = tables[Arabic][key]
	}
	if !ok {
		text = key
	}

	for param, value := range params {
		text = strings.ReplaceAll(text, "{{"+param+"}}", value)
	}
	return text
}

// PrayerLabel translates a canonical prayer key (fajr, dhuhr, ...).

func PrayerLabel(locale Locale, prayer string) string {
	return Translate(locale, strings.ToLower(prayer), nil)
}
