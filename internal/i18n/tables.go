package i18n

var tables = map[Locale]map[string]string{
	Arabic: {
		"fajr":    "الفجر",
		"dhuhr":   "الظهر",
		"asr":     "العصر",
		"maghrib": "المغرب",
		"isha":    "العشاء",

		"adhan":            "الأذان",
		"prayerTime":       "حان وقت صلاة {{prayer}}",
		"prayerSoon":       "صلاة {{prayer}} بعد {{minutes}} دقيقة",
		"prepareForPrayer": "استعد لصلاة {{prayer}}",

		"dayOf":               "اليوم {{day}} من {{total}}",
		"statusAhead":         "متقدم على الجدول، ما شاء الله!",
		"statusOnTime":        "على الجدول، واصل!",
		"statusBehind":        "متأخر عن الجدول، تحتاج {{pages}} صفحة يوميا",
		"pagesRead":           "قرأت {{read}} صفحة، تبقى {{remaining}}",
		"locationNotAvailable": "الموقع غير متوفر",
		"failedToLoadPrayerTimes": "تعذر تحميل مواقيت الصلاة",
	},
	English: {
		"fajr":    "Fajr",
		"dhuhr":   "Dhuhr",
		"asr":     "Asr",
		"maghrib": "Maghrib",
		"isha":    "Isha",

		"adhan":            "Adhan",
		"prayerTime":       "It is time for {{prayer}} prayer",
		"prayerSoon":       "{{prayer}} prayer in {{minutes}} minutes",
		"prepareForPrayer": "Prepare for {{prayer}} prayer",

		"dayOf":               "Day {{day}} of {{total}}",
		"statusAhead":         "Ahead of schedule, masha'Allah!",
		"statusOnTime":        "On schedule, keep going!",
		"statusBehind":        "Behind schedule, you need {{pages}} pages per day",
		"pagesRead":           "{{read}} pages read, {{remaining}} remaining",
		"locationNotAvailable": "Location not available",
		"failedToLoadPrayerTimes": "Could not load prayer times",
	},
}
