package aladhan

// FallbackTimes returns hardcoded approximate Mecca times for the Ramadan
// period, used for display only when every source fails. The Date field labels
// the set as a fallback so it is never mistaken for a real source result.

func FallbackTimes() *Times {
	return &Times{
		Fajr:    "05:27",
		Dhuhr:   "12:27",
		Asr:     "15:48",
		Maghrib: "18:17",
		Isha:    "19:47",
		Date:    "Fallback (Mecca approx.)",
	}
}
