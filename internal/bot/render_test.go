package bot

import (
	"strings"
	"testing"

	"ramadanapp/internal/aladhan"
	"ramadanapp/internal/i18n"
	"ramadanapp/internal/quran"
)

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	summary := quran.Summary{
		TotalDays:            30,
		PagesRead:            43,
		RemainingPages:       561,
		CompletedDays:        2,
		RemainingDays:        28,
		PagesPerRemainingDay: 21,
		ProgressPercent:      7,
		ReadingDay:           2,
		RamadanDay:           5,
		Status:               quran.StatusBehind,
	}

	got := FormatSummary(i18n.English, summary)

	for _, want := range []string{"Day 5 of 30", "43 pages read", "561 remaining", "2/30 days done (7%)", "21 pages per day"} {
		if !strings.Contains(got, want) {
			t.Fatalf("FormatSummary missing %q:\n%s", want, got)
		}
	}
}

func TestFormatTimes(t *testing.T) {
	t.Parallel()

	times := &aladhan.Times{
		Fajr: "05:12", Dhuhr: "12:33", Asr: "15:46", Maghrib: "18:09", Isha: "19:31",
		Date: "20 Feb 2026 — 3 رمضان 1447",
	}

	got := FormatTimes(i18n.Arabic, times)

	for _, want := range []string{"20 Feb 2026", "الفجر: `05:12`", "العشاء: `19:31`"} {
		if !strings.Contains(got, want) {
			t.Fatalf("FormatTimes missing %q:\n%s", want, got)
		}
	}
}

func TestFormatMethodComparison_ShowsFailuresExplicitly(t *testing.T) {
	t.Parallel()

	ok := &aladhan.Times{Fajr: "05:00", Dhuhr: "12:00", Asr: "15:30", Maghrib: "18:00", Isha: "19:30", Date: "20 Feb 2026"}
	results := []aladhan.SourceResult{
		{Method: aladhan.Methods[0], Times: ok},
		{Method: aladhan.Methods[1], Err: "HTTP 502"},
	}

	got := FormatMethodComparison(i18n.English, results)

	if !strings.Contains(got, "✅ *Umm Al-Qura (Makkah)*") {
		t.Fatalf("missing success entry:\n%s", got)
	}
	if !strings.Contains(got, "❌ *Muslim World League*: HTTP 502") {
		t.Fatalf("missing failure entry:\n%s", got)
	}
}
