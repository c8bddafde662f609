package bot

import (
	"fmt"
	"strconv"
	"strings"

	"ramadanapp/internal/aladhan"
	"ramadanapp/internal/i18n"
	"ramadanapp/internal/quran"
)

func statusLine(locale i18n.Locale, summary quran.Summary) string {
	switch summary.Status {
	case quran.StatusAhead:
		return "🟢 " + i18n.Translate(locale, "statusAhead", nil)
	case quran.StatusBehind:
		return "🔴 " + i18n.Translate(locale, "statusBehind", map[string]string{
			"pages": strconv.Itoa(summary.PagesPerRemainingDay),
		})
	default:
		return "🟡 " + i18n.Translate(locale, "statusOnTime", nil)
	}
}

// FormatSummary renders the reading state as a Markdown message.

func FormatSummary(locale i18n.Locale, summary quran.Summary) string {
	var sb strings.Builder
	sb.WriteString("📖 *")
	sb.WriteString(i18n.Translate(locale, "dayOf", map[string]string{
		"day":   strconv.Itoa(summary.RamadanDay),
		"total": strconv.Itoa(summary.TotalDays),
	}))
	sb.WriteString("*\n")
	sb.WriteString(i18n.Translate(locale, "pagesRead", map[string]string{
		"read":      strconv.Itoa(summary.PagesRead),
		"remaining": strconv.Itoa(summary.RemainingPages),
	}))
	sb.WriteString(fmt.Sprintf("\n%d/%d days done (%d%%)\n", summary.CompletedDays, summary.TotalDays, summary.ProgressPercent))
	sb.WriteString(statusLine(locale, summary))
	return sb.String()
}

// FormatTimes renders one day's prayer times.

func FormatTimes(locale i18n.Locale, times *aladhan.Times) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🕌 *%s*\n", times.Date))
	for _, entry := range []struct{ key, time string }{
		{"fajr", times.Fajr},
		{"dhuhr", times.Dhuhr},
		{"asr", times.Asr},
		{"maghrib", times.Maghrib},
		{"isha", times.Isha},
	} {
		sb.WriteString(fmt.Sprintf("%s: `%s`\n", i18n.PrayerLabel(locale, entry.key), entry.time))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// FormatMethodComparison renders every source's outcome, marking failures
// instead of hiding them.

func FormatMethodComparison(locale i18n.Locale, results []aladhan.SourceResult) string {
	var sb strings.Builder
	sb.WriteString("🧭 *Calculation methods*\n")
	for _, res := range results {
		name := res.Method.NameEn
		if locale == i18n.Arabic {
			name = res.Method.NameAr
		}
		if res.Times == nil {
			sb.WriteString(fmt.Sprintf("\n❌ *%s*: %s\n", name, res.Err))
			continue
		}
		sb.WriteString(fmt.Sprintf("\n✅ *%s*\n%s %s | %s %s | %s %s | %s %s | %s %s\n",
			name,
			i18n.PrayerLabel(locale, "fajr"), res.Times.Fajr,
			i18n.PrayerLabel(locale, "dhuhr"), res.Times.Dhuhr,
			i18n.PrayerLabel(locale, "asr"), res.Times.Asr,
			i18n.PrayerLabel(locale, "maghrib"), res.Times.Maghrib,
			i18n.PrayerLabel(locale, "isha"), res.Times.Isha,
		))
	}
	return strings.TrimRight(sb.String(), "\n")
}
