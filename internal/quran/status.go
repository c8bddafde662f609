package quran

import "time"

// Status compares reading pace against the calendar.

type Status string

const (
	StatusAhead  Status = "ahead"
	StatusOnTime Status = "onTime"
	StatusBehind Status = "behind"
)

// Classify compares how many days' worth of reading is done (readingDay)
// against the elapsed calendar day. One day of slack still counts as on time.

func Classify(readingDay, ramadanDay int) Status {
	if readingDay >= ramadanDay {
		return StatusAhead
	}
	if ramadanDay-readingDay <= 1 {
		return StatusOnTime
	}
	return StatusBehind
}

// CurrentRamadanDay returns the 1-based calendar day since startDate, clamped
// to [1, totalDays]. The start date is fixed configuration, set once per year.

func CurrentRamadanDay(now, startDate time.Time, totalDays int) int {
	day := int(now.Sub(startDate)/(24*time.Hour)) + 1
	if day < 1 {
		return 1
	}
	if day > totalDays {
		return totalDays
	}
	return day
}

// Summary is the derived reading state handed to the rendering layer.
// Nothing in it is persisted; it is recomputed from plan + progress + page.

type Summary struct {
	TotalDays            int
	LastReadPage         int
	PagesRead            int
	RemainingPages       int
	CompletedDays        int
	RemainingDays        int
	PagesPerRemainingDay int
	ProgressPercent      int
	ReadingDay           int
	RamadanDay           int
	Status               Status
}

// Summarize derives the full reading state for display.

func Summarize(plan Plan, progress []DayProgress, lastReadPage int, now, startDate time.Time) Summary {
	completedDays := 0
	for _, p := range progress {
		if p.Completed {
			completedDays++
		}
	}

	pagesRead := lastReadPage - 1
	if pagesRead < 0 {
		pagesRead = 0
	}
	remainingPages := TotalPages - pagesRead
	if remainingPages < 0 {
		remainingPages = 0
	}

	remainingDays := len(progress) - completedDays
	pagesPerRemainingDay := 0
	if remainingDays > 0 {
		pagesPerRemainingDay = (remainingPages + remainingDays - 1) / remainingDays
	}

	percent := 0
	if plan.TotalDays > 0 {
		percent = (completedDays*100 + plan.TotalDays/2) / plan.TotalDays
	}

	ramadanDay := CurrentRamadanDay(now, startDate, plan.TotalDays)

	return Summary{
		TotalDays:            plan.TotalDays,
		LastReadPage:         lastReadPage,
		PagesRead:            pagesRead,
		RemainingPages:       remainingPages,
		CompletedDays:        completedDays,
		RemainingDays:        remainingDays,
		PagesPerRemainingDay: pagesPerRemainingDay,
		ProgressPercent:      percent,
		ReadingDay:           completedDays,
		RamadanDay:           ramadanDay,
		Status:               Classify(completedDays, ramadanDay),
	}
}
