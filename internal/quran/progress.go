package quran

import "time"

// DayProgress is one day of the reading ledger. Page ranges are inclusive and
// contiguous across days: day i+1 starts at day i's PagesEnd + 1.

type DayProgress struct {
	Day         int        `json:"day"`
	PagesStart  int        `json:"pagesStart"`
	PagesEnd    int        `json:"pagesEnd"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// BuildInitialProgress assigns each plan day its contiguous page range,
// starting at page 1, all days incomplete.

func BuildInitialProgress(plan Plan) []DayProgress {
	progress := make([]DayProgress, 0, plan.TotalDays)
	currentPage := 1

	for day := 1; day <= plan.TotalDays; day++ {
		pagesForDay := plan.PagesPerDay[day-1]
		progress = append(progress, DayProgress{
			Day:        day,
			PagesStart: currentPage,
			PagesEnd:   currentPage + pagesForDay - 1,
		})
		currentPage += pagesForDay
	}

	return progress
}

// AutoMark derives completion from the furthest page reached. lastReadPage is a
// position, not a count: page 44 means pages 1-43 are read, so a day is complete
// iff its PagesEnd <= lastReadPage-1. CompletedAt is stamped the first time a day
// turns complete, preserved while it stays complete, and cleared when it reverts.
// Calling AutoMark twice with the same page yields the same ledger.

func AutoMark(progress []DayProgress, lastReadPage int, now time.Time) []DayProgress {
	pagesRead := lastReadPage - 1
	if pagesRead < 0 {
		pagesRead = 0
	}

	updated := make([]DayProgress, len(progress))
	for i, p := range progress {
		p.Completed = p.PagesEnd <= pagesRead
		if p.Completed {
			if p.CompletedAt == nil {
				stamped := now
				p.CompletedAt = &stamped
			}
		} else {
			p.CompletedAt = nil
		}
		updated[i] = p
	}

	return updated
}

// Recalculate re-paces the remaining pages evenly across the incomplete days,
// anchored after the highest PagesEnd among completed days. Completed days keep
// their ranges. Supports the manual-toggle completion model; the page-position
// model regenerates fixed ranges from the plan instead and must not call this.

func Recalculate(progress []DayProgress, plan Plan) ([]DayProgress, Plan) {
	pagesAlreadyCovered := 0
	remainingDayCount := 0
	for _, p := range progress {
		if p.Completed {
			if p.PagesEnd > pagesAlreadyCovered {
				pagesAlreadyCovered = p.PagesEnd
			}
		} else {
			remainingDayCount++
		}
	}

	remainingPages := TotalPages - pagesAlreadyCovered
	if remainingPages <= 0 || remainingDayCount <= 0 {
		return progress, plan
	}

	basePagesPerDay := remainingPages / remainingDayCount
	extraPages := remainingPages % remainingDayCount

	newPagesPerDay := make([]int, len(plan.PagesPerDay))
	copy(newPagesPerDay, plan.PagesPerDay)

	updated := make([]DayProgress, len(progress))
	currentPage := pagesAlreadyCovered + 1
	extraIndex := 0
	for i, p := range progress {
		if p.Completed {
			updated[i] = p
			continue
		}

		pagesForThisDay := basePagesPerDay
		if extraIndex < extraPages {
			pagesForThisDay++
		}
		extraIndex++

		p.PagesStart = currentPage
		p.PagesEnd = currentPage + pagesForThisDay - 1
		currentPage += pagesForThisDay

		newPagesPerDay[p.Day-1] = pagesForThisDay
		updated[i] = p
	}

	return updated, Plan{TotalDays: plan.TotalDays, PagesPerDay: newPagesPerDay}
}
