package quran

// TotalPages is the page count of the standard Madani mushaf.
const TotalPages = 604

// Plan is the per-day page quota covering the full mushaf over a Ramadan.

type Plan struct {
	TotalDays   int   `json:"totalDays"`
	PagesPerDay []int `json:"pagesPerDay"`
}

// GeneratePlan splits TotalPages evenly across totalDays. The remainder is
// spread across the earliest days, so no two quotas differ by more than one page.

func GeneratePlan(totalDays int) Plan {
	basePages := TotalPages / totalDays
	remainder := TotalPages % totalDays

	pagesPerDay := make([]int, 0, totalDays)
	for day := 1; day <= totalDays; day++ {
		pages := basePages
		if day <= remainder {
			pages++
		}
		pagesPerDay = append(pagesPerDay, pages)
	}

	return Plan{TotalDays: totalDays, PagesPerDay: pagesPerDay}
}
