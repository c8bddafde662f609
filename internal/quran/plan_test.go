package quran

import "testing"

func TestGeneratePlan_CoversAllPagesEvenly(t *testing.T) {
	t.Parallel()

	for _, totalDays := range []int{29, 30} {
		plan := GeneratePlan(totalDays)

		if len(plan.PagesPerDay) != totalDays {
			t.Fatalf("len(PagesPerDay)=%d, want %d", len(plan.PagesPerDay), totalDays)
		}

		sum, min, max := 0, plan.PagesPerDay[0], plan.PagesPerDay[0]
		for _, pages := range plan.PagesPerDay {
			sum += pages
			if pages < min {
				min = pages
			}
			if pages > max {
				max = pages
			}
		}

		if sum != TotalPages {
			t.Fatalf("totalDays=%d: sum=%d, want %d", totalDays, sum, TotalPages)
		}
		if max-min > 1 {
			t.Fatalf("totalDays=%d: quota spread=%d, want <= 1", totalDays, max-min)
		}
	}
}

func TestGeneratePlan_RemainderGoesToEarliestDays(t *testing.T) {
	t.Parallel()

	// 604 = 30*20 + 4: the first 4 days get 21 pages, the other 26 get 20.
	plan := GeneratePlan(30)

	for day := 1; day <= 4; day++ {
		if got := plan.PagesPerDay[day-1]; got != 21 {
			t.Fatalf("day %d quota=%d, want 21", day, got)
		}
	}
	for day := 5; day <= 30; day++ {
		if got := plan.PagesPerDay[day-1]; got != 20 {
			t.Fatalf("day %d quota=%d, want 20", day, got)
		}
	}
}
