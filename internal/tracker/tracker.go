package tracker

import (
	"fmt"
	"time"

	"ramadanapp/internal/quran"
)

// Store is the slice of persistence the tracker needs.

type Store interface {
	GetPlan() (*quran.Plan, error)
	SavePlan(plan quran.Plan) error
	GetProgress() ([]quran.DayProgress, error)
	SaveProgress(progress []quran.DayProgress) error
	GetLastReadPage() (int, error)
	SaveLastReadPage(page int) error
}

// Tracker reconciles the stored plan and ledger against the furthest page
// read. It is the only writer of the daily ledger.

type Tracker struct {
	store        Store
	totalDays    int
	ramadanStart time.Time
}

func New(store Store, totalDays int, ramadanStart time.Time) *Tracker {
	return &Tracker{
		store:        store,
		totalDays:    totalDays,
		ramadanStart: ramadanStart,
	}
}

// Refresh loads or (re)creates the plan, re-derives the ledger from the
// last-read page, persists both and returns the summary. A stored plan whose
// day count no longer matches configuration is discarded and regenerated.

func (t *Tracker) Refresh(now time.Time) (quran.Summary, error) {
	lastReadPage, err := t.store.GetLastReadPage()
	if err != nil {
		return quran.Summary{}, err
	}

	plan, err := t.store.GetPlan()
	if err != nil {
		return quran.Summary{}, err
	}

	var progress []quran.DayProgress
	if plan != nil && plan.TotalDays == t.totalDays {
		progress, err = t.store.GetProgress()
		if err != nil {
			return quran.Summary{}, err
		}
		if len(progress) == 0 {
			progress = quran.BuildInitialProgress(*plan)
		}
	} else {
		fresh := quran.GeneratePlan(t.totalDays)
		if err := t.store.SavePlan(fresh); err != nil {
			return quran.Summary{}, err
		}
		plan = &fresh
		progress = quran.BuildInitialProgress(fresh)
	}

	progress = quran.AutoMark(progress, lastReadPage, now)
	if err := t.store.SaveProgress(progress); err != nil {
		return quran.Summary{}, err
	}

	return quran.Summarize(*plan, progress, lastReadPage, now, t.ramadanStart), nil
}

// SetLastReadPage records the reader's position and re-derives the ledger.

func (t *Tracker) SetLastReadPage(page int, now time.Time) (quran.Summary, error) {
	if page < 1 || page > quran.TotalPages {
		return quran.Summary{}, fmt.Errorf("page %d out of range 1..%d", page, quran.TotalPages)
	}
	if err := t.store.SaveLastReadPage(page); err != nil {
		return quran.Summary{}, err
	}
	return t.Refresh(now)
}

// Progress returns the persisted ledger for rendering the day list.

func (t *Tracker) Progress() ([]quran.DayProgress, error) {
	return t.store.GetProgress()
}
