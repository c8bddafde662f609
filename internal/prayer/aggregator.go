package prayer

import (
	"context"
	"sync"
	"time"

	"ramadanapp/internal/aladhan"
)

// Source queries one calculation method. The failure of a single method is
// carried inside its SourceResult so one bad branch never affects the others.

type Source interface {
	FetchTimings(ctx context.Context, method aladhan.Method, loc aladhan.Location, date time.Time) aladhan.SourceResult
}

// Aggregator fans a timings request out across every configured method.

type Aggregator struct {
	source  Source
	methods []aladhan.Method
}

// NewAggregator creates an aggregator over the full method catalogue.

func NewAggregator(source Source) *Aggregator {
	return &Aggregator{source: source, methods: aladhan.Methods}
}

// FetchAll queries every method concurrently and waits for all of them to
// settle. Results land in catalogue order, not arrival order, and the slice
// always has one entry per method even when every branch fails.

func (a *Aggregator) FetchAll(ctx context.Context, loc aladhan.Location, date time.Time) []aladhan.SourceResult {
	results := make([]aladhan.SourceResult, len(a.methods))

	var wg sync.WaitGroup
	for i, method := range a.methods {
		wg.Add(1)
		go func(i int, method aladhan.Method) {
			defer wg.Done()
			results[i] = a.source.FetchTimings(ctx, method, loc, date)
		}(i, method)
	}
	wg.Wait()

	return results
}

// BestResult picks the first successful result in catalogue order, which
// drives the default active method in the rendering layer.

func BestResult(results []aladhan.SourceResult) (aladhan.SourceResult, bool) {
	for _, res := range results {
		if res.Times != nil {
			return res, true
		}
	}
	return aladhan.SourceResult{}, false
}
