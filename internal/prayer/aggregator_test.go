package prayer

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ramadanapp/internal/aladhan"
)

// fakeSource fails for the method IDs in failIDs and delays every call by delay.

type fakeSource struct {
	failIDs map[int]bool
	delay   time.Duration
}

func (f *fakeSource) FetchTimings(ctx context.Context, method aladhan.Method, loc aladhan.Location, date time.Time) aladhan.SourceResult {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return aladhan.SourceResult{Method: method, Err: ctx.Err().Error()}
		}
	}
	if f.failIDs[method.ID] {
		return aladhan.SourceResult{Method: method, Err: fmt.Sprintf("method %d unavailable", method.ID)}
	}
	return aladhan.SourceResult{
		Method: method,
		Times:  &aladhan.Times{Fajr: "05:00", Dhuhr: "12:00", Asr: "15:30", Maghrib: "18:00", Isha: "19:30", Date: "20 Feb 2026"},
	}
}

func TestFetchAll_PartialFailuresStayIsolated(t *testing.T) {
	t.Parallel()

	// Methods 3 and 5 fail; the other three succeed.
	src := &fakeSource{failIDs: map[int]bool{3: true, 5: true}}
	agg := NewAggregator(src)

	results := agg.FetchAll(context.Background(), aladhan.Location{}, time.Now())

	if len(results) != len(aladhan.Methods) {
		t.Fatalf("len(results)=%d, want %d", len(results), len(aladhan.Methods))
	}

	okCount, errCount := 0, 0
	for i, res := range results {
		if res.Method.ID != aladhan.Methods[i].ID {
			t.Fatalf("results[%d].Method.ID=%d, want catalogue order %d", i, res.Method.ID, aladhan.Methods[i].ID)
		}
		if (res.Times != nil) == (res.Err != "") {
			t.Fatalf("results[%d] must have exactly one of Times/Err: %+v", i, res)
		}
		if res.Times != nil {
			okCount++
		} else {
			errCount++
		}
	}
	if okCount != 3 || errCount != 2 {
		t.Fatalf("ok=%d err=%d, want 3/2", okCount, errCount)
	}
}

func TestFetchAll_AllBranchesFailStillReturnsFullSet(t *testing.T) {
	t.Parallel()

	fail := map[int]bool{}
	for _, m := range aladhan.Methods {
		fail[m.ID] = true
	}
	agg := NewAggregator(&fakeSource{failIDs: fail})

	results := agg.FetchAll(context.Background(), aladhan.Location{}, time.Now())

	if len(results) != len(aladhan.Methods) {
		t.Fatalf("len(results)=%d, want %d", len(results), len(aladhan.Methods))
	}
	for i, res := range results {
		if res.Err == "" || res.Times != nil {
			t.Fatalf("results[%d]=%+v, want failure", i, res)
		}
	}

	if _, ok := BestResult(results); ok {
		t.Fatal("BestResult should report no success")
	}
}

func TestFetchAll_RunsSourcesConcurrently(t *testing.T) {
	t.Parallel()

	perCall := 100 * time.Millisecond
	agg := NewAggregator(&fakeSource{delay: perCall})

	start := time.Now()
	results := agg.FetchAll(context.Background(), aladhan.Location{}, time.Now())
	elapsed := time.Since(start)

	if len(results) != len(aladhan.Methods) {
		t.Fatalf("len(results)=%d, want %d", len(results), len(aladhan.Methods))
	}
	// Sequential execution would take N*perCall; allow generous scheduling slack.
	if elapsed > time.Duration(len(aladhan.Methods))*perCall/2 {
		t.Fatalf("FetchAll took %v for %d sources of %v each; fan-out looks sequential",
			elapsed, len(aladhan.Methods), perCall)
	}
}

func TestBestResult_PrefersCatalogueOrder(t *testing.T) {
	t.Parallel()

	// Only the fourth catalogue entry succeeds.
	fail := map[int]bool{}
	for i, m := range aladhan.Methods {
		if i != 3 {
			fail[m.ID] = true
		}
	}
	agg := NewAggregator(&fakeSource{failIDs: fail})

	results := agg.FetchAll(context.Background(), aladhan.Location{}, time.Now())
	best, ok := BestResult(results)
	if !ok {
		t.Fatal("BestResult found no success")
	}
	if best.Method.ID != aladhan.Methods[3].ID {
		t.Fatalf("best method ID=%d, want %d", best.Method.ID, aladhan.Methods[3].ID)
	}
}
