package prayer

import (
	"context"
	"fmt"
	"time"

	"ramadanapp/internal/aladhan"
	"ramadanapp/internal/logger"
)

const cacheKeyPrefix = "prayer_times:"

// Store is the slice of persistence the service needs: a per-day cache of
// prayer times and the selected location.

type Store interface {
	GetCachedTimes(key string) (*aladhan.Times, error)
	SaveCachedTimes(key string, times *aladhan.Times) error
	GetLocation() (*aladhan.Location, error)
}

// Service loads the day's prayer times, preferring the cache and refreshing
// behind it.

type Service struct {
	store      Store
	client     Source
	aggregator *Aggregator
}

// NewService creates a prayer-times service.

func NewService(store Store, client Source) *Service {
	return &Service{
		store:      store,
		client:     client,
		aggregator: NewAggregator(client),
	}
}

// CacheKey returns the storage key for one calendar day. The date is baked
// into the key, so yesterday's entry simply stops being read; no expiry pass
// is needed.

func CacheKey(date time.Time) string {
	return cacheKeyPrefix + date.Format("2006-01-02")
}

// Load returns today's prayer times. A cached value is returned immediately
// and refreshed by a detached fetch whose failure is only logged; with no
// cache the fetch is synchronous and falls back from the primary method to the
// full catalogue and finally to the hardcoded Mecca set.
//
// The error return is only set when the location is missing or storage fails:
// network trouble always degrades to the fallback set instead.

func (s *Service) Load(ctx context.Context, now time.Time) (*aladhan.Times, error) {
	key := CacheKey(now)

	cached, err := s.store.GetCachedTimes(key)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		go s.refresh(key, now)
		return cached, nil
	}

	loc, err := s.store.GetLocation()
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, fmt.Errorf("no location configured")
	}

	times := s.fetchWithFallback(ctx, *loc, now)
	if err := s.store.SaveCachedTimes(key, times); err != nil {
		return nil, err
	}
	return times, nil
}

// FetchAll exposes the multi-source view for the method comparison screen.

func (s *Service) FetchAll(ctx context.Context, now time.Time) ([]aladhan.SourceResult, error) {
	loc, err := s.store.GetLocation()
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, fmt.Errorf("no location configured")
	}
	return s.aggregator.FetchAll(ctx, *loc, now), nil
}

// fetchWithFallback tries the primary method, then any method, then the
// hardcoded set. It always returns a usable Times.
func (s *Service) fetchWithFallback(ctx context.Context, loc aladhan.Location, now time.Time) *aladhan.Times {
	primary := s.client.FetchTimings(ctx, aladhan.PrimaryMethod, loc, now)
	if primary.Times != nil {
		return primary.Times
	}
	logger.LogMsg(logger.LogWarning, "Primary prayer-time source failed: %s", primary.Err)

	results := s.aggregator.FetchAll(ctx, loc, now)
	if best, ok := BestResult(results); ok {
		return best.Times
	}

	logger.LogMsg(logger.LogWarning, "All prayer-time sources failed, using fallback times")
	return aladhan.FallbackTimes()
}

// refresh is the detached half of cache-then-refresh. The caller already has
// a value to show, so any failure here is logged and discarded.
func (s *Service) refresh(key string, now time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	loc, err := s.store.GetLocation()
	if err != nil || loc == nil {
		logger.LogMsg(logger.LogWarning, "Background prayer-time refresh skipped: no location (%v)", err)
		return
	}

	res := s.client.FetchTimings(ctx, aladhan.PrimaryMethod, *loc, now)
	if res.Times == nil {
		logger.LogMsg(logger.LogWarning, "Background prayer-time refresh failed: %s", res.Err)
		return
	}

	if err := s.store.SaveCachedTimes(key, res.Times); err != nil {
		logger.LogMsg(logger.LogError, "Failed to cache refreshed prayer times: %v", err)
	}
}
