package cron

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	cronlib "github.com/robfig/cron/v3"

	"ramadanapp/internal/aladhan"
	"ramadanapp/internal/db"
	"ramadanapp/internal/i18n"
	"ramadanapp/internal/prayer"
	"ramadanapp/internal/tracker"
)

type fakeNotifier struct {
	mu       sync.Mutex
	messages map[int64][]string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{messages: make(map[int64][]string)}
}

func (n *fakeNotifier) SendMarkdown(chatID int64, text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages[chatID] = append(n.messages[chatID], text)
	return nil
}

func openTestDB(t *testing.T) *db.DB {
	t.Helper()

	database, err := db.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("db.New(): %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	if err := database.CreateTables(); err != nil {
		t.Fatalf("CreateTables(): %v", err)
	}
	return database
}

func TestScheduleReminders_TwoEntriesPerPrayer(t *testing.T) {
	database := openTestDB(t)

	s := NewScheduler(database, newFakeNotifier(), nil, nil, 15, i18n.English)
	s.c = cronlib.New()

	times := &aladhan.Times{
		Fajr: "05:12", Dhuhr: "12:33", Asr: "15:46", Maghrib: "18:09", Isha: "19:31",
		Date: "20 Feb 2026",
	}
	s.scheduleReminders(times)

	if got := len(s.reminderIDs); got != 10 {
		t.Fatalf("reminder entries=%d, want 10 (at-time + lead for 5 prayers)", got)
	}

	// Rescheduling replaces, not accumulates.
	s.scheduleReminders(times)
	if got := len(s.reminderIDs); got != 10 {
		t.Fatalf("reminder entries after reschedule=%d, want 10", got)
	}
}

func TestScheduleReminders_SkipsLeadThatRollsPastMidnight(t *testing.T) {
	database := openTestDB(t)

	s := NewScheduler(database, newFakeNotifier(), nil, nil, 30, i18n.English)
	s.c = cronlib.New()

	times := &aladhan.Times{
		Fajr: "00:10", Dhuhr: "12:33", Asr: "15:46", Maghrib: "18:09", Isha: "19:31",
		Date: "20 Feb 2026",
	}
	s.scheduleReminders(times)

	// Fajr keeps its at-time entry but loses the lead entry.
	if got := len(s.reminderIDs); got != 9 {
		t.Fatalf("reminder entries=%d, want 9", got)
	}
}

func TestPerformRefresh_EndToEnd(t *testing.T) {
	database := openTestDB(t)

	if err := database.SaveLocation(aladhan.Location{Latitude: 36.8065, Longitude: 10.1815, City: "Tunis"}); err != nil {
		t.Fatalf("SaveLocation(): %v", err)
	}
	if err := database.AddUser(42); err != nil {
		t.Fatalf("AddUser(): %v", err)
	}
	if err := database.SaveLastReadPage(44); err != nil {
		t.Fatalf("SaveLastReadPage(): %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"code": 200, "status": "OK",
			"data": {
				"timings": {"Fajr": "05:12", "Dhuhr": "12:33", "Asr": "15:46", "Maghrib": "18:09", "Isha": "19:31"},
				"date": {"readable": "20 Feb 2026", "hijri": {"day": "3", "year": "1447", "month": {"number": 9, "en": "Ramadan", "ar": "رمضان"}}}
			}
		}`))
	}))
	t.Cleanup(srv.Close)

	client := aladhan.NewClient()
	client.BaseURL = srv.URL

	notifier := newFakeNotifier()
	prayers := prayer.NewService(database, client)
	tr := tracker.New(database, 30, time.Date(2026, 2, 18, 0, 0, 0, 0, time.UTC))

	s := NewScheduler(database, notifier, prayers, tr, 15, i18n.English)
	s.c = cronlib.New()

	done := make(chan struct{}, 1)
	go func() {
		s.performRefresh()
		done <- struct{}{}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("performRefresh() appears blocked")
	}

	if len(s.reminderIDs) == 0 {
		t.Fatal("no reminder entries were scheduled")
	}

	notifier.mu.Lock()
	digests := notifier.messages[42]
	notifier.mu.Unlock()
	if len(digests) != 1 {
		t.Fatalf("digest messages=%d, want 1", len(digests))
	}
	if !strings.Contains(digests[0], "05:12") || !strings.Contains(digests[0], "43 pages read") {
		t.Fatalf("digest = %q, want prayer times and reading progress", digests[0])
	}

	cached, err := database.GetCachedTimes(prayer.CacheKey(time.Now()))
	if err != nil || cached == nil {
		t.Fatalf("prayer times were not cached: %v, %v", cached, err)
	}

	if _, ok, _ := database.GetRefreshLastRun(); !ok {
		t.Fatal("refresh last-run timestamp was not recorded")
	}
}
