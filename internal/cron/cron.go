package cron

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"

	"ramadanapp/internal/aladhan"
	"ramadanapp/internal/db"
	"ramadanapp/internal/i18n"
	"ramadanapp/internal/logger"
	"ramadanapp/internal/notify"
	"ramadanapp/internal/prayer"
	"ramadanapp/internal/quran"
	"ramadanapp/internal/tracker"
)

// Scheduler runs the daily refresh and the per-prayer reminders.

type Scheduler struct {
	DB       *db.DB
	Notifier notify.Notifier
	Prayers  *prayer.Service
	Tracker  *tracker.Tracker

	LeadMinutes int
	Locale      i18n.Locale

	c           *cron.Cron
	reminderIDs []cron.EntryID
}

// NewScheduler creates a new scheduler.

func NewScheduler(database *db.DB, notifier notify.Notifier, prayers *prayer.Service, tr *tracker.Tracker, leadMinutes int, locale i18n.Locale) *Scheduler {
	return &Scheduler{
		DB:          database,
		Notifier:    notifier,
		Prayers:     prayers,
		Tracker:     tr,
		LeadMinutes: leadMinutes,
		Locale:      locale,
	}
}

// Start runs the refresh immediately, then every morning. Each refresh
// rebuilds the day's reminder entries from the freshly fetched times.

func (s *Scheduler) Start() {
	s.c = cron.New()
	logger.LogMsg(logger.LogInfo, "Scheduler started (runs immediately, then daily at 03:00)")
	go s.performRefresh()

	_, err := s.c.AddFunc("0 3 * * *", s.performRefresh)
	if err != nil {
		logger.LogMsg(logger.LogError, "Failed to set up daily refresh job: %v", err)
		return
	}
	s.c.Start()
}

func (s *Scheduler) performRefresh() {
	logger.LogMsg(logger.LogInfo, "Starting daily refresh")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	now := time.Now()

	times, err := s.Prayers.Load(ctx, now)
	if err != nil {
		// Keep yesterday's reminder entries rather than dropping to none.
		logger.LogMsg(logger.LogError, "Daily refresh could not load prayer times: %v", err)
		return
	}

	s.scheduleReminders(times)

	summary, err := s.Tracker.Refresh(now)
	if err != nil {
		logger.LogMsg(logger.LogError, "Daily refresh could not reconcile reading progress: %v", err)
	} else {
		s.sendToAllUsers(s.morningDigest(summary, times))
	}

	if err := s.DB.PruneCache(now.AddDate(0, 0, -2)); err != nil {
		logger.LogMsg(logger.LogWarning, "Failed to prune prayer cache: %v", err)
	}
	s.DB.UpdateRefreshLastRun()

	logger.LogMsg(logger.LogInfo, "Daily refresh completed")
}

// scheduleReminders replaces the previous day's reminder entries with two per
// prayer: one at the prayer time and one LeadMinutes before it.
func (s *Scheduler) scheduleReminders(times *aladhan.Times) {
	for _, id := range s.reminderIDs {
		s.c.Remove(id)
	}
	s.reminderIDs = s.reminderIDs[:0]

	for _, entry := range prayerEntries(times) {
		at, err := ParseClock(entry.time)
		if err != nil {
			logger.LogMsg(logger.LogWarning, "Skipping reminder for %s: %v", entry.key, err)
			continue
		}

		label := i18n.PrayerLabel(s.Locale, entry.key)

		s.addReminder(at, fmt.Sprintf("%s - %s",
			i18n.Translate(s.Locale, "adhan", nil),
			label,
		)+"\n"+i18n.Translate(s.Locale, "prayerTime", map[string]string{"prayer": label}))

		if before, ok := ReminderTime(at, s.LeadMinutes); ok {
			s.addReminder(before, i18n.Translate(s.Locale, "prayerSoon", map[string]string{
				"prayer":  label,
				"minutes": strconv.Itoa(s.LeadMinutes),
			})+"\n"+i18n.Translate(s.Locale, "prepareForPrayer", map[string]string{"prayer": label}))
		}
	}
}

func (s *Scheduler) addReminder(at ClockTime, message string) {
	id, err := s.c.AddFunc(fmt.Sprintf("%d %d * * *", at.Minute, at.Hour), func() {
		s.sendToAllUsers(message)
	})
	if err != nil {
		logger.LogMsg(logger.LogError, "Failed to add reminder at %s: %v", at, err)
		return
	}
	s.reminderIDs = append(s.reminderIDs, id)
}

type prayerEntry struct {
	key  string
	time string
}

func prayerEntries(times *aladhan.Times) []prayerEntry {
	return []prayerEntry{
		{key: "fajr", time: times.Fajr},
		{key: "dhuhr", time: times.Dhuhr},
		{key: "asr", time: times.Asr},
		{key: "maghrib", time: times.Maghrib},
		{key: "isha", time: times.Isha},
	}
}

func (s *Scheduler) morningDigest(summary quran.Summary, times *aladhan.Times) string {
	status := "statusOnTime"
	switch summary.Status {
	case quran.StatusAhead:
		status = "statusAhead"
	case quran.StatusBehind:
		status = "statusBehind"
	}

	return fmt.Sprintf("🌙 *%s*\n%s\n%s\n\n🕌 %s\n%s %s | %s %s | %s %s | %s %s | %s %s",
		i18n.Translate(s.Locale, "dayOf", map[string]string{
			"day":   strconv.Itoa(summary.RamadanDay),
			"total": strconv.Itoa(summary.TotalDays),
		}),
		i18n.Translate(s.Locale, "pagesRead", map[string]string{
			"read":      strconv.Itoa(summary.PagesRead),
			"remaining": strconv.Itoa(summary.RemainingPages),
		}),
		i18n.Translate(s.Locale, status, map[string]string{
			"pages": strconv.Itoa(summary.PagesPerRemainingDay),
		}),
		times.Date,
		i18n.PrayerLabel(s.Locale, "fajr"), times.Fajr,
		i18n.PrayerLabel(s.Locale, "dhuhr"), times.Dhuhr,
		i18n.PrayerLabel(s.Locale, "asr"), times.Asr,
		i18n.PrayerLabel(s.Locale, "maghrib"), times.Maghrib,
		i18n.PrayerLabel(s.Locale, "isha"), times.Isha,
	)
}

func (s *Scheduler) sendToAllUsers(message string) {
	users, err := s.DB.GetAllUsers()
	if err != nil {
		logger.LogMsg(logger.LogError, "Error querying user chat IDs: %v", err)
		return
	}

	for _, chatID := range users {
		if err := s.Notifier.SendMarkdown(chatID, message); err != nil {
			logger.LogMsg(logger.LogError, "Error sending reminder to chat ID %d: %v", chatID, err)
		}
	}
}
