package cron

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockTime is a wall-clock reminder slot.

type ClockTime struct {
	Hour   int
	Minute int
}

func (ct ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", ct.Hour, ct.Minute)
}

// ParseClock parses an HH:MM prayer time string.

func ParseClock(hhmm string) (ClockTime, error) {
	parts := strings.SplitN(strings.TrimSpace(hhmm), ":", 2)
	if len(parts) != 2 {
		return ClockTime{}, fmt.Errorf("invalid time %q", hhmm)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return ClockTime{}, fmt.Errorf("invalid hour in %q", hhmm)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("invalid minute in %q", hhmm)
	}
	return ClockTime{Hour: hour, Minute: minute}, nil
}

// ReminderTime computes the lead reminder slot, borrowing an hour when the
// subtraction underflows the minute field. A reminder that would land before
// midnight (negative hour) is reported as not schedulable for that day.

func ReminderTime(at ClockTime, leadMinutes int) (ClockTime, bool) {
	hour, minute := at.Hour, at.Minute-leadMinutes
	for minute < 0 {
		minute += 60
		hour--
	}
	if hour < 0 {
		return ClockTime{}, false
	}
	return ClockTime{Hour: hour, Minute: minute}, true
}
