package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Lead-minute options offered in settings; anything else falls back to the default.
var allowedLeadMinutes = []int{5, 10, 15, 20, 30}

const defaultLeadMinutes = 15

// Config holds the application configuration

type Config struct {
	TelegramBotToken string
	AllowedUsers     []int64
	DatabasePath     string

	RamadanStart time.Time
	RamadanDays  int
	LeadMinutes  int
}

// Load loads the configuration from environment variables

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		return nil, err
	}

	allowedUsersStr := os.Getenv("TELEGRAM_ALLOWED_USERS")
	allowedUserIDs := strings.Split(allowedUsersStr, ",")
	allowedUsers := make([]int64, 0, len(allowedUserIDs))
	for _, userID := range allowedUserIDs {
		id, err := strconv.ParseInt(strings.TrimSpace(userID), 10, 64)
		if err == nil {
			allowedUsers = append(allowedUsers, id)
		}
	}

	start, err := parseRamadanStart(os.Getenv("RAMADAN_START_DATE"))
	if err != nil {
		return nil, err
	}

	return &Config{
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		AllowedUsers:     allowedUsers,
		DatabasePath:     "database/RamadanApp.db",
		RamadanStart:     start,
		RamadanDays:      parseRamadanDays(os.Getenv("RAMADAN_DAYS")),
		LeadMinutes:      parseLeadMinutes(os.Getenv("NOTIFICATION_LEAD_MINUTES")),
	}, nil
}

// parseRamadanStart reads the fixed start date set once per yearly release.
func parseRamadanStart(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, fmt.Errorf("RAMADAN_START_DATE is not set")
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid RAMADAN_START_DATE %q: %v", s, err)
	}
	return t, nil
}

func parseRamadanDays(s string) int {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && (n == 29 || n == 30) {
		return n
	}
	return 30
}

func parseLeadMinutes(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return defaultLeadMinutes
	}
	for _, v := range allowedLeadMinutes {
		if n == v {
			return n
		}
	}
	return defaultLeadMinutes
}
