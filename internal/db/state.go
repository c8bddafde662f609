package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"ramadanapp/internal/aladhan"
	"ramadanapp/internal/quran"
)

// app_state keys. Each record is one JSON (or scalar) value, mirroring the
// key-value layout the reading tracker expects.
const (
	keyPlan         = "ramadan_plan"
	keyProgress     = "daily_progress"
	keyLastReadPage = "last_read_page"
	keyLocation     = "location"
	keyLeadMinutes  = "notification_lead_minutes"
)

func (db *DB) setState(key, value string) error {
	dbMutex.Lock()
	defer dbMutex.Unlock()

	_, err := db.Exec(`
		INSERT OR REPLACE INTO app_state (key, value, updated_at)
		VALUES (?, ?, ?)
	`, key, value, time.Now().UTC())
	return err
}

func (db *DB) getState(key string) (string, bool, error) {
	var value string
	err := db.QueryRow("SELECT value FROM app_state WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// SavePlan persists the reading plan, replacing any previous one.

func (db *DB) SavePlan(plan quran.Plan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return err
	}
	return db.setState(keyPlan, string(data))
}

// GetPlan returns the stored plan, or nil when none has been saved.

func (db *DB) GetPlan() (*quran.Plan, error) {
	value, ok, err := db.getState(keyPlan)
	if err != nil || !ok {
		return nil, err
	}
	var plan quran.Plan
	if err := json.Unmarshal([]byte(value), &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// SaveProgress persists the full daily ledger as a unit.

func (db *DB) SaveProgress(progress []quran.DayProgress) error {
	data, err := json.Marshal(progress)
	if err != nil {
		return err
	}
	return db.setState(keyProgress, string(data))
}

// GetProgress returns the stored ledger, or nil when none has been saved.

func (db *DB) GetProgress() ([]quran.DayProgress, error) {
	value, ok, err := db.getState(keyProgress)
	if err != nil || !ok {
		return nil, err
	}
	var progress []quran.DayProgress
	if err := json.Unmarshal([]byte(value), &progress); err != nil {
		return nil, err
	}
	return progress, nil
}

func (db *DB) SaveLastReadPage(page int) error {
	return db.setState(keyLastReadPage, strconv.Itoa(page))
}

// GetLastReadPage returns the furthest page position, 0 when never set.

func (db *DB) GetLastReadPage() (int, error) {
	value, ok, err := db.getState(keyLastReadPage)
	if err != nil || !ok {
		return 0, err
	}
	return strconv.Atoi(value)
}

func (db *DB) SaveLocation(loc aladhan.Location) error {
	data, err := json.Marshal(loc)
	if err != nil {
		return err
	}
	return db.setState(keyLocation, string(data))
}

// GetLocation returns the selected location, or nil when none has been saved.

func (db *DB) GetLocation() (*aladhan.Location, error) {
	value, ok, err := db.getState(keyLocation)
	if err != nil || !ok {
		return nil, err
	}
	var loc aladhan.Location
	if err := json.Unmarshal([]byte(value), &loc); err != nil {
		return nil, err
	}
	return &loc, nil
}

func (db *DB) SaveLeadMinutes(minutes int) error {
	return db.setState(keyLeadMinutes, strconv.Itoa(minutes))
}

// GetLeadMinutes returns the reminder offset, with ok=false when never set.

func (db *DB) GetLeadMinutes() (int, bool, error) {
	value, ok, err := db.getState(keyLeadMinutes)
	if err != nil || !ok {
		return 0, false, err
	}
	minutes, err := strconv.Atoi(value)
	if err != nil {
		return 0, false, err
	}
	return minutes, true, nil
}
