package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"ramadanapp/internal/aladhan"
)

// SaveCachedTimes stores one day's prayer times under its date-scoped key.

func (db *DB) SaveCachedTimes(key string, times *aladhan.Times) error {
	data, err := json.Marshal(times)
	if err != nil {
		return err
	}

	dbMutex.Lock()
	defer dbMutex.Unlock()

	_, err = db.Exec(`
		INSERT OR REPLACE INTO prayer_cache (cache_key, times, fetched_at)
		VALUES (?, ?, ?)
	`, key, string(data), time.Now().UTC())
	return err
}

// GetCachedTimes returns the cached set for the key, or nil on a miss.

func (db *DB) GetCachedTimes(key string) (*aladhan.Times, error) {
	var data string
	err := db.QueryRow("SELECT times FROM prayer_cache WHERE cache_key = ?", key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var times aladhan.Times
	if err := json.Unmarshal([]byte(data), &times); err != nil {
		return nil, err
	}
	return &times, nil
}

// PruneCache drops cache entries older than the cutoff. Stale keys are never
// read again anyway; this just keeps the table from growing over the month.

func (db *DB) PruneCache(cutoff time.Time) error {
	dbMutex.Lock()
	defer dbMutex.Unlock()

	_, err := db.Exec("DELETE FROM prayer_cache WHERE fetched_at < ?", cutoff.UTC())
	return err
}
