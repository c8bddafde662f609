package db

import (
	"database/sql"
	"errors"
	"time"

	"ramadanapp/internal/logger"
)

// UpdateRefreshLastRun records when the daily refresh job last completed.

func (db *DB) UpdateRefreshLastRun() {
	dbMutex.Lock()
	_, err := db.Exec("INSERT OR REPLACE INTO system_status (key, last_update) VALUES ('refresh_last_run', ?)",
		time.Now().UTC())
	dbMutex.Unlock()
	if err != nil {
		logger.LogMsg(logger.LogError, "Failed to update refresh last run time: %v", err)
	}
}

// GetRefreshLastRun returns the last refresh time, with ok=false when the job
// has never run.

func (db *DB) GetRefreshLastRun() (time.Time, bool, error) {
	// COALESCE keeps the driver from handing back a time.Time for the typed
	// column; the layout varies, so parse it ourselves.
	var raw string
	err := db.QueryRow("SELECT COALESCE(last_update, '') FROM system_status WHERE key = 'refresh_last_run'").Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}

	if raw == "" {
		return time.Time{}, false, nil
	}

	t, err := parseSQLiteTime(raw)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}
