package db

// CreateTables creates the necessary tables in the database.
func (db *DB) CreateTables() error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS app_state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS prayer_cache (
			cache_key TEXT PRIMARY KEY,
			times TEXT NOT NULL,
			fetched_at TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS users (
			chat_id INTEGER PRIMARY KEY,
			created_at TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS system_status (
			key TEXT PRIMARY KEY,
			last_update TIMESTAMP
		);
	`)
	return err
}
