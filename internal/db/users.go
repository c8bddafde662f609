package db

import "time"

// AddUser subscribes a chat to reminders. Re-adding is a no-op.

func (db *DB) AddUser(chatID int64) error {
	dbMutex.Lock()
	defer dbMutex.Unlock()

	_, err := db.Exec("INSERT OR IGNORE INTO users (chat_id, created_at) VALUES (?, ?)",
		chatID, time.Now().UTC())
	return err
}

// GetAllUsers returns every subscribed chat ID.

func (db *DB) GetAllUsers() ([]int64, error) {
	rows, err := db.Query("SELECT chat_id FROM users ORDER BY chat_id")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var users []int64
	for rows.Next() {
		var chatID int64
		if err := rows.Scan(&chatID); err != nil {
			return nil, err
		}
		users = append(users, chatID)
	}
	return users, rows.Err()
}
