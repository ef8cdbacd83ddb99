package db

import (
	"database/sql"
	"errors"
	"time"

	"github.com/dori/tabdo/internal/storage"
)

// Load returns the blob stored under key, or storage.ErrNotFound
func (db *DB) Load(key string) ([]byte, error) {
	var value []byte
	err := db.QueryRow(`SELECT value FROM blobs WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Save stores data under key, replacing any previous value
func (db *DB) Save(key string, data []byte) error {
	if data == nil {
		data = []byte{}
	}
	_, err := db.Exec(`
		INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, data, time.Now())
	return err
}

// Delete removes the blob stored under key
func (db *DB) Delete(key string) error {
	_, err := db.Exec(`DELETE FROM blobs WHERE key = ?`, key)
	return err
}

// Keys returns all stored keys
func (db *DB) Keys() ([]string, error) {
	rows, err := db.Query(`SELECT key FROM blobs ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

var (
	_ storage.Store     = (*DB)(nil)
	_ storage.Inspector = (*DB)(nil)
)
