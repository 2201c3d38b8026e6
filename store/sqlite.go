package store

import (
	"database/sql"
	"errors"
	"time"

	_ "github.com/mattn/go-sqlite3"
	pkgerrors "github.com/pkg/errors"
)

// DB is the SQLite-backed KV. All reads and writes are synchronous
// single statements; there are no transactions spanning keys.
type DB struct {
	db *sql.DB
}

func Open(path string) (kv *DB, err error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "store.open")
	}

	_, err = db.Exec("PRAGMA journal_mode = WAL")
	if err != nil {
		db.Close()
		return nil, pkgerrors.Wrap(err, "store.pragma")
	}

	// db tuning options
	db.SetMaxOpenConns(1)
	db.SetConnMaxIdleTime(5 * time.Minute)

	err = migrateDB(db)
	if err != nil {
		db.Close()
		return nil, pkgerrors.Wrap(err, "store.migrate")
	}

	return &DB{db}, nil
}

func (s *DB) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, pkgerrors.Wrap(err, "store.get")
	}
	return value, true, nil
}

func (s *DB) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return pkgerrors.Wrap(err, "store.set")
}

func (s *DB) Delete(key string) error {
	_, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key)
	return pkgerrors.Wrap(err, "store.delete")
}

func (s *DB) Close() error {
	return s.db.Close()
}
