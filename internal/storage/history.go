package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SearchEntry is one recorded search.
type SearchEntry struct {
	ID        string
	Query     string
	Hits      int
	CreatedAt time.Time
}

// VisitEntry is one recorded result activation.
type VisitEntry struct {
	ID        string
	RecordID  string
	Title     string
	URL       string
	VisitedAt time.Time
}

// History persists searches and visited results in a SQLite database.
// All recording is best-effort from the caller's point of view: the UI
// ignores errors and keeps searching.
type History struct {
	db   *sql.DB
	path string
}

// NewHistory opens (creating if needed) the history database at path.
func NewHistory(path string) (*History, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	h := &History{db: db, path: path}
	if err := h.createTables(); err != nil {
		db.Close()
		return nil, err
	}

	return h, nil
}

func (h *History) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS searches (
			id TEXT PRIMARY KEY,
			query TEXT NOT NULL,
			hits INTEGER NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS visits (
			id TEXT PRIMARY KEY,
			record_id TEXT NOT NULL,
			title TEXT NOT NULL,
			url TEXT NOT NULL,
			visited_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);`,
	}

	for _, query := range queries {
		if _, err := h.db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// Path returns the database file path.
func (h *History) Path() string {
	return h.path
}

// Close closes the database connection.
func (h *History) Close() error {
	return h.db.Close()
}

// RecordSearch stores one executed search and its hit count.
func (h *History) RecordSearch(query string, hits int) error {
	_, err := h.db.Exec(
		`INSERT INTO searches (id, query, hits, created_at) VALUES (?, ?, ?, ?)`,
		uuid.New().String(), query, hits, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record search: %w", err)
	}
	return nil
}

// RecordVisit stores one opened result.
func (h *History) RecordVisit(recordID, title, url string) error {
	_, err := h.db.Exec(
		`INSERT INTO visits (id, record_id, title, url, visited_at) VALUES (?, ?, ?, ?, ?)`,
		uuid.New().String(), recordID, title, url, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record visit: %w", err)
	}
	return nil
}

// RecentSearches returns the most recent searches, newest first.
func (h *History) RecentSearches(limit int) ([]SearchEntry, error) {
	rows, err := h.db.Query(
		`SELECT id, query, hits, created_at FROM searches ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query searches: %w", err)
	}
	defer rows.Close()

	var entries []SearchEntry
	for rows.Next() {
		var e SearchEntry
		if err := rows.Scan(&e.ID, &e.Query, &e.Hits, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// RecentVisits returns the most recently opened results, newest first.
func (h *History) RecentVisits(limit int) ([]VisitEntry, error) {
	rows, err := h.db.Query(
		`SELECT id, record_id, title, url, visited_at FROM visits ORDER BY visited_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query visits: %w", err)
	}
	defer rows.Close()

	var entries []VisitEntry
	for rows.Next() {
		var e VisitEntry
		if err := rows.Scan(&e.ID, &e.RecordID, &e.Title, &e.URL, &e.VisitedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DefaultHistoryPath returns the default history database path:
// ~/.config/docdex/history.db
func DefaultHistoryPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "docdex", "history.db"), nil
}
