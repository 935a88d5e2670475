package library

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Sentinel errors for callers that need to distinguish outcomes. Everything
// else is surfaced as a wrapped error string.
var (
	ErrBookNotFound   = errors.New("book not found")
	ErrReviewNotFound = errors.New("review not found")
	ErrHasReviews     = errors.New("book still has reviews")
)

// Manager wraps the SQLite connection holding the library. All operations
// are synchronous; the caller owns the single connection.
type Manager struct {
	db *sql.DB
}

// NewManager opens (or creates) the library database at dbPath and ensures
// the schema exists.
func NewManager(dbPath string) (*Manager, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create library directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open library database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to library database: %w", err)
	}

	m := &Manager{db: db}
	if err := m.initSchema(); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Manager) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS books (
		id       INTEGER PRIMARY KEY AUTOINCREMENT,
		title    TEXT    NOT NULL,
		pages    INTEGER,
		pub_year INTEGER,
		genre    TEXT    NOT NULL
	);

	CREATE TABLE IF NOT EXISTS reviews (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		book_id   INTEGER NOT NULL,
		date_read TEXT,
		rating    INTEGER,
		review    TEXT,
		FOREIGN KEY(book_id) REFERENCES books(id)
	);

	CREATE TABLE IF NOT EXISTS writers (
		id   INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		type TEXT NOT NULL CHECK (type IN ('author', 'translator')),
		UNIQUE (name, type)
	);

	CREATE TABLE IF NOT EXISTS book_writers (
		book_id   INTEGER NOT NULL,
		writer_id INTEGER NOT NULL,
		type      TEXT    NOT NULL CHECK (type IN ('author', 'translator')),
		PRIMARY KEY (book_id, writer_id, type),
		FOREIGN KEY(book_id) REFERENCES books(id) ON DELETE CASCADE,
		FOREIGN KEY(writer_id) REFERENCES writers(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_reviews_book_id ON reviews(book_id);
	CREATE INDEX IF NOT EXISTS idx_book_writers_book_id ON book_writers(book_id);
	`

	_, err := m.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to initialize library schema: %w", err)
	}

	return nil
}

// Close releases the database connection.
func (m *Manager) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
