package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jwulff/zen/internal/iching"

	_ "modernc.org/sqlite"
)

// Schema creates the hexagrams table. Line columns run bottom to top.
const Schema = `
	CREATE TABLE IF NOT EXISTS hexagrams (
		upper INTEGER NOT NULL CHECK (upper BETWEEN 1 AND 8),
		lower INTEGER NOT NULL CHECK (lower BETWEEN 1 AND 8),
		name TEXT NOT NULL,
		glyph TEXT NOT NULL DEFAULT '',
		judgment TEXT NOT NULL DEFAULT '',
		line1 TEXT NOT NULL DEFAULT '',
		line2 TEXT NOT NULL DEFAULT '',
		line3 TEXT NOT NULL DEFAULT '',
		line4 TEXT NOT NULL DEFAULT '',
		line5 TEXT NOT NULL DEFAULT '',
		line6 TEXT NOT NULL DEFAULT '',
		tuan TEXT NOT NULL DEFAULT '',
		xici TEXT NOT NULL DEFAULT '',
		xiang TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (upper, lower)
	);
`

// Store wraps the overlay database.
type Store struct {
	db *sql.DB
}

// DefaultDBPath returns the default overlay path under the user config dir.
func DefaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "zen", "overlay.sqlite")
}

// Open opens an existing overlay in read-only mode.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat overlay: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?mode=ro", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Verify connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Store{db: db}, nil
}

// Create opens path read-write, creating the file and schema if needed.
func Create(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create overlay directory: %w", err)
	}
	db, err := sql.Open("sqlite", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Hexagrams returns every row ordered by (upper, lower).
func (s *Store) Hexagrams() ([]HexagramRow, error) {
	rows, err := s.db.Query(`
		SELECT upper, lower, name, glyph, judgment,
			line1, line2, line3, line4, line5, line6,
			tuan, xici, xiang
		FROM hexagrams
		ORDER BY upper ASC, lower ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query hexagrams: %w", err)
	}
	defer rows.Close()

	var out []HexagramRow
	for rows.Next() {
		var r HexagramRow
		if err := rows.Scan(&r.Upper, &r.Lower, &r.Name, &r.Glyph, &r.Judgment,
			&r.Lines[0], &r.Lines[1], &r.Lines[2], &r.Lines[3], &r.Lines[4], &r.Lines[5],
			&r.Tuan, &r.Xici, &r.Xiang); err != nil {
			return nil, fmt.Errorf("scan hexagram: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Entries loads all rows as catalog entries, rejecting any with a bad key.
func (s *Store) Entries() ([]iching.Entry, error) {
	rows, err := s.Hexagrams()
	if err != nil {
		return nil, err
	}
	entries := make([]iching.Entry, 0, len(rows))
	for _, r := range rows {
		e := r.Entry()
		if err := e.Key.Validate(); err != nil {
			return nil, fmt.Errorf("overlay row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// Put inserts or replaces the row for the entry's key.
func (s *Store) Put(e iching.Entry) error {
	return put(s.db, e)
}

func put(x execer, e iching.Entry) error {
	if err := e.Key.Validate(); err != nil {
		return err
	}
	r := RowFromEntry(e)
	_, err := x.Exec(`
		INSERT OR REPLACE INTO hexagrams (upper, lower, name, glyph, judgment,
			line1, line2, line3, line4, line5, line6, tuan, xici, xiang)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.Upper, r.Lower, r.Name, r.Glyph, r.Judgment,
		r.Lines[0], r.Lines[1], r.Lines[2], r.Lines[3], r.Lines[4], r.Lines[5],
		r.Tuan, r.Xici, r.Xiang)
	if err != nil {
		return fmt.Errorf("put hexagram (%d,%d): %w", r.Upper, r.Lower, err)
	}
	return nil
}

// LoadEntries opens the overlay at path and returns its entries. A missing
// file yields no entries and no error.
func LoadEntries(path string) ([]iching.Entry, error) {
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	store, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return store.Entries()
}
