package sqlite

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens the SQLite file at path, creating it if it does not exist.
func Open(path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("database path is required")
	}
	db, err := sql.Open("sqlite3", filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// sql.Open is lazy; the file is only created on first connect.
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return db, nil
}
