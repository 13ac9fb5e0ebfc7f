// Package catalog stores archive listings in a SQLite database so they can be
// queried after the archives themselves are gone.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Database is a connection to the SQLite entry catalog
type Database struct {
	db   *sql.DB
	path string
}

// Options configures catalog creation and connection behavior
type Options struct {
	// Path to the SQLite database file
	Path string

	// WALMode enables Write-Ahead Logging mode
	WALMode bool

	// ForeignKeys makes entries reference the archive they came from
	ForeignKeys bool

	// BusyTimeout sets the timeout for locked database operations
	BusyTimeout time.Duration
}

// DefaultOptions returns the options used by the CLI
func DefaultOptions(path string) *Options {
	return &Options{
		Path:        path,
		WALMode:     true,
		ForeignKeys: true,
		BusyTimeout: 30 * time.Second,
	}
}

// Open connects to the catalog, creating the file and its directory if needed
func Open(options *Options) (*Database, error) {
	if options == nil {
		return nil, fmt.Errorf("catalog options cannot be nil")
	}

	if options.Path == "" {
		return nil, fmt.Errorf("catalog path cannot be empty")
	}

	if err := ensureDirectory(options.Path); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	db, err := sql.Open("sqlite3", buildConnectionString(options))
	if err != nil {
		return nil, fmt.Errorf("opening catalog %s: %w", options.Path, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("testing catalog connection: %w", err)
	}

	return &Database{db: db, path: options.Path}, nil
}

// Path returns the database file path
func (d *Database) Path() string {
	return d.path
}

// Close closes the database connection
func (d *Database) Close() error {
	if d.db == nil {
		return nil
	}

	err := d.db.Close()
	d.db = nil

	if err != nil {
		return fmt.Errorf("closing catalog connection: %w", err)
	}

	return nil
}

// Query executes a SQL query that returns rows
func (d *Database) Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	if d.db == nil {
		return nil, fmt.Errorf("catalog connection is closed")
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}

	return rows, nil
}

// buildConnectionString appends pragmas to the file path
func buildConnectionString(options *Options) string {
	var pragmas []string

	if options.WALMode {
		pragmas = append(pragmas, "_journal_mode=WAL")
	}

	if options.ForeignKeys {
		pragmas = append(pragmas, "_foreign_keys=on")
	}

	if options.BusyTimeout > 0 {
		pragmas = append(pragmas, fmt.Sprintf("_busy_timeout=%d", options.BusyTimeout.Milliseconds()))
	}

	pragmas = append(pragmas, "_synchronous=NORMAL")

	return options.Path + "?" + strings.Join(pragmas, "&")
}

// ensureDirectory creates the directory for the database file if it doesn't exist
func ensureDirectory(dbPath string) error {
	dir := filepath.Dir(dbPath)
	if dir == "." || dir == "" {
		return nil
	}

	return os.MkdirAll(dir, 0755)
}
