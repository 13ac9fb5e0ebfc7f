package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jchantrell/hogtool/internal/archive"
	"github.com/jchantrell/hogtool/internal/hog"
)

const schema = `
CREATE TABLE IF NOT EXISTS archives (
	name        TEXT PRIMARY KEY,
	kind        TEXT NOT NULL,
	entry_count INTEGER NOT NULL,
	data_offset INTEGER
);
CREATE TABLE IF NOT EXISTS entries (
	lower_name TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	size       INTEGER NOT NULL,
	flags      INTEGER NOT NULL,
	timestamp  INTEGER NOT NULL,
	origin     TEXT NOT NULL REFERENCES archives(name) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS entries_origin ON entries(origin);
`

// DefaultBatchSize is the number of entry rows inserted per statement execution batch
const DefaultBatchSize = 500

// EnsureSchema creates the catalog tables if they are missing
func (d *Database) EnsureSchema(ctx context.Context) error {
	if d.db == nil {
		return fmt.Errorf("catalog connection is closed")
	}

	if _, err := d.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating catalog schema: %w", err)
	}
	return nil
}

// Replace swaps the catalog contents for the given inputs and listing in a
// single transaction. Rows must come from an index built from results.
func (d *Database) Replace(ctx context.Context, results []*hog.Result, rows []archive.Row) error {
	if d.db == nil {
		return fmt.Errorf("catalog connection is closed")
	}

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("clearing entries: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM archives`); err != nil {
		return fmt.Errorf("clearing archives: %w", err)
	}

	if err := insertArchives(ctx, tx, results); err != nil {
		return err
	}

	if err := insertEntries(ctx, tx, rows); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing catalog: %w", err)
	}

	slog.Debug("Catalog replaced", "path", d.path, "archives", len(results), "entries", len(rows))
	return nil
}

func insertArchives(ctx context.Context, tx *sql.Tx, results []*hog.Result) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO archives (name, kind, entry_count, data_offset) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing archive insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range results {
		if r == nil {
			continue
		}

		var dataOffset interface{}
		if r.Header != nil {
			dataOffset = int64(r.Header.DataOffset)
		}

		if _, err := stmt.ExecContext(ctx, r.Origin, r.Kind.String(), len(r.Entries), dataOffset); err != nil {
			return fmt.Errorf("inserting archive %s: %w", r.Origin, err)
		}
	}
	return nil
}

func insertEntries(ctx context.Context, tx *sql.Tx, rows []archive.Row) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO entries (lower_name, name, size, flags, timestamp, origin) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing entry insert: %w", err)
	}
	defer stmt.Close()

	for i := 0; i < len(rows); i += DefaultBatchSize {
		if err := ctx.Err(); err != nil {
			return err
		}

		end := min(i+DefaultBatchSize, len(rows))
		for _, row := range rows[i:end] {
			if _, err := stmt.ExecContext(ctx,
				hog.Key(row.Name), row.Name, int64(row.Size), int64(row.Flags), int64(row.Timestamp), row.Origin); err != nil {
				return fmt.Errorf("inserting entry %s: %w", row.Name, err)
			}
		}
		slog.Debug("Inserted entry batch", "from", i, "to", end-1)
	}
	return nil
}

// Entries reads the catalog listing back, sorted by lowercase name
func (d *Database) Entries(ctx context.Context) ([]archive.Row, error) {
	rows, err := d.Query(ctx,
		`SELECT name, size, flags, timestamp, origin FROM entries ORDER BY lower_name`)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer rows.Close()

	var out []archive.Row
	for rows.Next() {
		var r archive.Row
		var size, flags, timestamp int64
		if err := rows.Scan(&r.Name, &size, &flags, &timestamp, &r.Origin); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		r.Size, r.Flags, r.Timestamp = uint32(size), uint32(flags), uint32(timestamp)
		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}

	return out, nil
}
