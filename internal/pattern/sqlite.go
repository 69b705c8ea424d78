package pattern

import (
	"context"
	"database/sql"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/sells-group/prospect-cli/internal/model"
)

const snapshotSchema = `
CREATE TABLE IF NOT EXISTS domain_patterns (
	domain     TEXT PRIMARY KEY,
	pattern    TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);`

func openSnapshot(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, eris.Wrap(err, "pattern: open snapshot")
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, eris.Wrap(err, "pattern: set busy_timeout")
	}
	if _, err := db.Exec(snapshotSchema); err != nil {
		db.Close()
		return nil, eris.Wrap(err, "pattern: create schema")
	}
	return db, nil
}

// LoadFile seeds the store from a SQLite snapshot. The in-memory store
// remains authoritative during a run; the snapshot only survives restarts.
func (s *Store) LoadFile(ctx context.Context, path string) error {
	db, err := openSnapshot(path)
	if err != nil {
		return err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, "SELECT domain, pattern FROM domain_patterns")
	if err != nil {
		return eris.Wrap(err, "pattern: query snapshot")
	}
	defer rows.Close()

	var loaded int
	for rows.Next() {
		var domain, shape string
		if err := rows.Scan(&domain, &shape); err != nil {
			return eris.Wrap(err, "pattern: scan snapshot row")
		}
		s.Put(domain, model.DomainPattern(shape))
		loaded++
	}
	if err := rows.Err(); err != nil {
		return eris.Wrap(err, "pattern: iterate snapshot")
	}

	zap.L().Debug("pattern: snapshot loaded",
		zap.String("path", path),
		zap.Int("domains", loaded),
	)
	return nil
}

// SaveFile writes the current store contents to a SQLite snapshot,
// upserting by domain.
func (s *Store) SaveFile(ctx context.Context, path string) error {
	db, err := openSnapshot(path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "pattern: begin tx")
	}
	defer func() { _ = tx.Rollback() }()

	const upsert = `
INSERT INTO domain_patterns (domain, pattern, updated_at)
VALUES (?, ?, datetime('now'))
ON CONFLICT(domain) DO UPDATE SET pattern = excluded.pattern, updated_at = excluded.updated_at`

	for domain, shape := range s.Snapshot() {
		if _, err := tx.ExecContext(ctx, upsert, domain, string(shape)); err != nil {
			return eris.Wrapf(err, "pattern: upsert %s", domain)
		}
	}
	if err := tx.Commit(); err != nil {
		return eris.Wrap(err, "pattern: commit snapshot")
	}
	return nil
}
