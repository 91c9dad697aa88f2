package db

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mithrel/minid/pkg/minid"
	"github.com/mithrel/minid/pkg/minid/minidsql"
)

type sqliteStore struct{ db *sql.DB }

// openSQLite connects to a SQLite database using the modernc.org/sqlite driver
// and ensures the schema exists.
func openSQLite(ctx context.Context, path string) (*sqliteStore, error) {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	dbh, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := dbh.ExecContext(ctx, `PRAGMA journal_mode=WAL;`); err != nil {
		_ = dbh.Close()
		return nil, err
	}
	if err := migrate(ctx, dbh); err != nil {
		_ = dbh.Close()
		return nil, err
	}
	return &sqliteStore{db: dbh}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS ids (
  id TEXT PRIMARY KEY,
  label TEXT NOT NULL DEFAULT '',
  created_ms INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_ids_label ON ids(label);
`)
	return err
}

// Put inserts all records in one transaction; a duplicate ID aborts the batch.
func (s *sqliteStore) Put(ctx context.Context, recs ...Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO ids(id, label, created_ms) VALUES(?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, r := range recs {
		if _, err := stmt.ExecContext(ctx, minidsql.ID(r.ID), r.Label, r.CreatedAt.UnixMilli()); err != nil {
			if strings.Contains(err.Error(), "UNIQUE") {
				return ErrDuplicate
			}
			return err
		}
	}
	return tx.Commit()
}

func (s *sqliteStore) Get(ctx context.Context, id minid.ID) (Record, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, label, created_ms FROM ids WHERE id=?`, minidsql.ID(id))
	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	return r, err
}

func (s *sqliteStore) List(ctx context.Context, opts ListOptions) ([]Record, error) {
	// The text column does not sort in ID order, so ordering and the limit
	// are applied in Go.
	rows, err := s.db.QueryContext(ctx, `SELECT id, label, created_ms FROM ids`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return finish(out, opts), nil
}

func (s *sqliteStore) Close() error { return s.db.Close() }

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var (
		id minidsql.ID
		r  Record
		ms int64
	)
	if err := row.Scan(&id, &r.Label, &ms); err != nil {
		return Record{}, err
	}
	r.ID = minid.ID(id)
	r.CreatedAt = time.UnixMilli(ms).UTC()
	return r, nil
}
