// Package localstore persists client-side state between runs: the session
// credential pair, UI preferences, and article drafts. It is the stand-in
// for the browser's local storage, backed by a single SQLite file.
package localstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	_ "modernc.org/sqlite"
)

// Well-known keys of the key-value area.
const (
	KeyToken = "token"
	KeyUser  = "user"
	KeyTheme = "theme"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("localstore: key not found")

type Store struct {
	db *sql.DB
}

// Open opens or creates the state file and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening state file: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging state file: %w", err)
	}

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("migrating state file: %w", err)
	}

	return &Store{db: db}, nil
}

func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS kv(
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS article_drafts(
			id TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			saved_at DATETIME NOT NULL
		);`,
	}
	ctx := context.Background()
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the value stored under key, or ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	sb := sqlbuilder.Select("value")
	sb.From("kv")
	sb.Where(sb.Equal("key", key))

	query, args := sb.BuildWithFlavor(sqlbuilder.SQLite)

	var value string
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading key [%s]: %w", key, err)
	}

	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	return s.setTx(ctx, s.db, key, value)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) setTx(ctx context.Context, db execer, key, value string) error {
	ib := sqlbuilder.InsertInto("kv")
	ib.Cols("key", "value")
	ib.Values(key, value)

	query, args := ib.BuildWithFlavor(sqlbuilder.SQLite)
	query += " ON CONFLICT(key) DO UPDATE SET value = excluded.value"

	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("writing key [%s]: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.deleteTx(ctx, s.db, key)
}

func (s *Store) deleteTx(ctx context.Context, db execer, key string) error {
	delb := sqlbuilder.DeleteFrom("kv")
	delb.Where(delb.Equal("key", key))

	query, args := delb.BuildWithFlavor(sqlbuilder.SQLite)
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting key [%s]: %w", key, err)
	}
	return nil
}

// SetPair writes the token and serialized user record in one transaction,
// so persisted state never holds one half of a session.
func (s *Store) SetPair(ctx context.Context, token, user string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := s.setTx(ctx, tx, KeyToken, token); err != nil {
		return err
	}
	if err := s.setTx(ctx, tx, KeyUser, user); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// ClearPair removes the token and user record in one transaction.
func (s *Store) ClearPair(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := s.deleteTx(ctx, tx, KeyToken); err != nil {
		return err
	}
	if err := s.deleteTx(ctx, tx, KeyUser); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
