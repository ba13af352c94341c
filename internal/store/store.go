// Package store owns the vault's SQLite database: opening it, enforcing
// foreign keys, applying migrations, and handing out repositories bound to
// the connection.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/repositories/accounts"
	"github.com/dmitrijs2005/passvault/internal/repositories/clients"
	"github.com/dmitrijs2005/passvault/internal/store/migrations"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Store is an open vault database.
type Store struct {
	db       *sql.DB
	clients  clients.Repository
	accounts accounts.Repository
}

// sqlOpen is a test seam for sql.Open.
var sqlOpen = sql.Open

// Open opens the SQLite database at dsn, creating the file if needed, and
// migrates it to the latest schema. dsn is a file path or a modernc sqlite
// URI such as "file:vault?mode=memory&cache=shared". Every failure wraps
// common.ErrConnection. Opening an already migrated database is a no-op
// beyond connecting.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sqlOpen("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %w", common.ErrConnection, dsn, err)
	}

	// One long-lived connection: the process is single-user, and both the
	// foreign_keys pragma and in-memory databases are per connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := prepare(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %q: %w", common.ErrConnection, dsn, err)
	}

	return New(db), nil
}

// New wraps an already prepared database handle.
func New(db *sql.DB) *Store {
	return &Store{
		db:       db,
		clients:  clients.NewSQLiteRepository(db),
		accounts: accounts.NewSQLiteRepository(db),
	}
}

func prepare(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys = ON`); err != nil {
		return fmt.Errorf("enable foreign keys: %w", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// RunMigrations applies all pending embedded migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// SchemaVersion returns the version of the last applied migration.
func (s *Store) SchemaVersion(ctx context.Context) (int64, error) {
	v, err := goose.GetDBVersionContext(ctx, s.db)
	if err != nil {
		return 0, fmt.Errorf("%w: read schema version: %w", common.ErrPersistence, err)
	}
	return v, nil
}

// DB returns the underlying handle, e.g. for dbx.WithTx.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Clients() clients.Repository { return s.clients }

func (s *Store) Accounts() accounts.Repository { return s.accounts }

// Close releases the connection.
func (s *Store) Close() error { return s.db.Close() }
