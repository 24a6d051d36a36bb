package cache

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// RegistrationExpiryBuffer is subtracted from a client registration's
// lifetime before deciding it is still usable, so a registration is never
// presented to the provider moments before it lapses.
const RegistrationExpiryBuffer = 5 * time.Minute

const defaultDirPerms = 0o700

// Store is the durable cache for client registrations, bearer tokens,
// directory listings, usage history, and settings. All durable state is
// owned here; callers decide whether what is stored is still usable.
type Store struct {
	db *sql.DB

	// mu serializes mutating access. Reads go through the single SQLite
	// connection and may interleave with each other, but never with a write.
	mu sync.Mutex

	path string

	// ExpiryBuffer is applied when judging registration validity.
	ExpiryBuffer time.Duration

	now func() time.Time
}

// Open opens (creating if necessary) the SQLite database at path and
// ensures the schema is current.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), defaultDirPerms); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite works best with a single connection

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %q failed: %w", pragma, err)
		}
	}

	s := &Store{
		db:           db,
		path:         path,
		ExpiryBuffer: RegistrationExpiryBuffer,
		now:          time.Now,
	}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS registrations (
			partition TEXT PRIMARY KEY,
			client_id TEXT NOT NULL,
			client_secret TEXT NOT NULL,
			issued_at TIMESTAMP NOT NULL,
			expires_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS tokens (
			partition TEXT NOT NULL,
			token_type TEXT NOT NULL,
			access_token TEXT NOT NULL,
			expires_at TIMESTAMP NOT NULL,
			PRIMARY KEY (partition, token_type)
		)`,
		`CREATE TABLE IF NOT EXISTS accounts (
			partition TEXT NOT NULL,
			account_id TEXT NOT NULL,
			account_name TEXT NOT NULL,
			email_address TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			PRIMARY KEY (partition, account_id)
		)`,
		`CREATE TABLE IF NOT EXISTS roles (
			partition TEXT NOT NULL,
			account_id TEXT NOT NULL,
			role_name TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			PRIMARY KEY (partition, account_id, role_name)
		)`,
		`CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			partition TEXT NOT NULL,
			account TEXT NOT NULL,
			role TEXT NOT NULL,
			style TEXT NOT NULL,
			service TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}
	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// Clear wipes accounts, roles, tokens, and registrations in a single
// transaction. History and settings survive a cache reset.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin clear transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"roles", "registrations", "accounts", "tokens"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit clear transaction: %w", err)
	}
	return nil
}

// Path returns the location of the backing database file.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
