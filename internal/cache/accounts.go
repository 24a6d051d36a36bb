package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	log "github.com/charmbracelet/log"

	"github.com/ryansb/arsd/models"
)

// Accounts returns all cached account records for a partition. Rows that
// fail to scan are logged and skipped.
func (s *Store) Accounts(ctx context.Context, partition string) ([]models.Account, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT partition, account_id, account_name, email_address, updated_at
		 FROM accounts WHERE partition = ? ORDER BY account_name`,
		partition)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.Partition, &a.AccountID, &a.AccountName, &a.EmailAddress, &a.UpdatedAt); err != nil {
			log.Warn("failed to read cached account", "partition", partition, "error", err)
			continue
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounts: %w", err)
	}
	return accounts, nil
}

// OldestAccountUpdate returns the oldest updated_at among the partition's
// account records. Freshness is judged at partition granularity: a single
// stale row makes the whole listing stale. The zero time means no records.
func (s *Store) OldestAccountUpdate(ctx context.Context, partition string) (time.Time, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT MIN(updated_at) FROM accounts WHERE partition = ?`, partition)

	var oldest sql.NullTime
	if err := row.Scan(&oldest); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, fmt.Errorf("failed to query account freshness: %w", err)
	}
	if !oldest.Valid {
		return time.Time{}, nil
	}
	return oldest.Time, nil
}

// PutAccounts upserts a batch of account records for a partition in a
// single transaction, stamping each with the current time.
func (s *Store) PutAccounts(ctx context.Context, partition string, accounts []models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin accounts transaction: %w", err)
	}
	defer tx.Rollback()

	now := s.now().UTC()
	for _, a := range accounts {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO accounts (partition, account_id, account_name, email_address, updated_at)
			 VALUES (?, ?, ?, ?, ?)
			 ON CONFLICT (partition, account_id) DO UPDATE SET
				account_name = excluded.account_name,
				email_address = excluded.email_address,
				updated_at = excluded.updated_at`,
			partition, a.AccountID, a.AccountName, a.EmailAddress, now)
		if err != nil {
			return fmt.Errorf("failed to store account %s: %w", a.AccountID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit accounts transaction: %w", err)
	}
	return nil
}
