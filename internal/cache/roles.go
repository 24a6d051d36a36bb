package cache

import (
	"context"
	"fmt"

	log "github.com/charmbracelet/log"

	"github.com/ryansb/arsd/models"
)

// Roles returns all cached role records for an account. Once any rows exist
// for a (partition, account) pair they are treated as sufficient; no age
// check is applied here or by callers.
func (s *Store) Roles(ctx context.Context, partition, accountID string) ([]models.Role, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT partition, account_id, role_name, updated_at
		 FROM roles WHERE partition = ? AND account_id = ? ORDER BY role_name`,
		partition, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query roles: %w", err)
	}
	defer rows.Close()

	var roles []models.Role
	for rows.Next() {
		var r models.Role
		if err := rows.Scan(&r.Partition, &r.AccountID, &r.RoleName, &r.UpdatedAt); err != nil {
			log.Warn("failed to read cached role", "partition", partition, "account", accountID, "error", err)
			continue
		}
		roles = append(roles, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating roles: %w", err)
	}
	return roles, nil
}

// PutRoles upserts a batch of role records for an account in a single
// transaction, stamping each with the current time.
func (s *Store) PutRoles(ctx context.Context, partition, accountID string, roles []models.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin roles transaction: %w", err)
	}
	defer tx.Rollback()

	now := s.now().UTC()
	for _, r := range roles {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO roles (partition, account_id, role_name, updated_at)
			 VALUES (?, ?, ?, ?)
			 ON CONFLICT (partition, account_id, role_name) DO UPDATE SET
				updated_at = excluded.updated_at`,
			partition, accountID, r.RoleName, now)
		if err != nil {
			return fmt.Errorf("failed to store role %s: %w", r.RoleName, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit roles transaction: %w", err)
	}
	return nil
}
