package cache

import (
	"context"
	"database/sql"
	"fmt"
)

// AssumeStyle records how a cached role was used.
type AssumeStyle string

const (
	StyleWebConsole  AssumeStyle = "WebConsole"
	StyleWindowsCopy AssumeStyle = "WindowsCopy"
	StyleLinuxCopy   AssumeStyle = "LinuxCopy"
)

// HistoryEntry is one append-only usage record. Entries are never updated
// or deleted; even Clear leaves history intact.
type HistoryEntry struct {
	Partition string
	Account   string
	Role      string
	Style     AssumeStyle
	Service   string
}

// AppendHistory inserts a usage record. The timestamp comes from the
// database default.
func (s *Store) AppendHistory(ctx context.Context, entry HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	service := sql.NullString{String: entry.Service, Valid: entry.Service != ""}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO history (partition, account, role, style, service)
		 VALUES (?, ?, ?, ?, ?)`,
		entry.Partition, entry.Account, entry.Role, string(entry.Style), service)
	if err != nil {
		return fmt.Errorf("failed to append history: %w", err)
	}
	return nil
}

// AccountFrequencies returns, per account, how many history rows the
// partition has recorded for it. Accounts never used are absent.
func (s *Store) AccountFrequencies(ctx context.Context, partition string) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT account, COUNT(*) FROM history WHERE partition = ? GROUP BY account`,
		partition)
	if err != nil {
		return nil, fmt.Errorf("failed to query history frequencies: %w", err)
	}
	defer rows.Close()

	frequencies := make(map[string]int)
	for rows.Next() {
		var account string
		var count int
		if err := rows.Scan(&account, &count); err != nil {
			return nil, fmt.Errorf("failed to scan history frequency: %w", err)
		}
		frequencies[account] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history frequencies: %w", err)
	}
	return frequencies, nil
}
