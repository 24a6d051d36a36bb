package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/user"
	"runtime"
)

// SortOrder selects how account listings are ordered for display.
type SortOrder string

const (
	SortAlpha    SortOrder = "ALPHA"
	SortFrecency SortOrder = "FRECENCY"
)

const (
	sortOrderKey  = "SORT_ORDER"
	clientNameKey = "CLIENT_NAME"
)

// SortSetting returns the persisted sort order, defaulting to alphabetical.
func (s *Store) SortSetting(ctx context.Context) (SortOrder, error) {
	value, err := s.setting(ctx, sortOrderKey)
	if err != nil {
		return "", err
	}
	if value == string(SortFrecency) {
		return SortFrecency, nil
	}
	return SortAlpha, nil
}

// PutSortSetting persists the sort order.
func (s *Store) PutSortSetting(ctx context.Context, order SortOrder) error {
	if order != SortAlpha && order != SortFrecency {
		return fmt.Errorf("invalid sort order %q", order)
	}
	return s.putSetting(ctx, sortOrderKey, string(order))
}

// ClientName returns the OIDC client name used for registrations,
// generating and persisting one on first use so the provider sees a stable
// identity for this install.
func (s *Store) ClientName(ctx context.Context) (string, error) {
	if name, err := s.setting(ctx, clientNameKey); err != nil {
		return "", err
	} else if name != "" {
		return name, nil
	}

	username := "unknown"
	if u, err := user.Current(); err == nil {
		username = u.Username
	}
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}
	name := fmt.Sprintf("%s arsd %s@%s", runtime.GOOS, username, hostname)

	if err := s.putSetting(ctx, clientNameKey, name); err != nil {
		return "", err
	}
	return name, nil
}

func (s *Store) setting(ctx context.Context, key string) (string, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key)
	var value string
	err := row.Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read setting %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) putSetting(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to store setting %s: %w", key, err)
	}
	return nil
}
