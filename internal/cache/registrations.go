package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	log "github.com/charmbracelet/log"
)

// Registration is a cached OIDC client registration for one partition.
type Registration struct {
	Partition    string
	ClientID     string
	ClientSecret string
	IssuedAt     time.Time
	ExpiresAt    time.Time
}

// ValidRegistration returns the partition's registration if one is stored
// and its expiry is further out than the store's expiry buffer. A missing,
// expired, or unreadable row is a cache miss, never an error.
func (s *Store) ValidRegistration(ctx context.Context, partition string) *Registration {
	row := s.db.QueryRowContext(ctx,
		`SELECT partition, client_id, client_secret, issued_at, expires_at
		 FROM registrations WHERE partition = ? AND expires_at > ?`,
		partition, s.now().Add(s.ExpiryBuffer).UTC())

	var reg Registration
	err := row.Scan(&reg.Partition, &reg.ClientID, &reg.ClientSecret, &reg.IssuedAt, &reg.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		log.Warn("failed to read cached registration", "partition", partition, "error", err)
		return nil
	}
	return &reg
}

// PutRegistration upserts the partition's registration; last write wins.
func (s *Store) PutRegistration(ctx context.Context, partition, clientID, clientSecret string, issuedAt, expiresAt time.Time) (*Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO registrations (partition, client_id, client_secret, issued_at, expires_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (partition) DO UPDATE SET
			client_id = excluded.client_id,
			client_secret = excluded.client_secret,
			issued_at = excluded.issued_at,
			expires_at = excluded.expires_at`,
		partition, clientID, clientSecret, issuedAt.UTC(), expiresAt.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to store registration: %w", err)
	}
	return &Registration{
		Partition:    partition,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		IssuedAt:     issuedAt.UTC(),
		ExpiresAt:    expiresAt.UTC(),
	}, nil
}
