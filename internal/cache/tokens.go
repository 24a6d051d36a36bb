package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	log "github.com/charmbracelet/log"
)

// TokenTypeBearer is the only token type AWS SSO OIDC issues.
const TokenTypeBearer = "Bearer"

// Token is a cached bearer token for one partition. Refresh and ID tokens
// are absent because the provider does not issue them for the device grant.
type Token struct {
	Partition   string
	TokenType   string
	AccessToken string
	ExpiresAt   time.Time
}

// ValidToken returns the partition's bearer token if one is stored and not
// yet expired. A missing, expired, or unreadable row is a cache miss.
func (s *Store) ValidToken(ctx context.Context, partition string) *Token {
	row := s.db.QueryRowContext(ctx,
		`SELECT partition, token_type, access_token, expires_at
		 FROM tokens WHERE partition = ? AND token_type = ?`,
		partition, TokenTypeBearer)

	var token Token
	err := row.Scan(&token.Partition, &token.TokenType, &token.AccessToken, &token.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		log.Warn("failed to read cached token", "partition", partition, "error", err)
		return nil
	}
	if !token.ExpiresAt.After(s.now()) {
		return nil
	}
	return &token
}

// PutToken upserts the partition's bearer token, computing its expiry from
// the provider-reported lifetime. A token type other than "Bearer" is a
// programmer error and panics.
func (s *Store) PutToken(ctx context.Context, partition, accessToken string, expiresIn time.Duration, tokenType string) (*Token, error) {
	if tokenType != TokenTypeBearer {
		panic(fmt.Sprintf("token_type must be %q, got %q", TokenTypeBearer, tokenType))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt := s.now().Add(expiresIn).UTC()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tokens (partition, token_type, access_token, expires_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (partition, token_type) DO UPDATE SET
			access_token = excluded.access_token,
			expires_at = excluded.expires_at`,
		partition, TokenTypeBearer, accessToken, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}
	return &Token{
		Partition:   partition,
		TokenType:   TokenTypeBearer,
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, nil
}
