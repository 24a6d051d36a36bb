package sso

import (
	"context"
	"time"

	"github.com/ryansb/arsd/models"
)

// RegisterOutput is the result of an OIDC client registration.
type RegisterOutput struct {
	ClientID     string
	ClientSecret string
	IssuedAt     time.Time
	ExpiresAt    time.Time
}

// DeviceAuthorization is the result of starting a device authorization.
type DeviceAuthorization struct {
	UserCode                string
	DeviceCode              string
	VerificationURIComplete string
	// ExpiresIn is the confirmation window in seconds.
	ExpiresIn int32
	// Interval is the requested polling interval in seconds.
	Interval int32
}

// TokenOutput is the result of a successful token exchange.
type TokenOutput struct {
	AccessToken string
	TokenType   string
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int32
}

// OIDCClient is the identity-provider capability driving the OAuth 2.0
// Device Authorization Grant.
type OIDCClient interface {
	RegisterClient(ctx context.Context, clientName string) (*RegisterOutput, error)
	StartDeviceAuthorization(ctx context.Context, clientID, clientSecret, startURL string) (*DeviceAuthorization, error)
	CreateToken(ctx context.Context, clientID, clientSecret, deviceCode string) (*TokenOutput, error)
}

// DirectoryClient is the SSO directory capability: account and role
// listings plus role-credential issuance.
type DirectoryClient interface {
	ListAccounts(ctx context.Context, accessToken string) ([]models.Account, error)
	ListAccountRoles(ctx context.Context, accessToken, accountID string) ([]models.Role, error)
	GetRoleCredentials(ctx context.Context, accessToken, accountID, roleName string) (*models.Credentials, error)
}
