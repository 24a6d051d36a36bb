package models

import "time"

// Credentials are short-lived role credentials issued by the SSO directory.
// They are never cached; every fetch goes back to the provider.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	ExpiresAt       time.Time
}
