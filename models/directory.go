package models

import "time"

// Account is one AWS account reachable through a partition's SSO directory.
type Account struct {
	Partition    string
	AccountID    string
	AccountName  string
	EmailAddress string
	Alias        string
	// Rank is the frecency rank for this account, 1 being most used.
	// Zero means the account has no usage history.
	Rank      int
	UpdatedAt time.Time
}

// Role is one assumable role within an account.
type Role struct {
	Partition string
	AccountID string
	RoleName  string
	Alias     string
	UpdatedAt time.Time
}
