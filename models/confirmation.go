package models

import "time"

// Confirmation carries everything the user needs to approve a device
// authorization out-of-band, plus what the poller needs to keep checking.
type Confirmation struct {
	Partition       string
	UserCode        string
	DeviceCode      string
	ConfirmationURL string
	// PollingInterval is the provider-requested delay between token polls,
	// in seconds.
	PollingInterval int32
	ExpiresAt       time.Time
}
