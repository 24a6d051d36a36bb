// Package notify carries the fire-and-forget session signals the UI layer
// listens for. Emission never blocks and never fails the caller.
package notify

import log "github.com/charmbracelet/log"

// Notifier receives session lifecycle signals for a partition.
type Notifier interface {
	// CheckSession is emitted once per configured partition at startup.
	CheckSession(slug string)
	// NeedsConfirmation is emitted when a partition requires the user to
	// confirm a device authorization.
	NeedsConfirmation(slug string)
	// TokenReady is emitted when a partition's bearer token is cached.
	TokenReady(slug string)
}

// LogNotifier logs each signal. It is the default sink when no UI layer is
// attached.
type LogNotifier struct{}

func (LogNotifier) CheckSession(slug string) {
	log.Info("checking session", "partition", slug)
}

func (LogNotifier) NeedsConfirmation(slug string) {
	log.Info("needs confirmation", "partition", slug)
}

func (LogNotifier) TokenReady(slug string) {
	log.Info("token ready", "partition", slug)
}
