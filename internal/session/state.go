package session

import (
	"fmt"

	"github.com/ryansb/arsd/models"
)

// StateKind tags the closed set of machine states.
type StateKind int

const (
	// Start is the initial state: nothing is known about the device.
	Start StateKind = iota
	// Registered means a usable client registration exists.
	Registered
	// AwaitingConfirmation means the provider issued a user code and is
	// waiting for the user to approve out-of-band.
	AwaitingConfirmation
	// Ready is the terminal success state: a valid bearer token is cached.
	Ready
	// Failed is the terminal error state for unrecoverable provider errors.
	Failed
)

func (k StateKind) String() string {
	switch k {
	case Start:
		return "Start"
	case Registered:
		return "Registered"
	case AwaitingConfirmation:
		return "AwaitingConfirmation"
	case Ready:
		return "Ready"
	case Failed:
		return "Failed"
	}
	return fmt.Sprintf("StateKind(%d)", int(k))
}

// State is the machine's current position. Confirmation is set exactly when
// Kind is AwaitingConfirmation; Message exactly when Kind is Failed.
type State struct {
	Kind         StateKind
	Confirmation *models.Confirmation
	Message      string
}

// EventKind tags the closed set of machine events.
type EventKind int

const (
	RegisterDevice EventKind = iota
	StartDeviceAuthorization
	ConfirmDeviceAuthorization
)

func (k EventKind) String() string {
	switch k {
	case RegisterDevice:
		return "RegisterDevice"
	case StartDeviceAuthorization:
		return "StartDeviceAuthorization"
	case ConfirmDeviceAuthorization:
		return "ConfirmDeviceAuthorization"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event drives the machine. Confirmation is required for
// ConfirmDeviceAuthorization and ignored otherwise.
type Event struct {
	Kind         EventKind
	Confirmation *models.Confirmation
}
