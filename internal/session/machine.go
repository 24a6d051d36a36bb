// Package session drives the OAuth 2.0 Device Authorization Grant for one
// partition. The cache store is the single source of truth: the machine
// re-reads it before every branch, so a stale in-memory state tag can never
// produce a stale answer.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/charmbracelet/log"

	"github.com/ryansb/arsd/internal/cache"
	"github.com/ryansb/arsd/internal/notify"
	"github.com/ryansb/arsd/internal/partition"
	"github.com/ryansb/arsd/internal/sso"
	"github.com/ryansb/arsd/models"
)

// ErrInvalidTransition signals a caller protocol violation: the event is
// not legal in the machine's current state.
var ErrInvalidTransition = errors.New("invalid state transition")

// Machine is the device-authorization state machine for one partition. It
// holds only a transient state tag; everything durable lives in the store.
type Machine struct {
	slug     string
	startURL string
	store    *cache.Store
	oidc     sso.OIDCClient
	notifier notify.Notifier
	state    State
	now      func() time.Time
}

// New builds a machine for the partition. The partition must already have
// passed configuration-time validation.
func New(p partition.Partition, store *cache.Store, oidc sso.OIDCClient, notifier notify.Notifier) (*Machine, error) {
	slug, err := p.Slug()
	if err != nil {
		return nil, err
	}
	startURL, err := p.SSOStartURL()
	if err != nil {
		return nil, err
	}
	return &Machine{
		slug:     slug,
		startURL: startURL,
		store:    store,
		oidc:     oidc,
		notifier: notifier,
		state:    State{Kind: Start},
		now:      time.Now,
	}, nil
}

// State returns the machine's current state without advancing it.
func (m *Machine) State() State {
	return m.state
}

// Next advances the machine by one event and returns the resulting state.
// If the store already holds a valid token for the partition, Ready is
// reported immediately regardless of the event or current state.
func (m *Machine) Next(ctx context.Context, event Event) (State, error) {
	if token := m.store.ValidToken(ctx, m.slug); token != nil {
		m.state = State{Kind: Ready}
		return m.state, nil
	}

	switch {
	case event.Kind == ConfirmDeviceAuthorization:
		return m.confirm(ctx, event)
	case m.state.Kind == Start && event.Kind == RegisterDevice:
		return m.register(ctx)
	case m.state.Kind == Registered && event.Kind == StartDeviceAuthorization:
		return m.startAuthorization(ctx)
	}
	return m.state, fmt.Errorf("%w: %s in state %s", ErrInvalidTransition, event.Kind, m.state.Kind)
}

func (m *Machine) register(ctx context.Context) (State, error) {
	if reg := m.store.ValidRegistration(ctx, m.slug); reg == nil {
		clientName, err := m.store.ClientName(ctx)
		if err != nil {
			return m.fail(fmt.Sprintf("failed to resolve client name: %v", err))
		}
		out, err := m.oidc.RegisterClient(ctx, clientName)
		if err != nil {
			return m.fail(fmt.Sprintf("failed to register client for %s: %v", m.slug, err))
		}
		if _, err := m.store.PutRegistration(ctx, m.slug, out.ClientID, out.ClientSecret, out.IssuedAt, out.ExpiresAt); err != nil {
			return m.fail(fmt.Sprintf("failed to persist registration for %s: %v", m.slug, err))
		}
	} else {
		log.Debug("registration already valid", "partition", m.slug)
	}

	m.state = State{Kind: Registered}
	m.notifier.NeedsConfirmation(m.slug)
	return m.state, nil
}

func (m *Machine) startAuthorization(ctx context.Context) (State, error) {
	reg := m.store.ValidRegistration(ctx, m.slug)
	if reg == nil {
		// The registration expired or was cleared since RegisterDevice.
		m.state = State{Kind: Start}
		return m.state, nil
	}

	auth, err := m.oidc.StartDeviceAuthorization(ctx, reg.ClientID, reg.ClientSecret, m.startURL)
	if err != nil {
		return m.fail(fmt.Sprintf("failed to start device authorization for %s: %v", m.slug, err))
	}

	m.state = State{
		Kind: AwaitingConfirmation,
		Confirmation: &models.Confirmation{
			Partition:       m.slug,
			UserCode:        auth.UserCode,
			DeviceCode:      auth.DeviceCode,
			ConfirmationURL: auth.VerificationURIComplete,
			PollingInterval: auth.Interval,
			ExpiresAt:       m.now().Add(time.Duration(auth.ExpiresIn) * time.Second),
		},
	}
	return m.state, nil
}

func (m *Machine) confirm(ctx context.Context, event Event) (State, error) {
	if event.Confirmation == nil {
		return m.state, fmt.Errorf("%w: %s without confirmation payload", ErrInvalidTransition, event.Kind)
	}

	reg := m.store.ValidRegistration(ctx, m.slug)
	if reg == nil {
		m.state = State{Kind: Start}
		return m.state, nil
	}

	out, err := m.oidc.CreateToken(ctx, reg.ClientID, reg.ClientSecret, event.Confirmation.DeviceCode)
	switch {
	case err == nil:
		expiresIn := time.Duration(out.ExpiresIn) * time.Second
		if _, err := m.store.PutToken(ctx, m.slug, out.AccessToken, expiresIn, out.TokenType); err != nil {
			return m.fail(fmt.Sprintf("failed to persist token for %s: %v", m.slug, err))
		}
		m.state = State{Kind: Ready}
		m.notifier.TokenReady(m.slug)
	case sso.IsAuthorizationPending(err):
		log.Debug("authorization pending", "partition", m.slug)
		m.state = State{Kind: AwaitingConfirmation, Confirmation: event.Confirmation}
	case sso.IsSlowDown(err):
		log.Debug("provider requested slower polling", "partition", m.slug)
		m.state = State{Kind: AwaitingConfirmation, Confirmation: event.Confirmation}
	default:
		// The poll can still succeed on a later attempt; keep the
		// confirmation payload instead of escalating to Failed.
		log.Warn("token exchange failed", "partition", m.slug, "error", err)
		m.state = State{Kind: AwaitingConfirmation, Confirmation: event.Confirmation}
	}
	return m.state, nil
}

func (m *Machine) fail(message string) (State, error) {
	m.state = State{Kind: Failed, Message: message}
	return m.state, nil
}
