package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ryansb/arsd/internal/app"
	"github.com/ryansb/arsd/internal/partition"
	"github.com/ryansb/arsd/internal/session"
	promptUtils "github.com/ryansb/arsd/utils/prompt"
)

// LoginCmd drives the device authorization flow for every configured
// partition, or just the one named as an argument.
func LoginCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "login [partition]",
		Short: "Sign in to a partition via device authorization",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			var partitions []partition.Partition
			if len(args) == 1 {
				p, _, err := a.ResolvePartition(args[0])
				if err != nil {
					if errors.Is(err, promptUtils.ErrInterrupted) {
						return nil
					}
					return err
				}
				partitions = []partition.Partition{p}
			} else {
				partitions = a.Settings.Partitions
			}

			for _, p := range partitions {
				if err := login(cmd, a, p); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func login(cmd *cobra.Command, a *app.App, p partition.Partition) error {
	ctx := cmd.Context()
	slug, err := p.Slug()
	if err != nil {
		return err
	}
	a.Notifier.CheckSession(slug)

	clients, err := a.NewClients(ctx, p.Region)
	if err != nil {
		return fmt.Errorf("failed to build clients for %s: %w", slug, err)
	}
	machine, err := session.New(p, a.Store, clients.OIDC, a.Notifier)
	if err != nil {
		return err
	}

	state, err := advance(ctx, cmd, machine, slug)
	if err != nil || state.Kind == session.Ready {
		return err
	}

	// The user now has to approve the device out-of-band; poll until the
	// confirmation window closes.
	confirmation := state.Confirmation
	cmd.Printf("Visit %s\n", confirmation.ConfirmationURL)
	cmd.Printf("Confirmation code: %s\n", confirmation.UserCode)

	interval := time.Duration(confirmation.PollingInterval) * time.Second
	for time.Now().Before(confirmation.ExpiresAt) {
		time.Sleep(interval)
		state, err = machine.Next(ctx, session.Event{
			Kind:         session.ConfirmDeviceAuthorization,
			Confirmation: confirmation,
		})
		if err != nil {
			return err
		}
		switch state.Kind {
		case session.Ready:
			cmd.Printf("Signed in to %s\n", slug)
			return nil
		case session.Start:
			return fmt.Errorf("registration for %s expired during confirmation; run login again", slug)
		}
	}
	return fmt.Errorf("confirmation for %s expired before approval", slug)
}

// advance steps the machine from Start until it needs the user, is ready,
// or fails.
func advance(ctx context.Context, cmd *cobra.Command, machine *session.Machine, slug string) (session.State, error) {
	event := session.Event{Kind: session.RegisterDevice}
	for {
		state, err := machine.Next(ctx, event)
		if err != nil {
			return state, err
		}
		switch state.Kind {
		case session.Ready:
			cmd.Printf("Session for %s is already valid\n", slug)
			return state, nil
		case session.Registered:
			event = session.Event{Kind: session.StartDeviceAuthorization}
		case session.AwaitingConfirmation:
			return state, nil
		case session.Failed:
			return state, errors.New(state.Message)
		default:
			return state, fmt.Errorf("unexpected state %s during login", state.Kind)
		}
	}
}
