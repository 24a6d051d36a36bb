// Package app wires the store, configuration, and per-partition clients
// together for the command layer.
package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/ryansb/arsd/internal/cache"
	"github.com/ryansb/arsd/internal/config"
	"github.com/ryansb/arsd/internal/directory"
	"github.com/ryansb/arsd/internal/notify"
	"github.com/ryansb/arsd/internal/partition"
	"github.com/ryansb/arsd/internal/sso"
	promptUtils "github.com/ryansb/arsd/utils/prompt"
)

// Clients bundles the two provider capabilities for one partition region.
type Clients struct {
	OIDC      sso.OIDCClient
	Directory sso.DirectoryClient
}

// ClientFactory builds provider clients for a region. Swapped for mocks in
// tests.
type ClientFactory func(ctx context.Context, region string) (Clients, error)

// DefaultClientFactory builds real AWS SDK clients.
func DefaultClientFactory(ctx context.Context, region string) (Clients, error) {
	client, err := sso.NewClient(ctx, region)
	if err != nil {
		return Clients{}, err
	}
	return Clients{OIDC: client, Directory: client}, nil
}

// App holds everything the commands need. All collaborators are
// constructor-injected so commands stay testable.
type App struct {
	Settings   *config.Settings
	Store      *cache.Store
	Notifier   notify.Notifier
	Prompter   promptUtils.Prompter
	NewClients ClientFactory
}

// Slugs returns the configured partition slugs, sorted. Configuration
// validation guarantees every partition has one.
func (a *App) Slugs() []string {
	slugs := make([]string, 0, len(a.Settings.Partitions))
	for _, p := range a.Settings.Partitions {
		if slug, err := p.Slug(); err == nil {
			slugs = append(slugs, slug)
		}
	}
	sort.Strings(slugs)
	return slugs
}

// ResolvePartition returns the partition for slug, prompting for a choice
// when slug is empty and more than one partition is configured.
func (a *App) ResolvePartition(slug string) (partition.Partition, string, error) {
	if slug == "" {
		slugs := a.Slugs()
		if len(slugs) == 1 {
			slug = slugs[0]
		} else {
			selected, err := a.Prompter.PromptForSelection("Select a partition", slugs)
			if err != nil {
				return partition.Partition{}, "", err
			}
			slug = selected
		}
	}
	p, ok := a.Settings.Partition(slug)
	if !ok {
		return partition.Partition{}, "", fmt.Errorf("no partition found for %s", slug)
	}
	return p, slug, nil
}

// DirectoryFor builds a directory service for the partition.
func (a *App) DirectoryFor(ctx context.Context, p partition.Partition, slug string) (*directory.Service, error) {
	clients, err := a.NewClients(ctx, p.Region)
	if err != nil {
		return nil, fmt.Errorf("failed to build clients for %s: %w", slug, err)
	}
	return directory.New(slug, a.Store, clients.Directory, a.Settings.Aliases), nil
}
