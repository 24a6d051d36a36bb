// Package directory serves account and role listings from the cache,
// falling back to the SSO directory when the cache is stale or empty, and
// mints short-lived role credentials.
package directory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	log "github.com/charmbracelet/log"

	"github.com/ryansb/arsd/internal/cache"
	"github.com/ryansb/arsd/internal/config"
	"github.com/ryansb/arsd/internal/frecency"
	"github.com/ryansb/arsd/internal/sso"
	"github.com/ryansb/arsd/models"
)

// AccountFreshness is how long a partition's account listing is served
// from cache before the directory is consulted again. The window is judged
// by the oldest record, so one stale account refreshes the whole partition.
const AccountFreshness = 5 * time.Hour

// ErrMissingToken means no valid bearer token is cached for the partition.
// The caller must re-run the device authorization flow; retrying here
// cannot succeed.
var ErrMissingToken = errors.New("no valid token for partition")

// Service answers directory queries for one partition.
type Service struct {
	slug    string
	client  sso.DirectoryClient
	store   *cache.Store
	aliases config.Aliases

	// RoleRetry bounds the list-roles retry loop on provider throttling.
	RoleRetry RetryPolicy

	now func() time.Time
}

// New builds a directory service for the partition identified by slug.
func New(slug string, store *cache.Store, client sso.DirectoryClient, aliases config.Aliases) *Service {
	return &Service{
		slug:      slug,
		client:    client,
		store:     store,
		aliases:   aliases,
		RoleRetry: DefaultRoleRetry,
		now:       time.Now,
	}
}

// ListAccounts returns the partition's accounts. A cache whose oldest
// record is within the freshness window is returned without any network
// call; otherwise the directory is paged and the cache refreshed. Without a
// valid token the stale cache (possibly empty) is all there is.
func (s *Service) ListAccounts(ctx context.Context) ([]models.Account, error) {
	oldest, err := s.store.OldestAccountUpdate(ctx, s.slug)
	if err != nil {
		return nil, err
	}
	if !oldest.IsZero() && s.now().Sub(oldest) < AccountFreshness {
		accounts, err := s.store.Accounts(ctx, s.slug)
		if err != nil {
			return nil, err
		}
		return s.decorate(ctx, accounts)
	}

	token := s.store.ValidToken(ctx, s.slug)
	if token == nil {
		log.Warn("no valid token, serving stale account cache", "partition", s.slug)
		accounts, err := s.store.Accounts(ctx, s.slug)
		if err != nil {
			return nil, err
		}
		return s.decorate(ctx, accounts)
	}

	fetched, err := s.client.ListAccounts(ctx, token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for %s: %w", s.slug, err)
	}
	for i := range fetched {
		fetched[i].Partition = s.slug
	}
	if err := s.store.PutAccounts(ctx, s.slug, fetched); err != nil {
		return nil, err
	}
	accounts, err := s.store.Accounts(ctx, s.slug)
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, accounts)
}

// ListRoles returns the account's roles. Cached rows are returned for as
// long as they exist; only an empty cache triggers a fetch, which retries
// on throttling per the service's retry policy. Other fetch errors yield
// whatever was gathered, logged rather than escalated.
func (s *Service) ListRoles(ctx context.Context, accountID string) ([]models.Role, error) {
	cached, err := s.store.Roles(ctx, s.slug, accountID)
	if err != nil {
		return nil, err
	}
	if len(cached) > 0 {
		return s.aliasRoles(cached), nil
	}

	token := s.store.ValidToken(ctx, s.slug)
	if token == nil {
		log.Warn("no valid token for role listing", "partition", s.slug, "account", accountID)
		return nil, nil
	}

	var fetched []models.Role
	err = s.RoleRetry.Do(func() (retry bool, err error) {
		fetched, err = s.client.ListAccountRoles(ctx, token.AccessToken, accountID)
		if err != nil {
			return sso.IsRateLimited(err), err
		}
		return false, nil
	})
	if err != nil {
		log.Warn("failed to list roles", "partition", s.slug, "account", accountID, "error", err)
		return nil, nil
	}

	for i := range fetched {
		fetched[i].Partition = s.slug
	}
	if err := s.store.PutRoles(ctx, s.slug, accountID, fetched); err != nil {
		return nil, err
	}
	return s.aliasRoles(fetched), nil
}

// Credentials fetches fresh short-lived credentials for a role and records
// the usage. Credentials are never cached.
func (s *Service) Credentials(ctx context.Context, accountID, roleName string, style cache.AssumeStyle) (*models.Credentials, error) {
	token := s.store.ValidToken(ctx, s.slug)
	if token == nil {
		return nil, fmt.Errorf("%w %s", ErrMissingToken, s.slug)
	}

	creds, err := s.client.GetRoleCredentials(ctx, token.AccessToken, accountID, roleName)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch credentials for %s/%s: %w", accountID, roleName, err)
	}

	if err := s.store.AppendHistory(ctx, cache.HistoryEntry{
		Partition: s.slug,
		Account:   accountID,
		Role:      roleName,
		Style:     style,
	}); err != nil {
		log.Warn("failed to record usage history", "partition", s.slug, "error", err)
	}
	return creds, nil
}

// decorate attaches aliases and frecency ranks.
func (s *Service) decorate(ctx context.Context, accounts []models.Account) ([]models.Account, error) {
	frequencies, err := s.store.AccountFrequencies(ctx, s.slug)
	if err != nil {
		return nil, err
	}
	ranks := frecency.Ranks(frequencies)
	for i := range accounts {
		accounts[i].Alias = s.aliases.MapAccount(accounts[i].EmailAddress)
		accounts[i].Rank = ranks[accounts[i].AccountID]
	}
	return accounts, nil
}

func (s *Service) aliasRoles(roles []models.Role) []models.Role {
	for i := range roles {
		roles[i].Alias = s.aliases.MapRole(roles[i].RoleName)
	}
	return roles
}

// SortAccounts orders accounts for display: alphabetical by name, or by
// frecency rank with unranked accounts last (alphabetical within ties).
func SortAccounts(accounts []models.Account, order cache.SortOrder) {
	sort.SliceStable(accounts, func(i, j int) bool {
		if order == cache.SortFrecency {
			ri, rj := accounts[i].Rank, accounts[j].Rank
			if ri != rj {
				if ri == 0 {
					return false
				}
				if rj == 0 {
					return true
				}
				return ri < rj
			}
		}
		return accounts[i].AccountName < accounts[j].AccountName
	})
}
