package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/ryansb/arsd/internal/partition"
)

// ErrNoConfigFile is returned when no configuration file exists at the
// resolved path.
var ErrNoConfigFile = errors.New("no config file found")

// Settings is the full on-disk configuration: the partitions the user can
// sign in to, plus display aliases for accounts and roles.
type Settings struct {
	Path       string                `yaml:"-"`
	Partitions []partition.Partition `yaml:"partitions"`
	Aliases    Aliases               `yaml:"aliases"`
}

// Aliases maps directory identifiers to friendlier display names. Account
// aliases are keyed by the account's root email, role aliases by role name.
type Aliases struct {
	Accounts map[string]string `yaml:"accounts"`
	Roles    map[string]string `yaml:"roles"`
}

// MapAccount returns the alias for an account email, or "" if none is set.
func (a Aliases) MapAccount(email string) string {
	return a.Accounts[email]
}

// MapRole returns the alias for a role name, falling back to the name itself.
func (a Aliases) MapRole(roleName string) string {
	if alias, ok := a.Roles[roleName]; ok {
		return alias
	}
	return roleName
}

// Partition looks up a configured partition by its slug.
func (s *Settings) Partition(slug string) (partition.Partition, bool) {
	for _, p := range s.Partitions {
		if candidate, err := p.Slug(); err == nil && candidate == slug {
			return p, true
		}
	}
	return partition.Partition{}, false
}

// Load reads and validates the settings file at path. Every configured
// partition must have a well-formed start URL; a malformed one fails the
// whole load rather than producing a degenerate cache key later.
func Load(fs afero.Fs, path string) (*Settings, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s", ErrNoConfigFile, path)
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	settings.Path = path

	if len(settings.Partitions) == 0 {
		return nil, fmt.Errorf("config file %s defines no partitions", path)
	}
	for _, p := range settings.Partitions {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	return &settings, nil
}

// DefaultPath returns the conventional config file location,
// e.g. ~/.config/arsd/config.yaml on Linux.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config directory: %w", err)
	}
	return filepath.Join(dir, "arsd", "config.yaml"), nil
}

// DefaultDatabasePath returns the conventional SQLite database location,
// alongside the config file.
func DefaultDatabasePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config directory: %w", err)
	}
	return filepath.Join(dir, "arsd", "arsd.sqlite"), nil
}
