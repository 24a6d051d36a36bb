package partition

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	startURLDomain  = ".awsapps.com"
	startURLTrailer = "/start#"
)

var (
	ErrWrongScheme    = errors.New("start_url must use https")
	ErrWrongDomain    = errors.New("start_url host must be a subdomain of awsapps.com")
	ErrMissingTrailer = errors.New("start_url must end with /start#")
)

// Partition is one identity-provider instance the user can authenticate
// against: an SSO start URL plus the region its directory lives in.
type Partition struct {
	StartURL  string `yaml:"start_url"`
	Region    string `yaml:"region"`
	AccountID string `yaml:"account_id,omitempty"`
}

// Validate checks the start URL's exact shape. Anything that is not
// https://<label>.awsapps.com/start# is a configuration error.
func (p Partition) Validate() error {
	_, err := p.label()
	return err
}

// Slug is the canonical cache key for this partition: "{region}-{label}"
// where label is the subdomain of the start URL.
func (p Partition) Slug() (string, error) {
	label, err := p.label()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s", p.Region, label), nil
}

// SSOStartURL returns the configured start URL unchanged if it is valid.
func (p Partition) SSOStartURL() (string, error) {
	if _, err := p.label(); err != nil {
		return "", err
	}
	return p.StartURL, nil
}

// Scopes returns the OIDC scopes requested during client registration.
func (p Partition) Scopes() []string {
	return []string{"sso:account:access"}
}

func (p Partition) label() (string, error) {
	u, err := url.Parse(p.StartURL)
	if err != nil {
		return "", fmt.Errorf("invalid start_url %q: %w", p.StartURL, err)
	}
	if u.Scheme != "https" {
		return "", fmt.Errorf("invalid start_url %q: %w", p.StartURL, ErrWrongScheme)
	}
	label, ok := strings.CutSuffix(u.Host, startURLDomain)
	if !ok || label == "" || strings.Contains(label, ".") {
		return "", fmt.Errorf("invalid start_url %q: %w", p.StartURL, ErrWrongDomain)
	}
	// url.Parse splits the "#" off into an empty fragment; require it was
	// present by checking the raw string instead.
	if u.Path != "/start" || !strings.HasSuffix(p.StartURL, startURLTrailer) {
		return "", fmt.Errorf("invalid start_url %q: %w", p.StartURL, ErrMissingTrailer)
	}
	return label, nil
}
