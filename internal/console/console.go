// Package console builds federated sign-in URLs for the AWS web console
// from short-lived role credentials.
// https://docs.aws.amazon.com/IAM/latest/UserGuide/id_roles_providers_enable-console-custom-url.html
package console

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ryansb/arsd/models"
)

const federationEndpoint = "https://signin.aws.amazon.com/federation"

type signinSession struct {
	SessionID    string `json:"sessionId"`
	SessionKey   string `json:"sessionKey"`
	SessionToken string `json:"sessionToken"`
}

type signinTokenResponse struct {
	SigninToken string `json:"SigninToken"`
}

// Client exchanges role credentials for console sign-in URLs.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

// NewClient builds a federation client. A nil httpClient uses the default.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient, endpoint: federationEndpoint}
}

// SignInURL exchanges creds for a federation SigninToken and returns a
// login URL landing on the console home of destinationRegion.
func (c *Client) SignInURL(ctx context.Context, creds *models.Credentials, destinationRegion string) (string, error) {
	session, err := json.Marshal(signinSession{
		SessionID:    creds.AccessKeyID,
		SessionKey:   creds.SecretAccessKey,
		SessionToken: creds.SessionToken,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode federation session: %w", err)
	}

	tokenURL, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid federation endpoint: %w", err)
	}
	query := tokenURL.Query()
	query.Set("Action", "getSigninToken")
	query.Set("Session", string(session))
	tokenURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tokenURL.String(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build federation request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("federation token request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("federation token request returned %s", resp.Status)
	}

	var token signinTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("failed to decode federation token: %w", err)
	}

	destination := fmt.Sprintf("https://%s.console.aws.amazon.com/console/home", destinationRegion)
	loginURL, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid federation endpoint: %w", err)
	}
	query = loginURL.Query()
	query.Set("Action", "login")
	query.Set("Destination", destination)
	query.Set("SigninToken", token.SigninToken)
	loginURL.RawQuery = query.Encode()

	return loginURL.String(), nil
}
