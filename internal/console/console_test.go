package console

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryansb/arsd/models"
)

func testCredentials() *models.Credentials {
	return &models.Credentials{
		AccessKeyID:     "AKIAEXAMPLE",
		SecretAccessKey: "secret",
		SessionToken:    "session",
	}
}

func TestSignInURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "getSigninToken", r.URL.Query().Get("Action"))

		var session struct {
			SessionID    string `json:"sessionId"`
			SessionKey   string `json:"sessionKey"`
			SessionToken string `json:"sessionToken"`
		}
		require.NoError(t, json.Unmarshal([]byte(r.URL.Query().Get("Session")), &session))
		assert.Equal(t, "AKIAEXAMPLE", session.SessionID)
		assert.Equal(t, "secret", session.SessionKey)
		assert.Equal(t, "session", session.SessionToken)

		json.NewEncoder(w).Encode(map[string]string{"SigninToken": "federation-token"})
	}))
	defer server.Close()

	client := NewClient(server.Client())
	client.endpoint = server.URL

	signin, err := client.SignInURL(context.Background(), testCredentials(), "eu-west-1")
	require.NoError(t, err)

	parsed, err := url.Parse(signin)
	require.NoError(t, err)
	query := parsed.Query()
	assert.Equal(t, "login", query.Get("Action"))
	assert.Equal(t, "federation-token", query.Get("SigninToken"))
	assert.Equal(t, "https://eu-west-1.console.aws.amazon.com/console/home", query.Get("Destination"))
}

func TestSignInURLServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad session", http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(server.Client())
	client.endpoint = server.URL

	_, err := client.SignInURL(context.Background(), testCredentials(), "us-east-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}
