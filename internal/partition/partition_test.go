package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		name     string
		region   string
		startURL string
		want     string
	}{
		{
			name:     "simple subdomain",
			region:   "us-east-1",
			startURL: "https://mycompany.awsapps.com/start#",
			want:     "us-east-1-mycompany",
		},
		{
			name:     "hyphenated subdomain",
			region:   "eu-west-2",
			startURL: "https://our-org-2.awsapps.com/start#",
			want:     "eu-west-2-our-org-2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Partition{Region: tt.region, StartURL: tt.startURL}

			slug, err := p.Slug()
			require.NoError(t, err)
			assert.Equal(t, tt.want, slug)

			// Deterministic: same input, same key.
			again, err := p.Slug()
			require.NoError(t, err)
			assert.Equal(t, slug, again)
		})
	}
}

func TestSlugRejectsMalformedStartURLs(t *testing.T) {
	tests := []struct {
		name     string
		startURL string
		wantErr  error
	}{
		{"http scheme", "http://mycompany.awsapps.com/start#", ErrWrongScheme},
		{"no scheme", "mycompany.awsapps.com/start#", ErrWrongScheme},
		{"wrong domain", "https://mycompany.example.com/start#", ErrWrongDomain},
		{"bare awsapps domain", "https://awsapps.com/start#", ErrWrongDomain},
		{"nested subdomain", "https://a.b.awsapps.com/start#", ErrWrongDomain},
		{"missing fragment", "https://mycompany.awsapps.com/start", ErrMissingTrailer},
		{"wrong path", "https://mycompany.awsapps.com/begin#", ErrMissingTrailer},
		{"extra path segment", "https://mycompany.awsapps.com/start/extra#", ErrMissingTrailer},
		{"trailing content after fragment", "https://mycompany.awsapps.com/start#extra", ErrMissingTrailer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Partition{Region: "us-east-1", StartURL: tt.startURL}

			_, err := p.Slug()
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, p.Validate(), tt.wantErr)

			_, err = p.SSOStartURL()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSSOStartURLReturnsInputUnchanged(t *testing.T) {
	p := Partition{Region: "us-east-1", StartURL: "https://mycompany.awsapps.com/start#"}

	url, err := p.SSOStartURL()
	require.NoError(t, err)
	assert.Equal(t, p.StartURL, url)
}

func TestScopes(t *testing.T) {
	p := Partition{Region: "us-east-1", StartURL: "https://mycompany.awsapps.com/start#"}
	assert.Equal(t, []string{"sso:account:access"}, p.Scopes())
}
