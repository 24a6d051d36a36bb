package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidRegistration(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	issued := time.Now().UTC().Truncate(time.Second)

	t.Run("missing registration is a miss", func(t *testing.T) {
		assert.Nil(t, store.ValidRegistration(ctx, "us-east-1-missing"))
	})

	t.Run("live registration is returned", func(t *testing.T) {
		_, err := store.PutRegistration(ctx, "us-east-1-corp", "cid-1", "secret-1", issued, issued.Add(90*24*time.Hour))
		require.NoError(t, err)

		reg := store.ValidRegistration(ctx, "us-east-1-corp")
		require.NotNil(t, reg)
		assert.Equal(t, "cid-1", reg.ClientID)
		assert.Equal(t, "secret-1", reg.ClientSecret)
	})

	t.Run("expired registration is a miss", func(t *testing.T) {
		_, err := store.PutRegistration(ctx, "us-east-1-old", "cid-2", "secret-2", issued.Add(-time.Hour), issued.Add(-time.Minute))
		require.NoError(t, err)

		assert.Nil(t, store.ValidRegistration(ctx, "us-east-1-old"))
	})

	t.Run("expiry buffer excludes nearly expired registrations", func(t *testing.T) {
		// Expires in two minutes: inside the five-minute buffer.
		_, err := store.PutRegistration(ctx, "us-east-1-soon", "cid-3", "secret-3", issued, time.Now().Add(2*time.Minute))
		require.NoError(t, err)
		assert.Nil(t, store.ValidRegistration(ctx, "us-east-1-soon"))

		// With no buffer the same registration is still usable.
		store.ExpiryBuffer = 0
		defer func() { store.ExpiryBuffer = RegistrationExpiryBuffer }()
		assert.NotNil(t, store.ValidRegistration(ctx, "us-east-1-soon"))
	})
}

func TestPutRegistrationUpserts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	issued := time.Now().UTC()

	_, err := store.PutRegistration(ctx, "us-east-1-corp", "cid-first", "secret-first", issued, issued.Add(time.Hour))
	require.NoError(t, err)
	_, err = store.PutRegistration(ctx, "us-east-1-corp", "cid-second", "secret-second", issued, issued.Add(2*time.Hour))
	require.NoError(t, err)

	reg := store.ValidRegistration(ctx, "us-east-1-corp")
	require.NotNil(t, reg)
	assert.Equal(t, "cid-second", reg.ClientID)
	assert.Equal(t, "secret-second", reg.ClientSecret)

	// Exactly one row exists for the partition.
	var count int
	require.NoError(t, store.db.QueryRow(
		`SELECT COUNT(*) FROM registrations WHERE partition = ?`, "us-east-1-corp").Scan(&count))
	assert.Equal(t, 1, count)
}
