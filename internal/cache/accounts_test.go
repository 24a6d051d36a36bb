package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryansb/arsd/models"
)

func TestPutAccountsUpsertsBatch(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.PutAccounts(ctx, "us-east-1-corp", []models.Account{
		{AccountID: "111122223333", AccountName: "prod", EmailAddress: "prod@example.com"},
		{AccountID: "444455556666", AccountName: "dev", EmailAddress: "dev@example.com"},
	})
	require.NoError(t, err)

	// Re-listing with a changed name must replace the row, not add one.
	err = store.PutAccounts(ctx, "us-east-1-corp", []models.Account{
		{AccountID: "111122223333", AccountName: "production", EmailAddress: "prod@example.com"},
	})
	require.NoError(t, err)

	accounts, err := store.Accounts(ctx, "us-east-1-corp")
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "dev", accounts[0].AccountName)
	assert.Equal(t, "production", accounts[1].AccountName)
	assert.Equal(t, "111122223333", accounts[1].AccountID)
}

func TestAccountsScopedToPartition(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.PutAccounts(ctx, "us-east-1-corp", []models.Account{
		{AccountID: "111122223333", AccountName: "prod", EmailAddress: "prod@example.com"},
	})
	require.NoError(t, err)

	accounts, err := store.Accounts(ctx, "eu-west-1-other")
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestOldestAccountUpdate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("no records yields zero time", func(t *testing.T) {
		oldest, err := store.OldestAccountUpdate(ctx, "us-east-1-empty")
		require.NoError(t, err)
		assert.True(t, oldest.IsZero())
	})

	t.Run("oldest row governs the partition", func(t *testing.T) {
		store.now = func() time.Time { return time.Now().Add(-6 * time.Hour) }
		err := store.PutAccounts(ctx, "us-east-1-corp", []models.Account{
			{AccountID: "111122223333", AccountName: "prod", EmailAddress: "prod@example.com"},
		})
		require.NoError(t, err)

		store.now = time.Now
		err = store.PutAccounts(ctx, "us-east-1-corp", []models.Account{
			{AccountID: "444455556666", AccountName: "dev", EmailAddress: "dev@example.com"},
		})
		require.NoError(t, err)

		oldest, err := store.OldestAccountUpdate(ctx, "us-east-1-corp")
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(-6*time.Hour), oldest, 5*time.Second)
	})
}
