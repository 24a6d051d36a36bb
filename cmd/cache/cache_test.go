package cache

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryansb/arsd/internal/app"
	"github.com/ryansb/arsd/internal/cache"
	mock_arsd "github.com/ryansb/arsd/tests/mock"
)

func testApp(t *testing.T) (*app.App, *cache.Store, *mock_arsd.MockPrompter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	store, err := cache.Open(filepath.Join(t.TempDir(), "arsd.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	prompter := mock_arsd.NewMockPrompter(ctrl)
	return &app.App{Store: store, Prompter: prompter}, store, prompter
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestClearCmd(t *testing.T) {
	a, store, prompter := testApp(t)
	ctx := context.Background()

	_, err := store.PutToken(ctx, "us-east-1-corp", "token", time.Hour, cache.TokenTypeBearer)
	require.NoError(t, err)
	prompter.EXPECT().PromptForConfirmation(gomock.Any()).Return(true)

	out := execute(t, CacheCmd(a), "clear")
	assert.Contains(t, out, "Cache cleared")
	assert.Nil(t, store.ValidToken(ctx, "us-east-1-corp"))
}

func TestClearCmdAborted(t *testing.T) {
	a, store, prompter := testApp(t)
	ctx := context.Background()

	_, err := store.PutToken(ctx, "us-east-1-corp", "token", time.Hour, cache.TokenTypeBearer)
	require.NoError(t, err)
	prompter.EXPECT().PromptForConfirmation(gomock.Any()).Return(false)

	out := execute(t, CacheCmd(a), "clear")
	assert.Contains(t, out, "Aborted")
	assert.NotNil(t, store.ValidToken(ctx, "us-east-1-corp"))
}

func TestPathCmd(t *testing.T) {
	a, store, _ := testApp(t)

	out := execute(t, CacheCmd(a), "path")
	assert.Contains(t, out, store.Path())
}

func TestSortCmd(t *testing.T) {
	a, store, _ := testApp(t)

	out := execute(t, SortCmd(a))
	assert.Contains(t, out, "ALPHA")

	out = execute(t, SortCmd(a), "frecency")
	assert.Contains(t, out, "FRECENCY")

	order, err := store.SortSetting(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cache.SortFrecency, order)
}
