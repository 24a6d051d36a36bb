package app

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryansb/arsd/internal/config"
	"github.com/ryansb/arsd/internal/partition"
	mock_arsd "github.com/ryansb/arsd/tests/mock"
)

func testApp(t *testing.T) (*App, *mock_arsd.MockPrompter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	prompter := mock_arsd.NewMockPrompter(ctrl)
	return &App{
		Settings: &config.Settings{Partitions: []partition.Partition{
			{StartURL: "https://zulu.awsapps.com/start#", Region: "us-east-1"},
			{StartURL: "https://alpha.awsapps.com/start#", Region: "eu-west-1"},
		}},
		Prompter: prompter,
	}, prompter
}

func TestSlugsSorted(t *testing.T) {
	a, _ := testApp(t)
	assert.Equal(t, []string{"eu-west-1-alpha", "us-east-1-zulu"}, a.Slugs())
}

func TestResolvePartitionBySlug(t *testing.T) {
	a, _ := testApp(t)

	p, slug, err := a.ResolvePartition("us-east-1-zulu")
	require.NoError(t, err)
	assert.Equal(t, "us-east-1-zulu", slug)
	assert.Equal(t, "https://zulu.awsapps.com/start#", p.StartURL)
}

func TestResolvePartitionPromptsWhenAmbiguous(t *testing.T) {
	a, prompter := testApp(t)

	prompter.EXPECT().
		PromptForSelection(gomock.Any(), []string{"eu-west-1-alpha", "us-east-1-zulu"}).
		Return("eu-west-1-alpha", nil)

	_, slug, err := a.ResolvePartition("")
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1-alpha", slug)
}

func TestResolvePartitionSkipsPromptForSinglePartition(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	a := &App{
		Settings: &config.Settings{Partitions: []partition.Partition{
			{StartURL: "https://corp.awsapps.com/start#", Region: "us-east-1"},
		}},
		Prompter: mock_arsd.NewMockPrompter(ctrl),
	}

	_, slug, err := a.ResolvePartition("")
	require.NoError(t, err)
	assert.Equal(t, "us-east-1-corp", slug)
}

func TestResolvePartitionUnknownSlug(t *testing.T) {
	a, _ := testApp(t)

	_, _, err := a.ResolvePartition("ap-south-1-nowhere")
	assert.ErrorContains(t, err, "ap-south-1-nowhere")
}
