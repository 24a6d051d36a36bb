package root

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	cmdCache "github.com/ryansb/arsd/cmd/cache"
	cmdCreds "github.com/ryansb/arsd/cmd/creds"
	cmdDirectory "github.com/ryansb/arsd/cmd/directory"
	cmdSession "github.com/ryansb/arsd/cmd/session"
	"github.com/ryansb/arsd/internal/app"
	"github.com/ryansb/arsd/internal/cache"
	"github.com/ryansb/arsd/internal/config"
	"github.com/ryansb/arsd/internal/notify"
	promptUtils "github.com/ryansb/arsd/utils/prompt"
)

// NewRootCmd assembles the full command tree around an App.
func NewRootCmd(a *app.App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "arsd",
		Short: "AWS SSO session manager",
		Long:  `Sign in to AWS IAM Identity Center partitions, browse accounts and roles, and mint short-lived credentials from a local cache.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(cmdSession.LoginCmd(a))
	rootCmd.AddCommand(cmdDirectory.AccountsCmd(a))
	rootCmd.AddCommand(cmdDirectory.RolesCmd(a))
	rootCmd.AddCommand(cmdCreds.CredsCmd(a))
	rootCmd.AddCommand(cmdCreds.ConsoleCmd(a))
	rootCmd.AddCommand(cmdCache.CacheCmd(a))
	rootCmd.AddCommand(cmdCache.SortCmd(a))
	rootCmd.AddCommand(PartitionsCmd(a))

	return rootCmd
}

// PartitionsCmd lists the configured partitions and their cache slugs.
func PartitionsCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "partitions",
		Short: "List configured partitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			for _, p := range a.Settings.Partitions {
				slug, err := p.Slug()
				if err != nil {
					return err
				}
				cmd.Printf("%s\t%s\t%s\n", slug, p.Region, p.StartURL)
			}
			return nil
		},
	}
}

// NewApp loads configuration, opens the cache store, and wires the default
// collaborators.
func NewApp() (*app.App, error) {
	configPath, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}
	settings, err := config.Load(afero.NewOsFs(), configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	dbPath, err := config.DefaultDatabasePath()
	if err != nil {
		return nil, err
	}
	store, err := cache.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}

	return &app.App{
		Settings:   settings,
		Store:      store,
		Notifier:   notify.LogNotifier{},
		Prompter:   promptUtils.NewPrompt(),
		NewClients: app.DefaultClientFactory,
	}, nil
}
