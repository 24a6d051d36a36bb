package cache

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ryansb/arsd/internal/app"
	"github.com/ryansb/arsd/internal/cache"
)

// CacheCmd groups maintenance operations for the local cache.
func CacheCmd(a *app.App) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the local credential and directory cache",
	}
	cacheCmd.AddCommand(clearCmd(a))
	cacheCmd.AddCommand(pathCmd(a))
	return cacheCmd
}

func clearCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete cached registrations, tokens, accounts, and roles",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if !a.Prompter.PromptForConfirmation("Delete all cached sessions and listings?") {
				cmd.Println("Aborted.")
				return nil
			}
			if err := a.Store.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("failed to clear cache: %w", err)
			}
			cmd.Println("Cache cleared. Usage history was kept.")
			return nil
		},
	}
}

func pathCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache database location",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cmd.Println(a.Store.Path())
			return nil
		},
	}
}

// SortCmd shows or sets the account ordering preference.
func SortCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:       "sort [alpha|frecency]",
		Short:     "Show or set the account sort order",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"alpha", "frecency"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			if len(args) == 0 {
				order, err := a.Store.SortSetting(cmd.Context())
				if err != nil {
					return err
				}
				cmd.Println(order)
				return nil
			}

			order := cache.SortAlpha
			if args[0] == "frecency" {
				order = cache.SortFrecency
			}
			if err := a.Store.PutSortSetting(cmd.Context(), order); err != nil {
				return fmt.Errorf("failed to save sort order: %w", err)
			}
			cmd.Printf("Sort order set to %s\n", order)
			return nil
		},
	}
}
