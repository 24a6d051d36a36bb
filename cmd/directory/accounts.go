package directory

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ryansb/arsd/internal/app"
	"github.com/ryansb/arsd/internal/directory"
	promptUtils "github.com/ryansb/arsd/utils/prompt"
)

// AccountsCmd lists a partition's accounts, ordered per the persisted sort
// setting.
func AccountsCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts [partition]",
		Short: "List accounts in a partition",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			var slug string
			if len(args) == 1 {
				slug = args[0]
			}
			p, slug, err := a.ResolvePartition(slug)
			if err != nil {
				if errors.Is(err, promptUtils.ErrInterrupted) {
					return nil
				}
				return err
			}

			svc, err := a.DirectoryFor(cmd.Context(), p, slug)
			if err != nil {
				return err
			}
			accounts, err := svc.ListAccounts(cmd.Context())
			if err != nil {
				return err
			}

			order, err := a.Store.SortSetting(cmd.Context())
			if err != nil {
				return err
			}
			directory.SortAccounts(accounts, order)

			for _, account := range accounts {
				name := account.AccountName
				if account.Alias != "" {
					name = account.Alias
				}
				cmd.Printf("%s\t%s\t%s\n", account.AccountID, name, account.EmailAddress)
			}
			return nil
		},
	}
}
