package directory

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ryansb/arsd/internal/app"
	promptUtils "github.com/ryansb/arsd/utils/prompt"
)

// RolesCmd lists the assumable roles for one account.
func RolesCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "roles <partition> [account-id]",
		Short: "List roles for an account",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			p, slug, err := a.ResolvePartition(args[0])
			if err != nil {
				if errors.Is(err, promptUtils.ErrInterrupted) {
					return nil
				}
				return err
			}

			var accountID string
			if len(args) == 2 {
				accountID = args[1]
			} else {
				accountID, err = a.Prompter.PromptRequired("Account ID")
				if err != nil {
					if errors.Is(err, promptUtils.ErrInterrupted) {
						return nil
					}
					return err
				}
			}

			svc, err := a.DirectoryFor(cmd.Context(), p, slug)
			if err != nil {
				return err
			}
			roles, err := svc.ListRoles(cmd.Context(), accountID)
			if err != nil {
				return err
			}
			for _, role := range roles {
				if role.Alias != role.RoleName {
					cmd.Printf("%s\t%s\n", role.RoleName, role.Alias)
					continue
				}
				cmd.Println(role.RoleName)
			}
			return nil
		},
	}
}
