package creds

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ryansb/arsd/internal/app"
	"github.com/ryansb/arsd/internal/cache"
	"github.com/ryansb/arsd/internal/console"
	"github.com/ryansb/arsd/internal/directory"
	promptUtils "github.com/ryansb/arsd/utils/prompt"
)

// ConsoleCmd prints a federated sign-in URL for the AWS web console.
func ConsoleCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "console <partition> <account-id> <role>",
		Short: "Open the AWS web console for a role",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			p, slug, err := a.ResolvePartition(args[0])
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
			credentials, err := svc.Credentials(cmd.Context(), args[1], args[2], cache.StyleWebConsole)
			if err != nil {
				if errors.Is(err, directory.ErrMissingToken) {
					cmd.Println("No valid session; run `arsd login` first.")
				}
				return err
			}

			url, err := console.NewClient(nil).SignInURL(cmd.Context(), credentials, p.Region)
			if err != nil {
				return err
			}
			cmd.Println(url)
			return nil
		},
	}
}
