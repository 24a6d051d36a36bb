package creds

import (
	"errors"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ryansb/arsd/internal/app"
	"github.com/ryansb/arsd/internal/cache"
	"github.com/ryansb/arsd/internal/directory"
	promptUtils "github.com/ryansb/arsd/utils/prompt"
)

// CredsCmd fetches short-lived credentials for a role and prints them as
// shell exports for the current platform.
func CredsCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "creds <partition> <account-id> <role>",
		Short: "Fetch short-lived credentials for a role",
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

			style := cache.StyleLinuxCopy
			if runtime.GOOS == "windows" {
				style = cache.StyleWindowsCopy
			}
			credentials, err := svc.Credentials(cmd.Context(), args[1], args[2], style)
			if err != nil {
				if errors.Is(err, directory.ErrMissingToken) {
					cmd.Println("No valid session; run `arsd login` first.")
				}
				return err
			}

			if style == cache.StyleWindowsCopy {
				cmd.Printf("$env:AWS_ACCESS_KEY_ID=%q\n", credentials.AccessKeyID)
				cmd.Printf("$env:AWS_SECRET_ACCESS_KEY=%q\n", credentials.SecretAccessKey)
				cmd.Printf("$env:AWS_SESSION_TOKEN=%q\n", credentials.SessionToken)
			} else {
				cmd.Printf("export AWS_ACCESS_KEY_ID=%q\n", credentials.AccessKeyID)
				cmd.Printf("export AWS_SECRET_ACCESS_KEY=%q\n", credentials.SecretAccessKey)
				cmd.Printf("export AWS_SESSION_TOKEN=%q\n", credentials.SessionToken)
			}
			cmd.Printf("# expires %s\n", credentials.ExpiresAt.Local())
			return nil
		},
	}
}
