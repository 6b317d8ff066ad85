package cli

import (
	"fmt"

	"github.com/alexanderramin/skinadvisor/internal/app"
	"github.com/alexanderramin/skinadvisor/internal/intent"
	"github.com/spf13/cobra"
)

func newPromptCmd(a *App) *cobra.Command {
	var profile profileFlags

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the advisor context block for a profile",
		Long: `Print the context block the hosting agent runtime feeds its model:
the advisor persona, the profile built from the flags and the list of
things still worth asking about.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return a.withSession(ctx, func(id string) error {
				if update := profile.updateArgs(cmd.Flags()); update != nil {
					if _, err := a.Sessions.Dispatch(ctx, id, app.ActionUpdateProfile, update); err != nil {
						return err
					}
				}
				p, err := a.Sessions.Profile(ctx, id)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), intent.BuildAdvisorPrompt(a.Catalog, p))
				return nil
			})
		},
	}

	profile.bind(cmd.Flags())
	return cmd
}
