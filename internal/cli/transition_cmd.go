package cli

import (
	"fmt"

	"github.com/alexanderramin/skinadvisor/internal/app"
	"github.com/alexanderramin/skinadvisor/internal/cli/formatter"
	"github.com/spf13/cobra"
)

const defaultTransitionMessage = "Here's your personalized seasonal transition guide."

func newTransitionCmd(a *App) *cobra.Command {
	var profile profileFlags
	var message string
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "transition <next-season>",
		Short:   "Plan the routine change from the current season to the next",
		Example: `  skinadvisor transition fall --skin dry --season summer`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := a.runOnce(cmd.Context(), profile.updateArgs(cmd.Flags()), app.ActionTransitionGuide, map[string]any{
				"nextSeason": args[0],
				"message":    message,
			})
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), body)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReply(body))
			return nil
		},
	}

	profile.bind(cmd.Flags())
	cmd.Flags().StringVarP(&message, "message", "m", defaultTransitionMessage, "Message echoed with the reply")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the reply as JSON")

	return cmd
}
