package cli

import (
	"fmt"

	"github.com/alexanderramin/skinadvisor/internal/app"
	"github.com/alexanderramin/skinadvisor/internal/cli/formatter"
	"github.com/alexanderramin/skinadvisor/internal/domain"
	"github.com/spf13/cobra"
)

const defaultRecommendMessage = "Here are your personalized skincare recommendations based on your profile."

func newRecommendCmd(a *App) *cobra.Command {
	var profile profileFlags
	var requestType, message string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Seasonal routine, ingredients and concern guidance for a profile",
		Example: `  skinadvisor recommend --skin oily --season summer --concerns acne
  skinadvisor recommend --skin dry --season winter --type ingredients --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := a.runOnce(cmd.Context(), profile.updateArgs(cmd.Flags()), app.ActionGetRecommendations, map[string]any{
				"requestType": requestType,
				"message":     message,
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
	cmd.Flags().StringVar(&requestType, "type", string(domain.RequestRoutine), "Focus of the request ("+enumHelp(domain.AllRequestTypes)+")")
	cmd.Flags().StringVarP(&message, "message", "m", defaultRecommendMessage, "Message echoed with the reply")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the reply as JSON")

	return cmd
}
