package cli

import (
	"log/slog"
	"time"

	"github.com/alexanderramin/skinadvisor/internal/catalog"
	"github.com/alexanderramin/skinadvisor/internal/config"
	"github.com/alexanderramin/skinadvisor/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and settings shared by CLI commands.
type App struct {
	Sessions service.AdvisorSessionService
	Catalog  *catalog.Catalog
	Config   config.Config
	Logger   *slog.Logger

	// IsInteractive reports whether stdin is a terminal. Nil means batch.
	IsInteractive func() bool
	// Now overrides the wall clock for relative timestamps.
	Now func() time.Time
	// HistoryPath overrides the shell history file; "-" disables history.
	HistoryPath string
}

// NewRootCmd creates the top-level "skinadvisor" command and registers all
// subcommands against the provided App.
func NewRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "skinadvisor",
		Short: "Conversational skincare advisor",
		Long: `Skincare advisor that keeps a per-session profile and turns it into
seasonal routines, concern guidance, allergy alerts and transition plans.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, a)
		},
	}

	root.AddCommand(
		newRecommendCmd(a),
		newTransitionCmd(a),
		newConflictsCmd(a),
		newCatalogCmd(a),
		newPromptCmd(a),
		newWizardCmd(a),
		newShellCmd(a),
		newServeCmd(a),
	)

	return root
}
