package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skinadvisor/internal/cli/formatter"
	"github.com/alexanderramin/skinadvisor/internal/contract"
	"github.com/alexanderramin/skinadvisor/internal/domain"
	"github.com/spf13/cobra"
)

func newCatalogCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the reference catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSkinTypes(contract.FromSkinTypes(a.Catalog)))
			return nil
		},
	}

	cmd.AddCommand(
		newCatalogPlanCmd(a),
		newCatalogConcernCmd(a),
	)
	return cmd
}

func newCatalogPlanCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "plan <season> <skin-type>",
		Short:   "Show the routine and ingredients for a season and skin type",
		Example: `  skinadvisor catalog plan winter dry`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			season, skin := domain.Season(args[0]), domain.SkinType(args[1])
			if !season.Valid() {
				return fmt.Errorf("unknown season %q (one of %s)", args[0], enumHelp(domain.AllSeasons))
			}
			if !skin.Valid() {
				return fmt.Errorf("unknown skin type %q (one of %s)", args[1], enumHelp(domain.AllSkinTypes))
			}
			plan, ok := a.Catalog.Plan(season, skin)
			if !ok {
				return fmt.Errorf("catalog has no plan for %s/%s", season, skin)
			}

			var b strings.Builder
			b.WriteString(formatter.Header(fmt.Sprintf("%s skin", skin)) + "\n")
			b.WriteString(formatter.SeasonBadge(string(season), a.Catalog.Icon(season)) + "\n\n")
			b.WriteString(formatter.Bold("ROUTINE") + "\n")
			b.WriteString(formatter.BulletList(plan.Routine, "None"))
			b.WriteString(formatter.Bold("INGREDIENTS") + "\n")
			b.WriteString(formatter.BulletList(plan.Ingredients, "None"))
			fmt.Fprint(cmd.OutOrStdout(), b.String())
			return nil
		},
	}
}

func newCatalogConcernCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "concern <concern>",
		Short:   "Show the guidance attached to a skin concern",
		Example: `  skinadvisor catalog concern acne`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			concern := domain.Concern(args[0])
			if !concern.Valid() {
				return fmt.Errorf("unknown concern %q (one of %s)", args[0], enumHelp(domain.AllConcerns))
			}
			profile, ok := a.Catalog.Concern(concern)
			if !ok {
				return fmt.Errorf("catalog has no guidance for %s", concern)
			}

			var b strings.Builder
			b.WriteString(formatter.Header(string(concern)) + "\n")
			b.WriteString(formatter.Bold("PRODUCTS") + "\n")
			b.WriteString(formatter.BulletList(profile.Products, "None"))
			b.WriteString(formatter.Bold("INGREDIENTS") + "\n")
			b.WriteString(formatter.BulletList(profile.Ingredients, "None"))
			b.WriteString(formatter.Bold("AVOID") + "\n")
			b.WriteString(formatter.BulletList(profile.Avoid, "Nothing specific"))
			fmt.Fprint(cmd.OutOrStdout(), b.String())
			return nil
		},
	}
}
