package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/skinadvisor/internal/app"
	"github.com/alexanderramin/skinadvisor/internal/catalog"
	"github.com/alexanderramin/skinadvisor/internal/cli/formatter"
	"github.com/alexanderramin/skinadvisor/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// advisorHuhTheme returns a huh theme using the Gruvbox palette.
func advisorHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[•] ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// profileWizard holds the values bound to the profile form. List fields
// are typed as comma separated text.
type profileWizard struct {
	skinType  string
	season    string
	climate   string
	concerns  []string
	allergies string
	products  string
}

// newProfileWizard prefills the form from the current profile.
func newProfileWizard(p domain.UserProfile) *profileWizard {
	w := &profileWizard{
		skinType:  string(p.SkinType),
		season:    string(p.CurrentSeason),
		climate:   string(p.Climate),
		allergies: strings.Join(p.Allergies, ", "),
		products:  strings.Join(p.CurrentProducts, ", "),
	}
	for _, c := range p.Concerns {
		w.concerns = append(w.concerns, string(c))
	}
	return w
}

func (w *profileWizard) form(cat *catalog.Catalog) *huh.Form {
	skinOpts := make([]huh.Option[string], 0, len(domain.AllSkinTypes))
	for _, st := range domain.AllSkinTypes {
		label := string(st)
		if desc := cat.Describe(st); desc != "" {
			label = fmt.Sprintf("%s (%s)", st, desc)
		}
		skinOpts = append(skinOpts, huh.NewOption(label, string(st)))
	}
	seasonOpts := make([]huh.Option[string], 0, len(domain.AllSeasons))
	for _, s := range domain.AllSeasons {
		seasonOpts = append(seasonOpts, huh.NewOption(strings.TrimSpace(cat.Icon(s)+" "+string(s)), string(s)))
	}
	climateOpts := []huh.Option[string]{huh.NewOption("Not sure", "")}
	climateOpts = append(climateOpts, huh.NewOptions(stringsOf(domain.AllClimates)...)...)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What's your skin type?").
				Options(skinOpts...).
				Value(&w.skinType),
			huh.NewSelect[string]().
				Title("Which season is it for you?").
				Options(seasonOpts...).
				Value(&w.season),
			huh.NewSelect[string]().
				Title("Climate").
				Options(climateOpts...).
				Value(&w.climate),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Any skin concerns?").
				Options(huh.NewOptions(stringsOf(domain.AllConcerns)...)...).
				Value(&w.concerns),
			huh.NewInput().
				Title("Allergies").
				Description("Comma separated, leave empty for none").
				Value(&w.allergies),
			huh.NewInput().
				Title("Current products").
				Description("Comma separated, checked for conflicts").
				Value(&w.products),
		),
	).WithTheme(advisorHuhTheme()).WithShowHelp(false)
}

// updateArgs returns the updateUserProfile payload for the form values.
// The wizard owns the whole profile, so lists are always sent.
func (w *profileWizard) updateArgs() map[string]any {
	args := map[string]any{
		"skinType":        w.skinType,
		"season":          w.season,
		"concerns":        append([]string{}, w.concerns...),
		"allergies":       splitList(w.allergies),
		"currentProducts": splitList(w.products),
		"message":         "Profile saved from the wizard.",
	}
	if w.climate != "" {
		args["climate"] = w.climate
	}
	return args
}

// splitList splits comma separated input, trimming blanks. Never nil.
func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func stringsOf[T ~string](vals []T) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}

func newWizardCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Build a profile with a guided form, then get recommendations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.interactive() {
				return errors.New("wizard needs an interactive terminal; use 'recommend' with flags instead")
			}
			w := newProfileWizard(domain.UserProfile{})
			if err := w.form(a.Catalog).Run(); err != nil {
				return err
			}
			body, err := a.runOnce(cmd.Context(), w.updateArgs(), app.ActionGetRecommendations, map[string]any{
				"requestType": string(domain.RequestRoutine),
				"message":     defaultRecommendMessage,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReply(body))
			return nil
		},
	}
}
