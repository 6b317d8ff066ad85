package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/skinadvisor/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shellDriver wraps teatest.Driver with access to shellModel internals.
type shellDriver struct {
	*teatest.Driver
}

func newShellDriver(t *testing.T) *shellDriver {
	t.Helper()
	sess, app := newTestShellSession(t)
	m := newShellModel(context.Background(), app, sess)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()
	return &shellDriver{Driver: d}
}

func (d *shellDriver) model() shellModel {
	return d.Model.(shellModel)
}

func (d *shellDriver) lastOutput() string {
	return stripANSI(d.model().lastOutput)
}

func TestShellModel_UpdateShowsProfileInPrompt(t *testing.T) {
	d := newShellDriver(t)

	assert.Contains(t, stripANSI(d.View()), "skin ❯")

	d.Submit("update skin=oily season=summer")
	assert.Contains(t, d.lastOutput(), "✓ Profile updated.")
	assert.Contains(t, stripANSI(d.View()), "skin (oily/summer) ❯")

	d.Submit("recommend ingredients")
	assert.Contains(t, d.lastOutput(), "KEY INGREDIENTS ◆")
	assert.Equal(t, "", d.model().input.Value(), "input resets after enter")
}

func TestShellModel_HistoryNavigation(t *testing.T) {
	d := newShellDriver(t)

	d.Submit("profile")
	d.Submit("help")

	d.PressUp()
	assert.Equal(t, "help", d.model().input.Value())
	d.PressUp()
	assert.Equal(t, "profile", d.model().input.Value())
	d.PressDown()
	assert.Equal(t, "help", d.model().input.Value())
	d.PressDown()
	assert.Equal(t, "", d.model().input.Value())
}

func TestShellModel_EmptyEnterDoesNothing(t *testing.T) {
	d := newShellDriver(t)

	d.PressEnter()
	assert.Empty(t, d.model().history)
	assert.Empty(t, d.model().lastOutput)
}

func TestShellModel_Quit(t *testing.T) {
	d := newShellDriver(t)

	d.Submit("quit")
	assert.True(t, d.model().quitting)
	assert.Equal(t, "Goodbye.\n", stripANSI(d.View()))
}

func TestShellModel_CtrlCQuits(t *testing.T) {
	d := newShellDriver(t)

	d.PressCtrlC()
	assert.True(t, d.Quitting)
	assert.True(t, d.model().quitting)
}

func TestShellModel_WizardOpensAndCancels(t *testing.T) {
	d := newShellDriver(t)

	d.Submit("update skin=sensitive")
	d.Submit("wizard")
	require.Equal(t, modeWizard, d.model().mode)
	require.NotNil(t, d.model().wizard)
	assert.Equal(t, "sensitive", d.model().wizard.skinType, "wizard is prefilled from the profile")
	assert.Contains(t, stripANSI(d.View()), "What's your skin type?")

	d.PressEsc()
	assert.Equal(t, modePrompt, d.model().mode)
	assert.Nil(t, d.model().form)
	assert.Equal(t, "Cancelled.", d.lastOutput())
}

func TestShellModel_Suggestions(t *testing.T) {
	d := newShellDriver(t)

	d.Type("tr")
	in := d.model().input
	assert.Equal(t, []string{"transition"}, in.AvailableSuggestions())

	d.Type("ansition w")
	in = d.model().input
	assert.Equal(t, []string{"transition winter"}, in.AvailableSuggestions())
}

func TestFilterSuggestions(t *testing.T) {
	assert.Equal(t, []string{"recommend", "reset"}, filterSuggestions(shellCommandNames, "RE"))
	assert.Nil(t, filterSuggestions(shellCommandNames, "zzz"))
}

func TestProfileWizard_UpdateArgs(t *testing.T) {
	w := &profileWizard{
		skinType:  "dry",
		season:    "winter",
		concerns:  []string{"aging"},
		allergies: " lanolin , ,fragrance",
	}
	args := w.updateArgs()

	assert.Equal(t, "dry", args["skinType"])
	assert.Equal(t, []string{"lanolin", "fragrance"}, args["allergies"])
	assert.Equal(t, []string{}, args["currentProducts"])
	assert.NotContains(t, args, "climate", "an unsure climate is left unset")

	w.climate = "humid"
	assert.Equal(t, "humid", w.updateArgs()["climate"])
}
