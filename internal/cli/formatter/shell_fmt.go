package formatter

import (
	"fmt"
	"strings"
)

// FormatShellWelcome renders the welcome banner shown on shell startup.
func FormatShellWelcome() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(StylePurple.Render("  skinadvisor") + "\n")
	b.WriteString(StyleDim.Render("  ─────────────────────────────") + "\n")
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("  Tell me about your skin, then ask for a plan.") + "\n")
	b.WriteString("\n")
	b.WriteString("  " + StyleGreen.Render("update skinType=oily season=summer") + "\n")
	b.WriteString("  " + StyleGreen.Render("recommend routine") + "\n")
	b.WriteString("  " + StyleGreen.Render("transition fall") + "\n")
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("  Type 'help' for all commands.") + "\n")
	b.WriteString("\n")

	return b.String()
}

// shellCommands lists the shell commands and their one-line help.
var shellCommands = [][]string{
	{"update key=value ...", "Update the profile (skinType, concerns, season, climate, allergies, currentProducts)"},
	{"recommend <type> [msg]", "Recommendations; type is routine, ingredients or concerns"},
	{"transition <season> [msg]", "Seasonal transition guide to the given season"},
	{"conflicts [product ...]", "Check products for conflicts (defaults to current products)"},
	{"profile", "Show the current profile"},
	{"history", "Show the actions recorded this session"},
	{"prompt", "Show the advisor context block for the current profile"},
	{"wizard", "Fill in the profile with a guided form"},
	{"reset", "Start a fresh session"},
	{"help", "Show this help"},
	{"quit", "Exit the shell"},
}

// FormatShellHelp renders the shell command reference.
func FormatShellHelp() string {
	var b strings.Builder
	b.WriteString("\n " + StyleHeader.Render("SHELL COMMANDS") + "\n")
	for _, c := range shellCommands {
		b.WriteString(fmt.Sprintf("  %-28s %s\n", StyleGreen.Render(c[0]), StyleDim.Render(c[1])))
	}
	b.WriteString("\n" + StyleDim.Render("  List values are comma separated: concerns=acne,aging") + "\n")
	return b.String()
}
