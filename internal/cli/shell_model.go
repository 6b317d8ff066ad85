package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/skinadvisor/internal/app"
	"github.com/alexanderramin/skinadvisor/internal/cli/formatter"
	"github.com/alexanderramin/skinadvisor/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// shellMode tracks which interaction mode the shell is in.
type shellMode int

const (
	modePrompt shellMode = iota // Normal command input.
	modeWizard                  // huh profile form is active.
)

// shellModel is the bubbletea Model for the interactive shell REPL.
type shellModel struct {
	ctx   context.Context
	input textinput.Model
	form  *huh.Form
	width int

	app    *App
	sess   *shellSession
	mode   shellMode
	wizard *profileWizard

	history     []string
	historyIdx  int
	historyPath string

	// lastOutput is the most recent printed block, kept for tests.
	lastOutput string
	quitting   bool
}

func newShellModel(ctx context.Context, a *App, sess *shellSession) shellModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.ShowSuggestions = true
	ti.CharLimit = 500
	// Tab accepts a suggestion; Up/Down walk history.
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))

	path := shellHistoryPath(a)
	hist := loadHistoryFromPath(path)

	return shellModel{
		ctx:         ctx,
		input:       ti,
		app:         a,
		sess:        sess,
		history:     hist,
		historyIdx:  len(hist),
		historyPath: path,
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m shellModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Println(formatter.FormatShellWelcome()),
	)
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(m.promptPrefix()) - 1
		if m.form != nil {
			m.form = m.form.WithWidth(msg.Width)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.mode == modeWizard {
			return m.updateWizard(msg)
		}
		return m.updatePrompt(msg)
	}

	// huh needs its init and focus messages while the form is up.
	if m.mode == modeWizard && m.form != nil {
		return m.updateWizard(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m shellModel) View() string {
	if m.quitting {
		return formatter.Dim("Goodbye.") + "\n"
	}
	if m.mode == modeWizard && m.form != nil {
		return m.form.View()
	}
	return m.promptPrefix() + m.input.View()
}

// promptPrefix shows the known skin type and season so the user can see
// whether recommendations will be complete.
func (m *shellModel) promptPrefix() string {
	prefix := formatter.StylePurple.Render("skin")
	if p, err := m.app.Sessions.Profile(m.ctx, m.sess.sessionID); err == nil && p.Complete() {
		prefix += " " + formatter.Dim("(") +
			formatter.StyleGreen.Render(string(p.SkinType)) + formatter.Dim("/") +
			formatter.SeasonStyle(p.CurrentSeason).Render(string(p.CurrentSeason)) +
			formatter.Dim(")")
	}
	return prefix + " " + formatter.Dim("❯") + " "
}

// ── prompt mode ──────────────────────────────────────────────────────────────

func (m shellModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		m.input.SetSuggestions(nil)
		if input == "" {
			return m, nil
		}
		m.addHistory(input)

		if strings.EqualFold(input, "wizard") {
			return m, m.startWizard()
		}

		out := m.sess.execute(m.ctx, input)
		m.lastOutput = out
		cmds := []tea.Cmd{tea.Println(out)}
		if m.sess.quit {
			m.quitting = true
			cmds = append(cmds, tea.Quit)
		}
		return m, tea.Sequence(cmds...)

	case tea.KeyUp:
		m.historyUp()
		return m, nil

	case tea.KeyDown:
		m.historyDown()
		return m, nil

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.updateSuggestions()
		return m, cmd
	}
}

// ── wizard mode ──────────────────────────────────────────────────────────────

func (m *shellModel) startWizard() tea.Cmd {
	p, err := m.app.Sessions.Profile(m.ctx, m.sess.sessionID)
	if err != nil {
		m.lastOutput = shellError(err)
		return tea.Println(m.lastOutput)
	}
	m.wizard = newProfileWizard(p)
	m.form = m.wizard.form(m.app.Catalog)
	if m.width > 0 {
		m.form = m.form.WithWidth(m.width)
	}
	m.mode = modeWizard
	return m.form.Init()
}

func (m shellModel) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.exitWizard()
		m.lastOutput = formatter.Dim("Cancelled.")
		return m, tea.Println(m.lastOutput)
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		args := m.wizard.updateArgs()
		m.exitWizard()
		m.lastOutput = m.sess.dispatch(m.ctx, app.ActionUpdateProfile, args)
		return m, tea.Batch(cmd, tea.Println(m.lastOutput))
	case huh.StateAborted:
		m.exitWizard()
		m.lastOutput = formatter.Dim("Cancelled.")
		return m, tea.Println(m.lastOutput)
	}
	return m, cmd
}

func (m *shellModel) exitWizard() {
	m.mode = modePrompt
	m.form = nil
	m.wizard = nil
}

// ── history ──────────────────────────────────────────────────────────────────

func (m *shellModel) addHistory(line string) {
	m.history = append(m.history, line)
	m.historyIdx = len(m.history)
	appendHistoryToPath(m.historyPath, line)
}

func (m *shellModel) historyUp() {
	if m.historyIdx > 0 {
		m.historyIdx--
		m.input.SetValue(m.history[m.historyIdx])
		m.input.CursorEnd()
	}
}

func (m *shellModel) historyDown() {
	if m.historyIdx < len(m.history)-1 {
		m.historyIdx++
		m.input.SetValue(m.history[m.historyIdx])
		m.input.CursorEnd()
	} else {
		m.historyIdx = len(m.history)
		m.input.SetValue("")
	}
}

// ── suggestions ──────────────────────────────────────────────────────────────

var shellCommandNames = []string{
	"update", "recommend", "transition", "conflicts",
	"profile", "history", "prompt", "wizard", "reset", "help", "quit",
}

func (m *shellModel) updateSuggestions() {
	text := m.input.Value()
	parts := strings.Fields(text)
	if len(parts) == 0 {
		m.input.SetSuggestions(nil)
		return
	}
	trailingSpace := strings.HasSuffix(text, " ")

	if len(parts) == 1 && !trailingSpace {
		m.input.SetSuggestions(filterSuggestions(shellCommandNames, parts[0]))
		return
	}

	var values []string
	switch strings.ToLower(parts[0]) {
	case "recommend":
		values = stringsOf(domain.AllRequestTypes)
	case "transition":
		values = stringsOf(domain.AllSeasons)
	}
	if values == nil || len(parts) > 2 || (len(parts) == 2 && trailingSpace) {
		m.input.SetSuggestions(nil)
		return
	}

	prefix := ""
	if len(parts) == 2 {
		prefix = parts[1]
	}
	full := make([]string, 0, len(values))
	for _, v := range filterSuggestions(values, prefix) {
		full = append(full, parts[0]+" "+v)
	}
	m.input.SetSuggestions(full)
}

// filterSuggestions returns candidates starting with prefix, case-insensitively.
func filterSuggestions(candidates []string, prefix string) []string {
	prefix = strings.ToLower(prefix)
	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c), prefix) {
			out = append(out, c)
		}
	}
	return out
}
