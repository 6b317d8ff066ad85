package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/skinadvisor/internal/app"
	"github.com/alexanderramin/skinadvisor/internal/cli/formatter"
	"github.com/alexanderramin/skinadvisor/internal/contract"
	"github.com/alexanderramin/skinadvisor/internal/domain"
	"github.com/alexanderramin/skinadvisor/internal/intent"
	"github.com/alexanderramin/skinadvisor/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newShellCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive advisor shell with a live session profile",
		Long: `Start an interactive shell backed by one advisor session. The profile
built with 'update' or 'wizard' carries across commands until 'reset'.
When stdin is not a terminal, commands are read line by line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, a)
		},
	}
}

func runShell(cmd *cobra.Command, a *App) (err error) {
	ctx := cmd.Context()
	sess, err := newShellSession(ctx, a)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := sess.close(ctx); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if !a.interactive() {
		return runBatch(ctx, sess, cmd.InOrStdin(), cmd.OutOrStdout())
	}

	p := tea.NewProgram(
		newShellModel(ctx, a, sess),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	_, err = p.Run()
	return err
}

// runBatch executes one shell command per input line. Blank lines and
// lines starting with '#' are skipped.
func runBatch(ctx context.Context, sess *shellSession, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fmt.Fprintln(out, sess.execute(ctx, line))
		if sess.quit {
			break
		}
	}
	return scanner.Err()
}

// shellSession holds the advisor session behind the REPL.
type shellSession struct {
	app       *App
	sessionID string
	quit      bool
}

func newShellSession(ctx context.Context, a *App) (*shellSession, error) {
	s := &shellSession{app: a}
	if err := s.start(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *shellSession) start(ctx context.Context) error {
	sess, err := s.app.Sessions.Start(ctx)
	if err != nil {
		return err
	}
	s.sessionID = sess.ID
	return nil
}

func (s *shellSession) close(ctx context.Context) error {
	if s.sessionID == "" {
		return nil
	}
	err := s.app.Sessions.End(ctx, s.sessionID)
	s.sessionID = ""
	return err
}

// execute runs one shell line and returns its rendered output.
func (s *shellSession) execute(ctx context.Context, input string) string {
	parts, err := splitShellArgs(input)
	if err != nil {
		return shellError(err)
	}
	if len(parts) == 0 {
		return ""
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "update", "set":
		payload, err := parseAssignments(args)
		if err != nil {
			return shellError(err)
		}
		return s.dispatch(ctx, app.ActionUpdateProfile, payload)
	case "recommend", "rec":
		requestType := string(domain.RequestRoutine)
		if len(args) > 0 {
			requestType = args[0]
		}
		return s.dispatch(ctx, app.ActionGetRecommendations, map[string]any{
			"requestType": requestType,
			"message":     messageOr(args, defaultRecommendMessage),
		})
	case "transition":
		payload := map[string]any{"message": messageOr(args, defaultTransitionMessage)}
		if len(args) > 0 {
			payload["nextSeason"] = args[0]
		}
		return s.dispatch(ctx, app.ActionTransitionGuide, payload)
	case "conflicts":
		products := args
		if len(products) == 0 {
			p, err := s.app.Sessions.Profile(ctx, s.sessionID)
			if err != nil {
				return shellError(err)
			}
			products = p.CurrentProducts
		}
		return formatter.FormatConflicts(service.DetectConflicts(s.app.Catalog.Conflicts, products))
	case "profile":
		p, err := s.app.Sessions.Profile(ctx, s.sessionID)
		if err != nil {
			return shellError(err)
		}
		return formatter.FormatProfile(contract.FromProfile(p))
	case "history":
		entries, err := s.app.Sessions.History(ctx, s.sessionID)
		if err != nil {
			return shellError(err)
		}
		return formatter.FormatHistory(contract.FromJournal(entries), s.app.now())
	case "prompt":
		p, err := s.app.Sessions.Profile(ctx, s.sessionID)
		if err != nil {
			return shellError(err)
		}
		return intent.BuildAdvisorPrompt(s.app.Catalog, p)
	case "reset":
		if err := s.close(ctx); err != nil {
			return shellError(err)
		}
		if err := s.start(ctx); err != nil {
			return shellError(err)
		}
		return formatter.Dim("Started a fresh session.")
	case "wizard":
		return shellError(errors.New("wizard needs an interactive terminal"))
	case "help":
		return formatter.FormatShellHelp()
	case "quit", "exit":
		s.quit = true
		return formatter.Dim("Goodbye.")
	default:
		return shellError(fmt.Errorf("unknown command %q; type 'help' for commands", parts[0]))
	}
}

func (s *shellSession) dispatch(ctx context.Context, name app.ActionName, args map[string]any) string {
	reply, err := s.app.Sessions.Dispatch(ctx, s.sessionID, name, args)
	if err != nil {
		return shellError(err)
	}
	return formatter.FormatReply(contract.FromReply(reply))
}

// profileKeys maps accepted update keys to payload field names.
var profileKeys = map[string]string{
	"skintype":        "skinType",
	"skin":            "skinType",
	"season":          "season",
	"climate":         "climate",
	"concerns":        "concerns",
	"allergies":       "allergies",
	"currentproducts": "currentProducts",
	"products":        "currentProducts",
	"message":         "message",
}

var listKeys = map[string]bool{"concerns": true, "allergies": true, "currentProducts": true}

// parseAssignments turns key=value words into an updateUserProfile payload.
// List values are comma separated; an empty value clears the list.
func parseAssignments(words []string) (map[string]any, error) {
	if len(words) == 0 {
		return nil, errors.New("usage: update key=value [key=value...]")
	}
	payload := map[string]any{}
	for _, w := range words {
		k, v, ok := strings.Cut(w, "=")
		if !ok {
			return nil, fmt.Errorf("expected key=value, got %q", w)
		}
		field, known := profileKeys[strings.ToLower(strings.TrimSpace(k))]
		if !known {
			return nil, fmt.Errorf("unknown profile field %q", k)
		}
		if listKeys[field] {
			payload[field] = splitList(v)
		} else {
			payload[field] = strings.TrimSpace(v)
		}
	}
	if _, ok := payload["message"]; !ok {
		payload["message"] = "Profile updated."
	}
	return payload, nil
}

// messageOr joins the words after the first argument into a message.
func messageOr(args []string, fallback string) string {
	if len(args) < 2 {
		return fallback
	}
	return strings.Join(args[1:], " ")
}

func shellError(err error) string {
	if ve, ok := app.AsValidationError(err); ok {
		return formatter.StyleRed.Render(fmt.Sprintf("Error: %s: %s", ve.Field, ve.Message))
	}
	return formatter.StyleRed.Render(fmt.Sprintf("Error: %v", err))
}

// splitShellArgs splits input on whitespace, honoring single quotes,
// double quotes and backslash escapes.
func splitShellArgs(input string) ([]string, error) {
	var parts []string
	var cur strings.Builder

	inSingle := false
	inDouble := false
	escaped := false
	tokenStarted := false

	flush := func() {
		parts = append(parts, cur.String())
		cur.Reset()
		tokenStarted = false
	}

	for _, r := range input {
		if escaped {
			cur.WriteRune(r)
			tokenStarted = true
			escaped = false
			continue
		}

		if inSingle {
			if r == '\'' {
				inSingle = false
			} else {
				cur.WriteRune(r)
			}
			continue
		}

		if inDouble {
			switch r {
			case '"':
				inDouble = false
			case '\\':
				escaped = true
			default:
				cur.WriteRune(r)
			}
			continue
		}

		switch r {
		case '\\':
			escaped = true
			tokenStarted = true
		case '\'':
			inSingle = true
			tokenStarted = true
		case '"':
			inDouble = true
			tokenStarted = true
		case ' ', '\t', '\n', '\r':
			if tokenStarted {
				flush()
			}
		default:
			cur.WriteRune(r)
			tokenStarted = true
		}
	}

	if escaped {
		return nil, errors.New("unterminated escape sequence")
	}
	if inSingle || inDouble {
		return nil, errors.New("unterminated quoted string")
	}
	if tokenStarted {
		flush()
	}

	return parts, nil
}
