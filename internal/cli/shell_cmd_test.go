package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShellSession(t *testing.T) (*shellSession, *App) {
	t.Helper()
	app, _ := testApp(t)
	sess, err := newShellSession(context.Background(), app)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sess.close(context.Background()) })
	return sess, app
}

func TestShellSession_ConversationFlow(t *testing.T) {
	ctx := context.Background()
	sess, _ := newTestShellSession(t)

	out := stripANSI(sess.execute(ctx, "recommend routine"))
	assert.Contains(t, out, "INCOMPLETE PROFILE")

	out = stripANSI(sess.execute(ctx, `update skin=combination season=spring concerns=acne,pigmentation products="Retinol Serum,Glycolic AHA Toner"`))
	assert.Contains(t, out, "PRODUCT COMPATIBILITY WARNING")
	assert.Contains(t, out, "Retinol Serum and Glycolic AHA Toner shouldn't be used together")
	assert.Contains(t, out, "✓ Profile updated.")
	assert.Contains(t, out, "Skin type: combination")

	out = stripANSI(sess.execute(ctx, "recommend concerns what should I focus on"))
	assert.Contains(t, out, "SEASONAL PLAN FOR COMBINATION SKIN")
	assert.Contains(t, out, "YOUR CONCERNS ◆")
	assert.Contains(t, out, "pigmentation")

	out = stripANSI(sess.execute(ctx, "transition summer"))
	assert.Contains(t, out, "🌸 spring  →  ☀️ summer")

	out = stripANSI(sess.execute(ctx, "conflicts"))
	assert.Contains(t, out, "Retinol Serum and Glycolic AHA Toner")

	out = stripANSI(sess.execute(ctx, "history"))
	assert.Contains(t, out, "getRecommendations")
	assert.Contains(t, out, "incomplete")
	assert.Contains(t, out, "getSeasonalTransitionGuide")
}

func TestShellSession_ValidationErrorsShowField(t *testing.T) {
	ctx := context.Background()
	sess, _ := newTestShellSession(t)

	out := stripANSI(sess.execute(ctx, "transition autumn"))
	assert.True(t, strings.HasPrefix(out, "Error: nextSeason:"), out)

	out = stripANSI(sess.execute(ctx, "transition"))
	assert.Contains(t, out, "Error: nextSeason: nextSeason is required")

	out = stripANSI(sess.execute(ctx, "update climate=arctic"))
	assert.Contains(t, out, "Error: climate:")

	out = stripANSI(sess.execute(ctx, "history"))
	assert.Contains(t, out, "rejected")
	assert.Contains(t, out, "nextSeason: INVALID_ENUM")
}

func TestShellSession_ParseErrors(t *testing.T) {
	ctx := context.Background()
	sess, _ := newTestShellSession(t)

	assert.Contains(t, stripANSI(sess.execute(ctx, "update")), "usage: update key=value")
	assert.Contains(t, stripANSI(sess.execute(ctx, "update oily")), `expected key=value, got "oily"`)
	assert.Contains(t, stripANSI(sess.execute(ctx, "update favorite=spf")), `unknown profile field "favorite"`)
	assert.Contains(t, stripANSI(sess.execute(ctx, `update skin="oily`)), "unterminated quoted string")
	assert.Contains(t, stripANSI(sess.execute(ctx, "dance")), `unknown command "dance"`)
	assert.Contains(t, stripANSI(sess.execute(ctx, "wizard")), "interactive terminal")
}

func TestShellSession_ResetStartsFreshProfile(t *testing.T) {
	ctx := context.Background()
	sess, app := newTestShellSession(t)

	sess.execute(ctx, "update skin=dry season=winter")
	oldID := sess.sessionID

	out := stripANSI(sess.execute(ctx, "reset"))
	assert.Contains(t, out, "Started a fresh session.")
	assert.NotEqual(t, oldID, sess.sessionID)

	_, err := app.Sessions.Profile(ctx, oldID)
	assert.Error(t, err)

	out = stripANSI(sess.execute(ctx, "profile"))
	assert.Contains(t, out, "Skin type: not set")
}

func TestShellSession_PromptAndHelp(t *testing.T) {
	ctx := context.Background()
	sess, _ := newTestShellSession(t)

	sess.execute(ctx, "update skin=normal allergies=lanolin")
	out := sess.execute(ctx, "prompt")
	assert.Contains(t, out, "Skin Type: normal (Well-balanced, not too oily or dry)")
	assert.Contains(t, out, "Allergies: lanolin")

	assert.Contains(t, stripANSI(sess.execute(ctx, "help")), "SHELL COMMANDS")
}

func TestRunBatch(t *testing.T) {
	ctx := context.Background()
	sess, _ := newTestShellSession(t)

	in := strings.NewReader(`# set up
update skin=oily season=summer

recommend ingredients
quit
profile
`)
	var out strings.Builder
	require.NoError(t, runBatch(ctx, sess, in, &out))

	got := stripANSI(out.String())
	assert.Contains(t, got, "✓ Profile updated.")
	assert.Contains(t, got, "KEY INGREDIENTS ◆")
	assert.Contains(t, got, "Goodbye.")
	assert.Equal(t, 1, strings.Count(got, "Skin type: oily"), "commands after quit should not run")
	assert.True(t, sess.quit)
}

func TestShellCmd_BatchModeFromStdin(t *testing.T) {
	app, database := testApp(t)

	root := NewRootCmd(app)
	var buf strings.Builder
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetIn(strings.NewReader("update skin=dry season=fall\ntransition winter\n"))
	root.SetArgs([]string{"shell"})
	require.NoError(t, root.Execute())

	out := stripANSI(buf.String())
	assert.Contains(t, out, "TRANSITION GUIDE FOR DRY SKIN")
	assert.Contains(t, out, "+ Sleeping mask")
	assert.Zero(t, countRows(t, database, "advisor_sessions"), "shell session should end on exit")
}

func TestParseAssignments(t *testing.T) {
	payload, err := parseAssignments([]string{"skinType=oily", "Concerns=acne, aging", "allergies=", "message=thanks"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"skinType":  "oily",
		"concerns":  []string{"acne", "aging"},
		"allergies": []string{},
		"message":   "thanks",
	}, payload)
}

func TestSplitShellArgs(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"recommend routine", []string{"recommend", "routine"}},
		{`conflicts "Retinol Serum" 'Vitamin C'`, []string{"conflicts", "Retinol Serum", "Vitamin C"}},
		{`update products="A, B"`, []string{"update", "products=A, B"}},
		{`say \"hi\"`, []string{"say", `"hi"`}},
		{"   ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := splitShellArgs(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
