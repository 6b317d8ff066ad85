package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadShellHistory_FileNotFound_ReturnsNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "shell_history")
	assert.Nil(t, loadHistoryFromPath(path))
}

func TestLoadShellHistory_ReadsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shell_history")
	content := "update skinType=oily\n\nrecommend routine\nprofile\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	lines := loadHistoryFromPath(path)
	assert.Equal(t, []string{"update skinType=oily", "recommend routine", "profile"}, lines)
}

func TestLoadShellHistory_TruncatesOverMax(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shell_history")

	var b strings.Builder
	for i := 0; i < 600; i++ {
		b.WriteString("line\n")
	}
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))

	assert.Len(t, loadHistoryFromPath(path), maxHistoryLines)
}

func TestAppendShellHistory_AppendsLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "shell_history")

	appendHistoryToPath(path, "first command")
	appendHistoryToPath(path, "second command")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first command\nsecond command\n", string(data))
}

func TestAppendShellHistory_SkipsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shell_history")

	appendHistoryToPath(path, "")
	appendHistoryToPath(path, "   ")

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "file should not be created for empty lines")
}

func TestShellHistoryPath(t *testing.T) {
	assert.Equal(t, "", shellHistoryPath(&App{HistoryPath: historyDisabled}))
	assert.Equal(t, "/tmp/h", shellHistoryPath(&App{HistoryPath: "/tmp/h"}))
}
