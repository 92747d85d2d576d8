package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todolist/internal/events"
	"todolist/internal/models"
)

// setupEnv points the commands at a fresh database in a temp directory.
func setupEnv(t *testing.T) string {
	t.Helper()

	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	dbPath := filepath.Join(t.TempDir(), "todolist.db")
	t.Setenv(configEnv, "")
	t.Setenv("PORT", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("DB_PATH", dbPath)
	return dbPath
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand(fstest.MapFS{}, "test")
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestTasksList_Empty(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "tasks", "list")
	require.NoError(t, err)
	assert.Equal(t, "No tasks\n", out)
}

func TestTasksAdd(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "tasks", "add", "Buy", "milk")
	require.NoError(t, err)
	assert.Equal(t, "Added task #1: Buy milk\n", out)

	out, err = run(t, "tasks", "list")
	require.NoError(t, err)
	assert.Equal(t, "  1. [ ] Buy milk\n", out)
}

func TestTasksAdd_Blank(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "tasks", "add", "   ")
	require.Error(t, err)
	assert.Equal(t, events.EmptyTaskMessage, err.Error())

	out, err := run(t, "tasks", "ls")
	require.NoError(t, err)
	assert.Equal(t, "No tasks\n", out)
}

func TestTasksToggleAndRemove(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "tasks", "add", "Milk")
	require.NoError(t, err)
	_, err = run(t, "tasks", "add", "Eggs")
	require.NoError(t, err)

	out, err := run(t, "tasks", "toggle", "2")
	require.NoError(t, err)
	assert.Equal(t, "Toggled task #2\n", out)

	out, err = run(t, "tasks", "list")
	require.NoError(t, err)
	assert.Equal(t, "  1. [ ] Milk\n  2. [x] Eggs\n", out)

	out, err = run(t, "tasks", "rm", "1")
	require.NoError(t, err)
	assert.Equal(t, "Removed task #1\n", out)

	out, err = run(t, "tasks", "list")
	require.NoError(t, err)
	assert.Equal(t, "  1. [x] Eggs\n", out)
}

func TestTasksToggle_InvalidNumber(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "tasks", "add", "Milk")
	require.NoError(t, err)

	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{name: "zero", args: []string{"tasks", "toggle", "0"}, contains: "invalid task number"},
		{name: "not a number", args: []string{"tasks", "remove", "one"}, contains: "invalid task number"},
		{name: "past the end", args: []string{"tasks", "toggle", "5"}, contains: "no task #5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}

	out, err := run(t, "tasks", "list")
	require.NoError(t, err)
	assert.Equal(t, "  1. [ ] Milk\n", out)
}

func TestTasksRemove_PastEndIsIndexError(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "tasks", "remove", "1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrIndexOutOfRange))
}

func TestTasksClear(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "tasks", "clear")
	require.NoError(t, err)
	assert.Equal(t, "No tasks to clear\n", out)

	_, err = run(t, "tasks", "add", "Milk")
	require.NoError(t, err)

	out, err = run(t, "tasks", "clear")
	require.NoError(t, err)
	assert.Equal(t, "Cleared all tasks\n", out)

	out, err = run(t, "tasks", "list")
	require.NoError(t, err)
	assert.Equal(t, "No tasks\n", out)
}

func TestRoot_BadConfig(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "tasks", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestRoot_Version(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "test")
}

func TestTasksHelp_WarnsAboutRunningServer(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "tasks", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "its next save overwrites them")
}
