package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todolist/internal/config"
	"todolist/internal/events"
	"todolist/internal/models"
	"todolist/internal/store"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Storage.Path = filepath.Join(t.TempDir(), "nested", "todolist.db")
	return cfg
}

func TestNew_CreatesDataDirectory(t *testing.T) {
	cfg := testConfig(t)

	a, err := New(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer a.Close()

	assert.FileExists(t, cfg.Storage.Path)
	assert.Empty(t, a.Router.Snapshot())
}

func TestNew_LoadsSavedTasks(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	first, err := New(ctx, cfg, nil)
	require.NoError(t, err)
	require.NoError(t, first.Persistence.Save(ctx, []models.Task{
		{Name: "Milk"},
		{Name: "Eggs", Completed: true},
	}))
	require.NoError(t, first.Close())

	second, err := New(ctx, cfg, nil)
	require.NoError(t, err)
	defer second.Close()

	assert.Equal(t, []models.Task{
		{Name: "Milk"},
		{Name: "Eggs", Completed: true},
	}, second.Router.Snapshot())
}

func TestNewWithKV_CorruptPayloadStartsEmpty(t *testing.T) {
	ctx := context.Background()
	kv, err := store.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, store.TasksKey, "not json"))

	a, err := NewWithKV(ctx, config.Default(), kv, nil)
	require.NoError(t, err)
	defer a.Close()

	assert.Empty(t, a.Router.Snapshot())

	outcome := a.Router.Clear(ctx, nil)
	assert.Equal(t, events.Ignored, outcome)
}
