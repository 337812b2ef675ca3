package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/ouro/pkg/domain"
	"github.com/aretw0/ouro/pkg/ports"
)

func TestFileStore_Contract(t *testing.T) {
	ports.RunStoreContract(t, New(t.TempDir()))
}

func TestFileStore_DefaultBasePath(t *testing.T) {
	store := New("")
	assert.Equal(t, filepath.Join(".ouro", "runs"), store.BasePath)
}

func TestFileStore_EmptyRunID(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, "", &domain.ExecutionResult{}))
	_, err := store.Load(ctx, "")
	assert.Error(t, err)
	assert.Error(t, store.Delete(ctx, ""))
}

func TestFileStore_SaveWritesReadableJSON(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "run-1", &domain.ExecutionResult{FinalLabel: "Ruby", Closed: true}))

	data, err := os.ReadFile(filepath.Join(dir, "run-1.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"final_label": "Ruby"`)
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "r", &domain.ExecutionResult{CyclesRun: 1}))
	require.NoError(t, store.Save(ctx, "r", &domain.ExecutionResult{CyclesRun: 2}))

	loaded, err := store.Load(ctx, "r")
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.CyclesRun)
}

func TestFileStore_ListEmptyDirMissing(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "never-created"))
	ids, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestFileStore_DeleteMissingIsNoError(t *testing.T) {
	store := New(t.TempDir())
	assert.NoError(t, store.Delete(context.Background(), "ghost"))
}
