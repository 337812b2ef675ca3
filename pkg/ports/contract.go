package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/ouro/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStoreContract runs a suite of tests to verify that a RunStore
// implementation adheres to the defined interface contract.
func RunStoreContract(t *testing.T, store RunStore) {
	ctx := context.Background()
	runID := "contract-test-run-" + time.Now().Format("20060102150405")

	sample := &domain.ExecutionResult{
		FinalText:    "# Ruby regenerated: def ouroboros_start...",
		CyclesRun:    1,
		FinalLabel:   "Ruby",
		InputExcerpt: "def ouroboros_start",
		Closed:       true,
		History: []domain.HistoryEntry{
			{Cycle: 1, StepInCycle: 1, From: "Ruby", To: "Python", TextLength: 42},
			{Cycle: 1, StepInCycle: 2, From: "Python", To: "Java", TextLength: 40},
			{Cycle: 1, StepInCycle: 3, From: "Java", To: "Ruby", TextLength: 43},
		},
	}

	t.Run("Save and Load", func(t *testing.T) {
		err := store.Save(ctx, runID, sample)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, runID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, sample.FinalLabel, loaded.FinalLabel)
		assert.Equal(t, sample.CyclesRun, loaded.CyclesRun)
		assert.True(t, loaded.Closed)
		assert.Len(t, loaded.History, 3)
		assert.Equal(t, "Python", loaded.History[0].To)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+runID)
		assert.ErrorIs(t, err, domain.ErrRunNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, runID, sample)
		require.NoError(t, err)

		err = store.Delete(ctx, runID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, runID)
		assert.ErrorIs(t, err, domain.ErrRunNotFound, "Load after Delete should return ErrRunNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := runID + "-1"
		id2 := runID + "-2"
		_ = store.Save(ctx, id1, sample)
		_ = store.Save(ctx, id2, sample)

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		runs, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, runs, id1)
		assert.Contains(t, runs, id2)
	})
}
