package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeHooks_FiresInArgumentOrder(t *testing.T) {
	var calls []string

	a := LifecycleHooks{
		OnCycleStart: func(context.Context, *CycleEvent) { calls = append(calls, "a") },
	}
	b := LifecycleHooks{
		OnCycleStart: func(context.Context, *CycleEvent) { calls = append(calls, "b") },
		OnCycleEnd:   func(context.Context, *CycleEvent) { calls = append(calls, "b-end") },
	}

	merged := MergeHooks(a, b)
	merged.OnCycleStart(context.Background(), &CycleEvent{})
	merged.OnCycleEnd(context.Background(), &CycleEvent{})

	assert.Equal(t, []string{"a", "b", "b-end"}, calls)
	assert.Nil(t, merged.OnStepApplied)
}

func TestMergeHooks_Empty(t *testing.T) {
	merged := MergeHooks()
	assert.Nil(t, merged.OnCycleStart)
	assert.Nil(t, merged.OnStepApplied)
	assert.Nil(t, merged.OnCycleEnd)
}
