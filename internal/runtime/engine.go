// Package runtime implements the cyclic executor: a bounded loop that
// drives text through a validated chain and records every transition.
package runtime

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/ouro/pkg/domain"
)

// Engine executes a validated chain. It holds no mutable state between
// Execute calls; the chain it reads is immutable, so concurrent calls are
// safe as long as the transforms themselves are reentrant.
type Engine struct {
	chain  *domain.Chain
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// NewEngine wraps a chain with an executor.
func NewEngine(chain *domain.Chain, opts ...EngineOption) *Engine {
	e := &Engine{
		chain:  chain,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Chain returns the engine's immutable chain.
func (e *Engine) Chain() *domain.Chain { return e.chain }

// Execute runs up to maxCycles full repetitions of the chain over
// initialText. One repetition applies every step in order; closure against
// the start label is checked only after a full repetition, and stops the
// loop early when reached. maxCycles <= 0 attempts no repetitions at all.
//
// The only execution-time error is a *domain.InvariantError, which signals
// corrupted internal state and is not recoverable by the caller. Running
// out of cycles without closure is reported via the Closed flag instead.
func (e *Engine) Execute(ctx context.Context, initialText string, maxCycles int) (*domain.ExecutionResult, error) {
	text := initialText
	label := e.chain.Start()
	n := e.chain.Len()

	result := &domain.ExecutionResult{
		FinalLabel:   label,
		InputExcerpt: domain.Excerpt(initialText),
		History:      []domain.HistoryEntry{},
	}

	e.logger.Debug("execution starting",
		"start", label,
		"chain_length", n,
		"max_cycles", maxCycles)

	for cycle := 1; cycle <= maxCycles; cycle++ {
		e.fireCycleStart(ctx, cycle, label)

		for i := 0; i < n; i++ {
			step := e.chain.At(i)

			// Construction already proved the chain contiguous, so a
			// mismatch here means the engine's own state was corrupted.
			if step.From != label {
				return nil, &domain.InvariantError{
					Cycle:    cycle,
					Step:     i,
					Expected: step.From,
					Actual:   label,
				}
			}

			text = step.Transform(text)
			label = step.To

			entry := domain.HistoryEntry{
				Cycle:       cycle,
				StepInCycle: i + 1,
				From:        step.From,
				To:          step.To,
				TextLength:  len(text),
			}
			result.History = append(result.History, entry)
			e.fireStepApplied(ctx, entry)
		}

		result.CyclesRun = cycle
		closed := label == e.chain.Start()
		e.fireCycleEnd(ctx, cycle, label, closed)

		if closed {
			result.Closed = true
			e.logger.Debug("chain closed", "cycle", cycle, "label", label)
			break
		}
	}

	if !result.Closed && result.CyclesRun == maxCycles && maxCycles > 0 {
		e.logger.Debug("cycle budget exhausted without closure",
			"cycles", result.CyclesRun,
			"label", label)
	}

	result.FinalText = text
	result.FinalLabel = label
	return result, nil
}

func (e *Engine) fireCycleStart(ctx context.Context, cycle int, label string) {
	if e.hooks.OnCycleStart == nil {
		return
	}
	e.hooks.OnCycleStart(ctx, &domain.CycleEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventCycleStart},
		Cycle:     cycle,
		Label:     label,
	})
}

func (e *Engine) fireStepApplied(ctx context.Context, entry domain.HistoryEntry) {
	if e.hooks.OnStepApplied == nil {
		return
	}
	e.hooks.OnStepApplied(ctx, &domain.StepEvent{
		EventBase:   domain.EventBase{Timestamp: time.Now(), Type: domain.EventStepApplied},
		Cycle:       entry.Cycle,
		StepInCycle: entry.StepInCycle,
		From:        entry.From,
		To:          entry.To,
		TextLength:  entry.TextLength,
	})
}

func (e *Engine) fireCycleEnd(ctx context.Context, cycle int, label string, closed bool) {
	if e.hooks.OnCycleEnd == nil {
		return
	}
	e.hooks.OnCycleEnd(ctx, &domain.CycleEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventCycleEnd},
		Cycle:     cycle,
		Label:     label,
		Closed:    closed,
	})
}
