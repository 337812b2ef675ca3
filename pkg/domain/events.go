package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventCycleStart  EventType = "cycle_start"
	EventStepApplied EventType = "step_applied"
	EventCycleEnd    EventType = "cycle_end"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// CycleEvent marks the start or end of one full chain traversal.
type CycleEvent struct {
	EventBase
	Cycle  int    `json:"cycle"`
	Label  string `json:"label"`
	Closed bool   `json:"closed,omitempty"` // only meaningful on cycle_end
}

// StepEvent marks one applied transformation.
type StepEvent struct {
	EventBase
	Cycle       int    `json:"cycle"`
	StepInCycle int    `json:"step_in_cycle"`
	From        string `json:"from"`
	To          string `json:"to"`
	TextLength  int    `json:"text_length"`
}

// LifecycleHooks defines callbacks for engine observability. Nil hooks are
// skipped; hooks run synchronously inside the execution loop.
type LifecycleHooks struct {
	OnCycleStart  func(context.Context, *CycleEvent)
	OnStepApplied func(context.Context, *StepEvent)
	OnCycleEnd    func(context.Context, *CycleEvent)
}

// MergeHooks combines hook sets so several observers (logging, metrics)
// can listen to one engine. Hooks fire in argument order.
func MergeHooks(hooks ...LifecycleHooks) LifecycleHooks {
	var merged LifecycleHooks

	for _, h := range hooks {
		if h.OnCycleStart != nil {
			prev := merged.OnCycleStart
			next := h.OnCycleStart
			merged.OnCycleStart = func(ctx context.Context, ev *CycleEvent) {
				if prev != nil {
					prev(ctx, ev)
				}
				next(ctx, ev)
			}
		}
		if h.OnStepApplied != nil {
			prev := merged.OnStepApplied
			next := h.OnStepApplied
			merged.OnStepApplied = func(ctx context.Context, ev *StepEvent) {
				if prev != nil {
					prev(ctx, ev)
				}
				next(ctx, ev)
			}
		}
		if h.OnCycleEnd != nil {
			prev := merged.OnCycleEnd
			next := h.OnCycleEnd
			merged.OnCycleEnd = func(ctx context.Context, ev *CycleEvent) {
				if prev != nil {
					prev(ctx, ev)
				}
				next(ctx, ev)
			}
		}
	}

	return merged
}
