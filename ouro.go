package ouro

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/ouro/internal/runtime"
	"github.com/aretw0/ouro/pkg/domain"
)

// Engine is the high-level entry point for the Ouro library. It wraps the
// internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime *runtime.Engine
	chain   *domain.Chain
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	Name    string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithName labels the engine for logging (usually the manifest name).
func WithName(name string) Option {
	return func(e *Engine) {
		e.Name = name
	}
}

// New validates the step sequence against the start label and initializes
// an Engine around the resulting chain. It fails with a *domain.ConfigError
// if the sequence is empty, does not begin at start, is discontiguous, or
// never closes back to start. Construction never executes anything.
func New(start string, steps []domain.Step, opts ...Option) (*Engine, error) {
	chain, err := domain.NewChain(start, steps)
	if err != nil {
		return nil, err
	}
	return FromChain(chain, opts...), nil
}

// FromChain initializes an Engine around an already-validated chain.
func FromChain(chain *domain.Chain, opts ...Option) *Engine {
	eng := &Engine{chain: chain}

	for _, opt := range opts {
		opt(eng)
	}

	// Ensure logger is initialized so we never pass nil to the runtime.
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("pipeline", eng.Name)
	}

	eng.runtime = runtime.NewEngine(chain,
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
	)
	return eng
}

// Execute drives initialText through the chain for up to maxCycles full
// repetitions, stopping early once the chain closes back to its start
// label. See domain.ExecutionResult for the reported outcome; the only
// execution-time error is a fatal *domain.InvariantError.
func (e *Engine) Execute(ctx context.Context, initialText string, maxCycles int) (*domain.ExecutionResult, error) {
	return e.runtime.Execute(ctx, initialText, maxCycles)
}

// Chain returns the engine's immutable chain for introspection or
// visualization tools.
func (e *Engine) Chain() *domain.Chain {
	return e.chain
}

// Describe returns the ordered label path of one cycle, including the
// closing return to the start label.
func (e *Engine) Describe() []string {
	return e.chain.Labels()
}
