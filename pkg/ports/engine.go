package ports

import (
	"context"

	"github.com/aretw0/ouro/pkg/domain"
)

// Executor is the engine surface adapters depend on. The root ouro.Engine
// satisfies it.
type Executor interface {
	Execute(ctx context.Context, initialText string, maxCycles int) (*domain.ExecutionResult, error)
	Chain() *domain.Chain
}
