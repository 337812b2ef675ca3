package ports

import (
	"context"

	"github.com/aretw0/ouro/pkg/domain"
)

// RunStore defines the interface for persisting execution results.
// The engine itself never persists anything; stores are layered on top by
// hosts that want run history to survive the process.
type RunStore interface {
	// Save persists the result for a given run ID.
	Save(ctx context.Context, runID string, result *domain.ExecutionResult) error

	// Load retrieves the result for a given run ID.
	// Returns domain.ErrRunNotFound if the run does not exist.
	Load(ctx context.Context, runID string) (*domain.ExecutionResult, error)

	// Delete removes the result for a given run ID.
	Delete(ctx context.Context, runID string) error

	// List returns the known run IDs.
	List(ctx context.Context) ([]string, error)
}
