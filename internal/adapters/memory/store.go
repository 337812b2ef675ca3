// Package memory provides an in-process RunStore, used as the default
// store and in tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/ouro/pkg/domain"
)

// Store implements ports.RunStore with a mutex-guarded map.
type Store struct {
	mu   sync.RWMutex
	runs map[string]*domain.ExecutionResult
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{runs: make(map[string]*domain.ExecutionResult)}
}

// Save stores a copy of the result so later caller mutations don't leak in.
func (s *Store) Save(ctx context.Context, runID string, result *domain.ExecutionResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[runID] = clone(result)
	return nil
}

// Load retrieves a copy of the stored result.
func (s *Store) Load(ctx context.Context, runID string) (*domain.ExecutionResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, ok := s.runs[runID]
	if !ok {
		return nil, domain.ErrRunNotFound
	}
	return clone(result), nil
}

// Delete removes the run. Deleting a missing run is not an error.
func (s *Store) Delete(ctx context.Context, runID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.runs, runID)
	return nil
}

// List returns the known run IDs, sorted for stable output.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.runs))
	for id := range s.runs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func clone(r *domain.ExecutionResult) *domain.ExecutionResult {
	out := *r
	out.History = make([]domain.HistoryEntry, len(r.History))
	copy(out.History, r.History)
	return &out
}
