package dsl

import (
	"github.com/aretw0/ouro/pkg/domain"
)

// Builder accumulates steps and tracks the running label so adjacent
// steps connect by construction. Validation still happens in Build; the
// builder only makes the contiguous case convenient to write.
type Builder struct {
	start string
	last  string
	steps []domain.Step
}

// New creates a builder for a chain anchored at the start label.
func New(start string) *Builder {
	return &Builder{start: start, last: start}
}

// Step appends an explicit step. Use Then for the common contiguous case.
func (b *Builder) Step(from, to string, fn domain.TransformFunc) *Builder {
	b.steps = append(b.steps, domain.NewStep(from, to, fn))
	b.last = to
	return b
}

// Then appends a step consuming the previous step's output label.
func (b *Builder) Then(to string, fn domain.TransformFunc) *Builder {
	return b.Step(b.last, to, fn)
}

// Close appends the final step returning to the start label.
func (b *Builder) Close(fn domain.TransformFunc) *Builder {
	return b.Step(b.last, b.start, fn)
}

// Build validates the accumulated steps into a chain.
func (b *Builder) Build() (*domain.Chain, error) {
	return domain.NewChain(b.start, b.steps)
}
