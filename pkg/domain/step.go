package domain

// TransformFunc maps text to text. The engine places no constraint on its
// behavior beyond that: purity and reentrancy are the caller's concern.
type TransformFunc func(string) string

// Step is one labeled transformation in a chain. From and To are opaque
// labels compared only for equality (originally language names). A Step has
// no identity of its own; it is identified by its position in the chain.
type Step struct {
	From      string
	To        string
	Transform TransformFunc
}

// NewStep is a convenience constructor for inline chain definitions.
func NewStep(from, to string, fn TransformFunc) Step {
	return Step{From: from, To: to, Transform: fn}
}
