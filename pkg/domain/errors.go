package domain

import (
	"errors"
	"fmt"
)

// ErrRunNotFound is returned when a run ID cannot be found in the store.
var ErrRunNotFound = errors.New("run not found")

// ConfigReason classifies why a chain failed validation.
type ConfigReason string

const (
	// ReasonEmptyChain means the step sequence was empty.
	ReasonEmptyChain ConfigReason = "empty_chain"
	// ReasonStartMismatch means the first step does not consume the start label.
	ReasonStartMismatch ConfigReason = "start_mismatch"
	// ReasonDiscontinuity means an adjacent pair of steps does not connect.
	ReasonDiscontinuity ConfigReason = "discontinuity"
	// ReasonNotClosed means the final step does not return to the start label.
	ReasonNotClosed ConfigReason = "not_closed"
)

// ConfigError is raised at chain construction only. It always indicates a
// mistake in assembling the chain; the engine never comes into existence.
type ConfigError struct {
	Reason ConfigReason
	Index  int // step index where the problem was found (-1 if not positional)
	Detail string
}

func (e *ConfigError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid chain (%s) at step %d: %s", e.Reason, e.Index, e.Detail)
	}
	return fmt.Sprintf("invalid chain (%s): %s", e.Reason, e.Detail)
}

// InvariantError is raised during execution when the engine's own label
// state no longer matches the step about to run. Construction guarantees
// this cannot happen under normal operation, so it is fatal: do not retry,
// do not continue the loop.
type InvariantError struct {
	Cycle    int
	Step     int
	Expected string
	Actual   string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("engine invariant violated at cycle %d step %d: label %q does not match step input %q",
		e.Cycle, e.Step, e.Actual, e.Expected)
}

// IsConfigError reports whether err is a chain configuration error.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
