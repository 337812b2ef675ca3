package domain

// Chain is a non-empty, contiguous, closed sequence of Steps.
//
// Validation happens once in NewChain; a Chain that exists is guaranteed
// executable without label mismatches under normal operation. The slice is
// copied on construction so callers cannot mutate it afterwards.
type Chain struct {
	start string
	steps []Step
}

// NewChain validates the step sequence against the configured start label.
// It fails with a *ConfigError if the sequence is empty, does not begin at
// start, has a discontinuity between adjacent steps, or never returns to
// start (the Ouroboros closure property).
func NewChain(start string, steps []Step) (*Chain, error) {
	if len(steps) == 0 {
		return nil, &ConfigError{
			Reason: ReasonEmptyChain,
			Index:  -1,
			Detail: "transformation sequence cannot be empty",
		}
	}

	if steps[0].From != start {
		return nil, &ConfigError{
			Reason: ReasonStartMismatch,
			Index:  0,
			Detail: "first step consumes " + quote(steps[0].From) + ", chain starts at " + quote(start),
		}
	}

	for i := 0; i < len(steps)-1; i++ {
		if steps[i].To != steps[i+1].From {
			return nil, &ConfigError{
				Reason: ReasonDiscontinuity,
				Index:  i,
				Detail: "output " + quote(steps[i].To) + " mismatches next input " + quote(steps[i+1].From),
			}
		}
	}

	last := len(steps) - 1
	if steps[last].To != start {
		return nil, &ConfigError{
			Reason: ReasonNotClosed,
			Index:  last,
			Detail: "final step emits " + quote(steps[last].To) + ", chain would never return to " + quote(start),
		}
	}

	c := &Chain{start: start, steps: make([]Step, len(steps))}
	copy(c.steps, steps)
	return c, nil
}

// Start returns the configured start label.
func (c *Chain) Start() string { return c.start }

// Len returns the number of steps in one cycle.
func (c *Chain) Len() int { return len(c.steps) }

// Steps returns a copy of the step sequence.
func (c *Chain) Steps() []Step {
	out := make([]Step, len(c.steps))
	copy(out, c.steps)
	return out
}

// At returns the step at index i. It panics on out-of-range access, like a
// slice would.
func (c *Chain) At(i int) Step { return c.steps[i] }

// Labels returns the ordered label path of one cycle, including the closing
// return to start. A 3-step Ruby chain yields [Ruby Python Java Ruby].
func (c *Chain) Labels() []string {
	out := make([]string, 0, len(c.steps)+1)
	out = append(out, c.start)
	for _, s := range c.steps {
		out = append(out, s.To)
	}
	return out
}

func quote(s string) string { return "'" + s + "'" }
