/*
Package ouro is a transformation-chain validator and cyclic executor.

It models a pipeline as an ordered list of labeled steps, each consuming
text tagged with an input label and emitting text tagged with an output
label. The chain is validated eagerly at construction: it must be
non-empty, contiguous (every step's output label feeds the next step's
input label) and closed (the final step returns to the start label, the
"Ouroboros" property). A chain that validates is guaranteed executable
without label mismatches.

Execution drives a value through the chain for a bounded number of cycles,
stopping early once the chain closes back to its start label. Running out
of cycles without closure is a reported outcome, never an error.

# Usage

	eng, err := ouro.New("Ruby", []domain.Step{
		domain.NewStep("Ruby", "Python", rubyToPython),
		domain.NewStep("Python", "Java", pythonToJava),
		domain.NewStep("Java", "Ruby", javaToRuby),
	})
	if err != nil {
		log.Fatal(err) // chain misconfigured
	}

	res, err := eng.Execute(ctx, payload, 1)
	if err != nil {
		log.Fatal(err) // engine invariant violated (should not happen)
	}
	fmt.Println(res.Closed, res.CyclesRun, res.FinalLabel)

The engine itself is side-effect free: nothing executes at import time or
at construction, and the only state it holds between calls is the
immutable chain. Concurrent Execute calls are safe when transforms are
reentrant.

Chains can also be declared in YAML manifests and compiled against a
transform registry; see the internal compiler and the ouro CLI.
*/
package ouro
