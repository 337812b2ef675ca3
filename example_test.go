package ouro_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/ouro"
	"github.com/aretw0/ouro/pkg/domain"
)

// ExampleNew demonstrates building and executing a closed chain directly
// from Go code, without a manifest.
func ExampleNew() {
	// 1. Define the steps. Each consumes one label and emits the next;
	// the final step returns to the start label, closing the loop.
	steps := []domain.Step{
		domain.NewStep("Ruby", "Python", func(text string) string {
			return "# Python take on: " + domain.Excerpt(text)
		}),
		domain.NewStep("Python", "Java", func(text string) string {
			return "// Java take on: " + domain.Excerpt(text)
		}),
		domain.NewStep("Java", "Ruby", func(text string) string {
			return "# Ruby take on: " + domain.Excerpt(text)
		}),
	}

	// 2. Construction validates the chain: contiguity and closure are
	// checked here, never during execution.
	engine, err := ouro.New("Ruby", steps)
	if err != nil {
		log.Fatal(err)
	}

	// 3. Drive text through the loop with a cycle budget of 1.
	result, err := engine.Execute(context.Background(), "def ouroboros_start", 1)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.Closed)
	fmt.Println(result.FinalLabel)
	fmt.Println(result.FinalText)
	// Output:
	// true
	// Ruby
	// # Ruby take on: // Java take on: # Python take on: def ouroboros_start
}
