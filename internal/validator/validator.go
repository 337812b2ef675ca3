// Package validator checks pipeline manifests end-to-end without
// executing them: structure, transform resolution, and chain closure.
package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/ouro/internal/compiler"
	"github.com/aretw0/ouro/pkg/registry"
)

// ValidateManifest parses and compiles the manifest at path, reporting
// every problem a deployment would hit. Nothing is executed.
func ValidateManifest(path string, reg *registry.Registry) error {
	parser := compiler.NewParser()

	manifest, err := parser.ParseFile(path)
	if err != nil {
		return err
	}

	// Collect transform resolution problems in one pass; a manifest full
	// of typos should not be fixed one error at a time.
	var problems []string
	for i, s := range manifest.Steps {
		if _, err := reg.Build(s.Transform, s.Params); err != nil {
			problems = append(problems, fmt.Sprintf("step %d: %v", i, err))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(problems), strings.Join(problems, "\n- "))
	}

	// Chain-level validation: contiguity and closure.
	if _, err := parser.Compile(manifest, reg); err != nil {
		return err
	}

	return nil
}
