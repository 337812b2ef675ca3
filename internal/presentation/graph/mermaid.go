// Package graph renders chains as Mermaid diagrams for docs and quick
// visual inspection of closure.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/ouro/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart for a chain.
// The start label gets circle styling, forward edges are solid, and the
// closing edge back to start is dotted so the Ouroboros loop stands out.
func GenerateMermaid(chain *domain.Chain) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	start := chain.Start()
	steps := chain.Steps()

	sb.WriteString(fmt.Sprintf("    %s((\"%s\"))\n", sanitizeMermaidID(start), start))
	for _, step := range steps {
		if step.To == start {
			continue // already declared with circle styling
		}
		safeID := sanitizeMermaidID(step.To)
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", safeID, step.To))
	}

	for i, step := range steps {
		from := sanitizeMermaidID(step.From)
		to := sanitizeMermaidID(step.To)

		arrow := "-->"
		if i == len(steps)-1 && step.To == start {
			arrow = "-.->" // closing edge
		}
		sb.WriteString(fmt.Sprintf("    %s %s|%d| %s\n", from, arrow, i+1, to))
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
