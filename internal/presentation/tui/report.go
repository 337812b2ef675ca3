// Package tui turns execution results into terminal-friendly output.
package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/ouro/pkg/domain"
)

// BuildReport produces a markdown summary of one execution, suitable for
// rendering with NewRenderer or writing to a file as-is.
func BuildReport(name string, result *domain.ExecutionResult) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Execution Report: %s\n\n", name))

	verdict := "budget exhausted before closure"
	if result.Closed {
		verdict = "chain closed"
	}
	sb.WriteString(fmt.Sprintf("- **Outcome**: %s\n", verdict))
	sb.WriteString(fmt.Sprintf("- **Cycles run**: %d\n", result.CyclesRun))
	sb.WriteString(fmt.Sprintf("- **Final label**: %s\n", result.FinalLabel))
	sb.WriteString(fmt.Sprintf("- **Transformations**: %d\n", len(result.History)))
	if result.InputExcerpt != "" {
		sb.WriteString(fmt.Sprintf("- **Input**: `%s`\n", result.InputExcerpt))
	}

	if len(result.History) > 0 {
		sb.WriteString("\n## History\n\n")
		sb.WriteString("| Cycle | Step | From | To | Length |\n")
		sb.WriteString("|------:|-----:|------|----|-------:|\n")
		for _, h := range result.History {
			sb.WriteString(fmt.Sprintf("| %d | %d | %s | %s | %d |\n",
				h.Cycle, h.StepInCycle, h.From, h.To, h.TextLength))
		}
	}

	sb.WriteString("\n## Final Output\n\n")
	sb.WriteString("```\n")
	sb.WriteString(result.FinalText)
	sb.WriteString("\n```\n")

	return sb.String()
}
