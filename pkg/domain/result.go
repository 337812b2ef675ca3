package domain

import "strings"

// excerptLimit bounds the stored snippet of the original input.
const excerptLimit = 80

// HistoryEntry records one step execution. Cycle and StepInCycle are
// 1-based, matching how runs are narrated to humans.
type HistoryEntry struct {
	Cycle       int    `json:"cycle"`
	StepInCycle int    `json:"step_in_cycle"`
	From        string `json:"from"`
	To          string `json:"to"`
	TextLength  int    `json:"text_length"`
}

// ExecutionResult is the outcome of one Execute call. It is created fresh
// per call and owned exclusively by the caller.
//
// Closed reports whether the chain returned to its start label before the
// cycle budget ran out. Exhausting the budget without closure is a normal
// outcome, not an error.
type ExecutionResult struct {
	FinalText    string         `json:"final_text"`
	CyclesRun    int            `json:"cycles_run"`
	FinalLabel   string         `json:"final_label"`
	History      []HistoryEntry `json:"history"`
	InputExcerpt string         `json:"input_excerpt"`
	Closed       bool           `json:"closed"`
}

// Excerpt produces the stored snippet of an input text: its first
// non-empty trimmed line, truncated to a fixed rune budget.
func Excerpt(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		runes := []rune(line)
		if len(runes) > excerptLimit {
			return string(runes[:excerptLimit])
		}
		return line
	}
	return ""
}
