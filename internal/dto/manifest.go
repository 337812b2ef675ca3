// Package dto holds the wire shapes of pipeline manifests, kept separate
// from the domain so YAML concerns never leak into the core.
package dto

// Manifest is the YAML description of a pipeline.
type Manifest struct {
	Name      string     `yaml:"name"`
	Start     string     `yaml:"start"`
	MaxCycles int        `yaml:"max_cycles"`
	Steps     []StepSpec `yaml:"steps"`
}

// StepSpec declares one transformation step by transform name.
type StepSpec struct {
	From      string         `yaml:"from"`
	To        string         `yaml:"to"`
	Transform string         `yaml:"transform"`
	Params    map[string]any `yaml:"params"`
}
