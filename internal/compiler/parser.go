// Package compiler turns YAML pipeline manifests into validated domain
// chains, resolving transform names against a registry.
package compiler

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/ouro/internal/dto"
	"github.com/aretw0/ouro/pkg/domain"
	"github.com/aretw0/ouro/pkg/registry"
)

// DefaultMaxCycles bounds execution when a manifest does not set one.
const DefaultMaxCycles = 100

// Parser is responsible for converting raw bytes into a Manifest.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes and structurally validates a YAML manifest. Chain-level
// validation (contiguity, closure) is left to domain.NewChain.
func (p *Parser) Parse(data []byte) (*dto.Manifest, error) {
	var m dto.Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if m.Start == "" {
		return nil, fmt.Errorf("manifest missing start label")
	}
	if m.MaxCycles < 0 {
		return nil, fmt.Errorf("max_cycles must not be negative, got %d", m.MaxCycles)
	}
	if m.MaxCycles == 0 {
		m.MaxCycles = DefaultMaxCycles
	}
	for i, s := range m.Steps {
		if s.From == "" || s.To == "" {
			return nil, fmt.Errorf("step %d: from and to labels are required", i)
		}
		if s.Transform == "" {
			return nil, fmt.Errorf("step %d: transform name is required", i)
		}
	}

	return &m, nil
}

// ParseFile reads and parses a manifest from disk.
func (p *Parser) ParseFile(path string) (*dto.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return p.Parse(data)
}

// Compile resolves the manifest's transforms against the registry and
// builds the validated chain. Transform resolution errors surface before
// chain validation so a typoed name is reported with its step index.
func (p *Parser) Compile(m *dto.Manifest, reg *registry.Registry) (*domain.Chain, error) {
	steps := make([]domain.Step, 0, len(m.Steps))
	for i, s := range m.Steps {
		fn, err := reg.Build(s.Transform, s.Params)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		steps = append(steps, domain.NewStep(s.From, s.To, fn))
	}

	return domain.NewChain(m.Start, steps)
}
