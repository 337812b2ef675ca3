// Package cli holds the wiring logic behind the ouro commands: manifest
// loading, engine construction, and store selection.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/aretw0/ouro"
	"github.com/aretw0/ouro/internal/adapters/file"
	"github.com/aretw0/ouro/internal/adapters/memory"
	redisstore "github.com/aretw0/ouro/internal/adapters/redis"
	"github.com/aretw0/ouro/internal/compiler"
	"github.com/aretw0/ouro/internal/dto"
	"github.com/aretw0/ouro/pkg/domain"
	"github.com/aretw0/ouro/pkg/ports"
	"github.com/aretw0/ouro/pkg/registry"
	"github.com/aretw0/ouro/pkg/transform"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	ManifestPath string
	Text         string
	InputPath    string
	MaxCycles    int // 0 = use manifest value
	JSON         bool
	Report       bool
	Debug        bool
	RunID        string
	StoreKind    string // "", "file", "redis"
	StorePath    string
	RedisURL     string
}

// CreateEngine compiles the manifest into an engine with standard CLI
// conventions: built-in transforms, manifest-derived name, shared logger.
func CreateEngine(opts RunOptions, logger *slog.Logger) (*ouro.Engine, *dto.Manifest, error) {
	return CreateEngineWithHooks(opts, logger, domain.LifecycleHooks{})
}

// CreateEngineWithHooks is CreateEngine with extra lifecycle hooks
// attached, used by serve to feed metrics alongside the debug hooks.
func CreateEngineWithHooks(opts RunOptions, logger *slog.Logger, extra domain.LifecycleHooks) (*ouro.Engine, *dto.Manifest, error) {
	reg := transform.Default()

	parser := compiler.NewParser()
	manifest, err := parser.ParseFile(opts.ManifestPath)
	if err != nil {
		return nil, nil, err
	}

	chain, err := parser.Compile(manifest, reg)
	if err != nil {
		return nil, nil, fmt.Errorf("error compiling manifest: %w", err)
	}

	name := manifest.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(opts.ManifestPath), filepath.Ext(opts.ManifestPath))
	}

	hooks := extra
	if opts.Debug {
		hooks = domain.MergeHooks(createDebugHooks(logger), extra)
	}

	engineOpts := []ouro.Option{
		ouro.WithLogger(logger),
		ouro.WithName(name),
		ouro.WithLifecycleHooks(hooks),
	}

	return ouro.FromChain(chain, engineOpts...), manifest, nil
}

// Registry returns the transform registry used by CLI commands.
func Registry() *registry.Registry {
	return transform.Default()
}

// CreateStore selects the run store configured by flags. An empty kind
// yields an in-memory store, which means runs vanish with the process.
func CreateStore(opts RunOptions) (ports.RunStore, error) {
	switch opts.StoreKind {
	case "", "memory":
		return memory.New(), nil
	case "file":
		return file.New(opts.StorePath), nil
	case "redis":
		addr := opts.RedisURL
		if addr == "" {
			addr = "localhost:6379"
		}
		return redisstore.New(addr, "", 0), nil
	default:
		return nil, fmt.Errorf("unknown store kind: %s", opts.StoreKind)
	}
}

// createDebugHooks narrates engine progress through the logger.
func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCycleStart: func(_ context.Context, ev *domain.CycleEvent) {
			logger.Debug("cycle starting", "cycle", ev.Cycle, "label", ev.Label)
		},
		OnStepApplied: func(_ context.Context, ev *domain.StepEvent) {
			logger.Debug("step applied",
				"cycle", ev.Cycle,
				"step", ev.StepInCycle,
				"from", ev.From,
				"to", ev.To,
				"length", ev.TextLength)
		},
		OnCycleEnd: func(_ context.Context, ev *domain.CycleEvent) {
			logger.Debug("cycle finished", "cycle", ev.Cycle, "label", ev.Label, "closed", ev.Closed)
		},
	}
}
