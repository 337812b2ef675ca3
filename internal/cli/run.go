package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/aretw0/ouro/internal/compiler"
	"github.com/aretw0/ouro/internal/logging"
	"github.com/aretw0/ouro/internal/presentation/tui"
)

// Execute handles the run command logic end-to-end: build the engine,
// resolve the input text, execute, persist if asked, and print.
func Execute(ctx context.Context, opts RunOptions) error {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	logger := logging.New(level)

	engine, manifest, err := CreateEngine(opts, logger)
	if err != nil {
		return err
	}

	text := opts.Text
	if opts.InputPath != "" {
		data, err := os.ReadFile(opts.InputPath)
		if err != nil {
			return fmt.Errorf("error reading input file: %w", err)
		}
		text = string(data)
	}

	maxCycles := opts.MaxCycles
	if maxCycles == 0 {
		maxCycles = manifest.MaxCycles
	}
	if maxCycles == 0 {
		maxCycles = compiler.DefaultMaxCycles
	}

	result, err := engine.Execute(ctx, text, maxCycles)
	if err != nil {
		return err
	}

	// Persist before printing so a broken terminal doesn't lose the run.
	if opts.StoreKind != "" {
		store, err := CreateStore(opts)
		if err != nil {
			return err
		}
		runID := opts.RunID
		if runID == "" {
			runID = uuid.NewString()
		}
		if err := store.Save(ctx, runID, result); err != nil {
			return fmt.Errorf("error persisting run: %w", err)
		}
		logger.Info("run persisted", "run_id", runID, "store", opts.StoreKind)
	}

	switch {
	case opts.JSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case opts.Report:
		name := manifest.Name
		if name == "" {
			name = engine.Name
		}
		report := tui.BuildReport(name, result)
		render := tui.NewRenderer()
		out, err := render(report)
		if err != nil {
			// Fall back to raw markdown rather than dropping the report.
			fmt.Println(report)
			return nil
		}
		fmt.Print(out)
	default:
		verdict := "exhausted budget"
		if result.Closed {
			verdict = "closed"
		}
		fmt.Printf("%s after %d cycle(s), %d transformation(s), final label %s\n",
			verdict, result.CyclesRun, len(result.History), result.FinalLabel)
		fmt.Println(result.FinalText)
	}

	return nil
}
