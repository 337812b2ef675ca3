package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/ouro/internal/cli"
	"github.com/aretw0/ouro/internal/logging"
	"github.com/aretw0/ouro/internal/presentation/graph"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Render the chain as a Mermaid diagram",
	Run: func(cmd *cobra.Command, args []string) {
		manifest, _ := cmd.Flags().GetString("manifest")

		engine, _, err := cli.CreateEngine(cli.RunOptions{ManifestPath: manifest}, logging.New(slog.LevelWarn))
		if err != nil {
			fmt.Printf("Error loading pipeline: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(graph.GenerateMermaid(engine.Chain()))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
