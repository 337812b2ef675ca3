package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/ouro/internal/cli"
	"github.com/aretw0/ouro/internal/logging"
	mcpAdapter "github.com/aretw0/ouro/pkg/adapters/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose the pipeline as an MCP server",
	Long:  `Starts a Model Context Protocol server offering execute_chain, validate_chain, and get_chain tools over stdio (default) or SSE.`,
	Run: func(cmd *cobra.Command, args []string) {
		manifest, _ := cmd.Flags().GetString("manifest")
		sse, _ := cmd.Flags().GetBool("sse")
		port, _ := cmd.Flags().GetInt("port")

		// Logs go to stderr; stdout belongs to the MCP transport.
		logger := logging.New(slog.LevelWarn)

		engine, _, err := cli.CreateEngine(cli.RunOptions{ManifestPath: manifest}, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing ouro: %v\n", err)
			os.Exit(1)
		}

		srv := mcpAdapter.NewServer(engine, cli.Registry())

		if sse {
			if err := srv.ServeSSE(cmd.Context(), port); err != nil {
				fmt.Fprintf(os.Stderr, "MCP server error: %v\n", err)
				os.Exit(1)
			}
			return
		}

		if err := srv.ServeStdio(); err != nil {
			fmt.Fprintf(os.Stderr, "MCP server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().Bool("sse", false, "Serve over SSE instead of stdio")
	mcpCmd.Flags().Int("port", 8090, "Port for SSE mode")
}
