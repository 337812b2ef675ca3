package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/ouro/internal/cli"
	"github.com/aretw0/ouro/internal/presentation/tui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute the pipeline over a text payload",
	Long:  `Compiles the manifest, validates the chain, and drives the payload through it until closure or until the cycle budget runs out.`,
	Run: func(cmd *cobra.Command, args []string) {
		manifest, _ := cmd.Flags().GetString("manifest")
		text, _ := cmd.Flags().GetString("text")
		input, _ := cmd.Flags().GetString("input")
		cycles, _ := cmd.Flags().GetInt("cycles")
		jsonOut, _ := cmd.Flags().GetBool("json")
		report, _ := cmd.Flags().GetBool("report")
		debug, _ := cmd.Flags().GetBool("debug")
		runID, _ := cmd.Flags().GetString("run-id")
		store, _ := cmd.Flags().GetString("store")
		storePath, _ := cmd.Flags().GetString("store-path")
		redisURL, _ := cmd.Flags().GetString("redis")

		if !jsonOut && report {
			tui.PrintBanner()
		}

		opts := cli.RunOptions{
			ManifestPath: manifest,
			Text:         text,
			InputPath:    input,
			MaxCycles:    cycles,
			JSON:         jsonOut,
			Report:       report,
			Debug:        debug,
			RunID:        runID,
			StoreKind:    store,
			StorePath:    storePath,
			RedisURL:     redisURL,
		}

		if err := cli.Execute(cmd.Context(), opts); err != nil {
			fmt.Printf("Run failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("text", "t", "", "Inline text payload")
	runCmd.Flags().StringP("input", "i", "", "Read the payload from a file")
	runCmd.Flags().IntP("cycles", "c", 0, "Cycle budget (0 = manifest value)")
	runCmd.Flags().Bool("json", false, "Print the full result as JSON")
	runCmd.Flags().Bool("report", false, "Render a markdown execution report")
	runCmd.Flags().Bool("debug", false, "Log every cycle and step")
	runCmd.Flags().String("run-id", "", "Persist the result under this ID")
	runCmd.Flags().String("store", "", "Run store: memory, file or redis")
	runCmd.Flags().String("store-path", "", "Directory for the file store")
	runCmd.Flags().String("redis", "", "Redis address for the redis store")
}
