package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ouro",
	Short: "Ouro is a transformation-chain validator and cyclic executor",
	Long:  `Ouro validates pipelines of labeled text transformations into closed cycles and drives payloads through them for a bounded number of repetitions.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("manifest", "f", "pipeline.yaml", "Path to the pipeline manifest")
}
