package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/ouro/internal/cli"
	"github.com/aretw0/ouro/internal/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the pipeline manifest for consistency",
	Long:  `Parses the manifest, resolves every transform, and verifies that the chain is contiguous and closes back to its start label. Nothing is executed.`,
	Run: func(cmd *cobra.Command, args []string) {
		manifest, _ := cmd.Flags().GetString("manifest")

		if err := validator.ValidateManifest(manifest, cli.Registry()); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Chain is valid and closed! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
