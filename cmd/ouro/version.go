package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/ouro"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ouro",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ouro version %s\n", strings.TrimSpace(ouro.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
