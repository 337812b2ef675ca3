package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/ouro/internal/cli"
	"github.com/aretw0/ouro/pkg/ports"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect persisted runs",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List persisted run IDs",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := storeFromFlags(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		ids, err := store.List(cmd.Context())
		if err != nil {
			fmt.Printf("Error listing runs: %v\n", err)
			os.Exit(1)
		}

		if len(ids) == 0 {
			fmt.Println("No runs found.")
			return
		}
		for _, id := range ids {
			fmt.Println(id)
		}
	},
}

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Print a persisted run as JSON",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := storeFromFlags(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		result, err := store.Load(cmd.Context(), args[0])
		if err != nil {
			fmt.Printf("Error loading run: %v\n", err)
			os.Exit(1)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	},
}

var runsDeleteCmd = &cobra.Command{
	Use:   "delete <run-id>",
	Short: "Delete a persisted run",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := storeFromFlags(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		if err := store.Delete(cmd.Context(), args[0]); err != nil {
			fmt.Printf("Error deleting run: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Deleted.")
	},
}

func storeFromFlags(cmd *cobra.Command) (ports.RunStore, error) {
	kind, _ := cmd.Flags().GetString("store")
	path, _ := cmd.Flags().GetString("store-path")
	redisURL, _ := cmd.Flags().GetString("redis")

	return cli.CreateStore(cli.RunOptions{
		StoreKind: kind,
		StorePath: path,
		RedisURL:  redisURL,
	})
}

func init() {
	rootCmd.AddCommand(runsCmd)
	runsCmd.AddCommand(runsListCmd, runsShowCmd, runsDeleteCmd)

	runsCmd.PersistentFlags().String("store", "file", "Run store: file or redis")
	runsCmd.PersistentFlags().String("store-path", "", "Directory for the file store")
	runsCmd.PersistentFlags().String("redis", "", "Redis address for the redis store")
}
