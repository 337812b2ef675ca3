package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	httpAdapter "github.com/aretw0/ouro/internal/adapters/http"
	"github.com/aretw0/ouro/internal/cli"
	"github.com/aretw0/ouro/internal/logging"
	"github.com/aretw0/ouro/internal/metrics"
	"github.com/aretw0/ouro/pkg/domain"
	"github.com/aretw0/ouro/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP server",
	Long:  `Starts the Ouro engine in server mode, exposing execution, validation, and run history over a JSON API, with Prometheus metrics on /metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		manifest, _ := cmd.Flags().GetString("manifest")
		port, _ := cmd.Flags().GetString("port")
		store, _ := cmd.Flags().GetString("store")
		storePath, _ := cmd.Flags().GetString("store-path")
		redisURL, _ := cmd.Flags().GetString("redis")

		logger := logging.New(slog.LevelInfo)

		opts := cli.RunOptions{
			ManifestPath: manifest,
			StoreKind:    store,
			StorePath:    storePath,
			RedisURL:     redisURL,
		}

		promRegistry := prometheus.NewRegistry()

		engineMetrics, err := metrics.New(promRegistry, manifest)
		if err != nil {
			fmt.Printf("Error initializing metrics: %v\n", err)
			os.Exit(1)
		}

		engine, _, err := cli.CreateEngineWithHooks(opts, logger, engineMetrics.Hooks())
		if err != nil {
			fmt.Printf("Error initializing ouro: %v\n", err)
			os.Exit(1)
		}

		runStore, err := cli.CreateStore(opts)
		if err != nil {
			fmt.Printf("Error initializing store: %v\n", err)
			os.Exit(1)
		}

		instrumented := &instrumentedEngine{engine: engine, metrics: engineMetrics}

		handler, err := httpAdapter.NewHandler(instrumented,
			httpAdapter.WithRunStore(runStore),
			httpAdapter.WithRegistry(cli.Registry()),
			httpAdapter.WithLogger(logger),
			httpAdapter.WithMetricsHandler(promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{})),
		)
		if err != nil {
			fmt.Printf("Error building handler: %v\n", err)
			os.Exit(1)
		}

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Ouro Server on %s\n", srv.Addr)
			fmt.Printf("Serving pipeline from: %s\n", manifest)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Ouro Server stopped gracefully")
		}
	},
}

// instrumentedEngine records execution outcomes around the core engine.
type instrumentedEngine struct {
	engine  ports.Executor
	metrics *metrics.EngineMetrics
}

func (ie *instrumentedEngine) Execute(ctx context.Context, text string, maxCycles int) (*domain.ExecutionResult, error) {
	result, err := ie.engine.Execute(ctx, text, maxCycles)
	ie.metrics.RecordExecution(result, err)
	return result, err
}

func (ie *instrumentedEngine) Chain() *domain.Chain {
	return ie.engine.Chain()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("store", "memory", "Run store: memory, file or redis")
	serveCmd.Flags().String("store-path", "", "Directory for the file store")
	serveCmd.Flags().String("redis", "", "Redis address for the redis store")
}
