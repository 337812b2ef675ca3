// Package mcp exposes the engine to agent hosts over the Model Context
// Protocol: execution and validation as tools, the chain as a resource.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/ouro"
	"github.com/aretw0/ouro/internal/compiler"
	"github.com/aretw0/ouro/pkg/domain"
	"github.com/aretw0/ouro/pkg/ports"
	"github.com/aretw0/ouro/pkg/registry"
)

// ExecuteResponse is the structured payload returned by the execute tool.
type ExecuteResponse struct {
	Result *domain.ExecutionResult `json:"result" jsonschema_description:"Outcome of driving the text through the chain"`
}

// ValidateResponse is the structured payload returned by the validate tool.
type ValidateResponse struct {
	Valid bool   `json:"valid" jsonschema_description:"Whether the manifest compiles into a closed chain"`
	Error string `json:"error,omitempty" jsonschema_description:"Validation failure, when not valid"`
}

// Server wraps the Ouro engine and exposes it as an MCP server.
type Server struct {
	engine    ports.Executor
	registry  *registry.Registry
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance.
func NewServer(engine ports.Executor, reg *registry.Registry) *Server {
	s := &Server{
		engine:    engine,
		registry:  reg,
		mcpServer: server.NewMCPServer("ouro-mcp", strings.TrimSpace(ouro.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: execute_chain
	executeTool := mcp.NewTool("execute_chain",
		mcp.WithDescription("Drive a text payload through the loaded chain for a bounded number of cycles."),
		mcp.WithString("text", mcp.Required(), mcp.Description("Initial text in the chain's start label")),
		mcp.WithNumber("max_cycles", mcp.Description("Cycle budget (default 1)")),
		mcp.WithOutputSchema[ExecuteResponse](),
	)
	s.mcpServer.AddTool(executeTool, mcp.NewStructuredToolHandler(s.handleExecute))

	// TOOL: validate_chain
	validateTool := mcp.NewTool("validate_chain",
		mcp.WithDescription("Validate a YAML pipeline manifest without executing it."),
		mcp.WithString("manifest", mcp.Required(), mcp.Description("YAML manifest document")),
		mcp.WithOutputSchema[ValidateResponse](),
	)
	s.mcpServer.AddTool(validateTool, mcp.NewStructuredToolHandler(s.handleValidate))

	// TOOL: get_chain
	s.mcpServer.AddTool(mcp.NewTool("get_chain",
		mcp.WithDescription("Get the loaded chain's label path for introspection."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		labels := s.engine.Chain().Labels()
		jsonBytes, _ := json.Marshal(labels)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server) handleExecute(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ExecuteResponse, error) {
	text, _ := args["text"].(string)

	maxCycles := 1
	if raw, ok := args["max_cycles"].(float64); ok {
		if raw < 0 {
			return ExecuteResponse{}, fmt.Errorf("max_cycles must not be negative")
		}
		maxCycles = int(raw)
	}

	result, err := s.engine.Execute(ctx, text, maxCycles)
	if err != nil {
		return ExecuteResponse{}, fmt.Errorf("execution failed: %w", err)
	}

	return ExecuteResponse{Result: result}, nil
}

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ValidateResponse, error) {
	manifestDoc, _ := args["manifest"].(string)
	if s.registry == nil {
		return ValidateResponse{}, fmt.Errorf("no transform registry configured")
	}

	parser := compiler.NewParser()

	manifest, err := parser.Parse([]byte(manifestDoc))
	if err == nil {
		_, err = parser.Compile(manifest, s.registry)
	}
	if err != nil {
		return ValidateResponse{Valid: false, Error: err.Error()}, nil
	}

	return ValidateResponse{Valid: true}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: ouro://chain
	s.mcpServer.AddResource(mcp.NewResource("ouro://chain", "Loaded Chain Definition",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		chain := s.engine.Chain()

		type stepPair struct {
			From string `json:"from"`
			To   string `json:"to"`
		}
		desc := struct {
			Start string     `json:"start"`
			Steps []stepPair `json:"steps"`
		}{Start: chain.Start()}
		for _, step := range chain.Steps() {
			desc.Steps = append(desc.Steps, stepPair{From: step.From, To: step.To})
		}

		jsonBytes, _ := json.Marshal(desc)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "ouro://chain",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
