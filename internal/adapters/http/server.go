// Package http exposes the engine over a JSON API. Routes are hand-written
// chi handlers; the embedded OpenAPI document is validated at construction
// and served for tooling.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/aretw0/ouro/api"
	"github.com/aretw0/ouro/internal/compiler"
	"github.com/aretw0/ouro/pkg/domain"
	"github.com/aretw0/ouro/pkg/ports"
	"github.com/aretw0/ouro/pkg/registry"
)

// Server wires the engine, optional run store, and transform registry
// behind HTTP handlers.
type Server struct {
	engine   ports.Executor
	store    ports.RunStore
	registry *registry.Registry
	logger   *slog.Logger

	apiVersion string
	metrics    http.Handler
}

// HandlerOption configures the HTTP server.
type HandlerOption func(*Server)

// WithRunStore enables the /runs endpoints and result persistence.
func WithRunStore(store ports.RunStore) HandlerOption {
	return func(s *Server) {
		s.store = store
	}
}

// WithRegistry sets the transform registry backing /validate.
func WithRegistry(reg *registry.Registry) HandlerOption {
	return func(s *Server) {
		s.registry = reg
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) HandlerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetricsHandler mounts a handler (usually promhttp) at /metrics.
func WithMetricsHandler(h http.Handler) HandlerOption {
	return func(s *Server) {
		s.metrics = h
	}
}

// NewHandler creates the HTTP handler for the engine. It loads and
// validates the embedded OpenAPI document so a malformed spec fails fast
// at startup rather than at documentation time.
func NewHandler(engine ports.Executor, opts ...HandlerOption) (http.Handler, error) {
	s := &Server{
		engine: engine,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(api.Spec)
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI spec: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI spec: %w", err)
	}
	s.apiVersion = doc.Info.Version

	r := chi.NewRouter()

	r.Post("/execute", s.handleExecute)
	r.Post("/validate", s.handleValidate)
	r.Get("/graph", s.handleGraph)
	r.Get("/healthz", s.handleHealth)

	r.Get("/runs", s.handleListRuns)
	r.Get("/runs/{id}", s.handleGetRun)
	r.Delete("/runs/{id}", s.handleDeleteRun)

	if s.metrics != nil {
		r.Handle("/metrics", s.metrics)
	}

	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(api.Spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	return enableCORS(s.versionHeader(r)), nil
}

func (s *Server) versionHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Ouro-Api-Version", s.apiVersion)
		next.ServeHTTP(w, r)
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// -- Request/response shapes --

type executeRequest struct {
	Text      string `json:"text"`
	MaxCycles *int   `json:"max_cycles,omitempty"`
	RunID     string `json:"run_id,omitempty"`
}

type executeResponse struct {
	RunID  string                  `json:"run_id,omitempty"`
	Result *domain.ExecutionResult `json:"result"`
}

type validateRequest struct {
	Manifest string `json:"manifest"`
}

type validateResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

type chainDescription struct {
	Start  string     `json:"start"`
	Length int        `json:"length"`
	Labels []string   `json:"labels"`
	Steps  []stepPair `json:"steps"`
}

type stepPair struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// -- Handlers --

func (s *Server) handleExecute(w http.ResponseWriter, r *http.Request) {
	var body executeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("execute: invalid request body", "error", err)
		return
	}

	maxCycles := 1
	if body.MaxCycles != nil {
		if *body.MaxCycles < 0 {
			http.Error(w, "max_cycles must not be negative", http.StatusBadRequest)
			return
		}
		maxCycles = *body.MaxCycles
	}

	result, err := s.engine.Execute(r.Context(), body.Text, maxCycles)
	if err != nil {
		// Only invariant violations reach here; they are server faults.
		http.Error(w, fmt.Sprintf("Execution error: %v", err), http.StatusInternalServerError)
		s.logger.Error("execute failed", "error", err)
		return
	}

	resp := executeResponse{Result: result}

	if s.store != nil {
		runID := body.RunID
		if runID == "" {
			runID = uuid.NewString()
		}
		if err := s.store.Save(r.Context(), runID, result); err != nil {
			s.logger.Error("execute: failed to persist run", "run_id", runID, "error", err)
		} else {
			resp.RunID = runID
		}
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var body validateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if s.registry == nil {
		http.Error(w, "Validation not configured", http.StatusNotImplemented)
		return
	}

	parser := compiler.NewParser()
	resp := validateResponse{Valid: true}

	manifest, err := parser.Parse([]byte(body.Manifest))
	if err == nil {
		_, err = parser.Compile(manifest, s.registry)
	}
	if err != nil {
		resp.Valid = false
		resp.Error = err.Error()
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGraph(w http.ResponseWriter, _ *http.Request) {
	chain := s.engine.Chain()

	desc := chainDescription{
		Start:  chain.Start(),
		Length: chain.Len(),
		Labels: chain.Labels(),
	}
	for _, step := range chain.Steps() {
		desc.Steps = append(desc.Steps, stepPair{From: step.From, To: step.To})
	}

	s.writeJSON(w, http.StatusOK, desc)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.Error(w, "Run store not configured", http.StatusNotImplemented)
		return
	}

	runs, err := s.store.List(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("List error: %v", err), http.StatusInternalServerError)
		s.logger.Error("list runs failed", "error", err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string][]string{"runs": runs})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.Error(w, "Run store not configured", http.StatusNotImplemented)
		return
	}

	id := chi.URLParam(r, "id")
	result, err := s.store.Load(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRunNotFound) {
			http.Error(w, "Run not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Load error: %v", err), http.StatusInternalServerError)
		s.logger.Error("get run failed", "run_id", id, "error", err)
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.Error(w, "Run store not configured", http.StatusNotImplemented)
		return
	}

	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		http.Error(w, fmt.Sprintf("Delete error: %v", err), http.StatusInternalServerError)
		s.logger.Error("delete run failed", "run_id", id, "error", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode error", "error", err)
	}
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Ouro API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`
