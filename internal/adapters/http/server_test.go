package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/ouro/internal/adapters/memory"
	"github.com/aretw0/ouro/internal/runtime"
	"github.com/aretw0/ouro/pkg/domain"
	"github.com/aretw0/ouro/pkg/transform"
)

func testHandler(t *testing.T, opts ...HandlerOption) http.Handler {
	t.Helper()

	chain, err := domain.NewChain("Ruby", []domain.Step{
		domain.NewStep("Ruby", "Python", func(s string) string { return s + "->Python" }),
		domain.NewStep("Python", "Ruby", func(s string) string { return s + "->Ruby" }),
	})
	require.NoError(t, err)

	handler, err := NewHandler(runtime.NewEngine(chain), opts...)
	require.NoError(t, err)
	return handler
}

func TestHandleExecute(t *testing.T) {
	handler := testHandler(t)

	body := bytes.NewBufferString(`{"text": "seed"}`)
	req := httptest.NewRequest("POST", "/execute", body)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp executeResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotNil(t, resp.Result)
	assert.True(t, resp.Result.Closed)
	assert.Equal(t, "seed->Python->Ruby", resp.Result.FinalText)
	assert.Empty(t, resp.RunID, "no store configured, no run ID")
}

func TestHandleExecute_NegativeCycles(t *testing.T) {
	handler := testHandler(t)

	req := httptest.NewRequest("POST", "/execute", bytes.NewBufferString(`{"text": "x", "max_cycles": -1}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleExecute_BadBody(t *testing.T) {
	handler := testHandler(t)

	req := httptest.NewRequest("POST", "/execute", bytes.NewBufferString(`not json`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleExecute_PersistsRun(t *testing.T) {
	store := memory.New()
	handler := testHandler(t, WithRunStore(store))

	req := httptest.NewRequest("POST", "/execute", bytes.NewBufferString(`{"text": "x", "run_id": "my-run"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp executeResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "my-run", resp.RunID)

	saved, err := store.Load(req.Context(), "my-run")
	require.NoError(t, err)
	assert.True(t, saved.Closed)
}

func TestHandleValidate(t *testing.T) {
	handler := testHandler(t, WithRegistry(transform.Default()))

	manifest := "start: A\nsteps:\n  - {from: A, to: A, transform: identity}\n"
	payload, err := json.Marshal(validateRequest{Manifest: manifest})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/validate", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp validateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Valid)
	assert.Empty(t, resp.Error)
}

func TestHandleValidate_BrokenManifest(t *testing.T) {
	handler := testHandler(t, WithRegistry(transform.Default()))

	manifest := "start: A\nsteps:\n  - {from: A, to: B, transform: identity}\n"
	payload, err := json.Marshal(validateRequest{Manifest: manifest})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/validate", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp validateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Valid)
	assert.Contains(t, resp.Error, "not_closed")
}

func TestHandleValidate_NotConfigured(t *testing.T) {
	handler := testHandler(t)

	req := httptest.NewRequest("POST", "/validate", bytes.NewBufferString(`{"manifest": ""}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}

func TestHandleGraph(t *testing.T) {
	handler := testHandler(t)

	req := httptest.NewRequest("GET", "/graph", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var desc chainDescription
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&desc))
	assert.Equal(t, "Ruby", desc.Start)
	assert.Equal(t, 2, desc.Length)
	assert.Equal(t, []string{"Ruby", "Python", "Ruby"}, desc.Labels)
	assert.Equal(t, []stepPair{{From: "Ruby", To: "Python"}, {From: "Python", To: "Ruby"}}, desc.Steps)
}

func TestRunEndpoints(t *testing.T) {
	store := memory.New()
	handler := testHandler(t, WithRunStore(store))

	sample := &domain.ExecutionResult{FinalLabel: "Ruby", Closed: true}
	require.NoError(t, store.Save(httptest.NewRequest("GET", "/", nil).Context(), "r1", sample))

	t.Run("list", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/runs", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string][]string
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Contains(t, resp["runs"], "r1")
	})

	t.Run("get", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/runs/r1", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var result domain.ExecutionResult
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
		assert.Equal(t, "Ruby", result.FinalLabel)
	})

	t.Run("get missing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/runs/ghost", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("DELETE", "/runs/r1", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/runs/r1", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRunEndpoints_NoStore(t *testing.T) {
	handler := testHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/runs", nil))
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}

func TestHealthAndMeta(t *testing.T) {
	handler := testHandler(t)

	t.Run("healthz", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("openapi served", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/openapi.yaml", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "openapi:")
	})

	t.Run("version header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))
		assert.NotEmpty(t, rec.Header().Get("X-Ouro-Api-Version"))
	})

	t.Run("cors preflight", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("OPTIONS", "/execute", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
