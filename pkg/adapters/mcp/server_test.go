package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/ouro/internal/runtime"
	"github.com/aretw0/ouro/pkg/domain"
	"github.com/aretw0/ouro/pkg/transform"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	chain, err := domain.NewChain("Ruby", []domain.Step{
		domain.NewStep("Ruby", "Python", func(s string) string { return s + "->Python" }),
		domain.NewStep("Python", "Ruby", func(s string) string { return s + "->Ruby" }),
	})
	require.NoError(t, err)

	return NewServer(runtime.NewEngine(chain), transform.Default())
}

func TestHandleExecute(t *testing.T) {
	s := testServer(t)

	resp, err := s.handleExecute(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"text": "seed",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Result)
	assert.True(t, resp.Result.Closed)
	assert.Equal(t, "seed->Python->Ruby", resp.Result.FinalText)
}

func TestHandleExecute_CycleBudget(t *testing.T) {
	s := testServer(t)

	resp, err := s.handleExecute(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"text":       "x",
		"max_cycles": float64(0),
	})
	require.NoError(t, err)
	assert.False(t, resp.Result.Closed)
	assert.Equal(t, 0, resp.Result.CyclesRun)

	_, err = s.handleExecute(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"text":       "x",
		"max_cycles": float64(-1),
	})
	assert.Error(t, err)
}

func TestHandleValidate(t *testing.T) {
	s := testServer(t)

	resp, err := s.handleValidate(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"manifest": "start: A\nsteps:\n  - {from: A, to: A, transform: identity}\n",
	})
	require.NoError(t, err)
	assert.True(t, resp.Valid)

	resp, err = s.handleValidate(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"manifest": "start: A\nsteps:\n  - {from: A, to: B, transform: identity}\n",
	})
	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.Contains(t, resp.Error, "not_closed")
}
