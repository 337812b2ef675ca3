package ouro_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/ouro"
	"github.com/aretw0/ouro/pkg/domain"
)

func annotate(label string) domain.TransformFunc {
	return func(text string) string {
		return "# " + label + " version of: " + domain.Excerpt(text)
	}
}

func TestNew_ValidChain(t *testing.T) {
	engine, err := ouro.New("Ruby", []domain.Step{
		domain.NewStep("Ruby", "Python", annotate("Python")),
		domain.NewStep("Python", "Java", annotate("Java")),
		domain.NewStep("Java", "Ruby", annotate("Ruby")),
	})
	require.NoError(t, err)
	require.NotNil(t, engine)

	result, err := engine.Execute(context.Background(), "def ouroboros_start\nend", 1)
	require.NoError(t, err)

	assert.True(t, result.Closed)
	assert.Equal(t, "Ruby", result.FinalLabel)
	assert.Equal(t, 1, result.CyclesRun)
	assert.Len(t, result.History, 3)
	assert.True(t, strings.HasPrefix(result.FinalText, "# Ruby version of:"))
}

func TestNew_RejectsBrokenChain(t *testing.T) {
	engine, err := ouro.New("COBOL", []domain.Step{
		domain.NewStep("Ruby", "Python", annotate("Python")),
		domain.NewStep("Python", "Ruby", annotate("Ruby")),
	})
	assert.Nil(t, engine)
	require.Error(t, err)
	assert.True(t, domain.IsConfigError(err))
}

func TestEngine_ChainAccessor(t *testing.T) {
	engine, err := ouro.New("A", []domain.Step{
		domain.NewStep("A", "B", annotate("B")),
		domain.NewStep("B", "A", annotate("A")),
	})
	require.NoError(t, err)

	chain := engine.Chain()
	assert.Equal(t, "A", chain.Start())
	assert.Equal(t, []string{"A", "B", "A"}, chain.Labels())
	assert.Equal(t, chain.Labels(), engine.Describe())
}

func TestWithName_TagsLogOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	engine, err := ouro.New("A", []domain.Step{
		domain.NewStep("A", "A", annotate("A")),
	}, ouro.WithLogger(logger), ouro.WithName("demo"))
	require.NoError(t, err)

	_, err = engine.Execute(context.Background(), "hi", 1)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "pipeline=demo")
}

func TestWithLifecycleHooks_Propagated(t *testing.T) {
	applied := 0
	hooks := domain.LifecycleHooks{
		OnStepApplied: func(context.Context, *domain.StepEvent) { applied++ },
	}

	engine, err := ouro.New("A", []domain.Step{
		domain.NewStep("A", "B", annotate("B")),
		domain.NewStep("B", "A", annotate("A")),
	}, ouro.WithLifecycleHooks(hooks))
	require.NoError(t, err)

	_, err = engine.Execute(context.Background(), "x", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, applied)
}
