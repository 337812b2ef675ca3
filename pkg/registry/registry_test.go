package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/ouro/pkg/domain"
)

func TestRegistry_RegisterAndBuild(t *testing.T) {
	r := New()
	r.Register("shout", func(params map[string]any) (domain.TransformFunc, error) {
		return func(text string) string { return text + "!" }, nil
	})

	fn, err := r.Build("shout", nil)
	require.NoError(t, err)
	assert.Equal(t, "hi!", fn("hi"))
}

func TestRegistry_BuildUnknown(t *testing.T) {
	r := New()
	_, err := r.Build("missing", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transform not registered: missing")
}

func TestRegistry_FactoryErrorWrapped(t *testing.T) {
	r := New()
	boom := errors.New("bad params")
	r.Register("fussy", func(params map[string]any) (domain.TransformFunc, error) {
		return nil, boom
	})

	_, err := r.Build("fussy", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "transform fussy")
}

func TestRegistry_RegisterOverwrites(t *testing.T) {
	r := New()
	r.Register("x", func(map[string]any) (domain.TransformFunc, error) {
		return func(string) string { return "old" }, nil
	})
	r.Register("x", func(map[string]any) (domain.TransformFunc, error) {
		return func(string) string { return "new" }, nil
	})

	fn, err := r.Build("x", nil)
	require.NoError(t, err)
	assert.Equal(t, "new", fn(""))
}

func TestRegistry_NamesSorted(t *testing.T) {
	r := New()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		r.Register(name, func(map[string]any) (domain.TransformFunc, error) {
			return func(s string) string { return s }, nil
		})
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, r.Names())
}
