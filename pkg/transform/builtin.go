// Package transform ships the built-in text transforms available to
// manifest-defined chains. They are deliberately simple, stand-in
// generators in the spirit of the original placeholder functions; real
// dialect converters plug in through the same registry interface.
package transform

import (
	"fmt"
	"strings"

	"github.com/aretw0/ouro/pkg/domain"
	"github.com/aretw0/ouro/pkg/registry"
	"github.com/mitchellh/mapstructure"
)

// annotateOptions configures the "annotate" transform.
type annotateOptions struct {
	Comment string `mapstructure:"comment"` // comment leader, default "#"
	Note    string `mapstructure:"note"`    // annotation text
	Keep    int    `mapstructure:"keep"`    // runes of input carried into the note, default 30
}

// truncateOptions configures the "truncate" transform.
type truncateOptions struct {
	Length int `mapstructure:"length"`
}

// prefixOptions configures the "prefix" transform.
type prefixOptions struct {
	Text string `mapstructure:"text"`
}

// RegisterBuiltins installs the built-in transforms into a registry.
func RegisterBuiltins(r *registry.Registry) {
	r.Register("identity", func(params map[string]any) (domain.TransformFunc, error) {
		return func(text string) string { return text }, nil
	})

	r.Register("uppercase", func(params map[string]any) (domain.TransformFunc, error) {
		return strings.ToUpper, nil
	})

	r.Register("lowercase", func(params map[string]any) (domain.TransformFunc, error) {
		return strings.ToLower, nil
	})

	r.Register("reverse", func(params map[string]any) (domain.TransformFunc, error) {
		return func(text string) string {
			runes := []rune(text)
			for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
				runes[i], runes[j] = runes[j], runes[i]
			}
			return string(runes)
		}, nil
	})

	r.Register("prefix", func(params map[string]any) (domain.TransformFunc, error) {
		var opts prefixOptions
		if err := decode(params, &opts); err != nil {
			return nil, err
		}
		return func(text string) string { return opts.Text + text }, nil
	})

	r.Register("truncate", func(params map[string]any) (domain.TransformFunc, error) {
		var opts truncateOptions
		if err := decode(params, &opts); err != nil {
			return nil, err
		}
		if opts.Length <= 0 {
			return nil, fmt.Errorf("length must be positive, got %d", opts.Length)
		}
		return func(text string) string {
			runes := []rune(text)
			if len(runes) <= opts.Length {
				return text
			}
			return string(runes[:opts.Length])
		}, nil
	})

	// annotate mimics the original generator placeholders: it replaces the
	// text with a one-line comment carrying a snippet of its input.
	r.Register("annotate", func(params map[string]any) (domain.TransformFunc, error) {
		opts := annotateOptions{Comment: "#", Keep: 30}
		if err := decode(params, &opts); err != nil {
			return nil, err
		}
		if opts.Keep < 0 {
			return nil, fmt.Errorf("keep must not be negative, got %d", opts.Keep)
		}
		return func(text string) string {
			snippet := []rune(strings.TrimSpace(text))
			if len(snippet) > opts.Keep {
				snippet = snippet[:opts.Keep]
			}
			return fmt.Sprintf("%s %s: %s...", opts.Comment, opts.Note, string(snippet))
		}, nil
	})
}

// Default returns a registry preloaded with the built-ins.
func Default() *registry.Registry {
	r := registry.New()
	RegisterBuiltins(r)
	return r
}

// decode maps loose manifest params onto a typed options struct.
func decode(params map[string]any, out any) error {
	if params == nil {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(params); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	return nil
}
