// Package gen renders the arity-indexed source of the tupl module: the
// tuple types T0 through TN with their per-arity operations, and the
// tuplefunc converters. The rendered files are committed; go generate
// at the module root refreshes them.
package gen

import (
	"github.com/pkg/errors"
)

// Defaults applied to zero Config fields.
const (
	DefaultMaxArity = 50
	DefaultFnArity  = 4
)

// maxNameable is the largest arity for which distinct type parameter
// names can be synthesized (A..Z, then AA..AZ).
const maxNameable = 52

// Config controls the generation ranges.
type Config struct {
	// MaxArity is the largest tuple arity to define. Arities above it
	// do not exist, so neither do operations that would reach them.
	MaxArity int
	// FnArity is the largest argument or return parameter count
	// covered by the tuplefunc converters.
	FnArity int
}

func (c Config) withDefaults() Config {
	if c.MaxArity == 0 {
		c.MaxArity = DefaultMaxArity
	}
	if c.FnArity == 0 {
		c.FnArity = DefaultFnArity
	}
	return c
}

func (c Config) validate() error {
	if c.MaxArity < 1 {
		return errors.Errorf("max arity %d: must be at least 1", c.MaxArity)
	}
	if c.MaxArity > maxNameable {
		return errors.Errorf("max arity %d: cannot name more than %d type parameters", c.MaxArity, maxNameable)
	}
	if c.FnArity < 0 || c.FnArity > c.MaxArity {
		return errors.Errorf("function arity %d: must be between 0 and the max arity %d", c.FnArity, c.MaxArity)
	}
	return nil
}

// File is one generated source file.
type File struct {
	// Path is relative to the module root, in slash form.
	Path string
	// Source is gofmt-formatted Go source.
	Source []byte
}

// Generate renders every generated file for cfg. Zero fields of cfg
// take their defaults.
func Generate(cfg Config) ([]File, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	emitters := []struct {
		path string
		emit func(Config) ([]byte, error)
	}{
		{"tuple_gen.go", emitTuple},
		{"nonempty_gen.go", emitNonEmpty},
		{"grow_gen.go", emitGrow},
		{"tuplefunc/tuplefunc_gen.go", emitTupleFunc},
	}
	files := make([]File, 0, len(emitters))
	for _, e := range emitters {
		src, err := e.emit(cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to render %s", e.path)
		}
		formatted, err := formatSource(e.path, src)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to format %s", e.path)
		}
		files = append(files, File{Path: e.path, Source: formatted})
	}
	return files, nil
}
