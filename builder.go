// File: lixenwraith/params/builder.go
package params

import (
	"fmt"
	"log/slog"
	"os"
)

// Builder provides a fluent interface for binding a Params from all sources
type Builder struct {
	params     *Params
	positional []string
	file       string
	envPrefix  string
	args       []string
	unknown    UnknownPolicy
	logger     *slog.Logger
	err        error
}

// NewBuilder creates a builder over the declared defaults, the process
// arguments and the standard positional slots.
func NewBuilder() *Builder {
	return &Builder{
		params:     Defaults(),
		positional: Positional,
		args:       os.Args[1:],
		logger:     slog.Default(),
	}
}

// WithParams binds into p instead of a fresh Defaults(). p must already hold its defaults.
func (b *Builder) WithParams(p *Params) *Builder {
	if p == nil {
		b.err = fmt.Errorf("WithParams requires a non-nil *Params")
		return b
	}
	b.params = p
	return b
}

// WithPositional sets the parameters bound by position
func (b *Builder) WithPositional(names ...string) *Builder {
	b.positional = names
	return b
}

// WithFile sets a parameter file applied before the environment and the command line
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithEnvPrefix enables environment variables named prefix+Name
func (b *Builder) WithEnvPrefix(prefix string) *Builder {
	b.envPrefix = prefix
	return b
}

// WithArgs sets the command-line arguments, excluding the program name
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithUnknownPolicy sets how unknown parameter names are handled
func (b *Builder) WithUnknownPolicy(p UnknownPolicy) *Builder {
	b.unknown = p
	return b
}

// WithLogger sets the logger passed to the binder
func (b *Builder) WithLogger(l *slog.Logger) *Builder {
	if l != nil {
		b.logger = l
	}
	return b
}

// Build registers the table, then applies file, environment and arguments in
// that order. The first failing source aborts the build.
func (b *Builder) Build() (*Params, *Registry, error) {
	if b.err != nil {
		return nil, nil, b.err
	}

	reg, err := NewRegistry(b.params)
	if err != nil {
		return nil, nil, err
	}

	binder := NewBinder(reg,
		WithPositional(b.positional...),
		WithUnknown(b.unknown),
		WithLogger(b.logger),
	)

	if b.file != "" {
		if err := binder.LoadFile(b.file); err != nil {
			return nil, nil, err
		}
	}

	if b.envPrefix != "" {
		if err := binder.LoadEnv(b.envPrefix); err != nil {
			return nil, nil, err
		}
	}

	if err := binder.InitParams(b.args); err != nil {
		return nil, nil, err
	}

	return b.params, reg, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() (*Params, *Registry) {
	p, reg, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("params build failed: %v", err))
	}
	return p, reg
}
