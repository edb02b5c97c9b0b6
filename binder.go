// FILE: lixenwraith/params/binder.go
package params

import (
	"fmt"
	"log/slog"
)

const flagMarker = '-'

// UnknownPolicy decides what happens when a flag names no registered parameter.
type UnknownPolicy int

const (
	// UnknownAbort returns ErrUnknownParameter (default).
	UnknownAbort UnknownPolicy = iota
	// UnknownWarn logs a warning with the name and value and continues.
	UnknownWarn
)

// Binder writes command-line, environment and file values into registered targets.
type Binder struct {
	reg        *Registry
	positional []string
	unknown    UnknownPolicy
	logger     *slog.Logger
}

// BinderOption configures a Binder.
type BinderOption func(*Binder)

// WithPositional sets the parameters bound by position, in order.
func WithPositional(names ...string) BinderOption {
	return func(b *Binder) {
		b.positional = append([]string(nil), names...)
	}
}

// WithUnknown sets the policy for unknown flag names.
func WithUnknown(p UnknownPolicy) BinderOption {
	return func(b *Binder) {
		b.unknown = p
	}
}

// WithLogger sets the logger used for applied values and warnings.
func WithLogger(l *slog.Logger) BinderOption {
	return func(b *Binder) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBinder creates a Binder over reg. With no options there are no positional
// slots and unknown flags abort.
func NewBinder(reg *Registry, opts ...BinderOption) *Binder {
	b := &Binder{
		reg:    reg,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Registry returns the registry the binder writes through.
func (b *Binder) Registry() *Registry {
	return b.reg
}

// ChangeParam coerces value by the parameter's kind and writes it.
// On any error the target keeps its previous value.
func (b *Binder) ChangeParam(name, value string) error {
	if err := b.reg.set(name, value); err != nil {
		return &ParamError{Op: "change", Name: name, Value: value, Err: err}
	}
	b.logger.Debug("parameter set", "name", name, "value", value)
	return nil
}

// InitParams processes args left to right: leading non-flag tokens fill the
// positional slots, then every "-Name Value" pair is applied with ChangeParam.
// A later occurrence of a name overwrites an earlier one.
func (b *Binder) InitParams(args []string) error {
	i := 0
	for slot := 0; slot < len(b.positional) && i < len(args) && !isFlag(args[i]); slot++ {
		if err := b.ChangeParam(b.positional[slot], args[i]); err != nil {
			return fmt.Errorf("positional argument %d: %w", i+1, err)
		}
		i++
	}

	for i < len(args) {
		tok := args[i]
		if !isFlag(tok) {
			return &ParamError{Op: "change", Name: tok, Err: ErrUnexpectedArgument}
		}
		name := tok[1:]
		if i+1 >= len(args) {
			return &ParamError{Op: "change", Name: name, Err: ErrMissingValue}
		}
		value := args[i+1]
		i += 2

		if err := b.ChangeParam(name, value); err != nil {
			if b.unknown == UnknownWarn && isUnknown(err) {
				b.logger.Warn("ignoring unknown parameter", "name", name, "value", value)
				continue
			}
			return err
		}
	}
	return nil
}
