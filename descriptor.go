package params

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Descriptor describes one parameter: its kind, name, declared default literal,
// documentation and the caller-owned field it writes.
type Descriptor struct {
	Kind    Kind
	Name    string
	Default string // literal text shown by PrintParams, never re-read
	Doc     string

	// Width is the storage width in bits of the target cell.
	Width int
	// Capacity bounds string values; a value of Capacity bytes or more is rejected.
	// Zero means unbounded.
	Capacity int

	target target
}

// target is the accessor pair over the caller's storage.
type target interface {
	set(raw string) error
	get() any
}

// Float declares a float parameter bound to p.
func Float(name string, p *float64, def, doc string) Descriptor {
	return Descriptor{Kind: KindFloat, Name: name, Default: def, Doc: doc, Width: 64, target: floatTarget{p}}
}

// Int declares an integer parameter bound to p. The width follows the cell type,
// so a narrow cell such as int8 only accepts values that fit in it.
func Int[T int | int8 | int16 | int32 | int64](name string, p *T, def, doc string) Descriptor {
	bits := reflect.TypeOf((*T)(nil)).Elem().Bits()
	return Descriptor{Kind: KindInt, Name: name, Default: def, Doc: doc, Width: bits, target: intTarget[T]{p: p, bits: bits}}
}

// Bool declares a boolean parameter bound to p. Accepted values are "0" and "1".
func Bool(name string, p *bool, def, doc string) Descriptor {
	return Descriptor{Kind: KindBool, Name: name, Default: def, Doc: doc, Width: 8, target: boolTarget{p}}
}

// String declares a string parameter bound to p with the given capacity.
func String(name string, p *string, capacity int, def, doc string) Descriptor {
	return Descriptor{Kind: KindString, Name: name, Default: def, Doc: doc, Width: 8, Capacity: capacity, target: stringTarget{p: p, capacity: capacity}}
}

// Value returns the live value of the target, or nil for a descriptor without one.
func (d Descriptor) Value() any {
	if d.target == nil {
		return nil
	}
	return d.target.get()
}

// set coerces raw by kind and writes it. The target is untouched on error.
func (d Descriptor) set(raw string) error {
	if d.target == nil {
		return ErrNoTarget
	}
	return d.target.set(raw)
}

// FormatValue renders the live value the way it would be written on a command line.
func (d Descriptor) FormatValue() string {
	switch v := d.Value().(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		if v {
			return "1"
		}
		return "0"
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

type floatTarget struct{ p *float64 }

func (t floatTarget) set(raw string) error {
	// Decimal literals only: no hex floats, infinities or NaN.
	if raw == "" || strings.IndexFunc(raw, notDecimalRune) >= 0 {
		return fmt.Errorf("%w: %q is not a decimal number", ErrTypeCoercion, raw)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTypeCoercion, err)
	}
	*t.p = f
	return nil
}

func (t floatTarget) get() any { return *t.p }

func notDecimalRune(r rune) bool {
	return !strings.ContainsRune("0123456789+-.eE", r)
}

type intTarget[T int | int8 | int16 | int32 | int64] struct {
	p    *T
	bits int
}

func (t intTarget[T]) set(raw string) error {
	i, err := strconv.ParseInt(raw, 10, t.bits)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTypeCoercion, err)
	}
	*t.p = T(i)
	return nil
}

func (t intTarget[T]) get() any { return int64(*t.p) }

type boolTarget struct{ p *bool }

func (t boolTarget) set(raw string) error {
	switch raw {
	case "0":
		*t.p = false
	case "1":
		*t.p = true
	default:
		return fmt.Errorf("%w: %q is not 0 or 1", ErrTypeCoercion, raw)
	}
	return nil
}

func (t boolTarget) get() any { return *t.p }

type stringTarget struct {
	p        *string
	capacity int
}

func (t stringTarget) set(raw string) error {
	if t.capacity > 0 && len(raw) >= t.capacity {
		return fmt.Errorf("%w: %d bytes, capacity %d", ErrOverflow, len(raw), t.capacity)
	}
	*t.p = raw
	return nil
}

func (t stringTarget) get() any { return *t.p }
