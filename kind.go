package params

import "fmt"

// Kind is the closed set of value types a parameter can hold.
type Kind byte

const (
	KindFloat  Kind = 'f'
	KindInt    Kind = 'd'
	KindBool   Kind = 'b'
	KindString Kind = 's'
)

// String returns the upper-case kind name.
func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "FLOAT"
	case KindInt:
		return "INT"
	case KindBool:
		return "BOOLEAN"
	case KindString:
		return "STRING"
	default:
		return fmt.Sprintf("Kind(%q)", byte(k))
	}
}

// valid reports whether k is one of the four declared kinds.
func (k Kind) valid() bool {
	switch k {
	case KindFloat, KindInt, KindBool, KindString:
		return true
	}
	return false
}
