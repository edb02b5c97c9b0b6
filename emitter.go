// FILE: lixenwraith/params/emitter.go
package params

import (
	"fmt"
	"io"
	"strings"
)

// PrintParams writes the reference listing: for each parameter in registration
// order, its name and declared default literal, its description, and a blank line.
// Live values are never consulted, so the output is the same before and after binding.
func (r *Registry) PrintParams(w io.Writer) error {
	var b strings.Builder
	for _, d := range r.Descriptors() {
		fmt.Fprintf(&b, "- %s = %s\n  %s\n\n", d.Name, d.Default, d.Doc)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// PrintCurrent writes one "- Name = value" line per parameter with the live value.
// Strings are quoted so an empty value stays visible.
func (r *Registry) PrintCurrent(w io.Writer) error {
	var b strings.Builder
	for _, d := range r.Descriptors() {
		v := d.FormatValue()
		if d.Kind == KindString {
			v = fmt.Sprintf("%q", v)
		}
		fmt.Fprintf(&b, "- %s = %s\n", d.Name, v)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
