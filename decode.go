// FILE: lixenwraith/params/decode.go
package params

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// TagName is the struct tag Scan uses to map fields to parameter names.
const TagName = "param"

// Scan decodes the live parameter values into target, which must be a non-nil
// pointer to a struct or map. Fields are matched by the "param" tag, falling back
// to the field name. Fields with no matching parameter are left untouched.
func (r *Registry) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}

	values := r.Snapshot()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          TagName,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(values); err != nil {
		return fmt.Errorf("failed to scan parameters into %T: %w", target, err)
	}
	return nil
}

// Snapshot returns the live values keyed by parameter name.
func (r *Registry) Snapshot() map[string]any {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	values := make(map[string]any, len(r.order))
	for _, d := range r.order {
		values[d.Name] = d.Value()
	}
	return values
}
