// File: lixenwraith/params/type.go
package params

import (
	"fmt"
	"strconv"
)

// Value returns the live value of a parameter: float64, int64, bool or string.
func (r *Registry) Value(name string) (any, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	i, ok := r.index[name]
	if !ok {
		return nil, &ParamError{Op: "lookup", Name: name, Err: ErrNotFound}
	}
	return r.order[i].Value(), nil
}

// Float64 reads a parameter as float64. Integer parameters are widened.
func (r *Registry) Float64(name string) (float64, error) {
	val, err := r.Value(name)
	if err != nil {
		return 0, err
	}
	switch v := val.(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	}
	return 0, fmt.Errorf("cannot convert %T to float64 for parameter %s", val, name)
}

// Int64 reads an integer parameter. Booleans convert to 0 or 1.
func (r *Registry) Int64(name string) (int64, error) {
	val, err := r.Value(name)
	if err != nil {
		return 0, err
	}
	switch v := val.(type) {
	case int64:
		return v, nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("cannot convert %T to int64 for parameter %s", val, name)
}

// Bool reads a boolean parameter. Integer parameters are true when non-zero.
func (r *Registry) Bool(name string) (bool, error) {
	val, err := r.Value(name)
	if err != nil {
		return false, err
	}
	switch v := val.(type) {
	case bool:
		return v, nil
	case int64:
		return v != 0, nil
	}
	return false, fmt.Errorf("cannot convert %T to bool for parameter %s", val, name)
}

// String reads any parameter as text.
func (r *Registry) String(name string) (string, error) {
	val, err := r.Value(name)
	if err != nil {
		return "", err
	}
	switch v := val.(type) {
	case string:
		return v, nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	}
	return "", fmt.Errorf("cannot convert %T to string for parameter %s", val, name)
}
