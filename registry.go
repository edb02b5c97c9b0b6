// FILE: lixenwraith/params/registry.go
package params

import (
	"errors"
	"sync"
)

// Registry is an ordered, name-indexed collection of descriptors.
// It is populated once and then sealed; lookups never depend on order.
type Registry struct {
	index  map[string]int // name -> position in order
	order  []Descriptor
	sealed bool
	mutex  sync.RWMutex
}

// New creates an empty, unsealed registry.
func New() *Registry {
	return &Registry{
		index: make(map[string]int),
	}
}

// Register adds one descriptor. The target storage is neither read nor written.
func (r *Registry) Register(d Descriptor) error {
	if !isValidName(d.Name) {
		return &ParamError{Op: "register", Name: d.Name, Err: ErrInvalidName}
	}
	if !d.Kind.valid() || d.target == nil {
		return &ParamError{Op: "register", Name: d.Name, Err: ErrNoTarget}
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.sealed {
		return &ParamError{Op: "register", Name: d.Name, Err: ErrSealed}
	}
	if _, exists := r.index[d.Name]; exists {
		return &ParamError{Op: "register", Name: d.Name, Err: ErrDuplicateName}
	}

	r.index[d.Name] = len(r.order)
	r.order = append(r.order, d)
	return nil
}

// RegisterAll registers descriptors in order and reports every failure.
func (r *Registry) RegisterAll(ds ...Descriptor) error {
	var errs []error
	for _, d := range ds {
		if err := r.Register(d); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Seal makes the registry immutable. Further Register calls fail with ErrSealed.
func (r *Registry) Seal() {
	r.mutex.Lock()
	r.sealed = true
	r.mutex.Unlock()
}

// Sealed reports whether Seal has been called.
func (r *Registry) Sealed() bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.sealed
}

// Lookup finds a descriptor by exact, case-sensitive name.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	i, ok := r.index[name]
	if !ok {
		return Descriptor{}, false
	}
	return r.order[i], true
}

// Find is Lookup with an ErrNotFound error instead of a boolean.
func (r *Registry) Find(name string) (Descriptor, error) {
	d, ok := r.Lookup(name)
	if !ok {
		return Descriptor{}, &ParamError{Op: "lookup", Name: name, Err: ErrNotFound}
	}
	return d, nil
}

// Descriptors returns a copy of all descriptors in registration order.
func (r *Registry) Descriptors() []Descriptor {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	out := make([]Descriptor, len(r.order))
	copy(out, r.order)
	return out
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, len(r.order))
	for i, d := range r.order {
		names[i] = d.Name
	}
	return names
}

// Len returns the number of registered parameters.
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.order)
}

// set coerces and writes one value under the write lock.
func (r *Registry) set(name, raw string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	i, ok := r.index[name]
	if !ok {
		return ErrUnknownParameter
	}
	return r.order[i].set(raw)
}
