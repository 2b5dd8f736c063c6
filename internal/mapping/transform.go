package mapping

import (
	"errors"
	"fmt"
	"sort"

	"remapper/caster"
)

var ErrDuplicateTransform = errors.New("duplicate transform")

// TransformRegistry holds validated transform functions by name.
// It is not safe for concurrent writes.
type TransformRegistry struct {
	transforms map[string]caster.Caster
}

// NewTransformRegistry creates a new empty transform registry.
func NewTransformRegistry() *TransformRegistry {
	return &TransformRegistry{
		transforms: make(map[string]caster.Caster),
	}
}

// Add validates fn as a caster and stores it under name.
func (r *TransformRegistry) Add(name string, fn any) error {
	if _, ok := r.transforms[name]; ok {
		return fmt.Errorf("%w %q", ErrDuplicateTransform, name)
	}

	c, err := caster.Parse(fn)
	if err != nil {
		return fmt.Errorf("transform %q: %w", name, err)
	}

	r.transforms[name] = c

	return nil
}

// Get returns a transform by name.
func (r *TransformRegistry) Get(name string) (caster.Caster, bool) {
	if r == nil {
		return caster.Caster{}, false
	}

	c, ok := r.transforms[name]

	return c, ok
}

// Has reports whether a transform exists.
func (r *TransformRegistry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Names returns all transform names sorted alphabetically.
func (r *TransformRegistry) Names() []string {
	if r == nil {
		return nil
	}

	names := make([]string, 0, len(r.transforms))
	for name := range r.transforms {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// BuildRegistry returns a registry holding every function of funcs plus the
// names the file binds to them.
func BuildRegistry(f *File, funcs *TransformRegistry) (*TransformRegistry, []error) {
	registry := NewTransformRegistry()

	var errs []error

	for _, name := range funcs.Names() {
		registry.transforms[name] = funcs.transforms[name]
	}

	for _, def := range f.Transforms {
		c, ok := funcs.Get(def.Func)
		if !ok {
			errs = append(errs, fmt.Errorf("transform %q: function %q is not registered", def.Name, def.Func))
			continue
		}

		if def.Name == def.Func {
			continue
		}

		if _, taken := registry.transforms[def.Name]; taken {
			errs = append(errs, fmt.Errorf("%w %q", ErrDuplicateTransform, def.Name))
			continue
		}

		registry.transforms[def.Name] = c
	}

	return registry, errs
}
