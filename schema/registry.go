package schema

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"remapper/internal/common"
	"remapper/internal/mapping"
)

var (
	ErrFrozen            = errors.New("schema registry is frozen")
	ErrNotAStruct        = errors.New("target type is not a struct")
	ErrUnknownProperty   = errors.New("unknown property")
	ErrDuplicateProperty = errors.New("property is already declared")
	ErrBadShape          = errors.New("property type does not fit the declaration")
	ErrUnknownType       = errors.New("unknown type")
	ErrUnknownTransform  = errors.New("unknown transform")
	ErrInvalidTag        = errors.New("invalid remap tag")
	ErrInvalidSchema     = errors.New("invalid schema")
)

// Default is the process-wide registry used by the package level helpers and,
// unless told otherwise, by the mapper.
var Default = NewRegistry()

// Registry stores one TargetSchema per target type.
//
// Declarations are accepted until the registry is frozen. After Freeze, lookups
// read without locking, which is safe because nothing writes anymore.
type Registry struct {
	mu      sync.RWMutex
	schemas map[reflect.Type]*TargetSchema
	names   map[string]reflect.Type
	funcs   *mapping.TransformRegistry
	frozen  atomic.Bool
	naming  Naming
	logger  zerolog.Logger
}

type RegistryOption func(*Registry)

// WithNaming sets how raw keys are derived for columns and prefixes without explicit names.
func WithNaming(n Naming) RegistryOption {
	return func(r *Registry) { r.naming = n }
}

// WithLogger sets the logger receiving schema loading and validation warnings.
func WithLogger(l zerolog.Logger) RegistryOption {
	return func(r *Registry) { r.logger = l }
}

func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		schemas: make(map[reflect.Type]*TargetSchema),
		names:   make(map[string]reflect.Type),
		funcs:   mapping.NewTransformRegistry(),
		logger:  zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Naming returns the registry naming strategy.
func (r *Registry) Naming() Naming { return r.naming }

// Register appends descriptors to the schema of t, creating it on first reference.
// Either every descriptor is accepted or none is.
func (r *Registry) Register(t reflect.Type, descs ...Descriptor) error {
	return r.register(t, r.naming, descs)
}

func (r *Registry) register(t reflect.Type, naming Naming, descs []Descriptor) error {
	if t == nil || t.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %v", ErrNotAStruct, t)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.registerLocked(t, naming, descs)
}

func (r *Registry) registerLocked(t reflect.Type, naming Naming, descs []Descriptor) error {
	if r.frozen.Load() {
		return fmt.Errorf("%w: cannot declare %s", ErrFrozen, common.TypeName(t))
	}

	next := &TargetSchema{Type: t}
	if prev, ok := r.schemas[t]; ok {
		next = prev.clone()
	}

	for _, d := range descs {
		if d == nil {
			continue
		}

		if next.Has(d.property()) {
			return fmt.Errorf("%w: %s.%s", ErrDuplicateProperty, common.TypeName(t), d.property())
		}

		bound, err := r.bind(t, naming, d)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", common.TypeName(t), d.property(), err)
		}

		next.add(bound)
	}

	r.schemas[t] = next
	r.names[common.TypeName(t)] = t

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(t reflect.Type, descs ...Descriptor) {
	if err := r.Register(t, descs...); err != nil {
		panic(err)
	}
}

// Known makes types addressable by name from schema files without declaring anything.
func (r *Registry) Known(types ...reflect.Type) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen.Load() {
		return ErrFrozen
	}

	for _, t := range types {
		if t == nil || t.Kind() != reflect.Struct {
			return fmt.Errorf("%w: %v", ErrNotAStruct, t)
		}

		r.names[common.TypeName(t)] = t
	}

	return nil
}

// AddTransform registers a named transform usable by tags and schema files.
func (r *Registry) AddTransform(name string, fn any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen.Load() {
		return ErrFrozen
	}

	return r.funcs.Add(name, fn)
}

// Freeze stops accepting declarations. It is idempotent.
func (r *Registry) Freeze() {
	if r.frozen.Load() {
		return
	}

	r.mu.Lock()
	r.frozen.Store(true)
	r.mu.Unlock()
}

// Frozen reports whether Freeze was called.
func (r *Registry) Frozen() bool {
	return r.frozen.Load()
}

// rlock takes the read lock until the registry is frozen and returns its release.
func (r *Registry) rlock() func() {
	if r.frozen.Load() {
		return func() {}
	}

	r.mu.RLock()

	return r.mu.RUnlock
}

// Lookup returns the schema of t. Unregistered types yield an empty schema.
func (r *Registry) Lookup(t reflect.Type) *TargetSchema {
	defer r.rlock()()

	if s, ok := r.schemas[t]; ok {
		return s
	}

	return &TargetSchema{Type: t}
}

// Registered reports whether t has a schema.
func (r *Registry) Registered(t reflect.Type) bool {
	defer r.rlock()()

	_, ok := r.schemas[t]

	return ok
}

// TypeByName resolves a type by the name it is known under ("blog.Post",
// the full import path form, or the bare type name when unambiguous).
func (r *Registry) TypeByName(name string) (reflect.Type, bool) {
	defer r.rlock()()

	return mapping.ResolveTypeName(name, r.names)
}

// Types returns every type with a schema, sorted by name.
func (r *Registry) Types() []reflect.Type {
	defer r.rlock()()

	out := make([]reflect.Type, 0, len(r.schemas))
	for t := range r.schemas {
		out = append(out, t)
	}

	sort.Slice(out, func(i, j int) bool {
		return common.TypeName(out[i]) < common.TypeName(out[j])
	})

	return out
}

// Register declares fields of T in the Default registry.
func Register[T any](descs ...Descriptor) error {
	return Default.Register(reflect.TypeFor[T](), descs...)
}

// RegisterTags declares the `remap` tagged fields of T in the Default registry.
func RegisterTags[T any]() error {
	return Default.RegisterTags(reflect.TypeFor[T]())
}
