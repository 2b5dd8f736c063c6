// Package options holds the settings of a remap call and the process-wide
// defaults every call starts from.
//
// Per-call options are applied over a copy of the defaults, so a call only
// replaces the settings it names. Slices are replaced, never concatenated.
package options

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"remapper/primitive"
	"remapper/record"
	"remapper/schema"
	"remapper/source"
)

// DefaultMaxDepth bounds relation nesting unless overridden.
const DefaultMaxDepth = 64

type Options struct {
	// Sources supplies the record sets of joined relations.
	Sources source.Catalog
	// IgnoreCase matches record keys case-insensitively.
	IgnoreCase bool
	// NormalizeKeys matches record keys ignoring case and separators, e.g.
	// "relation_id" matches "RelationID". It implies IgnoreCase.
	NormalizeKeys bool
	// CoerceKeys lets relation keys of number and string kinds match by their
	// textual form.
	CoerceKeys  bool
	Found       FoundRule
	Conversions primitive.CategoryEnum
	// MaxDepth limits relation nesting; zero or less means DefaultMaxDepth.
	MaxDepth int
	// Workers maps records of one batch concurrently when above one.
	Workers  int
	Registry *schema.Registry
	Logger   zerolog.Logger
}

type Option func(*Options)

var defaults atomic.Pointer[Options]

func init() {
	ResetDefaults()
}

func builtin() Options {
	return Options{
		Found:       FoundNonNull,
		Conversions: primitive.CategoryAll,
		MaxDepth:    DefaultMaxDepth,
		Workers:     1,
		Registry:    schema.Default,
		Logger:      zerolog.Nop(),
	}
}

// Defaults returns a copy of the process-wide default options.
func Defaults() Options {
	return *defaults.Load()
}

// SetDefaults applies opts over the current process-wide defaults.
// Calls already in flight keep the defaults they started with.
func SetDefaults(opts ...Option) {
	for {
		current := defaults.Load()

		next := current.With(opts...)
		if defaults.CompareAndSwap(current, &next) {
			return
		}
	}
}

// ResetDefaults restores the built-in defaults.
func ResetDefaults() {
	o := builtin()
	defaults.Store(&o)
}

// New returns the defaults with opts applied.
func New(opts ...Option) Options {
	return Defaults().With(opts...)
}

// With returns a copy of o with opts applied.
func (o Options) With(opts ...Option) Options {
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}

	if o.Workers <= 0 {
		o.Workers = 1
	}

	if o.Registry == nil {
		o.Registry = schema.Default
	}

	return o
}

// MatchMode translates the key matching flags into a record.MatchMode.
func (o Options) MatchMode() record.MatchMode {
	switch {
	case o.NormalizeKeys:
		return record.MatchNormalized
	case o.IgnoreCase:
		return record.MatchFold
	default:
		return record.MatchExact
	}
}

// WithSources replaces the sources with the given ones.
func WithSources(sources ...source.Source) Option {
	return func(o *Options) {
		o.Sources = source.Catalog(sources)
	}
}

// AddSources appends sources to the ones already set.
func AddSources(sources ...source.Source) Option {
	return func(o *Options) {
		o.Sources = append(source.Catalog(nil), o.Sources...)
		o.Sources = append(o.Sources, sources...)
	}
}

func WithIgnoreCase(on bool) Option {
	return func(o *Options) { o.IgnoreCase = on }
}

func WithNormalizeKeys(on bool) Option {
	return func(o *Options) { o.NormalizeKeys = on }
}

func WithCoerceKeys(on bool) Option {
	return func(o *Options) { o.CoerceKeys = on }
}

func WithFound(rule FoundRule) Option {
	return func(o *Options) { o.Found = rule }
}

func WithConversions(allowed primitive.CategoryEnum) Option {
	return func(o *Options) { o.Conversions = allowed }
}

func WithMaxDepth(n int) Option {
	return func(o *Options) { o.MaxDepth = n }
}

func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithRegistry maps against r instead of schema.Default.
func WithRegistry(r *schema.Registry) Option {
	return func(o *Options) { o.Registry = r }
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
