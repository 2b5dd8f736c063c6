package remap

import (
	"errors"
	"fmt"
	"reflect"

	"golang.org/x/sync/errgroup"

	"remapper/internal/common"
	"remapper/options"
	"remapper/record"
	"remapper/schema"
)

// Remap maps every record into a *T. The result always has one slot per
// record; collapsed and failed records leave nil slots. Failures are returned
// as one joined error of *RecordError values.
func Remap[T any](records []record.Record, opts ...options.Option) ([]*T, error) {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", schema.ErrNotAStruct, common.TypeName(t))
	}

	values, err := batch(newMapper(options.New(opts...)), t, records)

	out := make([]*T, len(values))
	for i, v := range values {
		if v.IsValid() {
			out[i] = v.Interface().(*T)
		}
	}

	return out, err
}

// One maps a single record. A collapsed record yields nil without error.
func One[T any](rec record.Record, opts ...options.Option) (*T, error) {
	out, err := Remap[T]([]record.Record{rec}, opts...)
	if len(out) == 0 {
		return nil, err
	}

	var re *RecordError
	if errors.As(err, &re) {
		err = re.Err
	}

	return out[0], err
}

// RemapType is the dynamic form of Remap. Results hold *T values of the
// target type, or nil. An alias target is resolved through the supplied
// sources; when none matches the whole call fails with ErrUnresolvedAlias.
func RemapType(target schema.Target, records []record.Record, opts ...options.Option) ([]any, error) {
	o := options.New(opts...)

	t := target.Type()
	if target.IsAlias() {
		src, ok := o.Sources.Resolve(target)
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnresolvedAlias, target.Alias())
		}

		t = src.Type
	}

	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", schema.ErrNotAStruct, target)
	}

	values, err := batch(newMapper(o), t, records)

	out := make([]any, len(values))
	for i, v := range values {
		if v.IsValid() {
			out[i] = v.Interface()
		}
	}

	return out, err
}

// batch maps records in input order, concurrently when more than one worker
// is configured. A failing record never affects its siblings.
func batch(m *mapper, t reflect.Type, records []record.Record) ([]reflect.Value, error) {
	values := make([]reflect.Value, len(records))
	errs := make([]error, len(records))

	one := func(i int) {
		v, found, err := m.mapOne(t, records[i], "", 0)

		switch {
		case err != nil:
			m.log.Debug().Int("index", i).Err(err).Msg("record failed")
			errs[i] = &RecordError{Index: i, Err: err}
		case found:
			values[i] = v
		}
	}

	if m.opts.Workers <= 1 || len(records) < 2 {
		for i := range records {
			one(i)
		}
	} else {
		var g errgroup.Group

		g.SetLimit(m.opts.Workers)

		for i := range records {
			g.Go(func() error {
				one(i)
				return nil
			})
		}

		_ = g.Wait()
	}

	return values, errors.Join(errs...)
}
