package schema

import (
	"fmt"
	"reflect"
	"strings"

	"remapper/internal/common"
	"remapper/internal/diagnostic"
	"remapper/internal/walk"
)

// Validate reviews the registered schemas as a whole. Warnings are logged;
// errors are returned joined into one.
//
// Reported problems:
//   - relations targeting a type without schema (they always resolve to absent)
//   - one-to-many relations missing a key (they never expand)
//   - many-to-one relations declaring only one of the match keys
//   - relation cycles: an error when made of embedded many-to-one relations
//     only, which recurse forever, otherwise a warning
func (r *Registry) Validate() error {
	diags := r.diagnose()

	for _, w := range diags.Warnings {
		r.logger.Warn().Str("code", w.Code).Str("type", w.Type).Str("property", w.Property).Msg(w.Message)
	}

	return diags.Error()
}

func (r *Registry) diagnose() *diagnostic.Diagnostics {
	types := r.Types()

	defer r.rlock()()

	res := &diagnostic.Diagnostics{}

	for _, t := range types {
		s := r.schemas[t]
		name := common.TypeName(t)

		for _, m := range s.ManyToOne {
			r.checkTarget(res, name, m.Property, m.Resolved())

			if (m.OwnKey == "") != (m.MatchKey == "") {
				res.AddWarning("half_joined",
					"own key and match key are needed together; the relation is always embedded", name, m.Property)
			}
		}

		for _, o := range s.OneToMany {
			r.checkTarget(res, name, o.Property, o.Resolved())

			if !o.Valid() {
				res.AddWarning("never_expands",
					"one-to-many needs own key and inverse key; the relation never expands", name, o.Property)
			}
		}
	}

	r.checkCycles(res, types)

	return res
}

func (r *Registry) checkTarget(res *diagnostic.Diagnostics, typ, property string, target Target) {
	if target.IsAlias() {
		res.AddInfo("alias_target",
			fmt.Sprintf("target %s is resolved through the sources of each call", target), typ, property)

		return
	}

	if s, ok := r.schemas[target.Type()]; !ok || s.IsEmpty() {
		res.AddWarning("unregistered_target",
			fmt.Sprintf("target %s has no schema; the relation always resolves to absent", target), typ, property)
	}
}

func (r *Registry) checkCycles(res *diagnostic.Diagnostics, roots []reflect.Type) {
	cycle := walk.FindCycle(roots, r.relatedTypes)
	if cycle == nil {
		return
	}

	names := make([]string, len(cycle))
	for i, t := range cycle {
		names[i] = common.TypeName(t)
	}

	path := strings.Join(names, " -> ")

	unconditional := true
	for i := 0; i+1 < len(cycle); i++ {
		unconditional = unconditional && r.embedsAlways(cycle[i], cycle[i+1])
	}

	if unconditional {
		res.AddError("relation_cycle", fmt.Sprintf("relation cycle %s never terminates", path), names[0], "")
		return
	}

	res.AddWarning("relation_cycle",
		fmt.Sprintf("relation cycle %s terminates only when joined records run out", path), names[0], "")
}

// relatedTypes lists the distinct relation targets of t known by type, in declaration order.
func (r *Registry) relatedTypes(t reflect.Type) []reflect.Type {
	s, ok := r.schemas[t]
	if !ok {
		return nil
	}

	var d walk.Dealer[reflect.Type]

	for _, m := range s.ManyToOne {
		if tt := m.Resolved().Type(); tt != nil {
			d.Needs(tt)
		}
	}

	for _, o := range s.OneToMany {
		if tt := o.Resolved().Type(); tt != nil {
			d.Needs(tt)
		}
	}

	var out []reflect.Type
	for next, ok := d.Next(); ok; next, ok = d.Next() {
		out = append(out, next)
	}

	return out
}

// embedsAlways reports a keyless many-to-one from a to b, which recurses on every record.
func (r *Registry) embedsAlways(a, b reflect.Type) bool {
	for _, m := range r.schemas[a].ManyToOne {
		if m.Resolved().Type() == b && !m.Joined() {
			return true
		}
	}

	return false
}
