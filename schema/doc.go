// Package schema stores, per target type, the descriptors that drive mapping
// raw records into typed values: plain columns, many-to-one relations and
// one-to-many relations.
//
// Schemas are declared once per type before mapping begins, by builder calls,
// by `remap` struct tags, or by a YAML schema file:
//
//	type Recibo struct {
//		ID         int      `remap:"column"`
//		Principal  float64  `remap:"column,name=Principal"`
//		RelationID int      `remap:"column"`
//		Desglose   *Desglose `remap:"manyToOne,own=RelationID,match=id"`
//		Items      []Item   `remap:"oneToMany,own=ID,inverse=reciboId,alias=items"`
//	}
//
// A registry freezes on first use by the mapper; later declarations fail with
// ErrFrozen so that concurrent mapping only ever reads immutable schemas.
package schema
