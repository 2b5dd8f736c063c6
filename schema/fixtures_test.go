package schema_test

import "fmt"

type Desglose struct {
	ID     int
	Value1 *float64
	Value2 *float64
}

type Item struct {
	ID       int
	ParentID int
}

type Named interface{ fmt.Stringer }

func (i Item) String() string { return fmt.Sprint("item ", i.ID) }

type Audit struct {
	CreatedBy string
}

type Recibo struct {
	Audit

	ID         int
	Name       string
	RelationID int
	Desglose   *Desglose
	Summary    Desglose
	Items      []Item
	Refs       []*Item
	Tags       []string
	Owner      Named
	hidden     int
}

type Node struct {
	ID       int
	ParentID int
	Parent   *Node
	Children []Node
}

type Left struct {
	Right *Right
}

type Right struct {
	Left *Left
}

var _ = Recibo{}.hidden
