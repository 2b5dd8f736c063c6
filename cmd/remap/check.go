package main

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/rs/zerolog"

	"remapper/examples/recibos"
	"remapper/examples/store"
	"remapper/examples/warehouse"
	"remapper/schema"
)

// transforms are the functions schema files may bind by name.
var transforms = map[string]any{
	"strings.TrimSpace": strings.TrimSpace,
	"strings.ToLower":   strings.ToLower,
	"strings.ToUpper":   strings.ToUpper,
	"store.Cents":       store.Cents,
}

var catalogs = map[string][]reflect.Type{
	"recibos": {reflect.TypeFor[recibos.Desglose](), reflect.TypeFor[recibos.Recibo]()},
	"store": {
		reflect.TypeFor[store.Product](),
		reflect.TypeFor[store.Customer](),
		reflect.TypeFor[store.Order](),
		reflect.TypeFor[store.OrderItem](),
	},
	"warehouse": warehouse.Types(),
}

// CheckCmd loads a schema file into a registry knowing the catalog types and
// reports what is wrong with it.
type CheckCmd struct {
	Schema  string `arg:"" type:"existingfile" help:"YAML schema file"`
	Catalog string `name:"catalog" short:"c" default:"store" enum:"recibos,store,warehouse" help:"Types the file may name (${enum})"`
}

func (c *CheckCmd) Run(g *Globals) error {
	reg, err := knownRegistry(c.Catalog, g.logger)
	if err != nil {
		return err
	}

	if err := reg.LoadFile(c.Schema); err != nil {
		return err
	}

	if err := reg.Validate(); err != nil {
		return err
	}

	_, err = fmt.Fprintf(g.out, "%s: %d schemas ok\n", c.Schema, len(reg.Types()))

	return err
}

// ExportCmd prints the schemas the examples declare.
type ExportCmd struct {
	Catalog string `name:"catalog" short:"c" default:"store" enum:"recibos,store,warehouse" help:"Catalog to export (${enum})"`
}

func (c *ExportCmd) Run(g *Globals) error {
	var (
		reg *schema.Registry
		err error
	)

	switch c.Catalog {
	case "recibos":
		reg = schema.NewRegistry(schema.WithLogger(g.logger))
		err = recibos.Register(reg)
	case "store":
		reg = schema.NewRegistry(schema.WithLogger(g.logger))
		err = store.Register(reg)
	default:
		reg, err = warehouse.NewRegistry(schema.WithLogger(g.logger))
	}

	if err != nil {
		return err
	}

	data, err := reg.Export()
	if err != nil {
		return err
	}

	_, err = g.out.Write(data)

	return err
}

func knownRegistry(catalog string, logger zerolog.Logger) (*schema.Registry, error) {
	reg := schema.NewRegistry(schema.WithLogger(logger))

	for name, fn := range transforms {
		if err := reg.AddTransform(name, fn); err != nil {
			return nil, err
		}
	}

	if err := reg.Known(catalogs[catalog]...); err != nil {
		return nil, err
	}

	return reg, nil
}
