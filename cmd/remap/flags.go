package main

import (
	"github.com/rs/zerolog"

	"remapper/options"
)

// MapFlags are the mapping options exposed on the command line.
type MapFlags struct {
	IgnoreCase  bool     `name:"ignore-case"  help:"Match record keys case-insensitively"`
	Normalize   bool     `name:"normalize"    help:"Match record keys ignoring case and separators"`
	CoerceKeys  bool     `name:"coerce-keys"  help:"Match relation keys of number and string kinds by text"`
	Found       string   `name:"found"        default:"non_null" enum:"non_null,present,truthy" help:"Rule deciding whether a column value counts as found (${enum})"`
	Conversions []string `name:"conversions"  default:"all" help:"Allowed value conversion categories"`
	Workers     int      `name:"workers"      default:"1" help:"Records mapped concurrently"`
	MaxDepth    int      `name:"max-depth"    default:"64" help:"Maximum relation nesting"`
}

func (f MapFlags) options(logger zerolog.Logger) ([]options.Option, error) {
	found, err := options.ParseFoundRule(f.Found)
	if err != nil {
		return nil, err
	}

	conversions, err := options.ParseCategories(f.Conversions...)
	if err != nil {
		return nil, err
	}

	return []options.Option{
		options.WithIgnoreCase(f.IgnoreCase),
		options.WithNormalizeKeys(f.Normalize),
		options.WithCoerceKeys(f.CoerceKeys),
		options.WithFound(found),
		options.WithConversions(conversions),
		options.WithWorkers(f.Workers),
		options.WithMaxDepth(f.MaxDepth),
		options.WithLogger(logger),
	}, nil
}

// OutputFlags select how results are printed.
type OutputFlags struct {
	Format string `name:"format" short:"f" default:"json" enum:"json,dump" help:"Output format (${enum})"`
}
