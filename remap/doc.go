// Package remap turns flat records into typed object graphs following the
// schemas declared in a schema.Registry.
//
// Every record is mapped on its own:
//
//  1. columns are read from the record, qualified by the active prefix;
//  2. many-to-one relations are joined against a source when one is supplied
//     and both keys are declared, otherwise they are read from the same record
//     under their embedded prefix;
//  3. one-to-many relations collect the source records whose inverse key
//     equals the own key;
//  4. an instance where nothing was found collapses to nil.
//
// Relations read the own key from the columns filled in step 1, so a key
// property must be declared as a column too.
//
// Basic usage:
//
//	type Item struct {
//		ID   int    `remap:"column,name=id"`
//		Name string `remap:"column,name=name"`
//	}
//
//	if err := schema.RegisterTags[Item](); err != nil {
//		return err
//	}
//
//	items, err := remap.Remap[Item](rows, options.WithIgnoreCase(true))
package remap
