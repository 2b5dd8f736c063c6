package main

import (
	"io"

	"github.com/davecgh/go-spew/spew"
	jsoniter "github.com/json-iterator/go"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func write(w io.Writer, format string, v any) error {
	if format == "dump" {
		dumper.Fdump(w, v)
		return nil
	}

	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = w.Write(append(data, '\n'))

	return err
}
