package main

import (
	"fmt"
	"os"

	"remapper/examples/recibos"
	"remapper/options"
	"remapper/record"
	"remapper/remap"
	"remapper/schema"
)

// RecibosCmd maps receipt rows read from a JSON file, or the bundled sample.
type RecibosCmd struct {
	Input string `name:"input" short:"i" type:"existingfile" help:"JSON array of flat receipt rows (default: bundled sample)"`

	MapFlags    `embed:""`
	OutputFlags `embed:""`
}

func (c *RecibosCmd) Run(g *Globals) error {
	reg := schema.NewRegistry(schema.WithLogger(g.logger))
	if err := recibos.Register(reg); err != nil {
		return err
	}

	rows, err := c.rows()
	if err != nil {
		return err
	}

	opts, err := c.options(g.logger)
	if err != nil {
		return err
	}

	out, err := remap.Remap[recibos.Recibo](rows, append(opts, options.WithRegistry(reg))...)
	if err != nil {
		return err
	}

	g.logger.Info().Int("rows", len(rows)).Msg("receipts mapped")

	return write(g.out, c.Format, out)
}

func (c *RecibosCmd) rows() ([]record.Record, error) {
	if c.Input == "" {
		return recibos.Sample()
	}

	data, err := os.ReadFile(c.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	return recibos.Decode(data)
}
