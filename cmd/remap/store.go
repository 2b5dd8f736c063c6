package main

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"remapper/examples/store"
	"remapper/schema"
)

// StoreCmd loads every order of a shop database with its relations.
type StoreCmd struct {
	DB string `name:"db" type:"existingfile" help:"SQLite shop database (default: in-memory sample)"`

	MapFlags    `embed:""`
	OutputFlags `embed:""`
}

func (c *StoreCmd) Run(g *Globals) error {
	db, err := c.open()
	if err != nil {
		return err
	}
	defer db.Close()

	reg := schema.NewRegistry(schema.WithLogger(g.logger))
	if err := store.Register(reg); err != nil {
		return err
	}

	opts, err := c.options(g.logger)
	if err != nil {
		return err
	}

	orders, err := store.Load(context.Background(), db, reg, opts...)
	if err != nil {
		return err
	}

	g.logger.Info().Int("orders", len(orders)).Msg("orders loaded")

	return write(g.out, c.Format, orders)
}

func (c *StoreCmd) open() (*sql.DB, error) {
	if c.DB != "" {
		db, err := sql.Open("sqlite", "file:"+c.DB+"?mode=ro")
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", c.DB, err)
		}

		return db, nil
	}

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec(store.SeedSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to seed sample database: %w", err)
	}

	return db, nil
}
