// Command remap maps flat rows into the example types of this module.
//
//	remap recibos [--input rows.json] [--ignore-case] [--format json|dump]
//	remap store [--db shop.sqlite]
//	remap check schema.yaml [--catalog store]
//	remap export [--catalog warehouse]
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
)

const version = "0.1.0"

// Globals are the flags shared by every command.
type Globals struct {
	LogLevel string `name:"log-level" env:"REMAP_LOG_LEVEL" default:"warn" enum:"debug,info,warn,error" help:"Log level (${enum})"`
	NoColor  bool   `name:"no-color"  env:"NO_COLOR"                                                   help:"Disable colored logs"`

	out    io.Writer
	logger zerolog.Logger
}

// CLI defines the command-line interface.
type CLI struct {
	Globals

	Recibos RecibosCmd  `cmd:"" help:"Map tax receipt rows (JSON) into receipts"`
	Store   StoreCmd    `cmd:"" help:"Load orders from a shop database"`
	Check   CheckCmd    `cmd:"" help:"Validate a YAML schema file against an example catalog"`
	Export  ExportCmd   `cmd:"" help:"Print the schemas of an example catalog as YAML"`
	Version VersionFlag `name:"version" help:"Print version information"`
}

// VersionFlag prints the version and exits.
type VersionFlag bool

func (v VersionFlag) BeforeApply(app *kong.Kong) error {
	_, _ = io.WriteString(app.Stdout, "remap "+version+"\n")
	app.Exit(0)

	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run parses args and executes the selected command.
func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI

	parser, err := kong.New(&cli,
		kong.Name("remap"),
		kong.Description("Map flat records into typed object graphs"),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		return err
	}

	cli.out = stdout
	cli.logger = newLogger(stderr, cli.LogLevel, cli.NoColor)

	if err := ctx.Run(&cli.Globals); err != nil {
		cli.logger.Error().Err(err).Str("command", ctx.Command()).Msg("command failed")
		return err
	}

	return nil
}
