package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/cotijoy/elasticsearch/internal/cli"
	"github.com/cotijoy/elasticsearch/internal/config"
)

const quickStart = `rollcaps - rollup capability discovery over cluster metadata snapshots

START HERE (this is the command you want):
  rollcaps caps "logs-*" --snapshot cluster-state.json

Flags:
  -s    Snapshot file: a JSON dump of cluster index metadata
  -f    Output format: ndjson (machines) or text (humans)

Other useful commands:
  rollcaps jobs _all -s state.json          List raw rollup job descriptors
  rollcaps match "metrics-*" -s state.json  Test a pattern against index names
`

func main() {
	// Show quick start if no args provided
	if len(os.Args) == 1 {
		fmt.Print(quickStart)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.Default()
	}

	var c cli.CLI

	// Apply config defaults before parsing; CLI flags override them.
	vars := kong.Vars{
		"config_format": cfg.Format,
	}

	ctx := kong.Parse(&c,
		kong.Name("rollcaps"),
		kong.Description("Discover which fields and aggregations are rollup-queryable for an index pattern"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		vars,
	)

	globals := cli.NewGlobalsWithConfig(&c, cfg)
	if err := ctx.Run(globals); err != nil {
		os.Exit(1)
	}
}
