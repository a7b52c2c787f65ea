package cli

import (
	"context"
	"sort"

	"github.com/cotijoy/elasticsearch/internal/domain"
	"github.com/cotijoy/elasticsearch/internal/output"
	"github.com/cotijoy/elasticsearch/internal/rollup"
)

// CapsCmd discovers rollup capabilities for an index pattern
type CapsCmd struct {
	Pattern     string `arg:"" optional:"" help:"Index pattern: exact name, glob with '*', or '_all'"`
	Snapshot    string `short:"s" help:"Cluster metadata snapshot file (JSON)"`
	Parallelism int    `short:"p" help:"Concurrent index resolutions (default from config)"`
}

// Run executes the caps command
func (c *CapsCmd) Run(globals *Globals) error {
	snap, cliErr := loadSnapshot(globals, c.Snapshot)
	if cliErr != nil {
		return c.outputError(globals, cliErr.Code, cliErr.Message)
	}
	indexPattern := resolvePattern(globals, c.Pattern)

	parallelism := c.Parallelism
	if parallelism == 0 && globals.Config != nil {
		parallelism = globals.Config.Defaults.Parallelism
	}

	svc := rollup.NewService(
		rollup.WithLogger(globals.Logger),
		rollup.WithParallelism(parallelism),
	)
	resp, err := svc.GetCapsResponse(context.Background(), indexPattern, snap)
	if err != nil {
		return c.outputError(globals, "CAPS_FAILED", err.Error())
	}

	if globals.Format == "ndjson" {
		return c.outputNDJSON(globals, resp)
	}
	return c.outputText(globals, resp)
}

func (c *CapsCmd) outputNDJSON(globals *Globals, resp *domain.CapsResponse) error {
	w := output.NewNDJSONWriter(globals.Stdout)

	names := make([]string, 0, len(resp.Indices))
	for name := range resp.Indices {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := w.WriteCaps(resp.Indices[name]); err != nil {
			return err
		}
	}
	if globals.Quiet {
		return nil
	}
	return w.WriteSummary(resp)
}

func (c *CapsCmd) outputText(globals *Globals, resp *domain.CapsResponse) error {
	maybeNoStyle(globals)
	return output.RenderCapsTable(globals.Stdout, resp)
}

func (c *CapsCmd) outputError(globals *Globals, code, message string) error {
	return outputErrorCommon(globals, code, message)
}
