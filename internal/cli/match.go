package cli

import (
	"fmt"

	"github.com/cotijoy/elasticsearch/internal/output"
	"github.com/cotijoy/elasticsearch/internal/pattern"
)

// MatchCmd shows which index names a pattern selects
type MatchCmd struct {
	Pattern  string `arg:"" help:"Index pattern: exact name, glob with '*', or '_all'"`
	Snapshot string `short:"s" help:"Cluster metadata snapshot file (JSON)"`
}

// Run executes the match command
func (c *MatchCmd) Run(globals *Globals) error {
	snap, cliErr := loadSnapshot(globals, c.Snapshot)
	if cliErr != nil {
		return c.outputError(globals, cliErr.Code, cliErr.Message)
	}

	matched := pattern.Filter(c.Pattern, snap.Names())

	if globals.Format == "ndjson" {
		w := output.NewNDJSONWriter(globals.Stdout)
		for _, name := range matched {
			if err := w.WriteMatch(c.Pattern, name); err != nil {
				return err
			}
		}
		return nil
	}

	if len(matched) == 0 {
		fmt.Fprintln(globals.Stdout, "No indices match")
		return nil
	}
	for _, name := range matched {
		fmt.Fprintln(globals.Stdout, name)
	}
	if !globals.Quiet {
		fmt.Fprintf(globals.Stdout, "\n%d of %d index name(s) matched\n", len(matched), len(snap))
	}
	return nil
}

func (c *MatchCmd) outputError(globals *Globals, code, message string) error {
	return outputErrorCommon(globals, code, message)
}
