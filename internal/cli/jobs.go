package cli

import (
	"sort"

	"github.com/cotijoy/elasticsearch/internal/output"
	"github.com/cotijoy/elasticsearch/internal/pattern"
	"github.com/cotijoy/elasticsearch/internal/rollup"
)

// JobsCmd lists raw rollup job descriptors embedded in index metadata
type JobsCmd struct {
	Pattern  string `arg:"" optional:"" help:"Index pattern: exact name, glob with '*', or '_all'"`
	Snapshot string `short:"s" help:"Cluster metadata snapshot file (JSON)"`
}

// Run executes the jobs command
func (c *JobsCmd) Run(globals *Globals) error {
	snap, cliErr := loadSnapshot(globals, c.Snapshot)
	if cliErr != nil {
		return c.outputError(globals, cliErr.Code, cliErr.Message)
	}
	indexPattern := resolvePattern(globals, c.Pattern)

	var rows []output.JobEntry
	for _, name := range pattern.Filter(indexPattern, snap.Names()) {
		jobs := rollup.ParseJobs(snap[name], globals.Logger)
		ids := make([]string, 0, len(jobs))
		for id := range jobs {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			rows = append(rows, output.JobEntry{
				Type:          "job",
				SchemaVersion: output.SchemaVersion,
				Index:         name,
				Job:           jobs[id],
			})
		}
	}

	if globals.Format == "ndjson" {
		w := output.NewNDJSONWriter(globals.Stdout)
		for _, row := range rows {
			if err := w.WriteJob(row.Index, row.Job); err != nil {
				return err
			}
		}
		return nil
	}

	maybeNoStyle(globals)
	return output.RenderJobsTable(globals.Stdout, rows)
}

func (c *JobsCmd) outputError(globals *Globals, code, message string) error {
	return outputErrorCommon(globals, code, message)
}
