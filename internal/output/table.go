package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/cotijoy/elasticsearch/internal/domain"
)

// RenderCapsTable prints the per-field capability table for every index in
// the response, one section per index, jobs in their stored order.
func RenderCapsTable(w io.Writer, resp *domain.CapsResponse) error {
	if resp.IndexCount == 0 {
		fmt.Fprintln(w, "No rollup capabilities found")
		return nil
	}

	indexNames := make([]string, 0, len(resp.Indices))
	for name := range resp.Indices {
		indexNames = append(indexNames, name)
	}
	sort.Strings(indexNames)

	for _, name := range indexNames {
		ic := resp.Indices[name]
		fmt.Fprintln(w, Styles.Index.Render(name))

		table := tablewriter.NewTable(w)
		table.Header("JOB", "FIELD", "AGGS", "ATTRIBUTES")
		for _, job := range ic.Jobs {
			for _, field := range job.FieldNames() {
				fc := job.Fields[field]
				row := []string{job.JobID, field, strings.Join(fc.Kinds, ","), fieldAttrs(fc)}
				if err := table.Append(row); err != nil {
					return err
				}
			}
		}
		if err := table.Render(); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%d index(es), %d job(s), took %dms\n",
		resp.IndexCount, resp.JobCount, resp.TookMillis)
	return nil
}

// RenderJobsTable prints raw job descriptors, one row per job.
func RenderJobsTable(w io.Writer, rows []JobEntry) error {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No rollup jobs found")
		return nil
	}

	table := tablewriter.NewTable(w)
	table.Header("INDEX", "JOB", "SOURCE PATTERN", "ROLLUP INDEX", "GROUPS", "METRICS")
	for _, row := range rows {
		job := row.Job
		cells := []string{row.Index, job.ID, job.IndexPattern, job.RollupIndex,
			describeGroups(job.Groups), describeMetrics(job.Metrics)}
		if err := table.Append(cells); err != nil {
			return err
		}
	}
	return table.Render()
}

func fieldAttrs(fc *domain.FieldCaps) string {
	var attrs []string
	if fc.Interval != "" {
		attrs = append(attrs, "interval="+fc.Interval)
	}
	if fc.TimeZone != "" {
		attrs = append(attrs, "time_zone="+fc.TimeZone)
	}
	if fc.Delay != "" {
		attrs = append(attrs, "delay="+fc.Delay)
	}
	if fc.HistogramInterval != 0 {
		attrs = append(attrs, fmt.Sprintf("histogram_interval=%d", fc.HistogramInterval))
	}
	return strings.Join(attrs, " ")
}

func describeGroups(g *domain.GroupConfig) string {
	if g == nil {
		return ""
	}
	var parts []string
	if g.DateHistogram != nil {
		parts = append(parts, fmt.Sprintf("date_histogram(%s)", g.DateHistogram.Field))
	}
	if g.Terms != nil && len(g.Terms.Fields) > 0 {
		parts = append(parts, fmt.Sprintf("terms(%s)", strings.Join(g.Terms.Fields, ",")))
	}
	if g.Histogram != nil && len(g.Histogram.Fields) > 0 {
		parts = append(parts, fmt.Sprintf("histogram(%s)", strings.Join(g.Histogram.Fields, ",")))
	}
	return strings.Join(parts, " ")
}

func describeMetrics(metrics []domain.MetricConfig) string {
	var parts []string
	for _, m := range metrics {
		parts = append(parts, fmt.Sprintf("%s{%s}", m.Field, strings.Join(m.Metrics, ",")))
	}
	return strings.Join(parts, " ")
}
