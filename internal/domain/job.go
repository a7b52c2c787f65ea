package domain

// Aggregation kinds a rollup job can expose on a field.
const (
	AggDateHistogram = "date_histogram"
	AggTerms         = "terms"
	AggHistogram     = "histogram"
)

// JobConfig is the configuration of a single rollup job as embedded in the
// target index's mapping metadata. JSON tags mirror the embedded wire shape so
// decoding a raw metadata entry is a plain typed round-trip.
type JobConfig struct {
	ID           string         `json:"id"`
	IndexPattern string         `json:"index_pattern"`
	RollupIndex  string         `json:"rollup_index"`
	Cron         string         `json:"cron,omitempty"`
	PageSize     int            `json:"page_size,omitempty"`
	Timeout      string         `json:"timeout,omitempty"`
	Groups       *GroupConfig   `json:"groups,omitempty"`
	Metrics      []MetricConfig `json:"metrics,omitempty"`
}

// GroupConfig describes the grouping dimensions a job summarizes by. Every
// dimension is optional; a job with no dimensions is degenerate but legal.
type GroupConfig struct {
	DateHistogram *DateHistogramGroup `json:"date_histogram,omitempty"`
	Terms         *TermsGroup         `json:"terms,omitempty"`
	Histogram     *HistogramGroup     `json:"histogram,omitempty"`
}

// DateHistogramGroup buckets documents on a date field at a fixed interval.
type DateHistogramGroup struct {
	Field    string `json:"field"`
	Interval string `json:"interval"`
	TimeZone string `json:"time_zone,omitempty"`
	Delay    string `json:"delay,omitempty"`
}

// TermsGroup buckets documents on the exact values of one or more fields.
type TermsGroup struct {
	Fields []string `json:"fields"`
}

// HistogramGroup buckets numeric fields at a fixed numeric interval.
type HistogramGroup struct {
	Fields   []string `json:"fields"`
	Interval int64    `json:"interval"`
}

// MetricConfig maps one source field to the numeric aggregations collected
// for it (min, max, sum, avg, value_count).
type MetricConfig struct {
	Field   string   `json:"field"`
	Metrics []string `json:"metrics"`
}

// Valid reports whether a decoded job entry satisfies the structural
// invariants: metric entries must name a field and at least one metric kind.
// Anything else is treated as a malformed entry and skipped by the parser.
func (j *JobConfig) Valid() bool {
	if j == nil {
		return false
	}
	for _, m := range j.Metrics {
		if m.Field == "" || len(m.Metrics) == 0 {
			return false
		}
	}
	return true
}
