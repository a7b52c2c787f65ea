package rollup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cotijoy/elasticsearch/internal/domain"
)

func TestBuildCapsDateHistogram(t *testing.T) {
	job := &domain.JobConfig{
		ID: "job1",
		Groups: &domain.GroupConfig{
			DateHistogram: &domain.DateHistogramGroup{
				Field:    "timestamp",
				Interval: "1h",
				TimeZone: "UTC",
				Delay:    "5m",
			},
		},
	}

	caps := BuildCaps(job)
	require.Contains(t, caps.Fields, "timestamp")

	fc := caps.Fields["timestamp"]
	assert.Equal(t, []string{domain.AggDateHistogram}, fc.Kinds)
	assert.Equal(t, "1h", fc.Interval)
	assert.Equal(t, "UTC", fc.TimeZone)
	assert.Equal(t, "5m", fc.Delay)
}

func TestBuildCapsTermsAndHistogram(t *testing.T) {
	job := &domain.JobConfig{
		ID: "job1",
		Groups: &domain.GroupConfig{
			Terms:     &domain.TermsGroup{Fields: []string{"category", "region"}},
			Histogram: &domain.HistogramGroup{Fields: []string{"latency"}, Interval: 50},
		},
	}

	caps := BuildCaps(job)
	require.Len(t, caps.Fields, 3)
	assert.Equal(t, []string{domain.AggTerms}, caps.Fields["category"].Kinds)
	assert.Equal(t, []string{domain.AggTerms}, caps.Fields["region"].Kinds)
	assert.Equal(t, []string{domain.AggHistogram}, caps.Fields["latency"].Kinds)
	assert.Equal(t, int64(50), caps.Fields["latency"].HistogramInterval)
}

func TestBuildCapsMetricsExposeExactlyConfiguredKinds(t *testing.T) {
	job := &domain.JobConfig{
		ID: "job1",
		Metrics: []domain.MetricConfig{
			{Field: "price", Metrics: []string{"min", "max"}},
			{Field: "quantity", Metrics: []string{"sum", "avg", "value_count"}},
		},
	}

	caps := BuildCaps(job)
	assert.Equal(t, []string{"max", "min"}, caps.Fields["price"].Kinds)
	assert.Equal(t, []string{"avg", "sum", "value_count"}, caps.Fields["quantity"].Kinds)
}

// A field that is both a grouping dimension and a metric accumulates the
// union of both capability sets.
func TestBuildCapsGroupAndMetricUnion(t *testing.T) {
	job := &domain.JobConfig{
		ID: "job1",
		Groups: &domain.GroupConfig{
			Histogram: &domain.HistogramGroup{Fields: []string{"latency"}, Interval: 10},
		},
		Metrics: []domain.MetricConfig{
			{Field: "latency", Metrics: []string{"max", "avg"}},
		},
	}

	caps := BuildCaps(job)
	require.Len(t, caps.Fields, 1)
	assert.Equal(t, []string{"avg", domain.AggHistogram, "max"}, caps.Fields["latency"].Kinds)
}

func TestBuildCapsDegenerateJob(t *testing.T) {
	caps := BuildCaps(&domain.JobConfig{ID: "empty"})
	assert.Equal(t, "empty", caps.JobID)
	assert.Empty(t, caps.Fields)
}

// One terms dimension plus one two-kind metric on separate fields.
func TestBuildCapsTermsAndMetric(t *testing.T) {
	job := &domain.JobConfig{
		ID: "j1",
		Groups: &domain.GroupConfig{
			Terms: &domain.TermsGroup{Fields: []string{"category"}},
		},
		Metrics: []domain.MetricConfig{
			{Field: "price", Metrics: []string{"min", "max"}},
		},
	}

	caps := BuildCaps(job)
	require.Len(t, caps.Fields, 2)
	assert.Equal(t, []string{"max", "min"}, caps.Fields["price"].Kinds)
	assert.Equal(t, []string{domain.AggTerms}, caps.Fields["category"].Kinds)
}

func TestBuildCapsDoesNotMutateInput(t *testing.T) {
	job := &domain.JobConfig{
		ID:      "job1",
		Metrics: []domain.MetricConfig{{Field: "price", Metrics: []string{"min"}}},
	}

	first := BuildCaps(job)
	second := BuildCaps(job)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"min"}, job.Metrics[0].Metrics)
}
