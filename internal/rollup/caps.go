package rollup

import (
	"github.com/cotijoy/elasticsearch/internal/domain"
)

// BuildCaps derives the capability view of one rollup job: every field the
// job exposes, mapped to the aggregation kinds usable on it.
//
// Grouping dimensions expose their bucketing kind (with interval/time-zone
// attributes carried alongside); metric fields expose exactly their
// configured metric kinds. A field serving as both a dimension and a metric
// accumulates the union. This never fails: a structurally parsed job always
// yields a capability, possibly with no fields at all.
func BuildCaps(job *domain.JobConfig) *domain.JobCaps {
	caps := &domain.JobCaps{
		JobID:        job.ID,
		IndexPattern: job.IndexPattern,
		RollupIndex:  job.RollupIndex,
		Fields:       map[string]*domain.FieldCaps{},
	}

	field := func(name string) *domain.FieldCaps {
		fc, ok := caps.Fields[name]
		if !ok {
			fc = &domain.FieldCaps{}
			caps.Fields[name] = fc
		}
		return fc
	}

	if g := job.Groups; g != nil {
		if dh := g.DateHistogram; dh != nil && dh.Field != "" {
			fc := field(dh.Field)
			fc.AddKind(domain.AggDateHistogram)
			fc.Interval = dh.Interval
			fc.TimeZone = dh.TimeZone
			fc.Delay = dh.Delay
		}
		if t := g.Terms; t != nil {
			for _, name := range t.Fields {
				if name == "" {
					continue
				}
				field(name).AddKind(domain.AggTerms)
			}
		}
		if h := g.Histogram; h != nil {
			for _, name := range h.Fields {
				if name == "" {
					continue
				}
				fc := field(name)
				fc.AddKind(domain.AggHistogram)
				fc.HistogramInterval = h.Interval
			}
		}
	}

	for _, m := range job.Metrics {
		fc := field(m.Field)
		for _, kind := range m.Metrics {
			fc.AddKind(kind)
		}
	}

	return caps
}
