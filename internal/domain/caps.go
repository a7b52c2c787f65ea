package domain

import "sort"

// FieldCaps is the set of aggregation kinds usable on one exposed field,
// plus the bucketing attributes consumers need to issue an equivalent
// aggregation. Attributes ride alongside the kind set; they are never part
// of it.
type FieldCaps struct {
	Kinds             []string `json:"aggs"`
	Interval          string   `json:"interval,omitempty"`
	TimeZone          string   `json:"time_zone,omitempty"`
	Delay             string   `json:"delay,omitempty"`
	HistogramInterval int64    `json:"histogram_interval,omitempty"`
}

// AddKind inserts a kind into the set, keeping it sorted and duplicate-free.
func (f *FieldCaps) AddKind(kind string) {
	for _, k := range f.Kinds {
		if k == kind {
			return
		}
	}
	f.Kinds = append(f.Kinds, kind)
	sort.Strings(f.Kinds)
}

// HasKind reports whether the field exposes the given aggregation kind.
func (f *FieldCaps) HasKind(kind string) bool {
	for _, k := range f.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// JobCaps is the capability view of one rollup job: which fields are
// queryable and with which aggregation kinds. Built once from a JobConfig
// and immutable afterwards.
type JobCaps struct {
	JobID        string                `json:"job_id"`
	IndexPattern string                `json:"index_pattern,omitempty"`
	RollupIndex  string                `json:"rollup_index,omitempty"`
	Fields       map[string]*FieldCaps `json:"fields"`
}

// FieldNames returns the exposed field names in sorted order.
func (j *JobCaps) FieldNames() []string {
	names := make([]string, 0, len(j.Fields))
	for name := range j.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IndexCaps holds every job capability discovered in one concrete index,
// together with the per-field union of aggregation kinds across those jobs.
// The resolver returns nil, not an empty IndexCaps, for an index without
// rollup metadata.
type IndexCaps struct {
	Index  string              `json:"index"`
	Jobs   []*JobCaps          `json:"jobs"`
	Fields map[string][]string `json:"fields"`
}

// CapsResponse is the wrapper the CLI serializes: the requested pattern, how
// long discovery took, and the per-index capabilities. Request-scoped.
type CapsResponse struct {
	Pattern    string                `json:"pattern"`
	TookMillis int64                 `json:"took_millis"`
	IndexCount int                   `json:"index_count"`
	JobCount   int                   `json:"job_count"`
	Indices    map[string]*IndexCaps `json:"indices"`
}
