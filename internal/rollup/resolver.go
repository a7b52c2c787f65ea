package rollup

import (
	"sort"

	"go.uber.org/zap"

	"github.com/cotijoy/elasticsearch/internal/domain"
	"github.com/cotijoy/elasticsearch/internal/metadata"
)

// FindIndexCaps resolves the rollup capabilities embedded in one concrete
// index. It returns nil when the index holds no parseable rollup metadata:
// "no capabilities" is represented by absence, never by an IndexCaps with an
// empty job list. A non-nil result always carries at least one job.
func FindIndexCaps(name string, idx *metadata.Index, logger *zap.Logger) *domain.IndexCaps {
	jobs := ParseJobs(idx, logger)
	if len(jobs) == 0 {
		return nil
	}

	ids := make([]string, 0, len(jobs))
	for id := range jobs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	caps := &domain.IndexCaps{
		Index:  name,
		Jobs:   make([]*domain.JobCaps, 0, len(ids)),
		Fields: map[string][]string{},
	}
	for _, id := range ids {
		jobCaps := BuildCaps(jobs[id])
		caps.Jobs = append(caps.Jobs, jobCaps)
		mergeFields(caps.Fields, jobCaps)
	}
	return caps
}

// mergeFields folds one job's kind sets into the index-level per-field
// union, kept sorted for deterministic output.
func mergeFields(merged map[string][]string, jobCaps *domain.JobCaps) {
	for name, fc := range jobCaps.Fields {
		for _, kind := range fc.Kinds {
			if !containsString(merged[name], kind) {
				merged[name] = append(merged[name], kind)
				sort.Strings(merged[name])
			}
		}
	}
}

func containsString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
