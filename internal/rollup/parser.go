package rollup

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/cotijoy/elasticsearch/internal/domain"
	"github.com/cotijoy/elasticsearch/internal/metadata"
)

// ParseJobs extracts every rollup job descriptor embedded in an index's
// mapping metadata, keyed by job id.
//
// The descriptors live at mappings -> <type> -> _meta -> _rollup -> <jobID>.
// Absence of the index, the mapping, the _meta block, or the _rollup key all
// yield an empty map, never an error. Decoding is best-effort with per-entry
// isolation: a malformed job entry is dropped without hiding its siblings.
// A _rollup value that is not a job map at all contributes no jobs.
func ParseJobs(idx *metadata.Index, logger *zap.Logger) map[string]*domain.JobConfig {
	if logger == nil {
		logger = zap.NewNop()
	}
	jobs := map[string]*domain.JobConfig{}
	if idx == nil {
		return jobs
	}

	for _, mapping := range idx.Mappings {
		if mapping == nil {
			continue
		}
		rollupMeta, ok := rollupBlock(mapping.Source)
		if !ok {
			continue
		}
		for id, raw := range rollupMeta {
			job, err := decodeJob(id, raw)
			if err != nil {
				logger.Debug("skipping malformed rollup job entry",
					zap.String("index", idx.Name),
					zap.String("job_id", id),
					zap.Error(err))
				continue
			}
			jobs[id] = job
		}
	}
	return jobs
}

// rollupBlock walks source -> _meta -> _rollup, also tolerating one extra
// nesting level under the mapping type name, which is how pre-typeless
// clusters stored the block.
func rollupBlock(source map[string]any) (map[string]any, bool) {
	if block, ok := metaRollup(source); ok {
		return block, true
	}
	for _, v := range source {
		inner, ok := v.(map[string]any)
		if !ok {
			continue
		}
		if block, ok := metaRollup(inner); ok {
			return block, true
		}
	}
	return nil, false
}

func metaRollup(source map[string]any) (map[string]any, bool) {
	meta, ok := source[MetaField].(map[string]any)
	if !ok {
		return nil, false
	}
	block, ok := meta[RollupMeta].(map[string]any)
	if !ok {
		return nil, false
	}
	return block, true
}

// decodeJob turns one raw _rollup entry into a typed JobConfig. The raw value
// must itself be an object; a typed round-trip through JSON gives the
// tolerant "missing field means zero value" semantics the embedded shape
// needs. Structurally invalid results (see JobConfig.Valid) are rejected so
// the parser can skip them.
func decodeJob(id string, raw any) (*domain.JobConfig, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, errNotAnObject
	}
	buf, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	var job domain.JobConfig
	if err := json.Unmarshal(buf, &job); err != nil {
		return nil, err
	}
	if !job.Valid() {
		return nil, errInvalidJob
	}
	// The map key is authoritative for the job id; the embedded field may be
	// stale or absent.
	job.ID = id
	return &job, nil
}
