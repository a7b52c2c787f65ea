package output

import (
	"encoding/json"
	"io"

	"github.com/cotijoy/elasticsearch/internal/domain"
)

// SchemaVersion is the current version of the NDJSON output schema.
// Increment on breaking changes so machine consumers can adapt.
const SchemaVersion = 1

// NDJSONWriter writes discovery results as NDJSON, one object per line.
type NDJSONWriter struct {
	encoder *json.Encoder
}

// NewNDJSONWriter creates a writer targeting w.
func NewNDJSONWriter(w io.Writer) *NDJSONWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &NDJSONWriter{encoder: enc}
}

// CapsEntry is one index's capabilities as emitted on the wire.
type CapsEntry struct {
	Type          string              `json:"type"` // Always "caps"
	SchemaVersion int                 `json:"schemaVersion"`
	Index         string              `json:"index"`
	Jobs          []*domain.JobCaps   `json:"jobs"`
	Fields        map[string][]string `json:"fields"`
}

// JobEntry is one raw job descriptor as emitted by the jobs command.
type JobEntry struct {
	Type          string            `json:"type"` // Always "job"
	SchemaVersion int               `json:"schemaVersion"`
	Index         string            `json:"index"`
	Job           *domain.JobConfig `json:"job"`
}

// SummaryOutput trails a caps run with counts and timing.
type SummaryOutput struct {
	Type          string `json:"type"` // Always "summary"
	SchemaVersion int    `json:"schemaVersion"`
	Pattern       string `json:"pattern"`
	TookMillis    int64  `json:"took_millis"`
	IndexCount    int    `json:"index_count"`
	JobCount      int    `json:"job_count"`
}

// ErrorOutput is the machine-readable failure shape.
type ErrorOutput struct {
	Type          string `json:"type"` // Always "error"
	SchemaVersion int    `json:"schemaVersion"`
	Code          string `json:"code"`
	Message       string `json:"message"`
	Hint          string `json:"hint,omitempty"`
}

// MatchOutput is one pattern-match decision from the match command.
type MatchOutput struct {
	Type          string `json:"type"` // Always "match"
	SchemaVersion int    `json:"schemaVersion"`
	Pattern       string `json:"pattern"`
	Index         string `json:"index"`
}

// WriteCaps outputs one index's capabilities.
func (w *NDJSONWriter) WriteCaps(ic *domain.IndexCaps) error {
	return w.encoder.Encode(&CapsEntry{
		Type:          "caps",
		SchemaVersion: SchemaVersion,
		Index:         ic.Index,
		Jobs:          ic.Jobs,
		Fields:        ic.Fields,
	})
}

// WriteJob outputs one raw job descriptor.
func (w *NDJSONWriter) WriteJob(index string, job *domain.JobConfig) error {
	return w.encoder.Encode(&JobEntry{
		Type:          "job",
		SchemaVersion: SchemaVersion,
		Index:         index,
		Job:           job,
	})
}

// WriteSummary outputs the trailing run summary.
func (w *NDJSONWriter) WriteSummary(resp *domain.CapsResponse) error {
	return w.encoder.Encode(&SummaryOutput{
		Type:          "summary",
		SchemaVersion: SchemaVersion,
		Pattern:       resp.Pattern,
		TookMillis:    resp.TookMillis,
		IndexCount:    resp.IndexCount,
		JobCount:      resp.JobCount,
	})
}

// WriteMatch outputs one matched index name.
func (w *NDJSONWriter) WriteMatch(pattern, index string) error {
	return w.encoder.Encode(&MatchOutput{
		Type:          "match",
		SchemaVersion: SchemaVersion,
		Pattern:       pattern,
		Index:         index,
	})
}

// WriteError outputs a structured failure.
func (w *NDJSONWriter) WriteError(code, message string, hint ...string) error {
	out := &ErrorOutput{
		Type:          "error",
		SchemaVersion: SchemaVersion,
		Code:          code,
		Message:       message,
	}
	if len(hint) > 0 {
		out.Hint = hint[0]
	}
	return w.encoder.Encode(out)
}

// WriteRaw outputs arbitrary JSON data.
func (w *NDJSONWriter) WriteRaw(v interface{}) error {
	return w.encoder.Encode(v)
}
