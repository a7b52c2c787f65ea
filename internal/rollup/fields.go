// Package rollup implements rollup capability discovery: extracting job
// descriptors embedded in index mapping metadata and deriving which fields
// and aggregation kinds are queryable against each rollup index.
package rollup

// Reserved tokens shared with the collaborator that writes mapping metadata
// when a rollup job is created. This package only ever reads them.
const (
	// MetaField is the custom-metadata block inside a mapping source.
	MetaField = "_meta"
	// RollupMeta is the key under MetaField holding the job-id -> job-config map.
	RollupMeta = "_rollup"
	// TypeName is the mapping type rollup metadata usually nests under.
	TypeName = "_doc"
)
