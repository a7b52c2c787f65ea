// Package metadata models the immutable cluster index-metadata snapshot the
// discovery core reads: index name -> mapping documents, each document a
// nested map of arbitrary values. Snapshots are built once per request and
// never mutated.
package metadata

import "sort"

// Mapping is one mapping document of an index: the type name it was stored
// under and its decoded source.
type Mapping struct {
	Type   string
	Source map[string]any
}

// Index is the metadata view of one concrete index. Mappings is keyed by
// mapping type name ("_doc" on current clusters, arbitrary on legacy ones).
type Index struct {
	Name     string
	Mappings map[string]*Mapping
}

// Snapshot is the full cluster view handed to the discovery service: every
// concrete index name mapped to its metadata.
type Snapshot map[string]*Index

// Names returns the index names in the snapshot, sorted.
func (s Snapshot) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewIndex builds an Index with a single mapping document, which is how
// every current cluster stores mappings. Mainly a convenience for callers
// assembling snapshots by hand.
func NewIndex(name, mappingType string, source map[string]any) *Index {
	return &Index{
		Name: name,
		Mappings: map[string]*Mapping{
			mappingType: {Type: mappingType, Source: source},
		},
	}
}
