package metadata

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// Load reads a cluster metadata dump from disk and builds a Snapshot.
// See Parse for the accepted document shapes.
func Load(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	snap, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	return snap, nil
}

// Parse decodes a JSON cluster metadata dump. Three shapes are accepted,
// matching what the usual export paths produce:
//
//   - a full cluster-state document: {"metadata": {"indices": {...}}}
//   - a get-index response:          {"my-index": {"mappings": {...}}, ...}
//   - a bare index->mappings map:    {"my-index": {"properties": ...}, ...}
//
// Navigation is shape-tolerant; only input that is not a JSON object at all
// is an error. Indices whose mapping block is missing still appear in the
// snapshot (with no mappings), mirroring how a live cluster reports them.
func Parse(data []byte) (Snapshot, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("snapshot is not valid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("snapshot root must be a JSON object")
	}

	if indices := root.Get("metadata.indices"); indices.IsObject() {
		root = indices
	}

	snap := Snapshot{}
	root.ForEach(func(key, value gjson.Result) bool {
		if !value.IsObject() {
			return true
		}
		snap[key.String()] = parseIndex(key.String(), value)
		return true
	})
	return snap, nil
}

func parseIndex(name string, doc gjson.Result) *Index {
	idx := &Index{Name: name, Mappings: map[string]*Mapping{}}

	mappings := doc.Get("mappings")
	if !mappings.IsObject() {
		// Bare shape: the document itself is the single mapping source.
		if src := decodeObject(doc); src != nil {
			idx.Mappings["_doc"] = &Mapping{Type: "_doc", Source: src}
		}
		return idx
	}

	// Typed mappings ({"_doc": {...}}) vs. typeless ({"properties": ..., "_meta": ...}).
	typed := true
	mappings.ForEach(func(key, value gjson.Result) bool {
		if !value.IsObject() || key.String() == "properties" || key.String() == "_meta" {
			typed = false
			return false
		}
		return true
	})

	if typed && len(mappings.Map()) > 0 {
		mappings.ForEach(func(key, value gjson.Result) bool {
			if src := decodeObject(value); src != nil {
				idx.Mappings[key.String()] = &Mapping{Type: key.String(), Source: src}
			}
			return true
		})
		return idx
	}

	if src := decodeObject(mappings); src != nil {
		idx.Mappings["_doc"] = &Mapping{Type: "_doc", Source: src}
	}
	return idx
}

func decodeObject(r gjson.Result) map[string]any {
	var m map[string]any
	if err := json.Unmarshal([]byte(r.Raw), &m); err != nil {
		return nil
	}
	return m
}
