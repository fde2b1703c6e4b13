// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the page-engine
// rendering pipeline: documents, metadata headers, shape classification
// results, body segments, and stage configuration.
package types

// Document is one addressable unit of page content: a metadata header
// authored as YAML front matter plus a free-form Markdown body. Documents
// are loaded fresh on every render and never mutated by the renderer.
type Document struct {
	// ID is the section identifier, unique per page section
	// (e.g. "technology", "performance").
	ID string `json:"id" yaml:"id"`

	// Meta is the parsed metadata header.
	Meta Metadata `json:"meta" yaml:"meta"`

	// Body is the free-form Markdown body, possibly empty.
	Body string `json:"body" yaml:"body"`
}

// Metadata is a document's parsed header. Fields holds the decoded values;
// Order preserves the header's original field order, which classification
// depends on.
type Metadata struct {
	Fields map[string]any `json:"fields" yaml:"fields"`
	Order  []string       `json:"order" yaml:"order"`
}

// Get returns the value for key, or nil if absent.
func (m Metadata) Get(key string) any {
	if m.Fields == nil {
		return nil
	}
	return m.Fields[key]
}

// String returns the value for key as a string, or "" when the field is
// absent or not a string.
func (m Metadata) String(key string) string {
	s, _ := m.Get(key).(string)
	return s
}

// Has reports whether key is present in the header.
func (m Metadata) Has(key string) bool {
	_, ok := m.Fields[key]
	return ok
}

// IsArray reports whether the value under key is an array.
func (m Metadata) IsArray(key string) bool {
	_, ok := m.Get(key).([]any)
	return ok
}

// IsObject reports whether the value under key is a nested mapping
// (and not an array).
func (m Metadata) IsObject(key string) bool {
	_, ok := m.Get(key).(map[string]any)
	return ok
}
