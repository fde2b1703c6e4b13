// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package content loads section documents and parses their front-matter
// headers. A document is a text file opening with a YAML header between
// "---" delimiter lines, followed by a free-form Markdown body.
package content

import (
	"errors"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/platx-ai/page-engine/pkg/types"
)

// ErrNotFound reports that no document exists for the requested section.
var ErrNotFound = errors.New("section document not found")

// ErrMalformedHeader reports that a document's front-matter header could
// not be parsed. Presentation treats it the same as a load failure: no
// partial rendering of a malformed header is attempted.
var ErrMalformedHeader = errors.New("malformed front-matter header")

const delimiter = "---"

// SplitFrontMatter splits a raw document into its header text and body.
// The document must open with a "---" line; the header runs to the next
// "---" line. The body keeps everything after the closing delimiter with
// one leading newline trimmed.
func SplitFrontMatter(raw string) (header, body string, err error) {
	// Normalize line endings before scanning for delimiters.
	raw = strings.ReplaceAll(raw, "\r\n", "\n")

	rest, ok := strings.CutPrefix(raw, delimiter+"\n")
	if !ok {
		if strings.TrimRight(raw, "\n") == delimiter {
			return "", "", fmt.Errorf("%w: header not closed", ErrMalformedHeader)
		}
		return "", "", fmt.Errorf("%w: missing opening delimiter", ErrMalformedHeader)
	}

	idx := strings.Index(rest, "\n"+delimiter+"\n")
	if idx < 0 {
		// A header may also be closed by a trailing "---" with no body.
		if trimmed, ok := strings.CutSuffix(rest, "\n"+delimiter); ok {
			return trimmed, "", nil
		}
		return "", "", fmt.Errorf("%w: header not closed", ErrMalformedHeader)
	}

	header = rest[:idx]
	body = rest[idx+len("\n"+delimiter+"\n"):]
	return header, body, nil
}

// ParseMetadata decodes a front-matter header into a Metadata value,
// preserving the header's original field order. The header must be a
// YAML mapping; anything else is malformed.
func ParseMetadata(header string) (types.Metadata, error) {
	meta := types.Metadata{Fields: map[string]any{}}

	if strings.TrimSpace(header) == "" {
		return meta, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(header), &doc); err != nil {
		return types.Metadata{}, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}
	if len(doc.Content) == 0 {
		return meta, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return types.Metadata{}, fmt.Errorf("%w: header is not a mapping", ErrMalformedHeader)
	}

	// Mapping nodes store key/value pairs as adjacent children.
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]

		var key string
		if err := keyNode.Decode(&key); err != nil {
			return types.Metadata{}, fmt.Errorf("%w: field name at line %d: %v", ErrMalformedHeader, keyNode.Line, err)
		}

		var val any
		if err := valNode.Decode(&val); err != nil {
			return types.Metadata{}, fmt.Errorf("%w: field %q: %v", ErrMalformedHeader, key, err)
		}

		if _, dup := meta.Fields[key]; !dup {
			meta.Order = append(meta.Order, key)
		}
		meta.Fields[key] = val
	}

	return meta, nil
}

// Parse splits a raw document and decodes its header.
func Parse(sectionID, raw string) (*types.Document, error) {
	header, body, err := SplitFrontMatter(raw)
	if err != nil {
		return nil, fmt.Errorf("section %s: %w", sectionID, err)
	}

	meta, err := ParseMetadata(header)
	if err != nil {
		return nil, fmt.Errorf("section %s: %w", sectionID, err)
	}

	return &types.Document{ID: sectionID, Meta: meta, Body: body}, nil
}
