// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
)

// Slugify derives a URL-safe anchor identifier from heading text:
// lower-cased, runs of non-alphanumeric characters collapsed to single
// hyphens, leading and trailing hyphens trimmed. The mapping is
// deterministic so deep links stay stable across renders.
func Slugify(text string) string {
	var b strings.Builder
	pending := false

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}

	return b.String()
}

// slugIDs implements parser.IDs so goldmark heading anchors use Slugify
// instead of its built-in scheme. Duplicate headings get a numeric
// suffix; the counter resets per document.
type slugIDs struct {
	used map[string]bool
}

func newSlugIDs() parser.IDs {
	return &slugIDs{used: map[string]bool{}}
}

func (s *slugIDs) Generate(value []byte, _ ast.NodeKind) []byte {
	slug := Slugify(string(value))
	if slug == "" {
		slug = "heading"
	}

	base := slug
	for n := 1; s.used[slug]; n++ {
		slug = fmt.Sprintf("%s-%d", base, n)
	}
	s.used[slug] = true
	return []byte(slug)
}

func (s *slugIDs) Put(value []byte) {
	s.used[string(value)] = true
}
