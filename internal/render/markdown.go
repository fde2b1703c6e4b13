// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// newMarkdown builds the prose renderer: GitHub-flavored Markdown with
// tables and fenced code, heading anchors generated by Slugify, and raw
// HTML passed through (document bodies are authored content, not user
// input). Math expressions ($$...$$) are left verbatim for client-side
// typesetting; this layer never parses formulas.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
}

// prose converts a run of Markdown body text to HTML.
func (r *Renderer) prose(src string) (template.HTML, error) {
	ctx := parser.NewContext(parser.WithIDs(newSlugIDs()))

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf, parser.WithContext(ctx)); err != nil {
		return "", fmt.Errorf("rendering prose: %w", err)
	}
	return template.HTML(buf.String()), nil
}
