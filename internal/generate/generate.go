// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate is the offline section generator. It runs the same
// shape classification the runtime renderer uses against every known
// document and emits one render routine per section: a thin delegation
// to the generic renderer for simple shapes, a specialized routine with
// the detected keys inlined for complex ones. It also writes a content
// editing guide describing every section's inferred shape.
package generate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/platx-ai/page-engine/internal/content"
	"github.com/platx-ai/page-engine/internal/shape"
	"github.com/platx-ai/page-engine/pkg/types"
)

// specializeThreshold: a section whose header stays within these bounds
// delegates to the generic renderer; beyond them a specialized routine
// is emitted.
const (
	maxDelegateObjectKeys = 2
	maxDelegateArrayKeys  = 1
)

// guideFile is the documentation report written to the docs directory.
const guideFile = "section-content-guide.md"

// Analysis is one section's classification snapshot.
type Analysis struct {
	SectionID      string
	Meta           types.Metadata
	Classification types.Classification
	Specialized    bool
}

// Summary holds counts from one generator run.
type Summary struct {
	Delegated   int
	Specialized int
	Failed      int
}

// Total returns the number of sections processed.
func (s Summary) Total() int {
	return s.Delegated + s.Specialized + s.Failed
}

// HasFailures reports whether any section failed analysis.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Generator runs the batch job. It is synchronous and sequential; the
// generator is a build-time tool with no interactivity.
type Generator struct {
	Source      *content.DirSource
	SectionsDir string
	DocsDir     string
}

// Run analyzes every section under the content root and writes the
// render routines and the documentation report. Unchanged documents
// yield byte-identical output on every run. A malformed document is
// reported and skipped; only unrecoverable I/O failures abort the run.
func (g *Generator) Run(ctx context.Context, w io.Writer) (Summary, error) {
	ids, err := g.Source.Sections()
	if err != nil {
		return Summary{}, err
	}

	if err := os.MkdirAll(g.SectionsDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("creating sections directory: %w", err)
	}
	if err := os.MkdirAll(g.DocsDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("creating docs directory: %w", err)
	}

	var (
		summary  Summary
		analyses []Analysis
	)

	for _, id := range ids {
		doc, err := g.Source.Load(ctx, id)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", id, err)
			summary.Failed++
			continue
		}

		a := Analysis{
			SectionID:      id,
			Meta:           doc.Meta,
			Classification: shape.Classify(doc.Meta),
		}
		a.Specialized = len(a.Classification.ObjectKeys) > maxDelegateObjectKeys ||
			len(a.Classification.ArrayKeys) > maxDelegateArrayKeys

		code, err := emitRoutine(a)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", id, err)
			summary.Failed++
			continue
		}

		outPath := filepath.Join(g.SectionsDir, routineFileName(id))
		if err := os.WriteFile(outPath, []byte(code), 0o644); err != nil {
			return summary, fmt.Errorf("writing %s: %w", outPath, err)
		}

		kind := "delegating"
		if a.Specialized {
			kind = "specialized"
			summary.Specialized++
		} else {
			summary.Delegated++
		}
		fmt.Fprintf(w, "generated %s (%s: %d objects, %d arrays)\n",
			routineFileName(id), kind,
			len(a.Classification.ObjectKeys), len(a.Classification.ArrayKeys))

		analyses = append(analyses, a)
	}

	guide := emitGuide(analyses)
	guidePath := filepath.Join(g.DocsDir, guideFile)
	if err := os.WriteFile(guidePath, []byte(guide), 0o644); err != nil {
		return summary, fmt.Errorf("writing %s: %w", guidePath, err)
	}
	fmt.Fprintf(w, "wrote %s\n", guidePath)

	return summary, nil
}

// routineFileName maps a section ID to its render routine file,
// e.g. "test-section" -> "TestSectionSection.go".
func routineFileName(sectionID string) string {
	return PascalCase(sectionID) + "Section.go"
}

// PascalCase converts a hyphenated section ID to PascalCase.
func PascalCase(sectionID string) string {
	parts := strings.Split(sectionID, "-")
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// TitleCase converts a hyphenated section ID to a display title,
// e.g. "test-section" -> "Test Section".
func TitleCase(sectionID string) string {
	parts := strings.Split(sectionID, "-")
	var out []string
	for _, part := range parts {
		if part == "" {
			continue
		}
		out = append(out, strings.ToUpper(part[:1])+part[1:])
	}
	return strings.Join(out, " ")
}
