// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/platx-ai/page-engine/pkg/types"
)

// routineTmpl renders one generated section routine. Output carries the
// standard generated-code marker and no timestamps, so an unchanged
// document regenerates byte-identically.
var routineTmpl = template.Must(template.New("routine").Parse(`// Code generated by page-engine generate; DO NOT EDIT.

package sections

import (
	"context"
	"html/template"

	"github.com/platx-ai/page-engine/internal/content"
	"github.com/platx-ai/page-engine/internal/render"
)

// {{.Func}} renders the "{{.SectionID}}" section{{if .Specialized}} with its
// detected shape inlined ({{.ShapeNote}}){{else}} through the generic renderer{{end}}.
func {{.Func}}(ctx context.Context, src content.Source, r *render.Renderer) (template.HTML, error) {
{{- if .Specialized}}
	doc, err := src.Load(ctx, "{{.SectionID}}")
	if err != nil {
		return "", err
	}
	return r.{{.Call}}
{{- else}}
	return r.SectionByID(ctx, src, "{{.SectionID}}")
{{- end}}
}
`))

type routineData struct {
	Func        string
	SectionID   string
	Specialized bool
	ShapeNote   string
	Call        string
}

// emitRoutine produces the Go source for one section's render routine.
// Specialized routines mirror the generic renderer's feature, metric,
// and object rules with the section's keys baked in.
func emitRoutine(a Analysis) (string, error) {
	data := routineData{
		Func:        PascalCase(a.SectionID) + "Section",
		SectionID:   a.SectionID,
		Specialized: a.Specialized,
	}

	if a.Specialized {
		c := a.Classification
		switch {
		case c.HasFeatures:
			data.ShapeNote = "feature list"
			data.Call = "FeatureSection(doc)"
		case c.HasMetrics:
			data.ShapeNote = "metric list"
			data.Call = "MetricSection(doc)"
		case len(c.ObjectKeys) > 0:
			data.ShapeNote = "objects: " + strings.Join(c.ObjectKeys, ", ")
			data.Call = fmt.Sprintf("ObjectSection(doc, []string{%s})", quoteList(c.ObjectKeys))
		default:
			// Complex only by array count; nothing to inline.
			data.Specialized = false
		}
	}

	var b strings.Builder
	if err := routineTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("emitting routine for %s: %w", a.SectionID, err)
	}
	return b.String(), nil
}

// DelegatingRoutine returns the source of a thin delegating routine.
// The scaffolding command uses it for newly created sections, which
// start with the default feature-list shape.
func DelegatingRoutine(sectionID string) (string, error) {
	return emitRoutine(Analysis{SectionID: sectionID})
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = fmt.Sprintf("%q", item)
	}
	return strings.Join(quoted, ", ")
}

// emitGuide produces the content editing guide enumerating every
// section's inferred shape.
func emitGuide(analyses []Analysis) string {
	var b strings.Builder

	b.WriteString(`# Content Editing Guide

All page content lives in Markdown files under the content root, one
document per section at ` + "`<section>/index.md`" + `. This guide is
regenerated by ` + "`page-engine generate`" + `; do not edit it by hand.

## Base fields

Every section supports:
- ` + "`title`" + `: small-caps label shown above the headline
- ` + "`heading`" + `: the main headline
- ` + "`description`" + `: optional lead paragraph
- ` + "`background`" + `: optional background image path

## Content shapes

### Features
` + "```yaml" + `
features:
  - title: "Feature 1"
    description: "What it does"
` + "```" + `

### Metrics
` + "```yaml" + `
metrics:
  - title: "Metric name"
    value: "Pre-formatted value"
    description: "What it measures"
` + "```" + `

### Custom objects
` + "```yaml" + `
customSection:
  title: "Custom title"
  requirements:  # or steps, pillars, components, capabilities
    - "Item 1"
    - "Item 2"
` + "```" + `

## Section analysis

`)

	for _, a := range analyses {
		c := a.Classification
		fmt.Fprintf(&b, "### %s\n\n", strings.ToUpper(a.SectionID))
		fmt.Fprintf(&b, "**Document**: `%s/index.md`\n\n", a.SectionID)
		fmt.Fprintf(&b, "**Detected structure**:\n")
		if a.Meta.String("background") != "" {
			b.WriteString("- background image\n")
		}
		if c.HasFeatures {
			fmt.Fprintf(&b, "- features (%d entries)\n", arrayLen(a.Meta, "features"))
		}
		if c.HasMetrics {
			fmt.Fprintf(&b, "- metrics (%d entries)\n", arrayLen(a.Meta, "metrics"))
		}
		if len(c.ObjectKeys) > 0 {
			fmt.Fprintf(&b, "- objects: %s\n", strings.Join(c.ObjectKeys, ", "))
		}
		if len(c.ArrayKeys) > 0 {
			fmt.Fprintf(&b, "- arrays: %s\n", strings.Join(c.ArrayKeys, ", "))
		}
		routine := "generic renderer (delegating)"
		if a.Specialized {
			routine = "specialized routine"
		}
		fmt.Fprintf(&b, "- render routine: %s\n", routine)

		b.WriteString("\n**Header skeleton**:\n```yaml\n---\n")
		writeSkeleton(&b, a.Meta)
		b.WriteString("---\n```\n\n")
	}

	return b.String()
}

// writeSkeleton writes an example header: reserved fields with their
// current values, remaining fields as placeholders, all in source order.
func writeSkeleton(b *strings.Builder, meta types.Metadata) {
	for _, key := range meta.Order {
		if types.ReservedFields[key] {
			fmt.Fprintf(b, "%s: %q\n", key, meta.String(key))
			continue
		}
		fmt.Fprintf(b, "%s: # fill in per the detected structure\n", key)
	}
}

func arrayLen(meta types.Metadata, key string) int {
	items, _ := meta.Get(key).([]any)
	return len(items)
}
