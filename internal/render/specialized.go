// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"context"
	"fmt"
	"html/template"

	"github.com/platx-ai/page-engine/internal/content"
	"github.com/platx-ai/page-engine/internal/shape"
	"github.com/platx-ai/page-engine/pkg/types"
)

// Specialized entry points for generated section routines. The offline
// generator inlines a document's detected shape into a call to one of
// these, skipping runtime classification; the markup matches the generic
// path exactly.

// SectionByID loads and renders one section through the generic path.
// Generated delegating routines call this.
func (r *Renderer) SectionByID(ctx context.Context, src content.Source, sectionID string) (template.HTML, error) {
	doc, err := src.Load(ctx, sectionID)
	if err != nil {
		return "", err
	}
	return r.Section(doc)
}

// FeatureSection renders the header block plus the feature grid.
func (r *Renderer) FeatureSection(doc *types.Document) (template.HTML, error) {
	block, err := r.featureGrid(shape.Features(doc.Meta))
	if err != nil {
		return "", fmt.Errorf("section %s: %w", doc.ID, err)
	}
	return r.headerWith(doc, block)
}

// MetricSection renders the header block plus the metric grid.
func (r *Renderer) MetricSection(doc *types.Document) (template.HTML, error) {
	block, err := r.exec("metricGrid", shape.Metrics(doc.Meta))
	if err != nil {
		return "", fmt.Errorf("section %s: %w", doc.ID, err)
	}
	return r.headerWith(doc, block)
}

// ObjectSection renders the header block plus one generic object card
// per key. Keys come inlined from the generator in header order.
func (r *Renderer) ObjectSection(doc *types.Document, keys []string) (template.HTML, error) {
	block, err := r.objectGrid(doc.Meta, keys)
	if err != nil {
		return "", fmt.Errorf("section %s: %w", doc.ID, err)
	}
	return r.headerWith(doc, block)
}

func (r *Renderer) headerWith(doc *types.Document, blocks ...template.HTML) (template.HTML, error) {
	return r.exec("section", sectionView{
		ID:          doc.ID,
		Title:       doc.Meta.String("title"),
		Heading:     doc.Meta.String("heading"),
		Description: doc.Meta.String("description"),
		Background:  doc.Meta.String("background"),
		Blocks:      blocks,
	})
}
