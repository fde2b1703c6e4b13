// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns a classified document into HTML. The generic
// renderer walks a document's metadata and body and produces the correct
// visual structure purely from the inferred shape; no section needs
// bespoke code.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"go.uber.org/zap"

	"github.com/platx-ai/page-engine/internal/body"
	"github.com/platx-ai/page-engine/internal/shape"
	"github.com/platx-ai/page-engine/pkg/types"
)

// coverFallback is shown when a featured report supplies no cover image.
const coverFallback = "/images/report-cover-fallback.svg"

// storyLayoutName is the layout value selecting the hero-story split.
const storyLayoutName = "panda-story"

// Renderer renders documents to HTML. It owns no mutable state beyond
// its logger and template set and is safe for concurrent use; each
// render works exclusively on its own document and derived segments.
type Renderer struct {
	md       goldmark.Markdown
	expander *body.Expander
	log      *zap.Logger
}

// New returns a Renderer. A nil logger disables diagnostics.
func New(log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{
		md:       newMarkdown(),
		expander: body.New(log),
		log:      log,
	}
}

// Section classifies, expands, and renders one document.
func (r *Renderer) Section(doc *types.Document) (template.HTML, error) {
	c := shape.Classify(doc.Meta)
	segs := r.expander.Expand(doc.Body)
	return r.RenderSection(doc, c, segs)
}

// RenderSection produces the section's HTML from a document, its
// classification, and its expanded body segments.
//
// Precedence for the primary content area, first match governing:
//  1. layout "panda-story" with a hero image: hero-story split.
//  2. featuredReport: fixed report panel.
//  3. non-empty body segments: ordered prose and card grids.
//  4. feature list: 3-column feature grid.
//  5. metric list: 3-column metric grid.
//  6. object keys: generic object card grid.
//  7. header block only.
//
// When rule 3 wins and the header also carries features or metrics, the
// corresponding grids are appended beneath the body; a document may
// combine long-form narrative with structured summaries.
func (r *Renderer) RenderSection(doc *types.Document, c types.Classification, segs []types.Segment) (template.HTML, error) {
	view := sectionView{
		ID:          doc.ID,
		Title:       doc.Meta.String("title"),
		Heading:     doc.Meta.String("heading"),
		Description: doc.Meta.String("description"),
		Background:  doc.Meta.String("background"),
	}

	blocks, err := r.contentBlocks(doc, c, segs)
	if err != nil {
		return "", fmt.Errorf("section %s: %w", doc.ID, err)
	}
	view.Blocks = blocks

	return r.exec("section", view)
}

func (r *Renderer) contentBlocks(doc *types.Document, c types.Classification, segs []types.Segment) ([]template.HTML, error) {
	if shape.Layout(doc.Meta) == storyLayoutName && shape.HeroImage(doc.Meta) != "" {
		block, err := r.storyBlock(doc)
		if err != nil {
			return nil, err
		}
		return []template.HTML{block}, nil
	}

	// A featuredReport without a pdfUrl cannot render a panel; the
	// remaining rules then apply.
	if report, ok := shape.Featured(doc.Meta); ok {
		block, err := r.featuredBlock(doc.Meta, report)
		if err != nil {
			return nil, err
		}
		return []template.HTML{block}, nil
	}

	if len(segs) > 0 {
		return r.segmentBlocks(doc.Meta, c, segs)
	}

	switch {
	case c.HasFeatures:
		block, err := r.featureGrid(shape.Features(doc.Meta))
		if err != nil {
			return nil, err
		}
		return []template.HTML{block}, nil

	case c.HasMetrics:
		block, err := r.exec("metricGrid", shape.Metrics(doc.Meta))
		if err != nil {
			return nil, err
		}
		return []template.HTML{block}, nil

	case len(c.ObjectKeys) > 0:
		block, err := r.objectGrid(doc.Meta, c.ObjectKeys)
		if err != nil {
			return nil, err
		}
		return []template.HTML{block}, nil
	}

	return nil, nil
}

// segmentBlocks renders the ordered prose/card stream, then appends the
// feature and metric grids when prose is present alongside them.
func (r *Renderer) segmentBlocks(meta types.Metadata, c types.Classification, segs []types.Segment) ([]template.HTML, error) {
	var blocks []template.HTML
	hasProse := false

	for _, seg := range segs {
		switch seg.Kind {
		case types.SegmentProse:
			hasProse = true
			inner, err := r.prose(seg.Text)
			if err != nil {
				return nil, err
			}
			block, err := r.exec("prose", inner)
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, block)

		case types.SegmentCards:
			views := make([]cardView, len(seg.Cards))
			for i, card := range seg.Cards {
				views[i] = cardView(card)
			}
			block, err := r.exec("cardGrid", views)
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, block)
		}
	}

	if hasProse && c.HasFeatures {
		block, err := r.featureGrid(shape.Features(meta))
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
	if hasProse && c.HasMetrics {
		block, err := r.exec("metricGrid", shape.Metrics(meta))
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}

	return blocks, nil
}

// tierPattern matches a leading "Tier N" in a feature title.
var tierPattern = regexp.MustCompile(`(?i)^tier\s+(\d+)`)

// featureGrid renders the feature cards. A feature carrying a formula
// renders as a tiered card; its tier comes from a leading "Tier N" in
// the title, defaulting to the feature's position index + 1.
func (r *Renderer) featureGrid(features []types.Feature) (template.HTML, error) {
	view := featureGridView{Items: make([]template.HTML, 0, len(features))}

	for i, f := range features {
		if f.Formula == "" {
			item, err := r.exec("featureCard", featureView{Title: f.Title, Description: f.Description})
			if err != nil {
				return "", err
			}
			view.Items = append(view.Items, item)
			continue
		}

		tier := i + 1
		if m := tierPattern.FindStringSubmatch(f.Title); m != nil {
			fmt.Sscanf(m[1], "%d", &tier)
		}
		item, err := r.exec("tierCard", cardView{
			Tier:        tier,
			Title:       f.Title,
			Description: f.Description,
			Formula:     f.Formula,
		})
		if err != nil {
			return "", err
		}
		view.Items = append(view.Items, item)
	}

	return r.exec("featureGrid", view)
}

// objectGrid renders one card per object key; column count follows the
// key count (1, 2, or 3+ columns).
func (r *Renderer) objectGrid(meta types.Metadata, keys []string) (template.HTML, error) {
	view := objectGridView{ColsClass: gridColsClass(len(keys))}

	for _, key := range keys {
		entry := shape.Object(meta, key)
		view.Objects = append(view.Objects, objectView{
			Title:        entry.Title,
			Requirements: entry.Requirements,
			Steps:        entry.Steps,
			Pillars:      entry.Pillars,
			Components:   entry.Components,
			Capabilities: entry.Capabilities,
		})
	}

	return r.exec("objectGrid", view)
}

func gridColsClass(n int) string {
	switch n {
	case 1:
		return "grid-cols-1"
	case 2:
		return "grid-cols-1 md:grid-cols-2"
	default:
		return "grid-cols-1 md:grid-cols-2 lg:grid-cols-3"
	}
}

// featuredBlock renders the featured-report panel with up to two intro
// paragraphs above it and the helper note below.
func (r *Renderer) featuredBlock(meta types.Metadata, report *types.FeaturedReport) (template.HTML, error) {
	intro := shape.Intro(meta)
	if len(intro) > 2 {
		intro = intro[:2]
	}

	cover := report.CoverImage
	if cover == "" {
		cover = coverFallback
	}
	coverAlt := report.CoverAlt
	if coverAlt == "" {
		coverAlt = report.Title
	}

	return r.exec("featured", featuredView{
		Intro:      intro,
		Cover:      cover,
		CoverAlt:   coverAlt,
		Title:      report.Title,
		Summary:    report.Summary,
		PDFURL:     report.PDFURL,
		HelperNote: shape.HelperNote(meta),
	})
}

// storyBlock renders the hero-story layout: the body splits at the first
// horizontal-rule line into the story (beside the hero image) and the
// remainder below. Further "---" lines stay inside the remainder.
func (r *Renderer) storyBlock(doc *types.Document) (template.HTML, error) {
	story, remainder := splitStory(doc.Body)

	storyHTML, err := r.prose(story)
	if err != nil {
		return "", err
	}

	var remainderHTML template.HTML
	if strings.TrimSpace(remainder) != "" {
		remainderHTML, err = r.prose(remainder)
		if err != nil {
			return "", err
		}
	}

	return r.exec("story", storyView{
		HeroImage: shape.HeroImage(doc.Meta),
		HeroAlt:   doc.Meta.String("heading"),
		Story:     storyHTML,
		Remainder: remainderHTML,
	})
}

// splitStory splits body at the first line consisting solely of "---".
// Only the first split point is honored.
func splitStory(bodyText string) (story, remainder string) {
	lines := strings.Split(bodyText, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			return strings.Join(lines[:i], "\n"), strings.Join(lines[i+1:], "\n")
		}
	}
	return bodyText, ""
}

// ErrorState renders the inline error markup for one failed section.
// Load failures stay local: the error surface replaces the section and
// never reaches its siblings.
func ErrorState(sectionID string, err error) template.HTML {
	var buf bytes.Buffer
	if execErr := tmpl.ExecuteTemplate(&buf, "sectionError", errorView{ID: sectionID, Reason: err.Error()}); execErr != nil {
		return ""
	}
	return template.HTML(strings.TrimSpace(buf.String()))
}

func (r *Renderer) errorState(sectionID string, err error) template.HTML {
	return ErrorState(sectionID, err)
}

func (r *Renderer) exec(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return template.HTML(strings.TrimSpace(buf.String())), nil
}
