// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ReservedFields are header fields that always belong to the section's
// header or background block and are never classified as a content shape,
// regardless of their value type.
var ReservedFields = map[string]bool{
	"title":       true,
	"heading":     true,
	"description": true,
	"background":  true,
}

// Classification is the derived shape of a metadata header. It is a pure
// function of the header: identical headers always classify identically.
type Classification struct {
	// HasFeatures is true iff the "features" field is present and is an array.
	HasFeatures bool `json:"has_features" yaml:"has_features"`

	// HasMetrics is true iff the "metrics" field is present and is an array.
	HasMetrics bool `json:"has_metrics" yaml:"has_metrics"`

	// ObjectKeys lists the non-reserved fields whose value is a nested
	// mapping (not an array), in the header's original field order.
	ObjectKeys []string `json:"object_keys" yaml:"object_keys"`

	// ArrayKeys lists the non-reserved fields whose value is an array,
	// in the header's original field order.
	ArrayKeys []string `json:"array_keys" yaml:"array_keys"`
}

// Feature is one entry of a feature-list shape.
type Feature struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`

	// Formula is optional; a feature carrying one renders as a tiered card.
	Formula string `json:"formula,omitempty" yaml:"formula,omitempty"`
}

// Metric is one entry of a metric-list shape. Value is pre-formatted text
// (it may carry currency symbols or percent signs) and is never parsed
// as a number.
type Metric struct {
	Title       string `json:"title" yaml:"title"`
	Value       string `json:"value" yaml:"value"`
	Description string `json:"description" yaml:"description"`
}

// ObjectEntry is a nested object under a non-reserved header key. Each
// sub-list field is an ordered sequence of strings; any combination may
// be present.
type ObjectEntry struct {
	Title        string   `json:"title" yaml:"title"`
	Requirements []string `json:"requirements,omitempty" yaml:"requirements,omitempty"`
	Steps        []string `json:"steps,omitempty" yaml:"steps,omitempty"`
	Pillars      []string `json:"pillars,omitempty" yaml:"pillars,omitempty"`
	Components   []string `json:"components,omitempty" yaml:"components,omitempty"`
	Capabilities []string `json:"capabilities,omitempty" yaml:"capabilities,omitempty"`
}

// FeaturedReport describes a featured-document panel: a downloadable
// report with an optional cover image and summary.
type FeaturedReport struct {
	// PDFURL is required; the panel's call-to-action links to it.
	PDFURL string `json:"pdf_url" yaml:"pdfUrl"`

	CoverImage string `json:"cover_image,omitempty" yaml:"coverImage,omitempty"`
	CoverAlt   string `json:"cover_alt,omitempty" yaml:"coverAlt,omitempty"`
	Title      string `json:"title,omitempty" yaml:"title,omitempty"`
	Summary    string `json:"summary,omitempty" yaml:"summary,omitempty"`
}
