// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shape

import (
	"github.com/platx-ai/page-engine/pkg/types"
)

// The decoders below localize every "is this field an array of X" check
// to this package, so rendering logic downstream works with typed values
// instead of raw header maps. Entries that do not fit the expected shape
// are skipped rather than raised: authoring mistakes degrade the section,
// they never break it.

// Features extracts the feature-list entries from a header. Entries
// missing a title and description are dropped.
func Features(meta types.Metadata) []types.Feature {
	items, _ := meta.Get("features").([]any)

	var out []types.Feature
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		f := types.Feature{
			Title:       stringField(obj, "title"),
			Description: stringField(obj, "description"),
			Formula:     stringField(obj, "formula"),
		}
		if f.Title == "" && f.Description == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Metrics extracts the metric-list entries from a header. Values are
// pre-formatted display text and are never parsed as numbers.
func Metrics(meta types.Metadata) []types.Metric {
	items, _ := meta.Get("metrics").([]any)

	var out []types.Metric
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		m := types.Metric{
			Title:       stringField(obj, "title"),
			Value:       stringField(obj, "value"),
			Description: stringField(obj, "description"),
		}
		if m.Title == "" && m.Value == "" {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Object extracts the generic object entry under key. When the entry has
// no title of its own the key doubles as the display title.
func Object(meta types.Metadata, key string) types.ObjectEntry {
	obj, _ := meta.Get(key).(map[string]any)

	entry := types.ObjectEntry{
		Title:        stringField(obj, "title"),
		Requirements: stringList(obj, "requirements"),
		Steps:        stringList(obj, "steps"),
		Pillars:      stringList(obj, "pillars"),
		Components:   stringList(obj, "components"),
		Capabilities: stringList(obj, "capabilities"),
	}
	if entry.Title == "" {
		entry.Title = key
	}
	return entry
}

// Featured extracts the featured-document descriptor, if present. The
// descriptor requires a pdfUrl; without one the field is ignored.
func Featured(meta types.Metadata) (*types.FeaturedReport, bool) {
	obj, ok := meta.Get("featuredReport").(map[string]any)
	if !ok {
		return nil, false
	}

	r := &types.FeaturedReport{
		PDFURL:     stringField(obj, "pdfUrl"),
		CoverImage: stringField(obj, "coverImage"),
		CoverAlt:   stringField(obj, "coverAlt"),
		Title:      stringField(obj, "title"),
		Summary:    stringField(obj, "summary"),
	}
	if r.PDFURL == "" {
		return nil, false
	}
	return r, true
}

// Intro returns the header's intro paragraphs, when intro is an array
// of strings.
func Intro(meta types.Metadata) []string {
	items, _ := meta.Get("intro").([]any)
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// HelperNote returns the helperNote field, or "".
func HelperNote(meta types.Metadata) string {
	return meta.String("helperNote")
}

// Layout returns the layout field, or "".
func Layout(meta types.Metadata) string {
	return meta.String("layout")
}

// HeroImage returns the heroImage field, or "".
func HeroImage(meta types.Metadata) string {
	return meta.String("heroImage")
}

func stringField(obj map[string]any, key string) string {
	if obj == nil {
		return ""
	}
	s, _ := obj[key].(string)
	return s
}

func stringList(obj map[string]any, key string) []string {
	if obj == nil {
		return nil
	}
	items, _ := obj[key].([]any)
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
