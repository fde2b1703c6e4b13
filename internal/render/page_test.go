// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/platx-ai/page-engine/internal/content"
	"github.com/platx-ai/page-engine/pkg/types"
)

// fakeSource serves in-memory documents keyed by section ID.
type fakeSource struct {
	docs map[string]*types.Document
}

func (s *fakeSource) Load(_ context.Context, id string) (*types.Document, error) {
	doc, ok := s.docs[id]
	if !ok {
		return nil, fmt.Errorf("section %s: %w", id, content.ErrNotFound)
	}
	return doc, nil
}

func TestPageJoinsSectionsInOrder(t *testing.T) {
	src := &fakeSource{docs: map[string]*types.Document{
		"about":  doc("about", "About body.", "heading", "About"),
		"market": doc("market", "Market body.", "heading", "Market"),
		"team":   doc("team", "Team body.", "heading", "Team"),
	}}

	out, err := New(nil).Page(context.Background(), src, []string{"about", "market", "team"})
	if err != nil {
		t.Fatalf("Page: %v", err)
	}

	got := string(out)
	aboutAt := strings.Index(got, `id="about"`)
	marketAt := strings.Index(got, `id="market"`)
	teamAt := strings.Index(got, `id="team"`)
	if aboutAt < 0 || marketAt < 0 || teamAt < 0 {
		t.Fatalf("missing sections\n%s", got)
	}
	if !(aboutAt < marketAt && marketAt < teamAt) {
		t.Error("sections must appear in the configured order")
	}
}

func TestPageFailedSectionIsolated(t *testing.T) {
	src := &fakeSource{docs: map[string]*types.Document{
		"about": doc("about", "About body.", "heading", "About"),
		"team":  doc("team", "Team body.", "heading", "Team"),
	}}

	out, err := New(nil).Page(context.Background(), src, []string{"about", "missing", "team"})
	if err != nil {
		t.Fatalf("Page: %v", err)
	}

	got := string(out)
	if !strings.Contains(got, "About body.") || !strings.Contains(got, "Team body.") {
		t.Error("healthy siblings must render normally")
	}
	if !strings.Contains(got, "Failed to load section") || !strings.Contains(got, `id="missing"`) {
		t.Errorf("failed section should render its inline error state\n%s", got)
	}
}

func TestPageEmptySectionList(t *testing.T) {
	out, err := New(nil).Page(context.Background(), &fakeSource{}, nil)
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if strings.TrimSpace(string(out)) != "" {
		t.Errorf("no sections, no output, got %q", out)
	}
}
