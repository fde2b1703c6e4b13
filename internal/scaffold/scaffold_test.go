// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/platx-ai/page-engine/internal/content"
)

func TestCreate(t *testing.T) {
	contentDir := t.TempDir()
	sectionsDir := t.TempDir()

	res, err := Create("test-section", contentDir, sectionsDir)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	wantDoc := filepath.Join(contentDir, "test-section", "index.md")
	wantRoutine := filepath.Join(sectionsDir, "TestSectionSection.go")
	if res.DocumentPath != wantDoc {
		t.Errorf("DocumentPath = %q, want %q", res.DocumentPath, wantDoc)
	}
	if res.RoutinePath != wantRoutine {
		t.Errorf("RoutinePath = %q, want %q", res.RoutinePath, wantRoutine)
	}

	doc, err := content.NewDirSource(contentDir).Load(context.Background(), "test-section")
	if err != nil {
		t.Fatalf("scaffolded document must parse: %v", err)
	}
	if got := doc.Meta.String("title"); got != "Test Section" {
		t.Errorf("title = %q", got)
	}
	if got := doc.Meta.String("heading"); got != "Test Section Overview" {
		t.Errorf("heading = %q", got)
	}
	if !doc.Meta.IsArray("features") {
		t.Error("starter document should carry a feature list")
	}
	if !strings.Contains(doc.Body, "## Overview") {
		t.Errorf("starter body missing overview heading\n%s", doc.Body)
	}

	routine, err := os.ReadFile(res.RoutinePath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(routine), `r.SectionByID(ctx, src, "test-section")`) {
		t.Errorf("new sections get a delegating routine\n%s", routine)
	}
}

func TestCreateRejectsInvalidNames(t *testing.T) {
	contentDir := t.TempDir()
	sectionsDir := t.TempDir()

	for _, name := range []string{"Research", "new section", "9lives", "-dash", "под"} {
		t.Run(name, func(t *testing.T) {
			_, err := Create(name, contentDir, sectionsDir)
			if !errors.Is(err, ErrInvalidName) {
				t.Fatalf("err = %v, want ErrInvalidName", err)
			}
		})
	}

	// Nothing may be written on a rejected name.
	for _, dir := range []string{contentDir, sectionsDir} {
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 0 {
			t.Errorf("%s not empty after rejected create", dir)
		}
	}
}

func TestCreateRejectsExistingSection(t *testing.T) {
	contentDir := t.TempDir()
	sectionsDir := t.TempDir()

	if _, err := Create("about", contentDir, sectionsDir); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	before, err := os.ReadFile(filepath.Join(contentDir, "about", "index.md"))
	if err != nil {
		t.Fatal(err)
	}

	_, err = Create("about", contentDir, sectionsDir)
	if !errors.Is(err, ErrSectionExists) {
		t.Fatalf("err = %v, want ErrSectionExists", err)
	}

	after, err := os.ReadFile(filepath.Join(contentDir, "about", "index.md"))
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("existing document must not be touched on collision")
	}
}
