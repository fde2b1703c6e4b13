// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scaffold creates new empty section documents with a default
// feature-list shape and a matching default render routine. It shares
// the generator's naming conventions but none of its logic.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/platx-ai/page-engine/internal/generate"
)

// ErrInvalidName reports a section name outside the accepted grammar.
var ErrInvalidName = errors.New("invalid section name")

// ErrSectionExists reports a name collision with an existing section.
var ErrSectionExists = errors.New("section already exists")

// namePattern is the accepted section-name grammar: a lowercase letter
// followed by lowercase letters, digits, and hyphens.
var namePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// Result describes the files a successful Create wrote.
type Result struct {
	DocumentPath string
	RoutinePath  string
}

// Create scaffolds the section name under contentDir and sectionsDir.
// Validation failures and name collisions return before anything is
// written; a failed Create leaves no partial files.
func Create(name, contentDir, sectionsDir string) (Result, error) {
	if !namePattern.MatchString(name) {
		return Result{}, fmt.Errorf("%w: %q must start with a lowercase letter and contain only lowercase letters, numbers, and hyphens", ErrInvalidName, name)
	}

	routinePath := filepath.Join(sectionsDir, generate.PascalCase(name)+"Section.go")
	if _, err := os.Stat(routinePath); err == nil {
		return Result{}, fmt.Errorf("%w: %s", ErrSectionExists, routinePath)
	} else if !os.IsNotExist(err) {
		return Result{}, fmt.Errorf("checking %s: %w", routinePath, err)
	}

	routine, err := generate.DelegatingRoutine(name)
	if err != nil {
		return Result{}, err
	}

	docDir := filepath.Join(contentDir, name)
	docPath := filepath.Join(docDir, "index.md")

	if err := os.MkdirAll(docDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("creating %s: %w", docDir, err)
	}
	if err := os.MkdirAll(sectionsDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("creating %s: %w", sectionsDir, err)
	}

	if err := os.WriteFile(docPath, []byte(defaultDocument(name)), 0o644); err != nil {
		return Result{}, fmt.Errorf("writing %s: %w", docPath, err)
	}
	if err := os.WriteFile(routinePath, []byte(routine), 0o644); err != nil {
		// Keep the invocation atomic from the author's point of view.
		os.Remove(docPath)
		return Result{}, fmt.Errorf("writing %s: %w", routinePath, err)
	}

	return Result{DocumentPath: docPath, RoutinePath: routinePath}, nil
}

// defaultDocument is the starter content for a new section: header,
// background, and three placeholder features.
func defaultDocument(name string) string {
	title := generate.TitleCase(name)
	return fmt.Sprintf(`---
title: %q
heading: %q
background: "/_shared/backgrounds/default-bg.jpg"
description: "Welcome to the %s section. This section provides comprehensive information about our %s capabilities."
features:
  - title: "Feature 1"
    description: "Add your first feature description here"
  - title: "Feature 2"
    description: "Add your second feature description here"
  - title: "Feature 3"
    description: "Add your third feature description here"
---

# %s

This is the %s section content. Customize this Markdown as needed.

## Overview

Edit this content in `+"`%s/index.md`"+`. The body renders as styled
prose with the feature grid from the header appended beneath it.
`, title, title+" Overview", title, name, title, title, name)
}
