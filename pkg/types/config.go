// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// SiteConfig holds the content layout shared by the renderer, the section
// generator, and the scaffolding command.
type SiteConfig struct {
	// ContentDir is the content root; each section lives at
	// <ContentDir>/<sectionID>/index.md.
	ContentDir string `json:"content_dir" yaml:"content_dir"`

	// SectionsDir is where generated render routines are written
	// (e.g. "src/sections").
	SectionsDir string `json:"sections_dir" yaml:"sections_dir"`

	// DocsDir is where the content editing guide is written (e.g. "docs").
	DocsDir string `json:"docs_dir" yaml:"docs_dir"`

	// Sections is the ordered list of section IDs composing the full page.
	// When empty the content root's subdirectories are used in sorted order.
	Sections []string `json:"sections,omitempty" yaml:"sections,omitempty"`
}

// ServerConfig holds settings for the serve command.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// ReadTimeout bounds how long reading a request may take.
	ReadTimeout time.Duration `json:"read_timeout" yaml:"read_timeout"`

	// WriteTimeout bounds how long writing a response may take.
	WriteTimeout time.Duration `json:"write_timeout" yaml:"write_timeout"`
}

// PrefsConfig holds settings for the preference store.
type PrefsConfig struct {
	// Path is the SQLite database file for persisted UI preferences
	// (default "prefs.db").
	Path string `json:"path" yaml:"path"`
}

// EngineConfig groups all stage configurations.
type EngineConfig struct {
	Site   SiteConfig   `json:"site" yaml:"site"`
	Server ServerConfig `json:"server" yaml:"server"`
	Prefs  PrefsConfig  `json:"prefs" yaml:"prefs"`
}
