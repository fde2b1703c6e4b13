// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package content

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/platx-ai/page-engine/pkg/types"
)

// Source fetches a raw document by section identifier and parses it.
// A load failure is terminal for that section only; callers surface it
// inline and never let it reach sibling sections.
type Source interface {
	Load(ctx context.Context, sectionID string) (*types.Document, error)
}

// DirSource loads documents from a content directory. Each section lives
// at <root>/<sectionID>/index.md.
type DirSource struct {
	root string
}

// NewDirSource returns a Source backed by the given content root.
func NewDirSource(root string) *DirSource {
	return &DirSource{root: root}
}

// Load reads and parses the document for sectionID.
func (s *DirSource) Load(_ context.Context, sectionID string) (*types.Document, error) {
	path := filepath.Join(s.root, sectionID, "index.md")

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("section %s: %w", sectionID, ErrNotFound)
		}
		return nil, fmt.Errorf("section %s: reading %s: %w", sectionID, path, err)
	}

	return Parse(sectionID, string(raw))
}

// Sections lists the section IDs present under the content root, in
// sorted order. Directories with a "_" prefix are shared assets, not
// sections, and are skipped.
func (s *DirSource) Sections() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("reading content root %s: %w", s.root, err)
	}

	var ids []string
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), "_") {
			continue
		}
		ids = append(ids, entry.Name())
	}
	sort.Strings(ids)
	return ids, nil
}

// HTTPSource loads documents over HTTP from a base URL, mirroring the
// browser-side fetch of /<sectionID>/index.md. Requests are not retried;
// a non-success status is a load failure.
type HTTPSource struct {
	base   string
	client *http.Client
}

// NewHTTPSource returns a Source fetching from base. A nil client uses
// http.DefaultClient.
func NewHTTPSource(base string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{base: strings.TrimRight(base, "/"), client: client}
}

// Load fetches and parses the document for sectionID.
func (s *HTTPSource) Load(ctx context.Context, sectionID string) (*types.Document, error) {
	u := s.base + "/" + url.PathEscape(sectionID) + "/index.md"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("section %s: building request: %w", sectionID, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("section %s: fetching %s: %w", sectionID, u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("section %s: %w", sectionID, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("section %s: fetching %s: status %d", sectionID, u, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("section %s: reading response: %w", sectionID, err)
	}

	return Parse(sectionID, string(raw))
}
