// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `---
title: "Technology"
heading: "Our Platform"
features:
  - title: "F1"
    description: "D1"
---
Body text.
`

func writeSection(t *testing.T, root, id, raw string) {
	t.Helper()
	dir := filepath.Join(root, id)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.md"), []byte(raw), 0o644))
}

func TestDirSourceLoad(t *testing.T) {
	root := t.TempDir()
	writeSection(t, root, "technology", sampleDoc)

	src := NewDirSource(root)
	doc, err := src.Load(context.Background(), "technology")
	require.NoError(t, err)

	assert.Equal(t, "technology", doc.ID)
	assert.Equal(t, "Technology", doc.Meta.String("title"))
	assert.Equal(t, "Body text.\n", doc.Body)
}

func TestDirSourceLoadMissing(t *testing.T) {
	src := NewDirSource(t.TempDir())

	_, err := src.Load(context.Background(), "absent")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDirSourceLoadMalformed(t *testing.T) {
	root := t.TempDir()
	writeSection(t, root, "broken", "no front matter here\n")

	src := NewDirSource(root)
	_, err := src.Load(context.Background(), "broken")
	assert.ErrorIs(t, err, ErrMalformedHeader)
}

func TestDirSourceSections(t *testing.T) {
	root := t.TempDir()
	writeSection(t, root, "technology", sampleDoc)
	writeSection(t, root, "about", sampleDoc)
	// Shared assets are not sections.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "_shared", "backgrounds"), 0o755))

	src := NewDirSource(root)
	ids, err := src.Sections()
	require.NoError(t, err)
	assert.Equal(t, []string{"about", "technology"}, ids)
}

func TestHTTPSourceLoad(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/technology/index.md":
			w.Write([]byte(sampleDoc))
		case "/flaky/index.md":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	src := NewHTTPSource(ts.URL, ts.Client())

	doc, err := src.Load(context.Background(), "technology")
	require.NoError(t, err)
	assert.Equal(t, "Technology", doc.Meta.String("title"))

	_, err = src.Load(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = src.Load(context.Background(), "flaky")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
