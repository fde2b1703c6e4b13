// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platx-ai/page-engine/internal/content"
	"github.com/platx-ai/page-engine/internal/prefs"
	"github.com/platx-ai/page-engine/pkg/types"
)

const aboutDoc = `---
title: "About"
heading: "Who We Are"
features:
  - title: "Research"
    description: "Deep market analysis."
---

We build content systems.
`

const marketDoc = `---
heading: "Market"
metrics:
  - title: "TAM"
    value: "¥10B+"
    description: "Total addressable market."
---
`

func writeSection(t *testing.T, root, id, raw string) {
	t.Helper()
	dir := filepath.Join(root, id)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.md"), []byte(raw), 0o644))
}

func newTestServer(t *testing.T, sections []string) (*Server, string) {
	t.Helper()
	root := t.TempDir()
	writeSection(t, root, "about", aboutDoc)
	writeSection(t, root, "market", marketDoc)

	store, err := prefs.Open(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	s := New(types.ServerConfig{}, content.NewDirSource(root), store, sections, nil)
	return s, root
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(t, nil)

	w := do(t, s, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestSectionRoute(t *testing.T) {
	s, _ := newTestServer(t, nil)

	w := do(t, s, http.MethodGet, "/sections/about", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), `id="about"`)
	assert.Contains(t, w.Body.String(), "Who We Are")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestSectionRouteMissing(t *testing.T) {
	s, _ := newTestServer(t, nil)

	w := do(t, s, http.MethodGet, "/sections/nope", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to load section")
	assert.Contains(t, w.Body.String(), `id="nope"`)
}

func TestSectionRouteMalformed(t *testing.T) {
	s, root := newTestServer(t, nil)
	writeSection(t, root, "broken", "not a document")

	w := do(t, s, http.MethodGet, "/sections/broken", "")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to load section")
}

func TestPageRoute(t *testing.T) {
	s, _ := newTestServer(t, []string{"market", "about"})

	w := do(t, s, http.MethodGet, "/page", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, "¥10B+")
	assert.Contains(t, body, "Who We Are")

	// Configured order, not directory order.
	assert.Less(t, strings.Index(body, `id="market"`), strings.Index(body, `id="about"`))
}

func TestPageRouteFailedSectionIsolated(t *testing.T) {
	s, _ := newTestServer(t, []string{"about", "ghost", "market"})

	w := do(t, s, http.MethodGet, "/page", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Who We Are")
	assert.Contains(t, body, "¥10B+")
	assert.Contains(t, body, `id="ghost"`)
	assert.Contains(t, body, "Failed to load section")
}

func TestPageRouteListsSectionsWhenUnconfigured(t *testing.T) {
	s, _ := newTestServer(t, nil)

	w := do(t, s, http.MethodGet, "/page", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `id="about"`)
	assert.Contains(t, w.Body.String(), `id="market"`)
}

func TestPrefRoutes(t *testing.T) {
	s, _ := newTestServer(t, nil)

	w := do(t, s, http.MethodGet, "/prefs/colorScheme", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, s, http.MethodPut, "/prefs/colorScheme", `{"value": "dark"}`)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, s, http.MethodGet, "/prefs/colorScheme", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"value":"dark"`)
}

func TestPrefRouteRejectsBadBody(t *testing.T) {
	s, _ := newTestServer(t, nil)

	w := do(t, s, http.MethodPut, "/prefs/colorScheme", `{"wrong": true}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
