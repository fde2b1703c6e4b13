// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the renderer over HTTP. Every section request
// loads its document fresh and renders it on the spot; nothing is
// cached between requests. One section's failure is confined to its own
// response or inline error markup.
package server

import (
	"context"
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/platx-ai/page-engine/internal/content"
	"github.com/platx-ai/page-engine/internal/prefs"
	"github.com/platx-ai/page-engine/internal/render"
	"github.com/platx-ai/page-engine/pkg/types"
)

// sectionLister is implemented by sources that can enumerate their
// sections (the directory source can; an HTTP source cannot).
type sectionLister interface {
	Sections() ([]string, error)
}

// Server renders sections over HTTP and serves the preference store.
type Server struct {
	engine   *gin.Engine
	renderer *render.Renderer
	source   content.Source
	prefs    *prefs.Store
	cfg      types.ServerConfig
	sections []string
	log      *zap.Logger
}

// New assembles the server. sections is the ordered section list for
// the full-page route; when empty and the source can enumerate, the
// content root's sections are listed fresh on each page request.
func New(cfg types.ServerConfig, src content.Source, store *prefs.Store, sections []string, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(RequestID(), RequestLogger(log), Recovery(log))

	s := &Server{
		engine:   engine,
		renderer: render.New(log),
		source:   src,
		prefs:    store,
		cfg:      cfg,
		sections: sections,
		log:      log,
	}

	engine.GET("/healthz", s.handleHealth)
	engine.GET("/page", s.handlePage)
	engine.GET("/sections/:id", s.handleSection)
	if store != nil {
		engine.GET("/prefs/:key", s.handleGetPref)
		engine.PUT("/prefs/:key", s.handleSetPref)
	}

	return s
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the listener fails or ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	s.log.Info("serving", zap.String("addr", s.cfg.Addr))

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		return srv.Shutdown(context.Background())
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleSection renders one section fragment. A missing document is a
// 404; a malformed or unreachable one a 502. Either way the body is the
// same inline error markup a full page would embed.
func (s *Server) handleSection(c *gin.Context) {
	id := c.Param("id")

	doc, err := s.source.Load(c.Request.Context(), id)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, content.ErrNotFound) {
			status = http.StatusNotFound
		}
		s.writeSectionError(c, status, id, err)
		return
	}

	out, err := s.renderer.Section(doc)
	if err != nil {
		s.writeSectionError(c, http.StatusInternalServerError, id, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(out))
}

// handlePage renders the whole page: every section loaded concurrently
// and independently, failed sections replaced by inline error states.
func (s *Server) handlePage(c *gin.Context) {
	ids := s.sections
	if len(ids) == 0 {
		lister, ok := s.source.(sectionLister)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no sections configured"})
			return
		}
		var err error
		if ids, err = lister.Sections(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	body, err := s.renderer.Page(c.Request.Context(), s.source, ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(pageShell(body)))
}

func (s *Server) writeSectionError(c *gin.Context, status int, id string, err error) {
	markup := render.ErrorState(id, err)
	c.Data(status, "text/html; charset=utf-8", []byte(markup))
}

func (s *Server) handleGetPref(c *gin.Context) {
	key := c.Param("key")

	value, err := s.prefs.Get(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, prefs.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "preference not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"key": key, "value": value})
}

func (s *Server) handleSetPref(c *gin.Context) {
	key := c.Param("key")

	var req struct {
		Value string `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must be {\"value\": \"...\"}"})
		return
	}

	if err := s.prefs.Set(c.Request.Context(), key, req.Value); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// pageShell wraps rendered sections in the minimal static shell. Theme
// classes and navigation belong to the deployed site, not the engine.
func pageShell(sections template.HTML) string {
	return `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>platx</title>
</head>
<body>
<main>
` + string(sections) + `</main>
</body>
</html>
`
}
