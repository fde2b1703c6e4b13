// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"context"
	"html/template"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/platx-ai/page-engine/internal/content"
)

// Page loads and renders every listed section concurrently and joins
// them in order. Sections never block one another and share no mutable
// state; a section whose load or render fails contributes its inline
// error state while its siblings render normally. Every render is
// computed fresh from the loaded documents.
func (r *Renderer) Page(ctx context.Context, src content.Source, sectionIDs []string) (template.HTML, error) {
	rendered := make([]template.HTML, len(sectionIDs))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range sectionIDs {
		i, id := i, id
		g.Go(func() error {
			rendered[i] = r.pageSection(ctx, src, id)
			return nil
		})
	}
	// Goroutines never return errors; failures are per-section markup.
	if err := g.Wait(); err != nil {
		return "", err
	}

	var b strings.Builder
	for _, section := range rendered {
		b.WriteString(string(section))
		b.WriteByte('\n')
	}
	return template.HTML(b.String()), nil
}

func (r *Renderer) pageSection(ctx context.Context, src content.Source, id string) template.HTML {
	doc, err := src.Load(ctx, id)
	if err != nil {
		r.log.Warn("section load failed", zap.String("section", id), zap.Error(err))
		return r.errorState(id, err)
	}

	out, err := r.Section(doc)
	if err != nil {
		r.log.Warn("section render failed", zap.String("section", id), zap.Error(err))
		return r.errorState(id, err)
	}
	return out
}
