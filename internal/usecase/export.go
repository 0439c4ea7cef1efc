package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"portfolio-site/internal/render"
)

type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type PrintTemplates interface {
	RenderPrint(w io.Writer, name string, data interface{}) error
}

// Exporter turns a published post into a PDF.
type Exporter struct {
	site     *Site
	tpl      PrintTemplates
	renderer Renderer
}

func NewExporter(site *Site, tpl PrintTemplates, r Renderer) *Exporter {
	return &Exporter{site: site, tpl: tpl, renderer: r}
}

type PrintData struct {
	Site string
	PostView
}

// PostPDF renders the post with the given slug. ok is false when the slug
// does not name a published post.
func (e *Exporter) PostPDF(ctx context.Context, siteTitle, slug string) ([]byte, bool, error) {
	view, ok, err := e.site.Post(ctx, slug)
	if err != nil || !ok {
		return nil, ok, err
	}
	var buf bytes.Buffer
	if err := e.tpl.RenderPrint(&buf, "post", PrintData{Site: siteTitle, PostView: view}); err != nil {
		return nil, true, fmt.Errorf("render print html: %w", err)
	}
	pdf, err := e.renderer.RenderHTMLToPDF(ctx, buf.String())
	if err != nil {
		return nil, true, fmt.Errorf("render pdf: %w", err)
	}
	return pdf, true, nil
}

var _ PrintTemplates = (*render.Templates)(nil)
