package storefront

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/smartfarming/pulsemart/internal/catalog"
)

// Renderer turns a catalog into the listing page. It holds no per-render
// state and is safe for concurrent use.
type Renderer struct {
	site  Site
	intro template.HTML
	tmpl  *template.Template
	now   func() time.Time
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClock sets the clock the footer year is read from.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

// NewRenderer parses the page template and converts the site intro from
// markdown once.
func NewRenderer(site Site, opts ...Option) (*Renderer, error) {
	r := &Renderer{
		site: site.withDefaults(),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	r.tmpl = tmpl

	// Raw HTML in the intro is omitted since goldmark runs without WithUnsafe.
	md := goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.Strikethrough))
	var buf bytes.Buffer
	if err := md.Convert([]byte(r.site.Intro), &buf); err != nil {
		return nil, fmt.Errorf("converting intro: %w", err)
	}
	r.intro = template.HTML(buf.String())

	return r, nil
}

// Site returns the copy the renderer was built with.
func (r *Renderer) Site() Site { return r.site }

// Build assembles the page model. The footer year is read from the clock on
// every call.
func (r *Renderer) Build(cat catalog.Catalog) Page {
	cards := make([]Card, 0, cat.Len())
	for e := range cat.All() {
		cards = append(cards, newCard(e))
	}

	return Page{
		Title: r.site.Title,
		Header: Header{
			Title:   r.site.Title,
			Actions: headerActions(),
		},
		Catalog: CatalogRegion{
			Heading: r.site.Heading,
			Intro:   r.intro,
			Cards:   cards,
		},
		Footer: Footer{
			Year:  r.now().Year(),
			Owner: r.site.Owner,
		},
	}
}

// Render builds the page for cat and writes it as HTML.
func (r *Renderer) Render(w io.Writer, cat catalog.Catalog) error {
	return r.RenderPage(w, r.Build(cat))
}

// RenderPage writes an already built page.
func (r *Renderer) RenderPage(w io.Writer, p Page) error {
	if err := r.tmpl.Execute(w, p); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}
