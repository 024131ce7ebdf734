package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/rs/zerolog"

	"github.com/smartfarming/pulsemart/internal/assets"
	"github.com/smartfarming/pulsemart/internal/catalog"
	"github.com/smartfarming/pulsemart/internal/storefront"
)

// Result describes a completed export.
type Result struct {
	Files []string // paths relative to the output directory
	Cards int
	Year  int // footer year baked into index.html
}

// Exporter prerenders the listing page into a directory that any static
// file host can serve. The footer year is fixed at export time.
type Exporter struct {
	OutputDir string
	Log       zerolog.Logger
}

// NewExporter creates an Exporter writing into outputDir.
func NewExporter(outputDir string, log zerolog.Logger) *Exporter {
	return &Exporter{OutputDir: outputDir, Log: log}
}

// Export renders the page for cat and writes index.html, style.css and
// placeholder.svg. Each file is replaced atomically.
func (e *Exporter) Export(ctx context.Context, r *storefront.Renderer, cat catalog.Catalog) (Result, error) {
	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("creating output dir: %w", err)
	}

	page := r.Build(cat)
	var index bytes.Buffer
	if err := r.RenderPage(&index, page); err != nil {
		return Result{}, err
	}

	var svg bytes.Buffer
	if err := assets.Placeholder(&svg, assets.Size{Width: assets.DefaultSize, Height: assets.DefaultSize}); err != nil {
		return Result{}, fmt.Errorf("rendering placeholder: %w", err)
	}

	files := []struct {
		name string
		data []byte
	}{
		{"index.html", index.Bytes()},
		{"style.css", []byte(assets.Stylesheet)},
		{"placeholder.svg", svg.Bytes()},
	}

	res := Result{Cards: len(page.Catalog.Cards), Year: page.Footer.Year}
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		path := filepath.Join(e.OutputDir, f.name)
		if err := atomic.WriteFile(path, bytes.NewReader(f.data)); err != nil {
			return res, fmt.Errorf("writing %s: %w", f.name, err)
		}
		e.Log.Debug().Str("file", path).Int("bytes", len(f.data)).Msg("wrote")
		res.Files = append(res.Files, f.name)
	}

	e.Log.Info().
		Str("dir", e.OutputDir).
		Int("cards", res.Cards).
		Int("year", res.Year).
		Str("files", strings.Join(res.Files, ",")).
		Msg("static export complete")
	return res, nil
}
