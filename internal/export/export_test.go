package export

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartfarming/pulsemart/internal/catalog"
	"github.com/smartfarming/pulsemart/internal/storefront"
)

func newRenderer(t *testing.T, year int) *storefront.Renderer {
	t.Helper()
	r, err := storefront.NewRenderer(storefront.DefaultSite(), storefront.WithClock(func() time.Time {
		return time.Date(year, time.January, 2, 0, 0, 0, 0, time.UTC)
	}))
	require.NoError(t, err)
	return r
}

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dist")
	exp := NewExporter(dir, zerolog.Nop())

	res, err := exp.Export(context.Background(), newRenderer(t, 2024), catalog.Default())
	require.NoError(t, err)

	assert.Equal(t, []string{"index.html", "style.css", "placeholder.svg"}, res.Files)
	assert.Equal(t, 6, res.Cards)
	assert.Equal(t, 2024, res.Year)

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, 6, strings.Count(string(index), `class="card"`))
	assert.Contains(t, string(index), "© 2024 Smart Farming dApp. All rights reserved.")

	// Assets resolve relative to index.html so the export can live under a sub-path.
	assert.Contains(t, string(index), `href="style.css"`)
	assert.Contains(t, string(index), `src="placeholder.svg?`)
	assert.NotContains(t, string(index), `src="/`)

	svg, err := os.ReadFile(filepath.Join(dir, "placeholder.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(svg), `width="150" height="150"`)

	css, err := os.ReadFile(filepath.Join(dir, "style.css"))
	require.NoError(t, err)
	assert.Contains(t, string(css), ".card-name")
}

func TestExportOverwrites(t *testing.T) {
	dir := t.TempDir()
	exp := NewExporter(dir, zerolog.Nop())

	_, err := exp.Export(context.Background(), newRenderer(t, 2023), catalog.Default())
	require.NoError(t, err)

	empty, err := catalog.New()
	require.NoError(t, err)
	res, err := exp.Export(context.Background(), newRenderer(t, 2024), empty)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Cards)

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.NotContains(t, string(index), `class="card"`)
	assert.Contains(t, string(index), "© 2024")
}

func TestExportCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewExporter(t.TempDir(), zerolog.Nop()).Export(ctx, newRenderer(t, 2024), catalog.Default())
	assert.ErrorIs(t, err, context.Canceled)
}
