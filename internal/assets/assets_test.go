package assets

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		query string
		want  Size
	}{
		{"height=150&width=150", Size{150, 150}},
		{"width=320&height=200", Size{320, 200}},
		{"", Size{DefaultSize, DefaultSize}},
		{"width=abc&height=", Size{DefaultSize, DefaultSize}},
		{"width=0&height=-5", Size{1, 1}},
		{"width=100000&height=64", Size{MaxSize, 64}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ParseSize(q))
		})
	}
}

func TestPlaceholder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Placeholder(&buf, Size{Width: 150, Height: 150}))

	svg := buf.String()
	assert.True(t, strings.HasPrefix(svg, "<svg "))
	assert.Contains(t, svg, `width="150"`)
	assert.Contains(t, svg, `height="150"`)
	assert.Contains(t, svg, `viewBox="0 0 150 150"`)
	assert.Contains(t, svg, "150×150")
}

func TestHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/placeholder.svg?height=80&width=120", nil)
	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `width="120" height="80"`)
}

func TestStylesheetHandler(t *testing.T) {
	w := httptest.NewRecorder()
	StylesheetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/style.css", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/css; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), ".catalog-grid")
}
