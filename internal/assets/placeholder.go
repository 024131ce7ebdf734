package assets

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

const (
	// DefaultSize is the intrinsic width and height of a catalog image.
	DefaultSize = 150
	// MaxSize bounds either dimension of a generated placeholder.
	MaxSize = 4096
)

// Size is the intrinsic size of a placeholder image.
type Size struct {
	Width  int
	Height int
}

// ParseSize reads the width and height hints of a placeholder reference.
// Missing or malformed hints fall back to DefaultSize; values are clamped
// to [1, MaxSize].
func ParseSize(q url.Values) Size {
	return Size{
		Width:  dimension(q.Get("width")),
		Height: dimension(q.Get("height")),
	}
}

func dimension(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultSize
	}
	switch {
	case n < 1:
		return 1
	case n > MaxSize:
		return MaxSize
	}
	return n
}

// Placeholder writes a neutral SVG of the given size with a "W×H" caption.
func Placeholder(w io.Writer, size Size) error {
	fontSize := min(size.Width, size.Height) / 8
	if fontSize < 8 {
		fontSize = 8
	}
	_, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%[1]d" height="%[2]d" viewBox="0 0 %[1]d %[2]d">`+
		`<rect width="100%%" height="100%%" fill="#e5e7eb"/>`+
		`<text x="50%%" y="50%%" dominant-baseline="middle" text-anchor="middle" font-family="sans-serif" font-size="%[3]d" fill="#6b7280">%[1]d×%[2]d</text>`+
		`</svg>`, size.Width, size.Height, fontSize)
	return err
}

// Handler serves placeholder images sized by the request's query string.
func Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := Placeholder(&buf, ParseSize(r.URL.Query())); err != nil {
			http.Error(w, "rendering placeholder", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Cache-Control", "public, max-age=86400")
		w.Write(buf.Bytes())
	})
}
