package catalog

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	require.Equal(t, 6, c.Len())

	var names []string
	seen := make(map[int]bool)
	for e := range c.All() {
		names = append(names, e.Name)
		assert.False(t, seen[e.ID], "duplicate id %d", e.ID)
		seen[e.ID] = true
		assert.Equal(t, PlaceholderImage, e.Image)
	}
	assert.Equal(t, []string{"Rice", "Wheat", "Onion", "Brinjal", "Rajma", "Bengal Gram"}, names)
}

func TestEntriesReturnsCopy(t *testing.T) {
	c := Default()
	entries := c.Entries()
	entries[0].Name = "Barley"

	first, ok := c.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "Rice", first.Name)
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New(
		Entry{ID: 1, Name: "Rice"},
		Entry{ID: 1, Name: "Wheat"},
	)
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestNewRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
	}{
		{"zero id", Entry{ID: 0, Name: "Rice"}},
		{"negative id", Entry{ID: -3, Name: "Rice"}},
		{"empty name", Entry{ID: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entry)
			assert.ErrorIs(t, err, ErrInvalidEntry)
		})
	}
}

func TestNewEmpty(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Entries())

	var zero Catalog
	assert.Equal(t, 0, zero.Len())
	_, ok := zero.Lookup(1)
	assert.False(t, ok)
}

func TestMissingImageDegradesToPlaceholder(t *testing.T) {
	c, err := New(Entry{ID: 7, Name: "Moong"})
	require.NoError(t, err)
	e, ok := c.Lookup(7)
	require.True(t, ok)
	assert.Equal(t, PlaceholderImage, e.Image)
}

func TestRoute(t *testing.T) {
	assert.Equal(t, "/pulse/4", Entry{ID: 4, Name: "Brinjal"}.Route())
	assert.Equal(t, "/pulse/12", DetailRoute(12))
}

func TestAllStopsEarly(t *testing.T) {
	var got []int
	for e := range Default().All() {
		got = append(got, e.ID)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yml")
	doc := `entries:
  - id: 1
    name: Rice
  - id: 2
    name: Wheat
    image: /img/wheat.png
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	entries := c.Entries()
	assert.True(t, slices.Equal([]string{"Rice", "Wheat"}, []string{entries[0].Name, entries[1].Name}))
	assert.Equal(t, PlaceholderImage, entries[0].Image)
	assert.Equal(t, "/img/wheat.png", entries[1].Image)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)

	_, err = Parse([]byte("entries: [{id: 1, name: Rice}, {id: 1, name: Dal}]"))
	assert.ErrorIs(t, err, ErrDuplicateID)

	_, err = Parse([]byte("entries: {"))
	assert.Error(t, err)
}
