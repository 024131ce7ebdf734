package catalog

import (
	"errors"
	"fmt"
	"iter"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// PlaceholderImage is the image reference used by the default catalog and by
// any loaded entry that does not name its own asset. It is relative so an
// exported page works when hosted under a sub-path.
const PlaceholderImage = "placeholder.svg?height=150&width=150"

var (
	// ErrDuplicateID is returned when two entries share an id.
	ErrDuplicateID = errors.New("duplicate catalog id")
	// ErrInvalidEntry is returned when an entry fails field validation.
	ErrInvalidEntry = errors.New("invalid catalog entry")
)

// Entry is a single product listing.
type Entry struct {
	ID    int    `yaml:"id" json:"id" validate:"gt=0"`
	Name  string `yaml:"name" json:"name" validate:"required"`
	Image string `yaml:"image" json:"image"`
}

// Route returns the detail-page route for the entry.
func (e Entry) Route() string {
	return DetailRoute(e.ID)
}

// DetailRoute builds the detail-page route for a catalog id.
func DetailRoute(id int) string {
	return "/pulse/" + strconv.Itoa(id)
}

// Catalog is an immutable, ordered sequence of entries with unique ids.
// The zero value is an empty catalog.
type Catalog struct {
	entries []Entry
	index   map[int]int
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// New validates entries and returns a catalog holding a private copy of them.
// Order is preserved. An empty argument list yields an empty catalog.
func New(entries ...Entry) (Catalog, error) {
	c := Catalog{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[int]int, len(entries)),
	}
	for i, e := range entries {
		if err := validate.Struct(e); err != nil {
			return Catalog{}, fmt.Errorf("%w at position %d: %s", ErrInvalidEntry, i, describe(err))
		}
		if prev, ok := c.index[e.ID]; ok {
			return Catalog{}, fmt.Errorf("%w %d at positions %d and %d", ErrDuplicateID, e.ID, prev, i)
		}
		if e.Image == "" {
			e.Image = PlaceholderImage
		}
		c.index[e.ID] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// MustNew is like New but panics on invalid input. It is meant for
// package-level literals.
func MustNew(entries ...Entry) Catalog {
	c, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of entries.
func (c Catalog) Len() int { return len(c.entries) }

// Entries returns a copy of the entries in catalog order.
func (c Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// All iterates over the entries in catalog order.
func (c Catalog) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range c.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Lookup returns the entry with the given id.
func (c Catalog) Lookup(id int) (Entry, bool) {
	i, ok := c.index[id]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// describe flattens validator field errors into "field: tag" pairs.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msg := ""
	for i, fe := range verrs {
		if i > 0 {
			msg += ", "
		}
		msg += fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag())
	}
	return msg
}
