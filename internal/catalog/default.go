package catalog

var defaultCatalog = MustNew(
	Entry{ID: 1, Name: "Rice", Image: PlaceholderImage},
	Entry{ID: 2, Name: "Wheat", Image: PlaceholderImage},
	Entry{ID: 3, Name: "Onion", Image: PlaceholderImage},
	Entry{ID: 4, Name: "Brinjal", Image: PlaceholderImage},
	Entry{ID: 5, Name: "Rajma", Image: PlaceholderImage},
	Entry{ID: 6, Name: "Bengal Gram", Image: PlaceholderImage},
)

// Default returns the built-in pulse catalog.
func Default() Catalog {
	return defaultCatalog
}
