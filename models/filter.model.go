package models

// SortOrder selects how the filtered product list is ordered by price.
type SortOrder string

const (
	SortNone      SortOrder = ""
	SortPriceAsc  SortOrder = "price-asc"
	SortPriceDesc SortOrder = "price-desc"
)

// Valid reports whether s is one of the known sort orders.
func (s SortOrder) Valid() bool {
	switch s {
	case SortNone, SortPriceAsc, SortPriceDesc:
		return true
	}
	return false
}

// FilterState holds the user's current search, category and sort choices.
// The zero value means no filtering at all.
type FilterState struct {
	SearchTerm       string    `json:"searchTerm"`
	SelectedCategory string    `json:"selectedCategory"`
	SortOrder        SortOrder `json:"sortOrder"`
}
