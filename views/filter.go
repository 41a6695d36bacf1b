package views

import (
	"sort"
	"strings"

	"go-storefront/models"
)

// Apply derives the visible product list from the full catalog. It is a
// pure function: the input slice is never reordered or modified. Stages
// run in a fixed order, each on the output of the previous one:
// search, then category, then sort.
func Apply(products []models.Product, filter models.FilterState) []models.Product {
	filtered := append([]models.Product(nil), products...)

	// Search by title, case-insensitive substring
	if filter.SearchTerm != "" {
		term := strings.ToLower(filter.SearchTerm)
		kept := filtered[:0]
		for _, product := range filtered {
			if strings.Contains(strings.ToLower(product.Title), term) {
				kept = append(kept, product)
			}
		}
		filtered = kept
	}

	// Filter by exact category
	if filter.SelectedCategory != "" {
		kept := filtered[:0]
		for _, product := range filtered {
			if product.Category == filter.SelectedCategory {
				kept = append(kept, product)
			}
		}
		filtered = kept
	}

	// Sort by price. Stable, so equal-price products keep catalog order.
	switch filter.SortOrder {
	case models.SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case models.SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	}

	return filtered
}

// Categories returns the distinct categories of the full catalog in
// first-occurrence order. It always takes the unfiltered catalog, so the
// category selector never shrinks as filters narrow the result.
func Categories(products []models.Product) []string {
	seen := make(map[string]bool)
	categories := []string{}
	for _, product := range products {
		if !seen[product.Category] {
			seen[product.Category] = true
			categories = append(categories, product.Category)
		}
	}
	return categories
}
