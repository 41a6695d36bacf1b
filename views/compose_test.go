package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-storefront/models"
)

func TestComposeStorefrontWhileLoading(t *testing.T) {
	cart := models.Cart{Items: []models.CartLine{
		{Product: models.Product{ID: 1, Price: 20, Stock: 2}, Quantity: 2},
	}}

	view := ComposeStorefront(fixtureCatalog(), models.FilterState{}, cart, true, "")

	assert.True(t, view.Loading)
	assert.Empty(t, view.FilteredProducts)
	assert.Empty(t, view.Categories)
	assert.Zero(t, view.TotalProducts)
	// Cart and totals are always reported
	assert.Equal(t, cart, view.Cart)
	assert.Equal(t, 2, view.Totals.TotalItems)
}

func TestComposeStorefrontOnLoadError(t *testing.T) {
	cart := models.Cart{Items: []models.CartLine{
		{Product: models.Product{ID: 1, Price: 20, Stock: 2}, Quantity: 1},
	}}

	view := ComposeStorefront(fixtureCatalog(), models.FilterState{}, cart, false, "catalog load failed: boom")

	assert.Equal(t, "catalog load failed: boom", view.Error)
	assert.Empty(t, view.FilteredProducts)
	assert.Equal(t, cart, view.Cart)
}

func TestComposeStorefrontCategoriesIgnoreNarrowingFilters(t *testing.T) {
	full := ComposeStorefront(fixtureCatalog(), models.FilterState{}, models.Cart{}, false, "")
	narrowed := ComposeStorefront(fixtureCatalog(), models.FilterState{
		SearchTerm:       "shirt",
		SelectedCategory: "apparel",
	}, models.Cart{}, false, "")

	assert.Equal(t, full.Categories, narrowed.Categories)
	assert.Equal(t, full.TotalProducts, narrowed.TotalProducts)
}

func TestComposeStorefrontEmptyResults(t *testing.T) {
	view := ComposeStorefront(fixtureCatalog(), models.FilterState{SearchTerm: "submarine"}, models.Cart{}, false, "")

	assert.True(t, view.EmptyResults)
	assert.Empty(t, view.Error)
}

func TestComposeStorefrontEmptyCatalogIsNotAnError(t *testing.T) {
	view := ComposeStorefront([]models.Product{}, models.FilterState{SearchTerm: "shirt"}, models.Cart{}, false, "")

	assert.Empty(t, view.Error)
	assert.False(t, view.Loading)
	assert.Empty(t, view.FilteredProducts)
	assert.True(t, view.EmptyResults)
}
