package views

import (
	"go-storefront/cartengine"
	"go-storefront/models"
)

// ComposeStorefront stitches loader state, filter state and cart state into
// the snapshot the presentation layer renders. While a load is outstanding
// or failed, the product view is withheld; the cart and its totals are
// always reported so a load failure never clobbers an existing cart.
func ComposeStorefront(catalog []models.Product, filter models.FilterState, cart models.Cart, loading bool, loadErr string) models.StorefrontView {
	view := models.StorefrontView{
		Loading:          loading,
		Error:            loadErr,
		Categories:       []string{},
		FilteredProducts: []models.Product{},
		Cart:             cart,
		Totals:           cartengine.Totals(cart),
	}

	if loading || loadErr != "" {
		return view
	}

	view.TotalProducts = len(catalog)
	view.Categories = Categories(catalog)
	view.FilteredProducts = Apply(catalog, filter)
	view.EmptyResults = len(view.FilteredProducts) == 0
	return view
}
