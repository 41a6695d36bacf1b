package cartengine

import (
	"go-storefront/models"
)

// Cart operations are pure with respect to the cart they return: given a
// cart they produce a new one and never touch the input lines. Invalid
// requests (out-of-stock add, over-ceiling quantity, unknown product id)
// degrade to a no-op rather than an error; the HTTP layer is expected to
// disable those actions up front.

// AddItem adds one unit of product to the cart. A new line starts at
// quantity 1; an existing line is incremented only while below the
// product's stock ceiling.
func AddItem(cart models.Cart, product models.Product) models.Cart {
	if product.Stock == 0 {
		return cart
	}

	for i, line := range cart.Items {
		if line.Product.ID == product.ID {
			if line.Quantity >= product.Stock {
				return cart
			}
			items := cloneItems(cart.Items)
			items[i].Quantity++
			return models.Cart{Items: items}
		}
	}

	items := cloneItems(cart.Items)
	items = append(items, models.CartLine{Product: product, Quantity: 1})
	return models.Cart{Items: items}
}

// SetQuantity replaces the quantity of the line for productID. A quantity
// of zero or below removes the line entirely; a quantity above the
// product's stock leaves the cart unchanged.
func SetQuantity(cart models.Cart, productID int, quantity int) models.Cart {
	if quantity <= 0 {
		return RemoveItem(cart, productID)
	}

	for i, line := range cart.Items {
		if line.Product.ID == productID {
			if quantity > line.Product.Stock {
				return cart
			}
			items := cloneItems(cart.Items)
			items[i].Quantity = quantity
			return models.Cart{Items: items}
		}
	}

	return cart
}

// RemoveItem removes the line for productID if present
func RemoveItem(cart models.Cart, productID int) models.Cart {
	updated := make([]models.CartLine, 0, len(cart.Items))
	for _, line := range cart.Items {
		if line.Product.ID != productID {
			updated = append(updated, line)
		}
	}
	return models.Cart{Items: updated}
}

// Totals recomputes the cart aggregates from the current lines
func Totals(cart models.Cart) models.CartTotals {
	var totals models.CartTotals
	for _, line := range cart.Items {
		totals.TotalItems += line.Quantity
		totals.TotalPrice += float64(line.Quantity) * line.Product.Price
	}
	return totals
}

func cloneItems(items []models.CartLine) []models.CartLine {
	cloned := make([]models.CartLine, len(items))
	copy(cloned, items)
	return cloned
}
