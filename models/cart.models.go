package models

// CartLine represents one product's presence in the cart
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart represents a session's shopping cart. Lines keep insertion order:
// first added, first shown.
type Cart struct {
	Items []CartLine `json:"items"`
}

// CartTotals holds the aggregates derived from the cart lines
type CartTotals struct {
	TotalItems int     `json:"totalItems"`
	TotalPrice float64 `json:"totalPrice"`
}
