package cartengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront/models"
)

var (
	shirt = models.Product{ID: 1, Title: "Red Shirt", Price: 20, Category: "apparel", Stock: 2}
	mug   = models.Product{ID: 2, Title: "Blue Mug", Price: 8, Category: "home", Stock: 0}
	lamp  = models.Product{ID: 3, Title: "Desk Lamp", Price: 35, Category: "home", Stock: 5}
)

func cartOf(lines ...models.CartLine) models.Cart {
	return models.Cart{Items: lines}
}

func TestAddItemOutOfStockIsNoOp(t *testing.T) {
	cart := cartOf()

	got := AddItem(cart, mug)

	assert.Empty(t, got.Items)
}

func TestAddItemAppendsNewLine(t *testing.T) {
	cart := cartOf(models.CartLine{Product: shirt, Quantity: 1})

	got := AddItem(cart, lamp)

	require.Len(t, got.Items, 2)
	assert.Equal(t, models.CartLine{Product: shirt, Quantity: 1}, got.Items[0])
	assert.Equal(t, models.CartLine{Product: lamp, Quantity: 1}, got.Items[1])
}

func TestAddItemIncrementsBelowCeiling(t *testing.T) {
	cart := cartOf(
		models.CartLine{Product: shirt, Quantity: 1},
		models.CartLine{Product: lamp, Quantity: 3},
	)

	got := AddItem(cart, shirt)

	require.Len(t, got.Items, 2)
	assert.Equal(t, 2, got.Items[0].Quantity)
	// Other lines are unchanged
	assert.Equal(t, models.CartLine{Product: lamp, Quantity: 3}, got.Items[1])
}

func TestAddItemAtCeilingIsNoOp(t *testing.T) {
	cart := cartOf(models.CartLine{Product: shirt, Quantity: shirt.Stock})

	got := AddItem(cart, shirt)

	assert.Equal(t, cart, got)
}

func TestAddItemDoesNotMutateInput(t *testing.T) {
	cart := cartOf(models.CartLine{Product: shirt, Quantity: 1})

	AddItem(cart, shirt)

	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestSetQuantity(t *testing.T) {
	base := cartOf(
		models.CartLine{Product: shirt, Quantity: 1},
		models.CartLine{Product: lamp, Quantity: 2},
	)

	tests := []struct {
		name      string
		productID int
		quantity  int
		want      []models.CartLine
	}{
		{
			name:      "valid quantity replaces the line's quantity",
			productID: lamp.ID,
			quantity:  4,
			want: []models.CartLine{
				{Product: shirt, Quantity: 1},
				{Product: lamp, Quantity: 4},
			},
		},
		{
			name:      "zero removes the line",
			productID: shirt.ID,
			quantity:  0,
			want:      []models.CartLine{{Product: lamp, Quantity: 2}},
		},
		{
			name:      "negative removes the line",
			productID: shirt.ID,
			quantity:  -3,
			want:      []models.CartLine{{Product: lamp, Quantity: 2}},
		},
		{
			name:      "quantity above stock is a no-op",
			productID: shirt.ID,
			quantity:  shirt.Stock + 1,
			want:      base.Items,
		},
		{
			name:      "unknown product id is a no-op",
			productID: 99,
			quantity:  1,
			want:      base.Items,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SetQuantity(base, tt.productID, tt.quantity)
			assert.Equal(t, tt.want, got.Items)
		})
	}
}

func TestRemoveItem(t *testing.T) {
	cart := cartOf(
		models.CartLine{Product: shirt, Quantity: 1},
		models.CartLine{Product: lamp, Quantity: 2},
	)

	got := RemoveItem(cart, shirt.ID)

	require.Len(t, got.Items, 1)
	assert.Equal(t, lamp.ID, got.Items[0].Product.ID)

	// Removing an absent product leaves the lines as they are
	got = RemoveItem(cart, 99)
	assert.Equal(t, cart.Items, got.Items)
}

func TestTotals(t *testing.T) {
	cart := cartOf(
		models.CartLine{Product: models.Product{ID: 10, Price: 10, Stock: 9}, Quantity: 2},
		models.CartLine{Product: models.Product{ID: 11, Price: 5, Stock: 9}, Quantity: 3},
	)

	totals := Totals(cart)

	assert.Equal(t, 5, totals.TotalItems)
	assert.Equal(t, 35.0, totals.TotalPrice)
}

func TestTotalsEmptyCart(t *testing.T) {
	totals := Totals(models.Cart{})

	assert.Equal(t, 0, totals.TotalItems)
	assert.Equal(t, 0.0, totals.TotalPrice)
}
