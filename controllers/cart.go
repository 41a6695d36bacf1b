package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"go-storefront/cartengine"
	"go-storefront/models"
	"go-storefront/store"
)

// CartController handles cart-related requests
type CartController struct {
	Sessions *store.Store
}

// NewCartController creates a new CartController
func NewCartController(sessions *store.Store) *CartController {
	return &CartController{
		Sessions: sessions,
	}
}

// GetCart returns the session's cart with its totals
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromContext(r)
	if !ok {
		http.Error(w, "Session missing", http.StatusInternalServerError)
		return
	}

	view := sess.View()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"cart":   view.Cart,
		"totals": view.Totals,
	})
}

// AddToCart adds one unit of a product to the session's cart
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromContext(r)
	if !ok {
		http.Error(w, "Session missing", http.StatusInternalServerError)
		return
	}

	var body struct {
		ProductID int `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	product, found := sess.Product(body.ProductID)
	if !found {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	view, changed, err := sess.UpdateCart(func(cart models.Cart) models.Cart {
		return cartengine.AddItem(cart, product)
	})
	if errors.Is(err, store.ErrCatalogNotReady) {
		http.Error(w, "Catalog not ready", http.StatusConflict)
		return
	}
	if !changed {
		log.Debug().Int("product_id", product.ID).Msg("add to cart was a no-op, stock ceiling reached")
	}

	writeJSON(w, http.StatusOK, view)
}

// UpdateQuantity replaces the quantity of one cart line. A quantity of
// zero or below removes the line.
func (cc *CartController) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromContext(r)
	if !ok {
		http.Error(w, "Session missing", http.StatusInternalServerError)
		return
	}

	params := mux.Vars(r)
	productID, err := strconv.Atoi(params["product_id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	view, changed, err := sess.UpdateCart(func(cart models.Cart) models.Cart {
		return cartengine.SetQuantity(cart, productID, body.Quantity)
	})
	if errors.Is(err, store.ErrCatalogNotReady) {
		http.Error(w, "Catalog not ready", http.StatusConflict)
		return
	}
	if !changed {
		log.Debug().Int("product_id", productID).Msg("quantity update was a no-op")
	}

	writeJSON(w, http.StatusOK, view)
}

// RemoveFromCart removes a product's line from the session's cart
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromContext(r)
	if !ok {
		http.Error(w, "Session missing", http.StatusInternalServerError)
		return
	}

	params := mux.Vars(r)
	productID, err := strconv.Atoi(params["product_id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	view, _, err := sess.UpdateCart(func(cart models.Cart) models.Cart {
		return cartengine.RemoveItem(cart, productID)
	})
	if errors.Is(err, store.ErrCatalogNotReady) {
		http.Error(w, "Catalog not ready", http.StatusConflict)
		return
	}

	writeJSON(w, http.StatusOK, view)
}
