package controllers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"go-storefront/store"
)

// ProductController handles storefront and catalog requests
type ProductController struct {
	Sessions *store.Store
}

// NewProductController creates a new ProductController
func NewProductController(sessions *store.Store) *ProductController {
	return &ProductController{
		Sessions: sessions,
	}
}

// GetStorefront returns the full composed storefront view for the session
func (pc *ProductController) GetStorefront(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromContext(r)
	if !ok {
		http.Error(w, "Session missing", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, sess.View())
}

// GetProducts returns the filtered product list
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromContext(r)
	if !ok {
		http.Error(w, "Session missing", http.StatusInternalServerError)
		return
	}

	view := sess.View()
	writeJSON(w, http.StatusOK, view.FilteredProducts)
}

// GetProductByID returns a single product from the loaded catalog
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromContext(r)
	if !ok {
		http.Error(w, "Session missing", http.StatusInternalServerError)
		return
	}

	params := mux.Vars(r)
	id, err := strconv.Atoi(params["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	product, found := sess.Product(id)
	if !found {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// GetCategories returns the distinct categories of the full catalog
func (pc *ProductController) GetCategories(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromContext(r)
	if !ok {
		http.Error(w, "Session missing", http.StatusInternalServerError)
		return
	}

	view := sess.View()
	writeJSON(w, http.StatusOK, view.Categories)
}

// RefreshCatalog triggers a fresh catalog load for the session. The new
// load replaces the catalog wholesale once it commits.
func (pc *ProductController) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromContext(r)
	if !ok {
		http.Error(w, "Session missing", http.StatusInternalServerError)
		return
	}

	pc.Sessions.StartLoad(sess)
	writeJSON(w, http.StatusAccepted, sess.View())
}
