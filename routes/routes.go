// routes/routes.go
package routes

import (
	"go-storefront/controllers"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, productController *controllers.ProductController, cartController *controllers.CartController, filterController *controllers.FilterController) {
	// Storefront routes
	router.HandleFunc("/storefront", productController.GetStorefront).Methods("GET")
	router.HandleFunc("/catalog/refresh", productController.RefreshCatalog).Methods("POST")

	// Product routes
	router.HandleFunc("/products", productController.GetProducts).Methods("GET")
	router.HandleFunc("/products/{id}", productController.GetProductByID).Methods("GET")
	router.HandleFunc("/categories", productController.GetCategories).Methods("GET")

	// Filter routes
	router.HandleFunc("/filters", filterController.SetFilters).Methods("PUT")
	router.HandleFunc("/filters", filterController.ClearFilters).Methods("DELETE")

	// Cart Routes
	router.HandleFunc("/cart", cartController.GetCart).Methods("GET")
	router.HandleFunc("/cart/items", cartController.AddToCart).Methods("POST")
	router.HandleFunc("/cart/items/{product_id}", cartController.UpdateQuantity).Methods("PUT")
	router.HandleFunc("/cart/items/{product_id}", cartController.RemoveFromCart).Methods("DELETE")
}
