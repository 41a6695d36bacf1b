// main.go
package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"go-storefront/catalog"
	"go-storefront/config"
	"go-storefront/controllers"
	"go-storefront/logger"
	"go-storefront/middleware"
	"go-storefront/routes"
	"go-storefront/store"
)

func main() {
	// Load configuration from .env / environment variables
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Init(cfg.Environment)

	// Catalog client and session store
	catalogClient := catalog.NewClient(cfg.CatalogURL, cfg.CatalogPageLimit, cfg.CatalogTimeout)
	sessions := store.New(catalogClient, cfg.CatalogTimeout)

	// Initialize controllers
	productController := controllers.NewProductController(sessions)
	cartController := controllers.NewCartController(sessions)
	filterController := controllers.NewFilterController(sessions)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, productController, cartController, filterController)

	// Apply middleware
	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.SessionMiddleware(sessions))

	// Start the server
	log.Info().Str("port", cfg.Port).Str("catalog_url", cfg.CatalogURL).Msg("server is running")
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
