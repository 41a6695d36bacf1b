package controllers

import (
	"encoding/json"
	"net/http"

	"go-storefront/models"
	"go-storefront/store"
)

// FilterController handles filter state requests
type FilterController struct {
	Sessions *store.Store
}

// NewFilterController creates a new FilterController
func NewFilterController(sessions *store.Store) *FilterController {
	return &FilterController{
		Sessions: sessions,
	}
}

// SetFilters replaces the session's filter state wholesale
func (fc *FilterController) SetFilters(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromContext(r)
	if !ok {
		http.Error(w, "Session missing", http.StatusInternalServerError)
		return
	}

	var filter models.FilterState
	if err := json.NewDecoder(r.Body).Decode(&filter); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if !filter.SortOrder.Valid() {
		http.Error(w, "Invalid sort order", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, sess.SetFilter(filter))
}

// ClearFilters resets the session's filters to their defaults
func (fc *FilterController) ClearFilters(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromContext(r)
	if !ok {
		http.Error(w, "Session missing", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, sess.ClearFilter())
}
