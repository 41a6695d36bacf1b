package controllers

import (
	"encoding/json"
	"net/http"

	"go-storefront/middleware"
	"go-storefront/store"
)

func sessionFromContext(r *http.Request) (*store.Session, bool) {
	sess, ok := r.Context().Value(middleware.SessionContextKey).(*store.Session)
	return sess, ok
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
