package admin

import (
	"net/http"

	"github.com/johnwards/temple/internal/store"
)

// RegisterRoutes registers all admin API endpoints on the mux.
func RegisterRoutes(mux *http.ServeMux, s *store.SQLiteStore) {
	h := &Handler{store: s}

	mux.HandleFunc("POST /_temple/reset", h.Reset)
	mux.HandleFunc("POST /_temple/seed", h.SeedData)
	mux.HandleFunc("POST /_temple/import", h.Import)
	mux.HandleFunc("GET /_temple/export", h.Export)
}
