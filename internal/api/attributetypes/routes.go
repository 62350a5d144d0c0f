package attributetypes

import "net/http"

// RegisterRoutes adds all attribute type endpoints to the given mux.
func RegisterRoutes(mux *http.ServeMux, repo Repo) {
	h := &Handler{repo: repo}

	mux.HandleFunc("GET /api/v1/attribute-types", h.List)
	mux.HandleFunc("POST /api/v1/attribute-types", h.Create)
	mux.HandleFunc("GET /api/v1/attribute-types/{type}", h.Get)
	mux.HandleFunc("PATCH /api/v1/attribute-types/{type}", h.Update)
	mux.HandleFunc("DELETE /api/v1/attribute-types/{type}", h.Delete)
}
