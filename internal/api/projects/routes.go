package projects

import "net/http"

// RegisterRoutes adds all project endpoints to the given mux.
func RegisterRoutes(mux *http.ServeMux, repo Repo) {
	h := &Handler{repo: repo}

	mux.HandleFunc("GET /api/v1/projects", h.List)
	mux.HandleFunc("POST /api/v1/projects", h.Create)
	mux.HandleFunc("GET /api/v1/projects/{project}", h.Get)
	mux.HandleFunc("PATCH /api/v1/projects/{project}", h.Update)
	mux.HandleFunc("DELETE /api/v1/projects/{project}", h.Delete)
	mux.HandleFunc("POST /api/v1/projects/{project}/archive", h.Archive)
	mux.HandleFunc("DELETE /api/v1/projects/{project}/archive", h.Restore)
}
