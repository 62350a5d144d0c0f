package models

import "net/http"

// RegisterRoutes adds all model, attribute, association, overview and
// diagram endpoints to the given mux.
func RegisterRoutes(mux *http.ServeMux, repo Repo) {
	h := &Handler{repo: repo}

	mux.HandleFunc("GET /api/v1/projects/{project}/models", h.List)
	mux.HandleFunc("POST /api/v1/projects/{project}/models", h.Create)
	mux.HandleFunc("GET /api/v1/projects/{project}/models/{model}", h.Get)
	mux.HandleFunc("PATCH /api/v1/projects/{project}/models/{model}", h.Update)
	mux.HandleFunc("DELETE /api/v1/projects/{project}/models/{model}", h.Delete)

	mux.HandleFunc("GET /api/v1/projects/{project}/overviews", h.Overviews)
	mux.HandleFunc("GET /api/v1/projects/{project}/models/{model}/overview", h.Overview)
	mux.HandleFunc("GET /api/v1/projects/{project}/diagram", h.ProjectDiagram)
	mux.HandleFunc("GET /api/v1/projects/{project}/models/{model}/diagram", h.Diagram)

	mux.HandleFunc("POST /api/v1/projects/{project}/models/{model}/attributes", h.CreateAttribute)
	mux.HandleFunc("GET /api/v1/projects/{project}/models/{model}/attributes/{attribute}", h.GetAttribute)
	mux.HandleFunc("DELETE /api/v1/projects/{project}/models/{model}/attributes/{attribute}", h.DeleteAttribute)

	mux.HandleFunc("POST /api/v1/projects/{project}/models/{model}/associations", h.CreateAssociation)
	mux.HandleFunc("GET /api/v1/projects/{project}/models/{model}/associations/{association}", h.GetAssociation)
	mux.HandleFunc("DELETE /api/v1/projects/{project}/models/{model}/associations/{association}", h.DeleteAssociation)
}
