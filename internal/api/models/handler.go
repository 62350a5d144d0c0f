package models

import (
	"net/http"

	"github.com/johnwards/temple/internal/api"
	"github.com/johnwards/temple/internal/attributetype"
	"github.com/johnwards/temple/internal/model"
	"github.com/johnwards/temple/internal/project"
)

// Repo is every model, attribute and association capability the handlers
// use.
type Repo interface {
	project.GetProjectRecord
	attributetype.GetAttributeTypeRecord
	model.CreateModelRecord
	model.GetModelRecord
	model.ListModelRecords
	model.UpdateModelRecord
	model.DeleteModelRecord
	model.CreateAttributeRecord
	model.GetAttributeRecord
	model.ListAttributeRecords
	model.DeleteAttributeRecord
	model.CreateAssociationRecord
	model.GetAssociationRecord
	model.ListAssociationRecords
	model.DeleteAssociationRecord
}

// Handler handles model HTTP requests.
type Handler struct {
	repo Repo
}

type createInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type updateInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func modelRequest(r *http.Request) model.GetRequest {
	return model.GetRequest{ProjectSlug: r.PathValue("project"), ModelSlug: r.PathValue("model")}
}

// List handles GET /api/v1/projects/{project}/models.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	models, err := model.List(r.Context(), h.repo, model.ListRequest{ProjectSlug: r.PathValue("project")})
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}
	api.WriteJSON(w, r, http.StatusOK, api.Collection(models))
}

// Create handles POST /api/v1/projects/{project}/models.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in createInput
	if err := api.DecodeJSON(r, &in); err != nil {
		api.WriteDomainError(w, r, err)
		return
	}

	m, err := model.Create(r.Context(), h.repo, model.CreateRequest{
		ProjectSlug: r.PathValue("project"),
		Name:        in.Name,
		Description: in.Description,
	})
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}
	api.WriteJSON(w, r, http.StatusCreated, m)
}

// Get handles GET /api/v1/projects/{project}/models/{model}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := model.Get(r.Context(), h.repo, modelRequest(r))
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}
	api.WriteJSON(w, r, http.StatusOK, m)
}

// Update handles PATCH /api/v1/projects/{project}/models/{model}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var in updateInput
	if err := api.DecodeJSON(r, &in); err != nil {
		api.WriteDomainError(w, r, err)
		return
	}

	m, err := model.Update(r.Context(), h.repo, model.UpdateRequest{
		ProjectSlug: r.PathValue("project"),
		ModelSlug:   r.PathValue("model"),
		Name:        in.Name,
		Description: in.Description,
	})
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}
	api.WriteJSON(w, r, http.StatusOK, m)
}

// Delete handles DELETE /api/v1/projects/{project}/models/{model}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	err := model.Delete(r.Context(), h.repo, model.DeleteRequest{
		ProjectSlug: r.PathValue("project"),
		ModelSlug:   r.PathValue("model"),
	})
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Overview handles GET /api/v1/projects/{project}/models/{model}/overview.
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	o, err := model.GetOverview(r.Context(), h.repo, modelRequest(r))
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}
	api.WriteJSON(w, r, http.StatusOK, o)
}

// Overviews handles GET /api/v1/projects/{project}/overviews.
func (h *Handler) Overviews(w http.ResponseWriter, r *http.Request) {
	overviews, err := model.ListOverviews(r.Context(), h.repo, model.ListRequest{ProjectSlug: r.PathValue("project")})
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}
	api.WriteJSON(w, r, http.StatusOK, api.Collection(overviews))
}

// Diagram handles GET /api/v1/projects/{project}/models/{model}/diagram.
func (h *Handler) Diagram(w http.ResponseWriter, r *http.Request) {
	d, err := model.GetDiagram(r.Context(), h.repo, modelRequest(r))
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}
	api.WriteText(w, r, http.StatusOK, d)
}

// ProjectDiagram handles GET /api/v1/projects/{project}/diagram.
func (h *Handler) ProjectDiagram(w http.ResponseWriter, r *http.Request) {
	d, err := model.GetProjectDiagram(r.Context(), h.repo, model.ListRequest{ProjectSlug: r.PathValue("project")})
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}
	api.WriteText(w, r, http.StatusOK, d)
}
