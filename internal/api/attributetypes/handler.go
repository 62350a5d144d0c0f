package attributetypes

import (
	"net/http"

	"github.com/johnwards/temple/internal/api"
	"github.com/johnwards/temple/internal/attributetype"
)

// Repo is every attribute type capability the handlers use.
type Repo interface {
	attributetype.CreateAttributeTypeRecord
	attributetype.GetAttributeTypeRecord
	attributetype.ListAttributeTypeRecords
	attributetype.UpdateAttributeTypeRecord
	attributetype.DeleteAttributeTypeRecord
}

// Handler handles attribute type HTTP requests.
type Handler struct {
	repo Repo
}

type input struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type patchInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// List handles GET /api/v1/attribute-types.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	types, err := attributetype.List(r.Context(), h.repo)
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}
	api.WriteJSON(w, r, http.StatusOK, api.Collection(types))
}

// Create handles POST /api/v1/attribute-types.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in input
	if err := api.DecodeJSON(r, &in); err != nil {
		api.WriteDomainError(w, r, err)
		return
	}

	at, err := attributetype.Create(r.Context(), h.repo, attributetype.CreateRequest{Name: in.Name, Description: in.Description})
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}
	api.WriteJSON(w, r, http.StatusCreated, at)
}

// Get handles GET /api/v1/attribute-types/{type}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	at, err := attributetype.Get(r.Context(), h.repo, r.PathValue("type"))
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}
	api.WriteJSON(w, r, http.StatusOK, at)
}

// Update handles PATCH /api/v1/attribute-types/{type}. Absent fields are
// left alone.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var in patchInput
	if err := api.DecodeJSON(r, &in); err != nil {
		api.WriteDomainError(w, r, err)
		return
	}

	at, err := attributetype.Update(r.Context(), h.repo, attributetype.UpdateRequest{
		Slug:        r.PathValue("type"),
		Name:        in.Name,
		Description: in.Description,
	})
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}
	api.WriteJSON(w, r, http.StatusOK, at)
}

// Delete handles DELETE /api/v1/attribute-types/{type}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := attributetype.Delete(r.Context(), h.repo, r.PathValue("type")); err != nil {
		api.WriteDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
