package models

import (
	"net/http"

	"github.com/johnwards/temple/internal/api"
	"github.com/johnwards/temple/internal/model"
)

type attributeInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

func attributeRequest(r *http.Request) model.AttributeRequest {
	return model.AttributeRequest{
		ProjectSlug: r.PathValue("project"),
		ModelSlug:   r.PathValue("model"),
		Name:        r.PathValue("attribute"),
	}
}

// CreateAttribute handles POST /api/v1/projects/{project}/models/{model}/attributes.
// The type field holds an attribute type slug.
func (h *Handler) CreateAttribute(w http.ResponseWriter, r *http.Request) {
	var in attributeInput
	if err := api.DecodeJSON(r, &in); err != nil {
		api.WriteDomainError(w, r, err)
		return
	}

	a, err := model.CreateAttribute(r.Context(), h.repo, model.CreateAttributeRequest{
		ProjectSlug:       r.PathValue("project"),
		ModelSlug:         r.PathValue("model"),
		Name:              in.Name,
		Description:       in.Description,
		AttributeTypeSlug: in.Type,
	})
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}
	api.WriteJSON(w, r, http.StatusCreated, a)
}

// GetAttribute handles GET /api/v1/projects/{project}/models/{model}/attributes/{attribute}.
func (h *Handler) GetAttribute(w http.ResponseWriter, r *http.Request) {
	a, err := model.GetAttribute(r.Context(), h.repo, attributeRequest(r))
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}
	api.WriteJSON(w, r, http.StatusOK, a)
}

// DeleteAttribute handles DELETE /api/v1/projects/{project}/models/{model}/attributes/{attribute}.
func (h *Handler) DeleteAttribute(w http.ResponseWriter, r *http.Request) {
	if err := model.DeleteAttribute(r.Context(), h.repo, attributeRequest(r)); err != nil {
		api.WriteDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
