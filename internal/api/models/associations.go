package models

import (
	"net/http"

	"github.com/johnwards/temple/internal/api"
	"github.com/johnwards/temple/internal/model"
)

type associationInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Kind        string `json:"kind"`
	Model       string `json:"model"`
}

func associationRequest(r *http.Request) model.AssociationRequest {
	return model.AssociationRequest{
		ProjectSlug: r.PathValue("project"),
		ModelSlug:   r.PathValue("model"),
		Name:        r.PathValue("association"),
	}
}

// CreateAssociation handles POST /api/v1/projects/{project}/models/{model}/associations.
// The model field holds the slug of the associated model.
func (h *Handler) CreateAssociation(w http.ResponseWriter, r *http.Request) {
	var in associationInput
	if err := api.DecodeJSON(r, &in); err != nil {
		api.WriteDomainError(w, r, err)
		return
	}

	a, err := model.CreateAssociation(r.Context(), h.repo, model.CreateAssociationRequest{
		ProjectSlug:         r.PathValue("project"),
		ModelSlug:           r.PathValue("model"),
		AssociatedModelSlug: in.Model,
		Name:                in.Name,
		Description:         in.Description,
		Kind:                in.Kind,
	})
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}
	api.WriteJSON(w, r, http.StatusCreated, a)
}

// GetAssociation handles GET /api/v1/projects/{project}/models/{model}/associations/{association}.
func (h *Handler) GetAssociation(w http.ResponseWriter, r *http.Request) {
	a, err := model.GetAssociation(r.Context(), h.repo, associationRequest(r))
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}
	api.WriteJSON(w, r, http.StatusOK, a)
}

// DeleteAssociation handles DELETE /api/v1/projects/{project}/models/{model}/associations/{association}.
func (h *Handler) DeleteAssociation(w http.ResponseWriter, r *http.Request) {
	if err := model.DeleteAssociation(r.Context(), h.repo, associationRequest(r)); err != nil {
		api.WriteDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
