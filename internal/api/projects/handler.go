package projects

import (
	"net/http"

	"github.com/johnwards/temple/internal/api"
	"github.com/johnwards/temple/internal/domain"
	"github.com/johnwards/temple/internal/project"
)

// Repo is every project capability the handlers use.
type Repo interface {
	project.CreateProjectRecord
	project.GetProjectRecord
	project.ListProjectRecords
	project.UpdateProjectRecord
	project.ArchiveProjectRecord
	project.RestoreProjectRecord
	project.DeleteProjectRecord
}

// Handler handles project HTTP requests.
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

// List handles GET /api/v1/projects. The archived query parameter selects
// active (default), archived or any projects.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := domain.ParseArchiveFilter(r.URL.Query().Get("archived"))
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}

	projects, err := project.List(r.Context(), h.repo, project.ListRequest{Filter: filter})
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}
	api.WriteJSON(w, r, http.StatusOK, api.Collection(projects))
}

// Create handles POST /api/v1/projects.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in createInput
	if err := api.DecodeJSON(r, &in); err != nil {
		api.WriteDomainError(w, r, err)
		return
	}

	p, err := project.Create(r.Context(), h.repo, project.CreateRequest{Name: in.Name, Description: in.Description})
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}
	api.WriteJSON(w, r, http.StatusCreated, p)
}

// Get handles GET /api/v1/projects/{project}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := project.Get(r.Context(), h.repo, project.GetRequest{Slug: r.PathValue("project")})
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}
	api.WriteJSON(w, r, http.StatusOK, p)
}

// Update handles PATCH /api/v1/projects/{project}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var in updateInput
	if err := api.DecodeJSON(r, &in); err != nil {
		api.WriteDomainError(w, r, err)
		return
	}

	p, err := project.Update(r.Context(), h.repo, project.UpdateRequest{
		Slug:        r.PathValue("project"),
		Name:        in.Name,
		Description: in.Description,
	})
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}
	api.WriteJSON(w, r, http.StatusOK, p)
}

// Archive handles POST /api/v1/projects/{project}/archive.
func (h *Handler) Archive(w http.ResponseWriter, r *http.Request) {
	p, err := project.Archive(r.Context(), h.repo, project.ArchiveRequest{Slug: r.PathValue("project")})
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}
	api.WriteJSON(w, r, http.StatusOK, p)
}

// Restore handles DELETE /api/v1/projects/{project}/archive.
func (h *Handler) Restore(w http.ResponseWriter, r *http.Request) {
	p, err := project.Restore(r.Context(), h.repo, project.RestoreRequest{Slug: r.PathValue("project")})
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}
	api.WriteJSON(w, r, http.StatusOK, p)
}

// Delete handles DELETE /api/v1/projects/{project}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := project.Delete(r.Context(), h.repo, project.DeleteRequest{Slug: r.PathValue("project")}); err != nil {
		api.WriteDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
