// Package project implements the operations on Projects.
//
// Every operation depends only on the repository capabilities it calls, each
// declared as a one-method interface, so a caller can hand in any adapter
// that implements them.
package project

import (
	"context"

	"github.com/johnwards/temple/internal/domain"
	"github.com/johnwards/temple/internal/slug"
)

// CreateProjectRecord stores a new project. A taken slug is a
// FailedPrecondition error.
type CreateProjectRecord interface {
	CreateProjectRecord(ctx context.Context, p domain.Project) (domain.ProjectRecord, error)
}

// GetProjectRecord finds a project by slug, or fails with NotFound.
type GetProjectRecord interface {
	GetProjectRecord(ctx context.Context, slug string) (domain.ProjectRecord, error)
}

// ListProjectRecords lists the projects passing filter.
type ListProjectRecords interface {
	ListProjectRecords(ctx context.Context, filter domain.ArchiveFilter) ([]domain.ProjectRecord, error)
}

// UpdateProjectRecord writes the name, slug and description of r.
type UpdateProjectRecord interface {
	UpdateProjectRecord(ctx context.Context, r domain.ProjectRecord) (domain.ProjectRecord, error)
}

// ArchiveProjectRecord sets the archive mark of r to the current time.
type ArchiveProjectRecord interface {
	ArchiveProjectRecord(ctx context.Context, r domain.ProjectRecord) (domain.ProjectRecord, error)
}

// RestoreProjectRecord clears the archive mark of r.
type RestoreProjectRecord interface {
	RestoreProjectRecord(ctx context.Context, r domain.ProjectRecord) (domain.ProjectRecord, error)
}

// DeleteProjectRecord removes r.
type DeleteProjectRecord interface {
	DeleteProjectRecord(ctx context.Context, r domain.ProjectRecord) error
}

// CreateRequest holds the fields of a new project.
type CreateRequest struct {
	Name        string
	Description string
}

// Create validates the name, derives the slug from it and stores the
// project.
func Create(ctx context.Context, repo CreateProjectRecord, req CreateRequest) (domain.Project, error) {
	s, err := slug.FromName(req.Name)
	if err != nil {
		return domain.Project{}, err
	}

	rec, err := repo.CreateProjectRecord(ctx, domain.Project{
		Name:        req.Name,
		Slug:        s,
		Description: domain.Optional(req.Description),
	})
	if err != nil {
		return domain.Project{}, err
	}
	return rec.Project(), nil
}

// GetRequest identifies a project.
type GetRequest struct {
	Slug string
}

// Get returns the project with the given slug.
func Get(ctx context.Context, repo GetProjectRecord, req GetRequest) (domain.Project, error) {
	rec, err := repo.GetProjectRecord(ctx, req.Slug)
	if err != nil {
		return domain.Project{}, err
	}
	return rec.Project(), nil
}

// ListRequest filters the project list.
type ListRequest struct {
	Filter domain.ArchiveFilter
}

// List returns the projects passing the filter, in repository order.
func List(ctx context.Context, repo ListProjectRecords, req ListRequest) ([]domain.Project, error) {
	recs, err := repo.ListProjectRecords(ctx, req.Filter)
	if err != nil {
		return nil, err
	}
	projects := make([]domain.Project, len(recs))
	for i, r := range recs {
		projects[i] = r.Project()
	}
	return projects, nil
}

// UpdateRepo is what Rename and Update need.
type UpdateRepo interface {
	GetProjectRecord
	UpdateProjectRecord
}

// RenameRequest renames the project identified by Slug.
type RenameRequest struct {
	Slug string
	Name string
}

// Rename changes the name and recomputes the slug from it.
func Rename(ctx context.Context, repo UpdateRepo, req RenameRequest) (domain.Project, error) {
	return Update(ctx, repo, UpdateRequest{Slug: req.Slug, Name: &req.Name})
}

// UpdateRequest patches a project. Nil fields are left alone; an empty
// Description clears it.
type UpdateRequest struct {
	Slug        string
	Name        *string
	Description *string
}

// Update applies req to the project identified by req.Slug.
func Update(ctx context.Context, repo UpdateRepo, req UpdateRequest) (domain.Project, error) {
	var newSlug string
	if req.Name != nil {
		s, err := slug.FromName(*req.Name)
		if err != nil {
			return domain.Project{}, err
		}
		newSlug = s
	}

	rec, err := repo.GetProjectRecord(ctx, req.Slug)
	if err != nil {
		return domain.Project{}, err
	}

	if req.Name != nil {
		rec.Name = *req.Name
		rec.Slug = newSlug
	}
	if req.Description != nil {
		rec.Description = *req.Description
	}

	rec, err = repo.UpdateProjectRecord(ctx, rec)
	if err != nil {
		return domain.Project{}, err
	}
	return rec.Project(), nil
}

// ArchiveRepo is what Archive needs.
type ArchiveRepo interface {
	GetProjectRecord
	ArchiveProjectRecord
}

// ArchiveRequest identifies the project to archive.
type ArchiveRequest struct {
	Slug string
}

// Archive marks the project as archived. Archiving an archived project is a
// FailedPrecondition error; its models are left untouched.
func Archive(ctx context.Context, repo ArchiveRepo, req ArchiveRequest) (domain.Project, error) {
	rec, err := repo.GetProjectRecord(ctx, req.Slug)
	if err != nil {
		return domain.Project{}, err
	}
	if rec.ArchivedAt != nil {
		return domain.Project{}, domain.FailedPrecondition("project %q is already archived", rec.Slug)
	}

	rec, err = repo.ArchiveProjectRecord(ctx, rec)
	if err != nil {
		return domain.Project{}, err
	}
	return rec.Project(), nil
}

// RestoreRepo is what Restore needs.
type RestoreRepo interface {
	GetProjectRecord
	RestoreProjectRecord
}

// RestoreRequest identifies the project to restore.
type RestoreRequest struct {
	Slug string
}

// Restore clears the archive mark. Restoring an active project is a
// FailedPrecondition error.
func Restore(ctx context.Context, repo RestoreRepo, req RestoreRequest) (domain.Project, error) {
	rec, err := repo.GetProjectRecord(ctx, req.Slug)
	if err != nil {
		return domain.Project{}, err
	}
	if rec.ArchivedAt == nil {
		return domain.Project{}, domain.FailedPrecondition("project %q is not archived", rec.Slug)
	}

	rec, err = repo.RestoreProjectRecord(ctx, rec)
	if err != nil {
		return domain.Project{}, err
	}
	return rec.Project(), nil
}

// DeleteRepo is what Delete needs.
type DeleteRepo interface {
	GetProjectRecord
	DeleteProjectRecord
}

// DeleteRequest identifies the project to delete.
type DeleteRequest struct {
	Slug string
}

// Delete removes the project.
func Delete(ctx context.Context, repo DeleteRepo, req DeleteRequest) error {
	rec, err := repo.GetProjectRecord(ctx, req.Slug)
	if err != nil {
		return err
	}
	return repo.DeleteProjectRecord(ctx, rec)
}
