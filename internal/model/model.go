// Package model implements the operations on Models, their Attributes and
// Associations, and assembles them into overviews and class diagrams.
package model

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnwards/temple/internal/domain"
	"github.com/johnwards/temple/internal/project"
	"github.com/johnwards/temple/internal/slug"
)

// CreateModelRecord stores a new model in project p. A slug taken within p
// is a FailedPrecondition error.
type CreateModelRecord interface {
	CreateModelRecord(ctx context.Context, p domain.ProjectRecord, m domain.Model) (domain.ModelRecord, error)
}

// GetModelRecord finds a model by its slug within a project, or fails with
// NotFound.
type GetModelRecord interface {
	GetModelRecord(ctx context.Context, projectSlug, modelSlug string) (domain.ModelRecord, error)
}

// ListModelRecords lists the models of a project in no particular order.
type ListModelRecords interface {
	ListModelRecords(ctx context.Context, projectSlug string) ([]domain.ModelRecord, error)
}

// UpdateModelRecord writes the name, slug and description of r.
type UpdateModelRecord interface {
	UpdateModelRecord(ctx context.Context, r domain.ModelRecord) (domain.ModelRecord, error)
}

// DeleteModelRecord removes r together with its attributes and every
// association it takes part in.
type DeleteModelRecord interface {
	DeleteModelRecord(ctx context.Context, r domain.ModelRecord) error
}

// ListAttributeRecords lists the attributes owned by a model.
type ListAttributeRecords interface {
	ListAttributeRecords(ctx context.Context, modelID uuid.UUID) ([]domain.AttributeRecord, error)
}

// ListAssociationRecords lists the associations owned by a model.
type ListAssociationRecords interface {
	ListAssociationRecords(ctx context.Context, modelID uuid.UUID) ([]domain.AssociationRecord, error)
}

// CreateRepo is what Create needs.
type CreateRepo interface {
	project.GetProjectRecord
	CreateModelRecord
}

// CreateRequest holds the fields of a new model.
type CreateRequest struct {
	ProjectSlug string
	Name        string
	Description string
}

// Create stores a model in the project identified by req.ProjectSlug. The
// model slug is derived from the name and only needs to be unique within
// that project.
func Create(ctx context.Context, repo CreateRepo, req CreateRequest) (domain.Model, error) {
	s, err := slug.FromName(req.Name)
	if err != nil {
		return domain.Model{}, err
	}

	p, err := repo.GetProjectRecord(ctx, req.ProjectSlug)
	if err != nil {
		return domain.Model{}, err
	}

	rec, err := repo.CreateModelRecord(ctx, p, domain.Model{
		Name:        req.Name,
		Slug:        s,
		Description: domain.Optional(req.Description),
	})
	if err != nil {
		return domain.Model{}, err
	}
	return rec.Model(), nil
}

// GetRequest identifies a model.
type GetRequest struct {
	ProjectSlug string
	ModelSlug   string
}

// Get returns one model.
func Get(ctx context.Context, repo GetModelRecord, req GetRequest) (domain.Model, error) {
	rec, err := repo.GetModelRecord(ctx, req.ProjectSlug, req.ModelSlug)
	if err != nil {
		return domain.Model{}, err
	}
	return rec.Model(), nil
}

// ListRequest identifies the project whose models are listed.
type ListRequest struct {
	ProjectSlug string
}

// List returns the models of a project in repository order.
func List(ctx context.Context, repo ListModelRecords, req ListRequest) ([]domain.Model, error) {
	recs, err := repo.ListModelRecords(ctx, req.ProjectSlug)
	if err != nil {
		return nil, err
	}
	models := make([]domain.Model, len(recs))
	for i, r := range recs {
		models[i] = r.Model()
	}
	return models, nil
}

// UpdateRepo is what Update needs.
type UpdateRepo interface {
	GetModelRecord
	UpdateModelRecord
}

// UpdateRequest patches a model. Nil fields are left alone; an empty
// Description clears it.
type UpdateRequest struct {
	ProjectSlug string
	ModelSlug   string
	Name        *string
	Description *string
}

// Update applies req to a model. Renaming recomputes the slug.
func Update(ctx context.Context, repo UpdateRepo, req UpdateRequest) (domain.Model, error) {
	var newSlug string
	if req.Name != nil {
		s, err := slug.FromName(*req.Name)
		if err != nil {
			return domain.Model{}, err
		}
		newSlug = s
	}

	rec, err := repo.GetModelRecord(ctx, req.ProjectSlug, req.ModelSlug)
	if err != nil {
		return domain.Model{}, err
	}
	if req.Name != nil {
		rec.Name = *req.Name
		rec.Slug = newSlug
	}
	if req.Description != nil {
		rec.Description = *req.Description
	}

	rec, err = repo.UpdateModelRecord(ctx, rec)
	if err != nil {
		return domain.Model{}, err
	}
	return rec.Model(), nil
}

// DeleteRepo is what Delete needs.
type DeleteRepo interface {
	GetModelRecord
	DeleteModelRecord
}

// DeleteRequest identifies the model to delete.
type DeleteRequest struct {
	ProjectSlug string
	ModelSlug   string
}

// Delete removes a model. Its attributes, the associations it owns and the
// associations pointing at it go with it.
func Delete(ctx context.Context, repo DeleteRepo, req DeleteRequest) error {
	rec, err := repo.GetModelRecord(ctx, req.ProjectSlug, req.ModelSlug)
	if err != nil {
		return err
	}
	return repo.DeleteModelRecord(ctx, rec)
}
