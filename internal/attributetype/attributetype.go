// Package attributetype implements the operations on the AttributeType
// catalogue.
package attributetype

import (
	"context"

	"github.com/johnwards/temple/internal/domain"
	"github.com/johnwards/temple/internal/slug"
)

// CreateAttributeTypeRecord stores a new attribute type.
type CreateAttributeTypeRecord interface {
	CreateAttributeTypeRecord(ctx context.Context, t domain.AttributeType) (domain.AttributeTypeRecord, error)
}

// GetAttributeTypeRecord finds an attribute type by slug, or fails with
// NotFound.
type GetAttributeTypeRecord interface {
	GetAttributeTypeRecord(ctx context.Context, slug string) (domain.AttributeTypeRecord, error)
}

// ListAttributeTypeRecords lists the whole catalogue.
type ListAttributeTypeRecords interface {
	ListAttributeTypeRecords(ctx context.Context) ([]domain.AttributeTypeRecord, error)
}

// UpdateAttributeTypeRecord writes the name, slug and description of r.
type UpdateAttributeTypeRecord interface {
	UpdateAttributeTypeRecord(ctx context.Context, r domain.AttributeTypeRecord) (domain.AttributeTypeRecord, error)
}

// DeleteAttributeTypeRecord removes r. A type still used by attributes is a
// FailedPrecondition error.
type DeleteAttributeTypeRecord interface {
	DeleteAttributeTypeRecord(ctx context.Context, r domain.AttributeTypeRecord) error
}

// CreateRequest holds the fields of a new attribute type.
type CreateRequest struct {
	Name        string
	Description string
}

// Create validates the name and stores the attribute type under the slug
// derived from it.
func Create(ctx context.Context, repo CreateAttributeTypeRecord, req CreateRequest) (domain.AttributeType, error) {
	s, err := slug.FromName(req.Name)
	if err != nil {
		return domain.AttributeType{}, err
	}

	rec, err := repo.CreateAttributeTypeRecord(ctx, domain.AttributeType{
		Name:        req.Name,
		Slug:        s,
		Description: domain.Optional(req.Description),
	})
	if err != nil {
		return domain.AttributeType{}, err
	}
	return rec.AttributeType(), nil
}

// Get returns the attribute type with the given slug.
func Get(ctx context.Context, repo GetAttributeTypeRecord, typeSlug string) (domain.AttributeType, error) {
	rec, err := repo.GetAttributeTypeRecord(ctx, typeSlug)
	if err != nil {
		return domain.AttributeType{}, err
	}
	return rec.AttributeType(), nil
}

// List returns the catalogue in repository order.
func List(ctx context.Context, repo ListAttributeTypeRecords) ([]domain.AttributeType, error) {
	recs, err := repo.ListAttributeTypeRecords(ctx)
	if err != nil {
		return nil, err
	}
	types := make([]domain.AttributeType, len(recs))
	for i, r := range recs {
		types[i] = r.AttributeType()
	}
	return types, nil
}

// UpdateRepo is what Update needs.
type UpdateRepo interface {
	GetAttributeTypeRecord
	UpdateAttributeTypeRecord
}

// UpdateRequest patches the attribute type identified by Slug. Nil fields
// are left alone; an empty Description clears it.
type UpdateRequest struct {
	Slug        string
	Name        *string
	Description *string
}

// Update applies req. A new name recomputes the slug.
func Update(ctx context.Context, repo UpdateRepo, req UpdateRequest) (domain.AttributeType, error) {
	var newSlug string
	if req.Name != nil {
		s, err := slug.FromName(*req.Name)
		if err != nil {
			return domain.AttributeType{}, err
		}
		newSlug = s
	}

	rec, err := repo.GetAttributeTypeRecord(ctx, req.Slug)
	if err != nil {
		return domain.AttributeType{}, err
	}
	if req.Name != nil {
		rec.Name = *req.Name
		rec.Slug = newSlug
	}
	if req.Description != nil {
		rec.Description = *req.Description
	}

	rec, err = repo.UpdateAttributeTypeRecord(ctx, rec)
	if err != nil {
		return domain.AttributeType{}, err
	}
	return rec.AttributeType(), nil
}

// DeleteRepo is what Delete needs.
type DeleteRepo interface {
	GetAttributeTypeRecord
	DeleteAttributeTypeRecord
}

// Delete removes the attribute type with the given slug.
func Delete(ctx context.Context, repo DeleteRepo, typeSlug string) error {
	rec, err := repo.GetAttributeTypeRecord(ctx, typeSlug)
	if err != nil {
		return err
	}
	return repo.DeleteAttributeTypeRecord(ctx, rec)
}
