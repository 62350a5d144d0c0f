package model

import (
	"context"

	"github.com/johnwards/temple/internal/attributetype"
	"github.com/johnwards/temple/internal/domain"
	"github.com/johnwards/temple/internal/validator"
)

// CreateAttributeRecord stores attribute a of model m, typed by t. A name
// taken within m is a FailedPrecondition error.
type CreateAttributeRecord interface {
	CreateAttributeRecord(ctx context.Context, m domain.ModelRecord, t domain.AttributeTypeRecord, a domain.Attribute) (domain.AttributeRecord, error)
}

// GetAttributeRecord finds an attribute by name, or fails with NotFound.
type GetAttributeRecord interface {
	GetAttributeRecord(ctx context.Context, projectSlug, modelSlug, name string) (domain.AttributeRecord, error)
}

// DeleteAttributeRecord removes r.
type DeleteAttributeRecord interface {
	DeleteAttributeRecord(ctx context.Context, r domain.AttributeRecord) error
}

// CreateAttributeRepo is what CreateAttribute needs.
type CreateAttributeRepo interface {
	GetModelRecord
	attributetype.GetAttributeTypeRecord
	CreateAttributeRecord
}

// CreateAttributeRequest holds the fields of a new attribute.
type CreateAttributeRequest struct {
	ProjectSlug       string
	ModelSlug         string
	Name              string
	Description       string
	AttributeTypeSlug string
}

// CreateAttribute adds an attribute to a model. The attribute type is
// looked up by slug in the catalogue.
func CreateAttribute(ctx context.Context, repo CreateAttributeRepo, req CreateAttributeRequest) (domain.Attribute, error) {
	if err := validator.Name(req.Name); err != nil {
		return domain.Attribute{}, err
	}

	m, err := repo.GetModelRecord(ctx, req.ProjectSlug, req.ModelSlug)
	if err != nil {
		return domain.Attribute{}, err
	}
	t, err := repo.GetAttributeTypeRecord(ctx, req.AttributeTypeSlug)
	if err != nil {
		return domain.Attribute{}, err
	}

	rec, err := repo.CreateAttributeRecord(ctx, m, t, domain.Attribute{
		Name:        req.Name,
		Description: domain.Optional(req.Description),
		Type:        t.AttributeType(),
	})
	if err != nil {
		return domain.Attribute{}, err
	}
	return rec.Attribute(), nil
}

// AttributeRequest identifies an attribute.
type AttributeRequest struct {
	ProjectSlug string
	ModelSlug   string
	Name        string
}

// GetAttribute returns one attribute.
func GetAttribute(ctx context.Context, repo GetAttributeRecord, req AttributeRequest) (domain.Attribute, error) {
	rec, err := repo.GetAttributeRecord(ctx, req.ProjectSlug, req.ModelSlug, req.Name)
	if err != nil {
		return domain.Attribute{}, err
	}
	return rec.Attribute(), nil
}

// DeleteAttributeRepo is what DeleteAttribute needs.
type DeleteAttributeRepo interface {
	GetAttributeRecord
	DeleteAttributeRecord
}

// DeleteAttribute removes one attribute.
func DeleteAttribute(ctx context.Context, repo DeleteAttributeRepo, req AttributeRequest) error {
	rec, err := repo.GetAttributeRecord(ctx, req.ProjectSlug, req.ModelSlug, req.Name)
	if err != nil {
		return err
	}
	return repo.DeleteAttributeRecord(ctx, rec)
}
