package model

import (
	"context"

	"github.com/go-openapi/inflect"

	"github.com/johnwards/temple/internal/domain"
	"github.com/johnwards/temple/internal/validator"
)

// CreateAssociationRecord stores association a from owner to associated. A
// name taken within owner is a FailedPrecondition error.
type CreateAssociationRecord interface {
	CreateAssociationRecord(ctx context.Context, owner, associated domain.ModelRecord, a domain.Association) (domain.AssociationRecord, error)
}

// GetAssociationRecord finds an association by name within its owning
// model, or fails with NotFound.
type GetAssociationRecord interface {
	GetAssociationRecord(ctx context.Context, projectSlug, modelSlug, name string) (domain.AssociationRecord, error)
}

// DeleteAssociationRecord removes r.
type DeleteAssociationRecord interface {
	DeleteAssociationRecord(ctx context.Context, r domain.AssociationRecord) error
}

// CreateAssociationRepo is what CreateAssociation needs.
type CreateAssociationRepo interface {
	GetModelRecord
	CreateAssociationRecord
}

// CreateAssociationRequest holds the fields of a new association.
type CreateAssociationRequest struct {
	ProjectSlug         string
	ModelSlug           string
	AssociatedModelSlug string
	Name                string
	Description         string
	Kind                string
}

// CreateAssociation links the model to another model of the same project.
// Kind must be one of "belongs_to", "has_one" or "has_many". A blank name
// defaults to the associated model's name, pluralized for has_many.
func CreateAssociation(ctx context.Context, repo CreateAssociationRepo, req CreateAssociationRequest) (domain.Association, error) {
	kind, err := domain.ParseAssociationKind(req.Kind)
	if err != nil {
		return domain.Association{}, err
	}
	if req.Name != "" {
		if err := validator.Name(req.Name); err != nil {
			return domain.Association{}, err
		}
	}

	owner, err := repo.GetModelRecord(ctx, req.ProjectSlug, req.ModelSlug)
	if err != nil {
		return domain.Association{}, err
	}
	associated, err := repo.GetModelRecord(ctx, req.ProjectSlug, req.AssociatedModelSlug)
	if err != nil {
		return domain.Association{}, err
	}

	name := req.Name
	if name == "" {
		name = DefaultAssociationName(kind, associated.Name)
		if err := validator.Name(name); err != nil {
			return domain.Association{}, err
		}
	}

	rec, err := repo.CreateAssociationRecord(ctx, owner, associated, domain.Association{
		Name:        name,
		Description: domain.Optional(req.Description),
		Kind:        kind,
		Model:       associated.Model(),
	})
	if err != nil {
		return domain.Association{}, err
	}
	return rec.Association(), nil
}

// DefaultAssociationName names an association after the model it points
// at: "Author" for belongs_to and has_one, "Authors" for has_many.
func DefaultAssociationName(kind domain.AssociationKind, associatedName string) string {
	if kind == domain.HasMany {
		return inflect.Pluralize(associatedName)
	}
	return associatedName
}

// AssociationRequest identifies an association by its owning model and
// name.
type AssociationRequest struct {
	ProjectSlug string
	ModelSlug   string
	Name        string
}

// GetAssociation returns one association.
func GetAssociation(ctx context.Context, repo GetAssociationRecord, req AssociationRequest) (domain.Association, error) {
	rec, err := repo.GetAssociationRecord(ctx, req.ProjectSlug, req.ModelSlug, req.Name)
	if err != nil {
		return domain.Association{}, err
	}
	return rec.Association(), nil
}

// DeleteAssociationRepo is what DeleteAssociation needs.
type DeleteAssociationRepo interface {
	GetAssociationRecord
	DeleteAssociationRecord
}

// DeleteAssociation removes one association.
func DeleteAssociation(ctx context.Context, repo DeleteAssociationRepo, req AssociationRequest) error {
	rec, err := repo.GetAssociationRecord(ctx, req.ProjectSlug, req.ModelSlug, req.Name)
	if err != nil {
		return err
	}
	return repo.DeleteAssociationRecord(ctx, rec)
}
