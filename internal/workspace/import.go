package workspace

import (
	"context"
	"errors"
	"fmt"

	"github.com/johnwards/temple/internal/attributetype"
	"github.com/johnwards/temple/internal/domain"
	"github.com/johnwards/temple/internal/model"
	"github.com/johnwards/temple/internal/project"
	"github.com/johnwards/temple/internal/slug"
)

// ImportRepo is what Import needs.
type ImportRepo interface {
	attributetype.GetAttributeTypeRecord
	attributetype.CreateAttributeTypeRecord
	project.CreateProjectRecord
	project.GetProjectRecord
	project.ArchiveProjectRecord
	model.CreateModelRecord
	model.GetModelRecord
	model.CreateAttributeRecord
	model.CreateAssociationRecord
}

// Import creates everything doc describes. Attribute types that already
// exist are reused; projects must be new. Within a project all models are
// created before any association, so associations may point forward.
//
// Import stops at the first failure and leaves what it created so far.
func Import(ctx context.Context, repo ImportRepo, doc Document) (Summary, error) {
	var sum Summary

	for _, t := range doc.AttributeTypes {
		created, err := ensureAttributeType(ctx, repo, t)
		if err != nil {
			return sum, fmt.Errorf("attribute type %q: %w", t.Name, err)
		}
		if created {
			sum.AttributeTypes++
		}
	}

	for _, p := range doc.Projects {
		if err := importProject(ctx, repo, p, &sum); err != nil {
			return sum, fmt.Errorf("project %q: %w", p.Name, err)
		}
	}
	return sum, nil
}

func ensureAttributeType(ctx context.Context, repo ImportRepo, t AttributeType) (bool, error) {
	_, err := repo.GetAttributeTypeRecord(ctx, slug.Make(t.Name))
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return false, err
	}
	if _, err := attributetype.Create(ctx, repo, attributetype.CreateRequest{Name: t.Name, Description: t.Description}); err != nil {
		return false, err
	}
	return true, nil
}

func importProject(ctx context.Context, repo ImportRepo, p Project, sum *Summary) error {
	created, err := project.Create(ctx, repo, project.CreateRequest{Name: p.Name, Description: p.Description})
	if err != nil {
		return err
	}
	sum.Projects++

	slugs := make([]string, len(p.Models))
	for i, m := range p.Models {
		cm, err := model.Create(ctx, repo, model.CreateRequest{
			ProjectSlug: created.Slug,
			Name:        m.Name,
			Description: m.Description,
		})
		if err != nil {
			return fmt.Errorf("model %q: %w", m.Name, err)
		}
		slugs[i] = cm.Slug
		sum.Models++
	}

	for i, m := range p.Models {
		for _, a := range m.Attributes {
			_, err := model.CreateAttribute(ctx, repo, model.CreateAttributeRequest{
				ProjectSlug:       created.Slug,
				ModelSlug:         slugs[i],
				Name:              a.Name,
				Description:       a.Description,
				AttributeTypeSlug: slug.Make(a.Type),
			})
			if err != nil {
				return fmt.Errorf("model %q: attribute %q: %w", m.Name, a.Name, err)
			}
			sum.Attributes++
		}
	}

	for i, m := range p.Models {
		for _, a := range m.Associations {
			_, err := model.CreateAssociation(ctx, repo, model.CreateAssociationRequest{
				ProjectSlug:         created.Slug,
				ModelSlug:           slugs[i],
				AssociatedModelSlug: slug.Make(a.Model),
				Name:                a.Name,
				Description:         a.Description,
				Kind:                a.Kind,
			})
			if err != nil {
				return fmt.Errorf("model %q: association to %q: %w", m.Name, a.Model, err)
			}
			sum.Associations++
		}
	}

	if p.Archived {
		if _, err := project.Archive(ctx, repo, project.ArchiveRequest{Slug: created.Slug}); err != nil {
			return err
		}
	}
	return nil
}
