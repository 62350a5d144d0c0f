package workspace

import (
	"context"
	"fmt"

	"github.com/johnwards/temple/internal/attributetype"
	"github.com/johnwards/temple/internal/domain"
	"github.com/johnwards/temple/internal/model"
	"github.com/johnwards/temple/internal/project"
)

// ExportRepo is what Export needs.
type ExportRepo interface {
	attributetype.ListAttributeTypeRecords
	project.ListProjectRecords
	model.ListModelRecords
	model.ListAttributeRecords
	model.ListAssociationRecords
}

// Export captures the whole workspace, archived projects included, as a
// Document that Import accepts.
func Export(ctx context.Context, repo ExportRepo) (Document, error) {
	var doc Document

	types, err := attributetype.List(ctx, repo)
	if err != nil {
		return Document{}, err
	}
	for _, t := range types {
		doc.AttributeTypes = append(doc.AttributeTypes, AttributeType{
			Name:        t.Name,
			Description: domain.Deref(t.Description),
		})
	}

	projects, err := project.List(ctx, repo, project.ListRequest{Filter: domain.AnyArchiveState})
	if err != nil {
		return Document{}, err
	}
	for _, p := range projects {
		overviews, err := model.ListOverviews(ctx, repo, model.ListRequest{ProjectSlug: p.Slug})
		if err != nil {
			return Document{}, fmt.Errorf("project %q: %w", p.Name, err)
		}
		dp := fromDomain(p)
		for _, o := range overviews {
			dp.Models = append(dp.Models, exportModel(o))
		}
		doc.Projects = append(doc.Projects, dp)
	}
	return doc, nil
}

func exportModel(o domain.ModelOverview) Model {
	m := Model{
		Name:        o.Model.Name,
		Description: domain.Deref(o.Model.Description),
	}
	for _, a := range o.Attributes {
		m.Attributes = append(m.Attributes, Attribute{
			Name:        a.Name,
			Description: domain.Deref(a.Description),
			Type:        a.Type.Slug,
		})
	}
	for _, a := range o.Associations {
		m.Associations = append(m.Associations, Association{
			Name:        a.Name,
			Description: domain.Deref(a.Description),
			Kind:        a.Kind.String(),
			Model:       a.Model.Name,
		})
	}
	return m
}
