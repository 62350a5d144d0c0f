package model

import (
	"context"
	"sort"

	"github.com/johnwards/temple/internal/diagram"
	"github.com/johnwards/temple/internal/domain"
)

// OverviewRepo is what the overview and diagram operations need.
type OverviewRepo interface {
	GetModelRecord
	ListAttributeRecords
	ListAssociationRecords
}

// ProjectOverviewRepo is what the project-wide overview and diagram
// operations need.
type ProjectOverviewRepo interface {
	ListModelRecords
	ListAttributeRecords
	ListAssociationRecords
}

// GetOverview returns a model with its attributes and associations in the
// order the repository returns them.
func GetOverview(ctx context.Context, repo OverviewRepo, req GetRequest) (domain.ModelOverview, error) {
	m, err := repo.GetModelRecord(ctx, req.ProjectSlug, req.ModelSlug)
	if err != nil {
		return domain.ModelOverview{}, err
	}
	return assemble(ctx, repo, m)
}

// ListOverviews returns an overview of every model of a project, sorted by
// model name. The sort is byte-wise and case-sensitive, which keeps project
// diagrams stable whatever order the repository stores models in.
func ListOverviews(ctx context.Context, repo ProjectOverviewRepo, req ListRequest) ([]domain.ModelOverview, error) {
	models, err := repo.ListModelRecords(ctx, req.ProjectSlug)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(models, func(i, j int) bool {
		return models[i].Name < models[j].Name
	})

	overviews := make([]domain.ModelOverview, 0, len(models))
	for _, m := range models {
		o, err := assemble(ctx, repo, m)
		if err != nil {
			return nil, err
		}
		overviews = append(overviews, o)
	}
	return overviews, nil
}

type childLister interface {
	ListAttributeRecords
	ListAssociationRecords
}

func assemble(ctx context.Context, repo childLister, m domain.ModelRecord) (domain.ModelOverview, error) {
	attrs, err := repo.ListAttributeRecords(ctx, m.ID)
	if err != nil {
		return domain.ModelOverview{}, err
	}
	assocs, err := repo.ListAssociationRecords(ctx, m.ID)
	if err != nil {
		return domain.ModelOverview{}, err
	}

	o := domain.ModelOverview{
		Model:        m.Model(),
		Attributes:   make([]domain.Attribute, len(attrs)),
		Associations: make([]domain.Association, len(assocs)),
	}
	for i, a := range attrs {
		o.Attributes[i] = a.Attribute()
	}
	for i, a := range assocs {
		o.Associations[i] = a.Association()
	}
	return o, nil
}

// GetDiagram renders the class diagram of one model and its associations.
func GetDiagram(ctx context.Context, repo OverviewRepo, req GetRequest) (string, error) {
	o, err := GetOverview(ctx, repo, req)
	if err != nil {
		return "", err
	}
	return diagram.Overviews(o), nil
}

// GetProjectDiagram renders the class diagram of every model of a project,
// classes sorted by model name.
func GetProjectDiagram(ctx context.Context, repo ProjectOverviewRepo, req ListRequest) (string, error) {
	overviews, err := ListOverviews(ctx, repo, req)
	if err != nil {
		return "", err
	}
	return diagram.Overviews(overviews...), nil
}
