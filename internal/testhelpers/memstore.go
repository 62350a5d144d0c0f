package testhelpers

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/johnwards/temple/internal/domain"
)

// MemStore is an in-memory repository implementing every record capability
// the operation packages declare. Records are kept in insertion order and
// listed in that order. It is not safe for concurrent use.
type MemStore struct {
	Projects       []domain.ProjectRecord
	AttributeTypes []domain.AttributeTypeRecord
	Models         []domain.ModelRecord
	Attributes     []domain.AttributeRecord
	Associations   []domain.AssociationRecord

	// Now stamps records; it defaults to time.Now.
	Now func() time.Time
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{Now: time.Now}
}

func (s *MemStore) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

// Projects

func (s *MemStore) CreateProjectRecord(_ context.Context, p domain.Project) (domain.ProjectRecord, error) {
	if s.projectIndex(p.Slug) >= 0 {
		return domain.ProjectRecord{}, domain.FailedPrecondition("project %q already exists", p.Slug)
	}
	now := s.now()
	rec := domain.ProjectRecord{
		ID:          uuid.New(),
		Name:        p.Name,
		Slug:        p.Slug,
		Description: domain.Deref(p.Description),
		InsertedAt:  now,
		UpdatedAt:   now,
	}
	s.Projects = append(s.Projects, rec)
	return rec, nil
}

func (s *MemStore) GetProjectRecord(_ context.Context, slug string) (domain.ProjectRecord, error) {
	i := s.projectIndex(slug)
	if i < 0 {
		return domain.ProjectRecord{}, domain.NotFound("project %q not found", slug)
	}
	return s.Projects[i], nil
}

func (s *MemStore) ListProjectRecords(_ context.Context, filter domain.ArchiveFilter) ([]domain.ProjectRecord, error) {
	recs := []domain.ProjectRecord{}
	for _, p := range s.Projects {
		if filter.Match(p.ArchivedAt) {
			recs = append(recs, p)
		}
	}
	return recs, nil
}

func (s *MemStore) UpdateProjectRecord(_ context.Context, r domain.ProjectRecord) (domain.ProjectRecord, error) {
	i := s.projectByID(r.ID)
	if i < 0 {
		return domain.ProjectRecord{}, domain.NotFound("project %q not found", r.Slug)
	}
	if j := s.projectIndex(r.Slug); j >= 0 && j != i {
		return domain.ProjectRecord{}, domain.FailedPrecondition("project %q already exists", r.Slug)
	}
	r.UpdatedAt = s.now()
	s.Projects[i] = r
	return r, nil
}

func (s *MemStore) ArchiveProjectRecord(ctx context.Context, r domain.ProjectRecord) (domain.ProjectRecord, error) {
	now := s.now()
	r.ArchivedAt = &now
	return s.UpdateProjectRecord(ctx, r)
}

func (s *MemStore) RestoreProjectRecord(ctx context.Context, r domain.ProjectRecord) (domain.ProjectRecord, error) {
	r.ArchivedAt = nil
	return s.UpdateProjectRecord(ctx, r)
}

func (s *MemStore) DeleteProjectRecord(ctx context.Context, r domain.ProjectRecord) error {
	i := s.projectByID(r.ID)
	if i < 0 {
		return domain.NotFound("project %q not found", r.Slug)
	}
	var owned []domain.ModelRecord
	for _, m := range s.Models {
		if m.ProjectID == r.ID {
			owned = append(owned, m)
		}
	}
	for _, m := range owned {
		if err := s.DeleteModelRecord(ctx, m); err != nil {
			return err
		}
	}
	s.Projects = slices.Delete(s.Projects, i, i+1)
	return nil
}

func (s *MemStore) projectIndex(slug string) int {
	return slices.IndexFunc(s.Projects, func(p domain.ProjectRecord) bool { return p.Slug == slug })
}

func (s *MemStore) projectByID(id uuid.UUID) int {
	return slices.IndexFunc(s.Projects, func(p domain.ProjectRecord) bool { return p.ID == id })
}

// Attribute types

func (s *MemStore) CreateAttributeTypeRecord(_ context.Context, t domain.AttributeType) (domain.AttributeTypeRecord, error) {
	if s.attributeTypeIndex(t.Slug) >= 0 {
		return domain.AttributeTypeRecord{}, domain.FailedPrecondition("attribute type %q already exists", t.Slug)
	}
	now := s.now()
	rec := domain.AttributeTypeRecord{
		ID:          uuid.New(),
		Name:        t.Name,
		Slug:        t.Slug,
		Description: domain.Deref(t.Description),
		InsertedAt:  now,
		UpdatedAt:   now,
	}
	s.AttributeTypes = append(s.AttributeTypes, rec)
	return rec, nil
}

func (s *MemStore) GetAttributeTypeRecord(_ context.Context, slug string) (domain.AttributeTypeRecord, error) {
	i := s.attributeTypeIndex(slug)
	if i < 0 {
		return domain.AttributeTypeRecord{}, domain.NotFound("attribute type %q not found", slug)
	}
	return s.AttributeTypes[i], nil
}

func (s *MemStore) ListAttributeTypeRecords(context.Context) ([]domain.AttributeTypeRecord, error) {
	return slices.Clone(s.AttributeTypes), nil
}

func (s *MemStore) UpdateAttributeTypeRecord(_ context.Context, r domain.AttributeTypeRecord) (domain.AttributeTypeRecord, error) {
	i := slices.IndexFunc(s.AttributeTypes, func(t domain.AttributeTypeRecord) bool { return t.ID == r.ID })
	if i < 0 {
		return domain.AttributeTypeRecord{}, domain.NotFound("attribute type %q not found", r.Slug)
	}
	if j := s.attributeTypeIndex(r.Slug); j >= 0 && j != i {
		return domain.AttributeTypeRecord{}, domain.FailedPrecondition("attribute type %q already exists", r.Slug)
	}
	r.UpdatedAt = s.now()
	s.AttributeTypes[i] = r
	for k := range s.Attributes {
		if s.Attributes[k].Type.ID == r.ID {
			s.Attributes[k].Type = r
		}
	}
	return r, nil
}

func (s *MemStore) DeleteAttributeTypeRecord(_ context.Context, r domain.AttributeTypeRecord) error {
	i := slices.IndexFunc(s.AttributeTypes, func(t domain.AttributeTypeRecord) bool { return t.ID == r.ID })
	if i < 0 {
		return domain.NotFound("attribute type %q not found", r.Slug)
	}
	if slices.ContainsFunc(s.Attributes, func(a domain.AttributeRecord) bool { return a.Type.ID == r.ID }) {
		return domain.FailedPrecondition("attribute type %q is in use", r.Slug)
	}
	s.AttributeTypes = slices.Delete(s.AttributeTypes, i, i+1)
	return nil
}

func (s *MemStore) attributeTypeIndex(slug string) int {
	return slices.IndexFunc(s.AttributeTypes, func(t domain.AttributeTypeRecord) bool { return t.Slug == slug })
}

// Models

func (s *MemStore) CreateModelRecord(_ context.Context, p domain.ProjectRecord, m domain.Model) (domain.ModelRecord, error) {
	if s.modelIndex(p.ID, m.Slug) >= 0 {
		return domain.ModelRecord{}, domain.FailedPrecondition("model %q already exists in project %q", m.Slug, p.Slug)
	}
	now := s.now()
	rec := domain.ModelRecord{
		ID:          uuid.New(),
		ProjectID:   p.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: domain.Deref(m.Description),
		InsertedAt:  now,
		UpdatedAt:   now,
	}
	s.Models = append(s.Models, rec)
	return rec, nil
}

func (s *MemStore) GetModelRecord(ctx context.Context, projectSlug, modelSlug string) (domain.ModelRecord, error) {
	p, err := s.GetProjectRecord(ctx, projectSlug)
	if err != nil {
		return domain.ModelRecord{}, err
	}
	i := s.modelIndex(p.ID, modelSlug)
	if i < 0 {
		return domain.ModelRecord{}, domain.NotFound("model %q not found in project %q", modelSlug, projectSlug)
	}
	return s.Models[i], nil
}

func (s *MemStore) ListModelRecords(ctx context.Context, projectSlug string) ([]domain.ModelRecord, error) {
	p, err := s.GetProjectRecord(ctx, projectSlug)
	if err != nil {
		return nil, err
	}
	recs := []domain.ModelRecord{}
	for _, m := range s.Models {
		if m.ProjectID == p.ID {
			recs = append(recs, m)
		}
	}
	return recs, nil
}

func (s *MemStore) UpdateModelRecord(_ context.Context, r domain.ModelRecord) (domain.ModelRecord, error) {
	i := s.modelByID(r.ID)
	if i < 0 {
		return domain.ModelRecord{}, domain.NotFound("model %q not found", r.Slug)
	}
	if j := s.modelIndex(r.ProjectID, r.Slug); j >= 0 && j != i {
		return domain.ModelRecord{}, domain.FailedPrecondition("model %q already exists", r.Slug)
	}
	r.UpdatedAt = s.now()
	s.Models[i] = r
	for k := range s.Associations {
		if s.Associations[k].AssociatedModel.ID == r.ID {
			s.Associations[k].AssociatedModel = r
		}
	}
	return r, nil
}

func (s *MemStore) DeleteModelRecord(_ context.Context, r domain.ModelRecord) error {
	i := s.modelByID(r.ID)
	if i < 0 {
		return domain.NotFound("model %q not found", r.Slug)
	}
	s.Attributes = slices.DeleteFunc(s.Attributes, func(a domain.AttributeRecord) bool {
		return a.ModelID == r.ID
	})
	s.Associations = slices.DeleteFunc(s.Associations, func(a domain.AssociationRecord) bool {
		return a.ModelID == r.ID || a.AssociatedModel.ID == r.ID
	})
	s.Models = slices.Delete(s.Models, i, i+1)
	return nil
}

func (s *MemStore) modelIndex(projectID uuid.UUID, slug string) int {
	return slices.IndexFunc(s.Models, func(m domain.ModelRecord) bool {
		return m.ProjectID == projectID && m.Slug == slug
	})
}

func (s *MemStore) modelByID(id uuid.UUID) int {
	return slices.IndexFunc(s.Models, func(m domain.ModelRecord) bool { return m.ID == id })
}

// Attributes

func (s *MemStore) CreateAttributeRecord(_ context.Context, m domain.ModelRecord, t domain.AttributeTypeRecord, a domain.Attribute) (domain.AttributeRecord, error) {
	if s.attributeIndex(m.ID, a.Name) >= 0 {
		return domain.AttributeRecord{}, domain.FailedPrecondition("attribute %q already exists on model %q", a.Name, m.Slug)
	}
	now := s.now()
	rec := domain.AttributeRecord{
		ID:          uuid.New(),
		ModelID:     m.ID,
		Name:        a.Name,
		Description: domain.Deref(a.Description),
		Type:        t,
		InsertedAt:  now,
		UpdatedAt:   now,
	}
	s.Attributes = append(s.Attributes, rec)
	return rec, nil
}

func (s *MemStore) GetAttributeRecord(ctx context.Context, projectSlug, modelSlug, name string) (domain.AttributeRecord, error) {
	m, err := s.GetModelRecord(ctx, projectSlug, modelSlug)
	if err != nil {
		return domain.AttributeRecord{}, err
	}
	i := s.attributeIndex(m.ID, name)
	if i < 0 {
		return domain.AttributeRecord{}, domain.NotFound("attribute %q not found on model %q", name, modelSlug)
	}
	return s.Attributes[i], nil
}

func (s *MemStore) ListAttributeRecords(_ context.Context, modelID uuid.UUID) ([]domain.AttributeRecord, error) {
	recs := []domain.AttributeRecord{}
	for _, a := range s.Attributes {
		if a.ModelID == modelID {
			recs = append(recs, a)
		}
	}
	return recs, nil
}

func (s *MemStore) DeleteAttributeRecord(_ context.Context, r domain.AttributeRecord) error {
	i := slices.IndexFunc(s.Attributes, func(a domain.AttributeRecord) bool { return a.ID == r.ID })
	if i < 0 {
		return domain.NotFound("attribute %q not found", r.Name)
	}
	s.Attributes = slices.Delete(s.Attributes, i, i+1)
	return nil
}

func (s *MemStore) attributeIndex(modelID uuid.UUID, name string) int {
	return slices.IndexFunc(s.Attributes, func(a domain.AttributeRecord) bool {
		return a.ModelID == modelID && a.Name == name
	})
}

// Associations

func (s *MemStore) CreateAssociationRecord(_ context.Context, owner, associated domain.ModelRecord, a domain.Association) (domain.AssociationRecord, error) {
	if s.associationIndex(owner.ID, a.Name) >= 0 {
		return domain.AssociationRecord{}, domain.FailedPrecondition("association %q already exists on model %q", a.Name, owner.Slug)
	}
	now := s.now()
	rec := domain.AssociationRecord{
		ID:              uuid.New(),
		ModelID:         owner.ID,
		Name:            a.Name,
		Description:     domain.Deref(a.Description),
		Kind:            a.Kind,
		AssociatedModel: associated,
		InsertedAt:      now,
		UpdatedAt:       now,
	}
	s.Associations = append(s.Associations, rec)
	return rec, nil
}

func (s *MemStore) GetAssociationRecord(ctx context.Context, projectSlug, modelSlug, name string) (domain.AssociationRecord, error) {
	m, err := s.GetModelRecord(ctx, projectSlug, modelSlug)
	if err != nil {
		return domain.AssociationRecord{}, err
	}
	i := s.associationIndex(m.ID, name)
	if i < 0 {
		return domain.AssociationRecord{}, domain.NotFound("association %q not found on model %q", name, modelSlug)
	}
	return s.Associations[i], nil
}

func (s *MemStore) ListAssociationRecords(_ context.Context, modelID uuid.UUID) ([]domain.AssociationRecord, error) {
	recs := []domain.AssociationRecord{}
	for _, a := range s.Associations {
		if a.ModelID == modelID {
			recs = append(recs, a)
		}
	}
	return recs, nil
}

func (s *MemStore) DeleteAssociationRecord(_ context.Context, r domain.AssociationRecord) error {
	i := slices.IndexFunc(s.Associations, func(a domain.AssociationRecord) bool { return a.ID == r.ID })
	if i < 0 {
		return domain.NotFound("association %q not found", r.Name)
	}
	s.Associations = slices.Delete(s.Associations, i, i+1)
	return nil
}

func (s *MemStore) associationIndex(modelID uuid.UUID, name string) int {
	return slices.IndexFunc(s.Associations, func(a domain.AssociationRecord) bool {
		return a.ModelID == modelID && a.Name == name
	})
}
