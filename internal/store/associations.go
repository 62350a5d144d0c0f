package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnwards/temple/internal/domain"
)

const associationSelect = `SELECT a.id, a.model_id, a.name, a.description, a.kind, a.inserted_at, a.updated_at,
	m.id, m.project_id, m.name, m.slug, m.description, m.inserted_at, m.updated_at
	FROM associations a JOIN models m ON m.id = a.associated_model_id`

func scanAssociation(row interface{ Scan(...any) error }) (domain.AssociationRecord, error) {
	var (
		r    domain.AssociationRecord
		kind string
	)
	err := row.Scan(&r.ID, &r.ModelID, &r.Name, &r.Description, &kind,
		timestamp{&r.InsertedAt}, timestamp{&r.UpdatedAt},
		&r.AssociatedModel.ID, &r.AssociatedModel.ProjectID, &r.AssociatedModel.Name,
		&r.AssociatedModel.Slug, &r.AssociatedModel.Description,
		timestamp{&r.AssociatedModel.InsertedAt}, timestamp{&r.AssociatedModel.UpdatedAt})
	if err != nil {
		return r, err
	}
	r.Kind, err = domain.ParseAssociationKind(kind)
	return r, err
}

// CreateAssociationRecord inserts association a from owner to associated.
func (s *SQLiteStore) CreateAssociationRecord(ctx context.Context, owner, associated domain.ModelRecord, a domain.Association) (domain.AssociationRecord, error) {
	ts := now()
	r := domain.AssociationRecord{
		ID:              uuid.New(),
		ModelID:         owner.ID,
		Name:            a.Name,
		Description:     domain.Deref(a.Description),
		Kind:            a.Kind,
		AssociatedModel: associated,
		InsertedAt:      ts,
		UpdatedAt:       ts,
	}

	_, err := s.q.ExecContext(ctx,
		`INSERT INTO associations (id, model_id, associated_model_id, name, description, kind, inserted_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.ModelID, associated.ID, r.Name, r.Description, r.Kind.String(), formatTime(ts), formatTime(ts),
	)
	if err != nil {
		return domain.AssociationRecord{}, classify(err, "create association %q on model %q", a.Name, owner.Slug)
	}
	return r, nil
}

// GetAssociationRecord returns an association by name within its owning
// model.
func (s *SQLiteStore) GetAssociationRecord(ctx context.Context, projectSlug, modelSlug, name string) (domain.AssociationRecord, error) {
	m, err := s.GetModelRecord(ctx, projectSlug, modelSlug)
	if err != nil {
		return domain.AssociationRecord{}, err
	}

	r, err := scanAssociation(s.q.QueryRowContext(ctx,
		associationSelect+` WHERE a.model_id = ? AND a.name = ?`, m.ID, name))
	if err != nil {
		return domain.AssociationRecord{}, notFound(err, "association %q not found on model %q", name, modelSlug)
	}
	return r, nil
}

// ListAssociationRecords returns the associations owned by a model in
// insertion order.
func (s *SQLiteStore) ListAssociationRecords(ctx context.Context, modelID uuid.UUID) ([]domain.AssociationRecord, error) {
	rows, err := s.q.QueryContext(ctx, associationSelect+` WHERE a.model_id = ? ORDER BY a.rowid`, modelID)
	if err != nil {
		return nil, domain.Internal(err, "list associations")
	}
	defer func() { _ = rows.Close() }()

	recs := []domain.AssociationRecord{}
	for rows.Next() {
		r, err := scanAssociation(rows)
		if err != nil {
			return nil, domain.Internal(err, "scan association")
		}
		recs = append(recs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(err, "list associations")
	}
	return recs, nil
}

// DeleteAssociationRecord removes r.
func (s *SQLiteStore) DeleteAssociationRecord(ctx context.Context, r domain.AssociationRecord) error {
	res, err := s.q.ExecContext(ctx, `DELETE FROM associations WHERE id = ?`, r.ID)
	if err != nil {
		return classify(err, "delete association %q", r.Name)
	}
	return expectOne(res, "association %q not found", r.Name)
}
