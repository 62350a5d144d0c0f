package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnwards/temple/internal/domain"
)

const attributeSelect = `SELECT a.id, a.model_id, a.name, a.description, a.inserted_at, a.updated_at,
	t.id, t.name, t.slug, t.description, t.inserted_at, t.updated_at
	FROM attributes a JOIN attribute_types t ON t.id = a.attribute_type_id`

func scanAttribute(row interface{ Scan(...any) error }) (domain.AttributeRecord, error) {
	var r domain.AttributeRecord
	err := row.Scan(&r.ID, &r.ModelID, &r.Name, &r.Description,
		timestamp{&r.InsertedAt}, timestamp{&r.UpdatedAt},
		&r.Type.ID, &r.Type.Name, &r.Type.Slug, &r.Type.Description,
		timestamp{&r.Type.InsertedAt}, timestamp{&r.Type.UpdatedAt})
	return r, err
}

// CreateAttributeRecord inserts attribute a on model m with type t.
func (s *SQLiteStore) CreateAttributeRecord(ctx context.Context, m domain.ModelRecord, t domain.AttributeTypeRecord, a domain.Attribute) (domain.AttributeRecord, error) {
	ts := now()
	r := domain.AttributeRecord{
		ID:          uuid.New(),
		ModelID:     m.ID,
		Name:        a.Name,
		Description: domain.Deref(a.Description),
		Type:        t,
		InsertedAt:  ts,
		UpdatedAt:   ts,
	}

	_, err := s.q.ExecContext(ctx,
		`INSERT INTO attributes (id, model_id, attribute_type_id, name, description, inserted_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.ModelID, t.ID, r.Name, r.Description, formatTime(ts), formatTime(ts),
	)
	if err != nil {
		return domain.AttributeRecord{}, classify(err, "create attribute %q on model %q", a.Name, m.Slug)
	}
	return r, nil
}

// GetAttributeRecord returns an attribute by name within a model.
func (s *SQLiteStore) GetAttributeRecord(ctx context.Context, projectSlug, modelSlug, name string) (domain.AttributeRecord, error) {
	m, err := s.GetModelRecord(ctx, projectSlug, modelSlug)
	if err != nil {
		return domain.AttributeRecord{}, err
	}

	r, err := scanAttribute(s.q.QueryRowContext(ctx,
		attributeSelect+` WHERE a.model_id = ? AND a.name = ?`, m.ID, name))
	if err != nil {
		return domain.AttributeRecord{}, notFound(err, "attribute %q not found on model %q", name, modelSlug)
	}
	return r, nil
}

// ListAttributeRecords returns the attributes of a model in insertion
// order.
func (s *SQLiteStore) ListAttributeRecords(ctx context.Context, modelID uuid.UUID) ([]domain.AttributeRecord, error) {
	rows, err := s.q.QueryContext(ctx, attributeSelect+` WHERE a.model_id = ? ORDER BY a.rowid`, modelID)
	if err != nil {
		return nil, domain.Internal(err, "list attributes")
	}
	defer func() { _ = rows.Close() }()

	recs := []domain.AttributeRecord{}
	for rows.Next() {
		r, err := scanAttribute(rows)
		if err != nil {
			return nil, domain.Internal(err, "scan attribute")
		}
		recs = append(recs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(err, "list attributes")
	}
	return recs, nil
}

// DeleteAttributeRecord removes r.
func (s *SQLiteStore) DeleteAttributeRecord(ctx context.Context, r domain.AttributeRecord) error {
	res, err := s.q.ExecContext(ctx, `DELETE FROM attributes WHERE id = ?`, r.ID)
	if err != nil {
		return classify(err, "delete attribute %q", r.Name)
	}
	return expectOne(res, "attribute %q not found", r.Name)
}
