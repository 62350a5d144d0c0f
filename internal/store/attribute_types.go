package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnwards/temple/internal/domain"
)

const attributeTypeColumns = `id, name, slug, description, inserted_at, updated_at`

func scanAttributeType(row interface{ Scan(...any) error }) (domain.AttributeTypeRecord, error) {
	var r domain.AttributeTypeRecord
	err := row.Scan(&r.ID, &r.Name, &r.Slug, &r.Description, timestamp{&r.InsertedAt}, timestamp{&r.UpdatedAt})
	return r, err
}

// CreateAttributeTypeRecord inserts an attribute type.
func (s *SQLiteStore) CreateAttributeTypeRecord(ctx context.Context, t domain.AttributeType) (domain.AttributeTypeRecord, error) {
	ts := now()
	r := domain.AttributeTypeRecord{
		ID:          uuid.New(),
		Name:        t.Name,
		Slug:        t.Slug,
		Description: domain.Deref(t.Description),
		InsertedAt:  ts,
		UpdatedAt:   ts,
	}

	_, err := s.q.ExecContext(ctx,
		`INSERT INTO attribute_types (id, name, slug, description, inserted_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.Name, r.Slug, r.Description, formatTime(ts), formatTime(ts),
	)
	if err != nil {
		return domain.AttributeTypeRecord{}, classify(err, "create attribute type %q", t.Slug)
	}
	return r, nil
}

// GetAttributeTypeRecord returns the attribute type with the given slug.
func (s *SQLiteStore) GetAttributeTypeRecord(ctx context.Context, slug string) (domain.AttributeTypeRecord, error) {
	r, err := scanAttributeType(s.q.QueryRowContext(ctx,
		`SELECT `+attributeTypeColumns+` FROM attribute_types WHERE slug = ?`, slug))
	if err != nil {
		return domain.AttributeTypeRecord{}, notFound(err, "attribute type %q not found", slug)
	}
	return r, nil
}

// ListAttributeTypeRecords returns the catalogue in insertion order.
func (s *SQLiteStore) ListAttributeTypeRecords(ctx context.Context) ([]domain.AttributeTypeRecord, error) {
	rows, err := s.q.QueryContext(ctx,
		`SELECT `+attributeTypeColumns+` FROM attribute_types ORDER BY rowid`)
	if err != nil {
		return nil, domain.Internal(err, "list attribute types")
	}
	defer func() { _ = rows.Close() }()

	recs := []domain.AttributeTypeRecord{}
	for rows.Next() {
		r, err := scanAttributeType(rows)
		if err != nil {
			return nil, domain.Internal(err, "scan attribute type")
		}
		recs = append(recs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(err, "list attribute types")
	}
	return recs, nil
}

// UpdateAttributeTypeRecord writes the name, slug and description of r.
func (s *SQLiteStore) UpdateAttributeTypeRecord(ctx context.Context, r domain.AttributeTypeRecord) (domain.AttributeTypeRecord, error) {
	r.UpdatedAt = now()
	res, err := s.q.ExecContext(ctx,
		`UPDATE attribute_types SET name = ?, slug = ?, description = ?, updated_at = ? WHERE id = ?`,
		r.Name, r.Slug, r.Description, formatTime(r.UpdatedAt), r.ID,
	)
	if err != nil {
		return domain.AttributeTypeRecord{}, classify(err, "update attribute type %q", r.Slug)
	}
	if err := expectOne(res, "attribute type %q not found", r.Slug); err != nil {
		return domain.AttributeTypeRecord{}, err
	}
	return r, nil
}

// DeleteAttributeTypeRecord removes r unless attributes still use it.
func (s *SQLiteStore) DeleteAttributeTypeRecord(ctx context.Context, r domain.AttributeTypeRecord) error {
	var uses int
	if err := s.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM attributes WHERE attribute_type_id = ?`, r.ID,
	).Scan(&uses); err != nil {
		return domain.Internal(err, "count uses of attribute type %q", r.Slug)
	}
	if uses > 0 {
		return domain.FailedPrecondition("attribute type %q is used by %d attributes", r.Slug, uses)
	}

	res, err := s.q.ExecContext(ctx, `DELETE FROM attribute_types WHERE id = ?`, r.ID)
	if err != nil {
		return classify(err, "delete attribute type %q", r.Slug)
	}
	return expectOne(res, "attribute type %q not found", r.Slug)
}
