package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnwards/temple/internal/domain"
)

const modelColumns = `m.id, m.project_id, m.name, m.slug, m.description, m.inserted_at, m.updated_at`

func scanModel(row interface{ Scan(...any) error }) (domain.ModelRecord, error) {
	var r domain.ModelRecord
	err := row.Scan(&r.ID, &r.ProjectID, &r.Name, &r.Slug, &r.Description,
		timestamp{&r.InsertedAt}, timestamp{&r.UpdatedAt})
	return r, err
}

// CreateModelRecord inserts model m into project p.
func (s *SQLiteStore) CreateModelRecord(ctx context.Context, p domain.ProjectRecord, m domain.Model) (domain.ModelRecord, error) {
	ts := now()
	r := domain.ModelRecord{
		ID:          uuid.New(),
		ProjectID:   p.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: domain.Deref(m.Description),
		InsertedAt:  ts,
		UpdatedAt:   ts,
	}

	_, err := s.q.ExecContext(ctx,
		`INSERT INTO models (id, project_id, name, slug, description, inserted_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.ProjectID, r.Name, r.Slug, r.Description, formatTime(ts), formatTime(ts),
	)
	if err != nil {
		return domain.ModelRecord{}, classify(err, "create model %q in project %q", m.Slug, p.Slug)
	}
	return r, nil
}

// GetModelRecord returns a model by project and model slug. A missing
// project and a missing model are both NotFound.
func (s *SQLiteStore) GetModelRecord(ctx context.Context, projectSlug, modelSlug string) (domain.ModelRecord, error) {
	p, err := s.GetProjectRecord(ctx, projectSlug)
	if err != nil {
		return domain.ModelRecord{}, err
	}

	r, err := scanModel(s.q.QueryRowContext(ctx,
		`SELECT `+modelColumns+` FROM models m WHERE m.project_id = ? AND m.slug = ?`,
		p.ID, modelSlug))
	if err != nil {
		return domain.ModelRecord{}, notFound(err, "model %q not found in project %q", modelSlug, projectSlug)
	}
	return r, nil
}

// ListModelRecords returns the models of a project in insertion order.
func (s *SQLiteStore) ListModelRecords(ctx context.Context, projectSlug string) ([]domain.ModelRecord, error) {
	p, err := s.GetProjectRecord(ctx, projectSlug)
	if err != nil {
		return nil, err
	}

	rows, err := s.q.QueryContext(ctx,
		`SELECT `+modelColumns+` FROM models m WHERE m.project_id = ? ORDER BY m.rowid`, p.ID)
	if err != nil {
		return nil, domain.Internal(err, "list models of project %q", projectSlug)
	}
	defer func() { _ = rows.Close() }()

	recs := []domain.ModelRecord{}
	for rows.Next() {
		r, err := scanModel(rows)
		if err != nil {
			return nil, domain.Internal(err, "scan model")
		}
		recs = append(recs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(err, "list models of project %q", projectSlug)
	}
	return recs, nil
}

// UpdateModelRecord writes the name, slug and description of r.
func (s *SQLiteStore) UpdateModelRecord(ctx context.Context, r domain.ModelRecord) (domain.ModelRecord, error) {
	r.UpdatedAt = now()
	res, err := s.q.ExecContext(ctx,
		`UPDATE models SET name = ?, slug = ?, description = ?, updated_at = ? WHERE id = ?`,
		r.Name, r.Slug, r.Description, formatTime(r.UpdatedAt), r.ID,
	)
	if err != nil {
		return domain.ModelRecord{}, classify(err, "update model %q", r.Slug)
	}
	if err := expectOne(res, "model %q not found", r.Slug); err != nil {
		return domain.ModelRecord{}, err
	}
	return r, nil
}

// DeleteModelRecord removes r, its attributes and every association it
// owns or is the target of, in one transaction.
func (s *SQLiteStore) DeleteModelRecord(ctx context.Context, r domain.ModelRecord) error {
	return s.WithTx(ctx, func(tx *SQLiteStore) error {
		if _, err := tx.q.ExecContext(ctx,
			`DELETE FROM associations WHERE model_id = ? OR associated_model_id = ?`, r.ID, r.ID,
		); err != nil {
			return classify(err, "delete associations of model %q", r.Slug)
		}
		if _, err := tx.q.ExecContext(ctx, `DELETE FROM attributes WHERE model_id = ?`, r.ID); err != nil {
			return classify(err, "delete attributes of model %q", r.Slug)
		}

		res, err := tx.q.ExecContext(ctx, `DELETE FROM models WHERE id = ?`, r.ID)
		if err != nil {
			return classify(err, "delete model %q", r.Slug)
		}
		return expectOne(res, "model %q not found", r.Slug)
	})
}
