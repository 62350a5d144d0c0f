package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnwards/temple/internal/domain"
)

const projectColumns = `id, name, slug, description, archived_at, inserted_at, updated_at`

func scanProject(row interface{ Scan(...any) error }) (domain.ProjectRecord, error) {
	var r domain.ProjectRecord
	err := row.Scan(&r.ID, &r.Name, &r.Slug, &r.Description,
		nullTimestamp{&r.ArchivedAt}, timestamp{&r.InsertedAt}, timestamp{&r.UpdatedAt})
	return r, err
}

// CreateProjectRecord inserts a project.
func (s *SQLiteStore) CreateProjectRecord(ctx context.Context, p domain.Project) (domain.ProjectRecord, error) {
	ts := now()
	r := domain.ProjectRecord{
		ID:          uuid.New(),
		Name:        p.Name,
		Slug:        p.Slug,
		Description: domain.Deref(p.Description),
		InsertedAt:  ts,
		UpdatedAt:   ts,
	}

	_, err := s.q.ExecContext(ctx,
		`INSERT INTO projects (id, name, slug, description, archived_at, inserted_at, updated_at)
		 VALUES (?, ?, ?, ?, NULL, ?, ?)`,
		r.ID, r.Name, r.Slug, r.Description, formatTime(ts), formatTime(ts),
	)
	if err != nil {
		return domain.ProjectRecord{}, classify(err, "create project %q", p.Slug)
	}
	return r, nil
}

// GetProjectRecord returns the project with the given slug.
func (s *SQLiteStore) GetProjectRecord(ctx context.Context, slug string) (domain.ProjectRecord, error) {
	r, err := scanProject(s.q.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE slug = ?`, slug))
	if err != nil {
		return domain.ProjectRecord{}, notFound(err, "project %q not found", slug)
	}
	return r, nil
}

// ListProjectRecords returns the projects passing filter in insertion order.
func (s *SQLiteStore) ListProjectRecords(ctx context.Context, filter domain.ArchiveFilter) ([]domain.ProjectRecord, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	switch filter {
	case domain.ActiveOnly:
		query += ` WHERE archived_at IS NULL`
	case domain.ArchivedOnly:
		query += ` WHERE archived_at IS NOT NULL`
	}
	query += ` ORDER BY rowid`

	rows, err := s.q.QueryContext(ctx, query)
	if err != nil {
		return nil, domain.Internal(err, "list projects")
	}
	defer func() { _ = rows.Close() }()

	recs := []domain.ProjectRecord{}
	for rows.Next() {
		r, err := scanProject(rows)
		if err != nil {
			return nil, domain.Internal(err, "scan project")
		}
		recs = append(recs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(err, "list projects")
	}
	return recs, nil
}

// UpdateProjectRecord writes the name, slug and description of r.
func (s *SQLiteStore) UpdateProjectRecord(ctx context.Context, r domain.ProjectRecord) (domain.ProjectRecord, error) {
	r.UpdatedAt = now()
	res, err := s.q.ExecContext(ctx,
		`UPDATE projects SET name = ?, slug = ?, description = ?, updated_at = ? WHERE id = ?`,
		r.Name, r.Slug, r.Description, formatTime(r.UpdatedAt), r.ID,
	)
	if err != nil {
		return domain.ProjectRecord{}, classify(err, "update project %q", r.Slug)
	}
	if err := expectOne(res, "project %q not found", r.Slug); err != nil {
		return domain.ProjectRecord{}, err
	}
	return r, nil
}

// ArchiveProjectRecord stamps the archive mark of r.
func (s *SQLiteStore) ArchiveProjectRecord(ctx context.Context, r domain.ProjectRecord) (domain.ProjectRecord, error) {
	ts := now()
	r.ArchivedAt = &ts
	return s.setArchivedAt(ctx, r)
}

// RestoreProjectRecord clears the archive mark of r.
func (s *SQLiteStore) RestoreProjectRecord(ctx context.Context, r domain.ProjectRecord) (domain.ProjectRecord, error) {
	r.ArchivedAt = nil
	return s.setArchivedAt(ctx, r)
}

func (s *SQLiteStore) setArchivedAt(ctx context.Context, r domain.ProjectRecord) (domain.ProjectRecord, error) {
	r.UpdatedAt = now()
	res, err := s.q.ExecContext(ctx,
		`UPDATE projects SET archived_at = ?, updated_at = ? WHERE id = ?`,
		nullTime(r.ArchivedAt), formatTime(r.UpdatedAt), r.ID,
	)
	if err != nil {
		return domain.ProjectRecord{}, classify(err, "archive project %q", r.Slug)
	}
	if err := expectOne(res, "project %q not found", r.Slug); err != nil {
		return domain.ProjectRecord{}, err
	}
	return r, nil
}

// DeleteProjectRecord removes r. Its models and their children go through
// the foreign key cascade.
func (s *SQLiteStore) DeleteProjectRecord(ctx context.Context, r domain.ProjectRecord) error {
	res, err := s.q.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, r.ID)
	if err != nil {
		return classify(err, "delete project %q", r.Slug)
	}
	return expectOne(res, "project %q not found", r.Slug)
}
