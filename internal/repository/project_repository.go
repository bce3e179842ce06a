package repository

import (
	"context"
	"database/sql"
	"time"

	"portal/backend/internal/model"
	"portal/backend/internal/snowflake"
)

type ProjectRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Project, error)
	List(ctx context.Context) ([]model.Project, error)
	Create(ctx context.Context, project model.Project) (model.Project, error)
	Update(ctx context.Context, project model.Project) error
	Delete(ctx context.Context, id int64) error
}

type projectRepository struct {
	db dbtx
}

func NewProjectRepository(db dbtx) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, name, description, status, github_url, created_at, updated_at FROM projects WHERE id = ?`,
		id,
	)

	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepository) List(ctx context.Context) ([]model.Project, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, status, github_url, created_at, updated_at
		FROM projects ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *projectRepository) Create(ctx context.Context, project model.Project) (model.Project, error) {
	project.ID = snowflake.NextID()
	now := time.Now()
	nowStr := formatTime(now)

	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO projects (id, name, description, status, github_url, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		project.ID, project.Name, project.Description, project.Status, project.GithubURL, nowStr, nowStr,
	)
	if err != nil {
		return model.Project{}, err
	}

	project.CreatedAt = now
	project.UpdatedAt = now
	return project, nil
}

func (r *projectRepository) Update(ctx context.Context, project model.Project) error {
	res, err := r.db.ExecContext(
		ctx,
		`UPDATE projects SET name = ?, description = ?, status = ?, github_url = ?, updated_at = ? WHERE id = ?`,
		project.Name, project.Description, project.Status, project.GithubURL, formatTime(time.Now()), project.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *projectRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	return err
}

func scanProject(row rowScanner) (model.Project, error) {
	var p model.Project
	var createdAt, updatedAt string

	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Status, &p.GithubURL, &createdAt, &updatedAt)
	if err != nil {
		return model.Project{}, err
	}

	p.CreatedAt, _ = parseTime(createdAt)
	p.UpdatedAt, _ = parseTime(updatedAt)
	return p, nil
}
