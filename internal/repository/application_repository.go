package repository

import (
	"context"
	"database/sql"
	"time"

	"portal/backend/internal/model"
	"portal/backend/internal/snowflake"
)

type ApplicationRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Application, error)
	List(ctx context.Context) ([]model.Application, error)
	ListByOwner(ctx context.Context, badge int64) ([]model.Application, error)
	Create(ctx context.Context, app model.Application) (model.Application, error)
	Update(ctx context.Context, app model.Application) error
	Delete(ctx context.Context, id int64) error
}

type applicationRepository struct {
	db dbtx
}

func NewApplicationRepository(db dbtx) ApplicationRepository {
	return &applicationRepository{db: db}
}

const applicationColumns = `id, owner_badge, app_name, app_description, status, dev_server_id, prod_server_id, dev_domain, last_updated, last_updated_by, created_at, updated_at`

func (r *applicationRepository) GetByID(ctx context.Context, id int64) (*model.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = ?`, id)

	a, err := scanApplication(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *applicationRepository) List(ctx context.Context) ([]model.Application, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+applicationColumns+` FROM applications ORDER BY app_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectApplications(rows)
}

func (r *applicationRepository) ListByOwner(ctx context.Context, badge int64) ([]model.Application, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE owner_badge = ? ORDER BY app_name`,
		badge,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectApplications(rows)
}

func (r *applicationRepository) Create(ctx context.Context, app model.Application) (model.Application, error) {
	app.ID = snowflake.NextID()
	now := time.Now()
	nowStr := formatTime(now)

	var lastUpdated any
	if app.LastUpdated != nil {
		lastUpdated = formatTime(*app.LastUpdated)
	}

	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO applications
		   (id, owner_badge, app_name, app_description, status, dev_server_id, prod_server_id, dev_domain, last_updated, last_updated_by, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		app.ID, app.OwnerBadge, app.AppName, app.AppDescription, app.Status,
		app.DevServerID, app.ProdServerID, app.DevDomain, lastUpdated, app.LastUpdatedBy, nowStr, nowStr,
	)
	if err != nil {
		return model.Application{}, err
	}

	app.CreatedAt = now
	app.UpdatedAt = now
	return app, nil
}

func (r *applicationRepository) Update(ctx context.Context, app model.Application) error {
	var lastUpdated any
	if app.LastUpdated != nil {
		lastUpdated = formatTime(*app.LastUpdated)
	}

	res, err := r.db.ExecContext(
		ctx,
		`UPDATE applications SET
		   owner_badge = ?, app_name = ?, app_description = ?, status = ?,
		   dev_server_id = ?, prod_server_id = ?, dev_domain = ?, last_updated = ?, last_updated_by = ?, updated_at = ?
		 WHERE id = ?`,
		app.OwnerBadge, app.AppName, app.AppDescription, app.Status,
		app.DevServerID, app.ProdServerID, app.DevDomain, lastUpdated, app.LastUpdatedBy,
		formatTime(time.Now()), app.ID,
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

func (r *applicationRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM applications WHERE id = ?`, id)
	return err
}

func collectApplications(rows *sql.Rows) ([]model.Application, error) {
	var apps []model.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func scanApplication(row rowScanner) (model.Application, error) {
	var a model.Application
	var lastUpdated sql.NullString
	var createdAt, updatedAt string

	err := row.Scan(
		&a.ID, &a.OwnerBadge, &a.AppName, &a.AppDescription, &a.Status,
		&a.DevServerID, &a.ProdServerID, &a.DevDomain, &lastUpdated, &a.LastUpdatedBy,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return model.Application{}, err
	}

	if lastUpdated.Valid {
		t, _ := parseTime(lastUpdated.String)
		a.LastUpdated = &t
	}
	a.CreatedAt, _ = parseTime(createdAt)
	a.UpdatedAt, _ = parseTime(updatedAt)
	return a, nil
}
