package repository

import (
	"context"
	"database/sql"
	"time"

	"portal/backend/internal/model"
	"portal/backend/internal/snowflake"
)

type AccomplishmentRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Accomplishment, error)
	// FindByNaturalKey looks up the record for the exact
	// (badge, startWeekDate, endWeekDate) triple. Returns nil when absent.
	FindByNaturalKey(ctx context.Context, badge int64, startWeekDate, endWeekDate string) (*model.Accomplishment, error)
	// Insert writes a new row and surfaces the store's UNIQUE constraint
	// error unchanged when the natural key already exists.
	Insert(ctx context.Context, a model.Accomplishment) (model.Accomplishment, error)
	// Upsert inserts or, when the natural key already exists, updates the
	// mutable columns in a single atomic statement. The natural-key
	// columns are never touched by the update arm.
	Upsert(ctx context.Context, a model.Accomplishment) (model.Accomplishment, error)
	Update(ctx context.Context, a model.Accomplishment) error
	ListByUser(ctx context.Context, badge int64) ([]model.Accomplishment, error)
	ListByWeek(ctx context.Context, startWeekDate, endWeekDate string) ([]model.Accomplishment, error)
	// ListByUserInWindow returns the user's records whose week overlaps
	// the inclusive [from, to] window.
	ListByUserInWindow(ctx context.Context, badge int64, from, to string) ([]model.Accomplishment, error)
	// CountsByUser returns record counts grouped by badge.
	CountsByUser(ctx context.Context) (map[int64]int, error)
	Delete(ctx context.Context, id int64) error
}

type accomplishmentRepository struct {
	db dbtx
}

func NewAccomplishmentRepository(db dbtx) AccomplishmentRepository {
	return &accomplishmentRepository{db: db}
}

const accomplishmentColumns = `id, user_badge, application_id, accomplishments, start_week_date, end_week_date, date_submitted, task_status, created_at, updated_at`

func (r *accomplishmentRepository) GetByID(ctx context.Context, id int64) (*model.Accomplishment, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT `+accomplishmentColumns+` FROM weekly_accomplishments WHERE id = ?`,
		id,
	)
	return scanAccomplishmentPtr(row)
}

func (r *accomplishmentRepository) FindByNaturalKey(ctx context.Context, badge int64, startWeekDate, endWeekDate string) (*model.Accomplishment, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT `+accomplishmentColumns+`
		 FROM weekly_accomplishments
		 WHERE user_badge = ? AND start_week_date = ? AND end_week_date = ?`,
		badge, startWeekDate, endWeekDate,
	)
	return scanAccomplishmentPtr(row)
}

func (r *accomplishmentRepository) Insert(ctx context.Context, a model.Accomplishment) (model.Accomplishment, error) {
	a.ID = snowflake.NextID()
	now := time.Now()
	nowStr := formatTime(now)

	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO weekly_accomplishments
		   (id, user_badge, application_id, accomplishments, start_week_date, end_week_date, date_submitted, task_status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.UserBadge, a.ApplicationID, a.Accomplishments, a.StartWeekDate, a.EndWeekDate, a.DateSubmitted, a.TaskStatus, nowStr, nowStr,
	)
	if err != nil {
		return model.Accomplishment{}, err
	}

	a.CreatedAt = now
	a.UpdatedAt = now
	return a, nil
}

func (r *accomplishmentRepository) Upsert(ctx context.Context, a model.Accomplishment) (model.Accomplishment, error) {
	id := snowflake.NextID()
	now := formatTime(time.Now())

	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO weekly_accomplishments
		   (id, user_badge, application_id, accomplishments, start_week_date, end_week_date, date_submitted, task_status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(user_badge, start_week_date, end_week_date) DO UPDATE SET
		   application_id = excluded.application_id,
		   accomplishments = excluded.accomplishments,
		   date_submitted = excluded.date_submitted,
		   task_status = excluded.task_status,
		   updated_at = excluded.updated_at`,
		id, a.UserBadge, a.ApplicationID, a.Accomplishments, a.StartWeekDate, a.EndWeekDate, a.DateSubmitted, a.TaskStatus, now, now,
	)
	if err != nil {
		return model.Accomplishment{}, err
	}

	saved, err := r.FindByNaturalKey(ctx, a.UserBadge, a.StartWeekDate, a.EndWeekDate)
	if err != nil {
		return model.Accomplishment{}, err
	}
	if saved == nil {
		return model.Accomplishment{}, sql.ErrNoRows
	}
	return *saved, nil
}

func (r *accomplishmentRepository) Update(ctx context.Context, a model.Accomplishment) error {
	res, err := r.db.ExecContext(
		ctx,
		`UPDATE weekly_accomplishments SET
		   user_badge = ?,
		   application_id = ?,
		   accomplishments = ?,
		   start_week_date = ?,
		   end_week_date = ?,
		   date_submitted = ?,
		   task_status = ?,
		   updated_at = ?
		 WHERE id = ?`,
		a.UserBadge, a.ApplicationID, a.Accomplishments, a.StartWeekDate, a.EndWeekDate, a.DateSubmitted, a.TaskStatus, formatTime(time.Now()), a.ID,
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

func (r *accomplishmentRepository) ListByUser(ctx context.Context, badge int64) ([]model.Accomplishment, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT `+accomplishmentColumns+`
		 FROM weekly_accomplishments
		 WHERE user_badge = ?
		 ORDER BY start_week_date DESC`,
		badge,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAccomplishments(rows)
}

func (r *accomplishmentRepository) ListByWeek(ctx context.Context, startWeekDate, endWeekDate string) ([]model.Accomplishment, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT `+accomplishmentColumns+`
		 FROM weekly_accomplishments
		 WHERE start_week_date = ? AND end_week_date = ?
		 ORDER BY user_badge`,
		startWeekDate, endWeekDate,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAccomplishments(rows)
}

func (r *accomplishmentRepository) ListByUserInWindow(ctx context.Context, badge int64, from, to string) ([]model.Accomplishment, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT `+accomplishmentColumns+`
		 FROM weekly_accomplishments
		 WHERE user_badge = ? AND start_week_date <= ? AND end_week_date >= ?
		 ORDER BY start_week_date`,
		badge, to, from,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAccomplishments(rows)
}

func (r *accomplishmentRepository) CountsByUser(ctx context.Context) (map[int64]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT user_badge, COUNT(*) FROM weekly_accomplishments GROUP BY user_badge`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var badge int64
		var count int
		if err := rows.Scan(&badge, &count); err != nil {
			return nil, err
		}
		counts[badge] = count
	}
	return counts, rows.Err()
}

func (r *accomplishmentRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM weekly_accomplishments WHERE id = ?`, id)
	return err
}

func collectAccomplishments(rows *sql.Rows) ([]model.Accomplishment, error) {
	var records []model.Accomplishment
	for rows.Next() {
		a, err := scanAccomplishment(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

func scanAccomplishment(row rowScanner) (model.Accomplishment, error) {
	var a model.Accomplishment
	var createdAt, updatedAt string

	err := row.Scan(
		&a.ID, &a.UserBadge, &a.ApplicationID, &a.Accomplishments,
		&a.StartWeekDate, &a.EndWeekDate, &a.DateSubmitted, &a.TaskStatus,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return model.Accomplishment{}, err
	}

	a.CreatedAt, _ = parseTime(createdAt)
	a.UpdatedAt, _ = parseTime(updatedAt)
	return a, nil
}

func scanAccomplishmentPtr(row *sql.Row) (*model.Accomplishment, error) {
	a, err := scanAccomplishment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
