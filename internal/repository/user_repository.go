package repository

import (
	"context"
	"database/sql"
	"time"

	"portal/backend/internal/model"
)

type UserRepository interface {
	GetByBadge(ctx context.Context, badge int64) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, user model.User) (model.User, error)
	Update(ctx context.Context, user model.User) error
	Delete(ctx context.Context, badge int64) error
}

type userRepository struct {
	db dbtx
}

func NewUserRepository(db dbtx) UserRepository {
	return &userRepository{db: db}
}

// GetByBadge returns nil without error when no user exists for the badge.
func (r *userRepository) GetByBadge(ctx context.Context, badge int64) (*model.User, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT badge, email, first_name, last_name, position, read_only, created_at, updated_at
		 FROM users WHERE badge = ?`,
		badge,
	)

	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT badge, email, first_name, last_name, position, read_only, created_at, updated_at
		FROM users ORDER BY last_name, first_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

func (r *userRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	now := time.Now()
	nowStr := formatTime(now)

	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO users (badge, email, first_name, last_name, position, read_only, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		user.Badge, user.Email, user.FirstName, user.LastName, user.Position, boolToInt(user.ReadOnly), nowStr, nowStr,
	)
	if err != nil {
		return model.User{}, err
	}

	user.CreatedAt = now
	user.UpdatedAt = now
	return user, nil
}

func (r *userRepository) Update(ctx context.Context, user model.User) error {
	res, err := r.db.ExecContext(
		ctx,
		`UPDATE users SET email = ?, first_name = ?, last_name = ?, position = ?, read_only = ?, updated_at = ?
		 WHERE badge = ?`,
		user.Email, user.FirstName, user.LastName, user.Position, boolToInt(user.ReadOnly), formatTime(time.Now()), user.Badge,
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

func (r *userRepository) Delete(ctx context.Context, badge int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE badge = ?`, badge)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (model.User, error) {
	var u model.User
	var readOnly int
	var createdAt, updatedAt string

	err := row.Scan(&u.Badge, &u.Email, &u.FirstName, &u.LastName, &u.Position, &readOnly, &createdAt, &updatedAt)
	if err != nil {
		return model.User{}, err
	}

	u.ReadOnly = readOnly == 1
	u.CreatedAt, _ = parseTime(createdAt)
	u.UpdatedAt, _ = parseTime(updatedAt)
	return u, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
