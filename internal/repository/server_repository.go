package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"portal/backend/internal/model"
	"portal/backend/internal/snowflake"
)

type ServerRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Server, error)
	// List returns all servers ordered by hostname; a non-empty keyword
	// filters across the searchable columns.
	List(ctx context.Context, keyword string) ([]model.Server, error)
	Create(ctx context.Context, server model.Server) (model.Server, error)
	Update(ctx context.Context, server model.Server) error
	Delete(ctx context.Context, id int64) error
}

type serverRepository struct {
	db dbtx
}

func NewServerRepository(db dbtx) ServerRepository {
	return &serverRepository{db: db}
}

const serverColumns = `id, hostname, ip_address, os, status, environment, role, location, folder, created_at, updated_at`

// searchColumns mirrors the portal's server screen keyword search.
var searchColumns = []string{"hostname", "ip_address", "os", "status", "environment", "role", "location", "folder"}

func (r *serverRepository) GetByID(ctx context.Context, id int64) (*model.Server, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+serverColumns+` FROM servers WHERE id = ?`, id)

	s, err := scanServer(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *serverRepository) List(ctx context.Context, keyword string) ([]model.Server, error) {
	query := `SELECT ` + serverColumns + ` FROM servers`
	var args []any

	if keyword != "" {
		like := "%" + keyword + "%"
		conditions := make([]string, len(searchColumns))
		for i, col := range searchColumns {
			conditions[i] = col + " LIKE ?"
			args = append(args, like)
		}
		query += " WHERE " + strings.Join(conditions, " OR ")
	}

	query += " ORDER BY hostname"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var servers []model.Server
	for rows.Next() {
		s, err := scanServer(rows)
		if err != nil {
			return nil, err
		}
		servers = append(servers, s)
	}
	return servers, rows.Err()
}

func (r *serverRepository) Create(ctx context.Context, server model.Server) (model.Server, error) {
	server.ID = snowflake.NextID()
	now := time.Now()
	nowStr := formatTime(now)

	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO servers (id, hostname, ip_address, os, status, environment, role, location, folder, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		server.ID, server.Hostname, server.IPAddress, server.OS, server.Status,
		server.Environment, server.Role, server.Location, server.Folder, nowStr, nowStr,
	)
	if err != nil {
		return model.Server{}, err
	}

	server.CreatedAt = now
	server.UpdatedAt = now
	return server, nil
}

func (r *serverRepository) Update(ctx context.Context, server model.Server) error {
	res, err := r.db.ExecContext(
		ctx,
		`UPDATE servers SET hostname = ?, ip_address = ?, os = ?, status = ?, environment = ?, role = ?, location = ?, folder = ?, updated_at = ?
		 WHERE id = ?`,
		server.Hostname, server.IPAddress, server.OS, server.Status, server.Environment,
		server.Role, server.Location, server.Folder, formatTime(time.Now()), server.ID,
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

func (r *serverRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM servers WHERE id = ?`, id)
	return err
}

func scanServer(row rowScanner) (model.Server, error) {
	var s model.Server
	var createdAt, updatedAt string

	err := row.Scan(&s.ID, &s.Hostname, &s.IPAddress, &s.OS, &s.Status, &s.Environment, &s.Role, &s.Location, &s.Folder, &createdAt, &updatedAt)
	if err != nil {
		return model.Server{}, err
	}

	s.CreatedAt, _ = parseTime(createdAt)
	s.UpdatedAt, _ = parseTime(updatedAt)
	return s, nil
}
