package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"portal/backend/internal/model"
	"portal/backend/internal/repository"
)

type ServerService interface {
	// List returns servers ordered by hostname, optionally filtered by a
	// keyword matched across the searchable columns.
	List(ctx context.Context, keyword string) ([]model.Server, error)
	Get(ctx context.Context, id int64) (model.Server, error)
	Create(ctx context.Context, server model.Server) (model.Server, error)
	Update(ctx context.Context, server model.Server) (model.Server, error)
	Delete(ctx context.Context, id int64) error
}

type serverService struct {
	servers repository.ServerRepository
}

func NewServerService(servers repository.ServerRepository) ServerService {
	return &serverService{servers: servers}
}

func (s *serverService) List(ctx context.Context, keyword string) ([]model.Server, error) {
	return s.servers.List(ctx, strings.TrimSpace(keyword))
}

func (s *serverService) Get(ctx context.Context, id int64) (model.Server, error) {
	srv, err := s.servers.GetByID(ctx, id)
	if err != nil {
		return model.Server{}, fmt.Errorf("get server: %w", err)
	}
	if srv == nil {
		return model.Server{}, ErrNotFound
	}
	return *srv, nil
}

func (s *serverService) Create(ctx context.Context, server model.Server) (model.Server, error) {
	server.Hostname = strings.TrimSpace(server.Hostname)
	if server.Hostname == "" {
		return model.Server{}, ErrInvalid
	}
	return s.servers.Create(ctx, server)
}

func (s *serverService) Update(ctx context.Context, server model.Server) (model.Server, error) {
	server.Hostname = strings.TrimSpace(server.Hostname)
	if server.Hostname == "" {
		return model.Server{}, ErrInvalid
	}
	if err := s.servers.Update(ctx, server); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Server{}, ErrNotFound
		}
		return model.Server{}, fmt.Errorf("update server: %w", err)
	}
	return s.Get(ctx, server.ID)
}

func (s *serverService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.servers.Delete(ctx, id)
}
