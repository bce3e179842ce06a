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

type ProjectService interface {
	List(ctx context.Context) ([]model.Project, error)
	Get(ctx context.Context, id int64) (model.Project, error)
	Create(ctx context.Context, project model.Project) (model.Project, error)
	Update(ctx context.Context, project model.Project) (model.Project, error)
	Delete(ctx context.Context, id int64) error
}

type projectService struct {
	projects repository.ProjectRepository
}

func NewProjectService(projects repository.ProjectRepository) ProjectService {
	return &projectService{projects: projects}
}

func (s *projectService) List(ctx context.Context) ([]model.Project, error) {
	return s.projects.List(ctx)
}

func (s *projectService) Get(ctx context.Context, id int64) (model.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return model.Project{}, fmt.Errorf("get project: %w", err)
	}
	if p == nil {
		return model.Project{}, ErrNotFound
	}
	return *p, nil
}

func (s *projectService) Create(ctx context.Context, project model.Project) (model.Project, error) {
	project.Name = strings.TrimSpace(project.Name)
	if project.Name == "" {
		return model.Project{}, ErrInvalid
	}
	return s.projects.Create(ctx, project)
}

func (s *projectService) Update(ctx context.Context, project model.Project) (model.Project, error) {
	project.Name = strings.TrimSpace(project.Name)
	if project.Name == "" {
		return model.Project{}, ErrInvalid
	}
	if err := s.projects.Update(ctx, project); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Project{}, ErrNotFound
		}
		return model.Project{}, fmt.Errorf("update project: %w", err)
	}
	return s.Get(ctx, project.ID)
}

func (s *projectService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.projects.Delete(ctx, id)
}
