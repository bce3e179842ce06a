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

// ApplicationDetail is an application joined with its owner and server
// display fields for listing.
type ApplicationDetail struct {
	model.Application
	OwnerName          *string
	DevServerHostname  *string
	ProdServerHostname *string
}

type ApplicationService interface {
	List(ctx context.Context) ([]ApplicationDetail, error)
	Get(ctx context.Context, id int64) (model.Application, error)
	Create(ctx context.Context, app model.Application) (model.Application, error)
	Update(ctx context.Context, app model.Application) (model.Application, error)
	Delete(ctx context.Context, id int64) error
}

type applicationService struct {
	applications repository.ApplicationRepository
	users        repository.UserRepository
	servers      repository.ServerRepository
}

func NewApplicationService(
	applications repository.ApplicationRepository,
	users repository.UserRepository,
	servers repository.ServerRepository,
) ApplicationService {
	return &applicationService{applications: applications, users: users, servers: servers}
}

func (s *applicationService) List(ctx context.Context) ([]ApplicationDetail, error) {
	apps, err := s.applications.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	out := make([]ApplicationDetail, 0, len(apps))
	for _, app := range apps {
		detail := ApplicationDetail{Application: app}
		if app.OwnerBadge != nil {
			if owner, err := s.users.GetByBadge(ctx, *app.OwnerBadge); err == nil && owner != nil {
				name := strings.TrimSpace(owner.FirstName + " " + owner.LastName)
				detail.OwnerName = &name
			}
		}
		detail.DevServerHostname = s.hostname(ctx, app.DevServerID)
		detail.ProdServerHostname = s.hostname(ctx, app.ProdServerID)
		out = append(out, detail)
	}
	return out, nil
}

func (s *applicationService) hostname(ctx context.Context, id *int64) *string {
	if id == nil {
		return nil
	}
	srv, err := s.servers.GetByID(ctx, *id)
	if err != nil || srv == nil {
		return nil
	}
	return &srv.Hostname
}

func (s *applicationService) Get(ctx context.Context, id int64) (model.Application, error) {
	app, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return model.Application{}, fmt.Errorf("get application: %w", err)
	}
	if app == nil {
		return model.Application{}, ErrNotFound
	}
	return *app, nil
}

func (s *applicationService) Create(ctx context.Context, app model.Application) (model.Application, error) {
	app.AppName = strings.TrimSpace(app.AppName)
	if app.AppName == "" {
		return model.Application{}, ErrInvalid
	}
	if err := s.checkReferences(ctx, app); err != nil {
		return model.Application{}, err
	}
	return s.applications.Create(ctx, app)
}

func (s *applicationService) Update(ctx context.Context, app model.Application) (model.Application, error) {
	app.AppName = strings.TrimSpace(app.AppName)
	if app.AppName == "" {
		return model.Application{}, ErrInvalid
	}
	if err := s.checkReferences(ctx, app); err != nil {
		return model.Application{}, err
	}
	if err := s.applications.Update(ctx, app); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Application{}, ErrNotFound
		}
		return model.Application{}, fmt.Errorf("update application: %w", err)
	}
	return s.Get(ctx, app.ID)
}

func (s *applicationService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.applications.Delete(ctx, id)
}

// checkReferences verifies that owner and server references resolve.
func (s *applicationService) checkReferences(ctx context.Context, app model.Application) error {
	if app.OwnerBadge != nil {
		owner, err := s.users.GetByBadge(ctx, *app.OwnerBadge)
		if err != nil {
			return fmt.Errorf("check owner: %w", err)
		}
		if owner == nil {
			return ErrNotFound
		}
	}
	for _, id := range []*int64{app.DevServerID, app.ProdServerID} {
		if id == nil {
			continue
		}
		srv, err := s.servers.GetByID(ctx, *id)
		if err != nil {
			return fmt.Errorf("check server: %w", err)
		}
		if srv == nil {
			return ErrNotFound
		}
	}
	return nil
}
