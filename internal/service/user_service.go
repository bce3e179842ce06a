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

// UserWithStats is a user plus derived listing fields.
type UserWithStats struct {
	model.User
	AccomplishmentCount int
}

type UserService interface {
	List(ctx context.Context) ([]UserWithStats, error)
	Get(ctx context.Context, badge int64) (model.User, error)
	Create(ctx context.Context, user model.User) (model.User, error)
	Update(ctx context.Context, user model.User) (model.User, error)
	Delete(ctx context.Context, badge int64) error
}

type userService struct {
	users           repository.UserRepository
	accomplishments repository.AccomplishmentRepository
}

func NewUserService(users repository.UserRepository, accomplishments repository.AccomplishmentRepository) UserService {
	return &userService{users: users, accomplishments: accomplishments}
}

func (s *userService) List(ctx context.Context) ([]UserWithStats, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	counts, err := s.accomplishments.CountsByUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("count accomplishments: %w", err)
	}

	out := make([]UserWithStats, 0, len(users))
	for _, u := range users {
		out = append(out, UserWithStats{User: u, AccomplishmentCount: counts[u.Badge]})
	}
	return out, nil
}

func (s *userService) Get(ctx context.Context, badge int64) (model.User, error) {
	u, err := s.users.GetByBadge(ctx, badge)
	if err != nil {
		return model.User{}, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return model.User{}, ErrNotFound
	}
	return *u, nil
}

func (s *userService) Create(ctx context.Context, user model.User) (model.User, error) {
	user.FirstName = strings.TrimSpace(user.FirstName)
	user.LastName = strings.TrimSpace(user.LastName)
	if user.Badge <= 0 || user.FirstName == "" || user.LastName == "" {
		return model.User{}, ErrInvalid
	}

	existing, err := s.users.GetByBadge(ctx, user.Badge)
	if err != nil {
		return model.User{}, fmt.Errorf("check badge: %w", err)
	}
	if existing != nil {
		return model.User{}, ErrConflict
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return model.User{}, ErrConflict
		}
		return model.User{}, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

func (s *userService) Update(ctx context.Context, user model.User) (model.User, error) {
	user.FirstName = strings.TrimSpace(user.FirstName)
	user.LastName = strings.TrimSpace(user.LastName)
	if user.FirstName == "" || user.LastName == "" {
		return model.User{}, ErrInvalid
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrNotFound
		}
		return model.User{}, fmt.Errorf("update user: %w", err)
	}
	return s.Get(ctx, user.Badge)
}

func (s *userService) Delete(ctx context.Context, badge int64) error {
	existing, err := s.users.GetByBadge(ctx, badge)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.users.Delete(ctx, badge)
}
