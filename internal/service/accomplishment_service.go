package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"portal/backend/internal/config"
	"portal/backend/internal/logger"
	"portal/backend/internal/model"
	"portal/backend/internal/repository"
)

// ReconcileInput carries one weekly submission. DateSubmitted and
// TaskStatus are optional; absent values fall back to the stored record
// and then to defaults.
type ReconcileInput struct {
	UserBadge       int64
	StartWeekDate   string
	EndWeekDate     string
	Accomplishments string
	ApplicationID   *int64
	DateSubmitted   *string
	TaskStatus      *string
}

type AccomplishmentService interface {
	// Reconcile creates or updates the record for the
	// (badge, startWeekDate, endWeekDate) natural key. The boolean
	// reports whether a new record was created.
	Reconcile(ctx context.Context, in ReconcileInput) (model.Accomplishment, bool, error)
	Get(ctx context.Context, id int64) (model.Accomplishment, error)
	ListByUser(ctx context.Context, badge int64) ([]model.Accomplishment, error)
	ListByWeek(ctx context.Context, startWeekDate, endWeekDate string) ([]model.Accomplishment, error)
	Update(ctx context.Context, id int64, in ReconcileInput) (model.Accomplishment, error)
	Delete(ctx context.Context, id int64) error
}

type accomplishmentService struct {
	accomplishments repository.AccomplishmentRepository
	users           repository.UserRepository
	applications    repository.ApplicationRepository
	sanitizer       *bluemonday.Policy
}

func NewAccomplishmentService(
	accomplishments repository.AccomplishmentRepository,
	users repository.UserRepository,
	applications repository.ApplicationRepository,
) AccomplishmentService {
	return &accomplishmentService{
		accomplishments: accomplishments,
		users:           users,
		applications:    applications,
		sanitizer:       bluemonday.UGCPolicy(),
	}
}

func (s *accomplishmentService) Reconcile(ctx context.Context, in ReconcileInput) (model.Accomplishment, bool, error) {
	if err := validateReconcileInput(in); err != nil {
		return model.Accomplishment{}, false, err
	}

	owner, err := s.users.GetByBadge(ctx, in.UserBadge)
	if err != nil {
		return model.Accomplishment{}, false, fmt.Errorf("get owner: %w", err)
	}
	if owner == nil {
		return model.Accomplishment{}, false, ErrNotFound
	}

	if err := s.resolveApplication(ctx, in.ApplicationID); err != nil {
		return model.Accomplishment{}, false, err
	}

	existing, err := s.accomplishments.FindByNaturalKey(ctx, in.UserBadge, in.StartWeekDate, in.EndWeekDate)
	if err != nil {
		return model.Accomplishment{}, false, fmt.Errorf("find by natural key: %w", err)
	}

	record := s.resolveRecord(in, existing)

	saved, err := s.accomplishments.Upsert(ctx, record)
	if err != nil {
		return model.Accomplishment{}, false, fmt.Errorf("upsert accomplishment: %w", err)
	}

	created := existing == nil
	action := "update"
	if created {
		action = "create"
	}
	logger.Info("accomplishment reconciled", "module", "service", "action", action, "resource", "accomplishment", "result", "ok", "badge", in.UserBadge, "week_start", in.StartWeekDate, "week_end", in.EndWeekDate)

	return saved, created, nil
}

// resolveApplication checks a referenced application exists before the
// foreign key gets a chance to reject it with an opaque driver error.
func (s *accomplishmentService) resolveApplication(ctx context.Context, id *int64) error {
	if id == nil {
		return nil
	}
	app, err := s.applications.GetByID(ctx, *id)
	if err != nil {
		return fmt.Errorf("get application: %w", err)
	}
	if app == nil {
		return ErrNotFound
	}
	return nil
}

// resolveRecord merges the submission with the stored record. Explicit
// values win, then stored values, then defaults.
func (s *accomplishmentService) resolveRecord(in ReconcileInput, existing *model.Accomplishment) model.Accomplishment {
	record := model.Accomplishment{
		UserBadge:       in.UserBadge,
		StartWeekDate:   in.StartWeekDate,
		EndWeekDate:     in.EndWeekDate,
		Accomplishments: s.sanitizer.Sanitize(strings.TrimSpace(in.Accomplishments)),
		ApplicationID:   in.ApplicationID,
	}

	if record.ApplicationID == nil && existing != nil {
		record.ApplicationID = existing.ApplicationID
	}

	switch {
	case in.DateSubmitted != nil:
		record.DateSubmitted = *in.DateSubmitted
	case existing != nil && existing.DateSubmitted != "":
		record.DateSubmitted = existing.DateSubmitted
	default:
		record.DateSubmitted = time.Now().Format(config.DateLayout)
	}

	switch {
	case in.TaskStatus != nil:
		record.TaskStatus = *in.TaskStatus
	case existing != nil && existing.TaskStatus != "":
		record.TaskStatus = existing.TaskStatus
	default:
		record.TaskStatus = config.DefaultTaskStatus
	}

	return record
}

func (s *accomplishmentService) Get(ctx context.Context, id int64) (model.Accomplishment, error) {
	rec, err := s.accomplishments.GetByID(ctx, id)
	if err != nil {
		return model.Accomplishment{}, fmt.Errorf("get accomplishment: %w", err)
	}
	if rec == nil {
		return model.Accomplishment{}, ErrNotFound
	}
	return *rec, nil
}

func (s *accomplishmentService) ListByUser(ctx context.Context, badge int64) ([]model.Accomplishment, error) {
	return s.accomplishments.ListByUser(ctx, badge)
}

func (s *accomplishmentService) ListByWeek(ctx context.Context, startWeekDate, endWeekDate string) ([]model.Accomplishment, error) {
	if !validDate(startWeekDate) || !validDate(endWeekDate) {
		return nil, ErrInvalid
	}
	return s.accomplishments.ListByWeek(ctx, startWeekDate, endWeekDate)
}

// Update edits an existing record by ID. Week dates stay immutable so
// the natural key cannot be moved onto another record's key.
func (s *accomplishmentService) Update(ctx context.Context, id int64, in ReconcileInput) (model.Accomplishment, error) {
	rec, err := s.accomplishments.GetByID(ctx, id)
	if err != nil {
		return model.Accomplishment{}, fmt.Errorf("get accomplishment: %w", err)
	}
	if rec == nil {
		return model.Accomplishment{}, ErrNotFound
	}

	if body := strings.TrimSpace(in.Accomplishments); body != "" {
		rec.Accomplishments = s.sanitizer.Sanitize(body)
	}
	if in.ApplicationID != nil {
		if err := s.resolveApplication(ctx, in.ApplicationID); err != nil {
			return model.Accomplishment{}, err
		}
		rec.ApplicationID = in.ApplicationID
	}
	if in.DateSubmitted != nil {
		if !validDate(*in.DateSubmitted) {
			return model.Accomplishment{}, ErrInvalid
		}
		rec.DateSubmitted = *in.DateSubmitted
	}
	if in.TaskStatus != nil {
		rec.TaskStatus = *in.TaskStatus
	}

	if err := s.accomplishments.Update(ctx, *rec); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Accomplishment{}, ErrNotFound
		}
		return model.Accomplishment{}, fmt.Errorf("update accomplishment: %w", err)
	}

	saved, err := s.accomplishments.GetByID(ctx, id)
	if err != nil || saved == nil {
		return model.Accomplishment{}, fmt.Errorf("reload accomplishment: %w", err)
	}
	return *saved, nil
}

func (s *accomplishmentService) Delete(ctx context.Context, id int64) error {
	rec, err := s.accomplishments.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get accomplishment: %w", err)
	}
	if rec == nil {
		return ErrNotFound
	}
	return s.accomplishments.Delete(ctx, id)
}

func validateReconcileInput(in ReconcileInput) error {
	if in.UserBadge <= 0 {
		return ErrInvalid
	}
	if !validDate(in.StartWeekDate) || !validDate(in.EndWeekDate) {
		return ErrInvalid
	}
	if in.StartWeekDate > in.EndWeekDate {
		return ErrInvalid
	}
	if in.DateSubmitted != nil && !validDate(*in.DateSubmitted) {
		return ErrInvalid
	}
	if strings.TrimSpace(in.Accomplishments) == "" {
		return ErrInvalid
	}
	return nil
}

func validDate(s string) bool {
	_, err := time.Parse(config.DateLayout, s)
	return err == nil
}
