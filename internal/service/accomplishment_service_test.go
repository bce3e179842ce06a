package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"portal/backend/internal/config"
	"portal/backend/internal/model"
	"portal/backend/internal/repository/mock"
)

type reconcileMocks struct {
	accomplishments *mock.MockAccomplishmentRepository
	users           *mock.MockUserRepository
	applications    *mock.MockApplicationRepository
}

func reconcileDeps(t *testing.T) (reconcileMocks, AccomplishmentService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := reconcileMocks{
		accomplishments: mock.NewMockAccomplishmentRepository(ctrl),
		users:           mock.NewMockUserRepository(ctrl),
		applications:    mock.NewMockApplicationRepository(ctrl),
	}
	return m, NewAccomplishmentService(m.accomplishments, m.users, m.applications)
}

func strPtr(s string) *string { return &s }

func TestAccomplishmentService_ReconcileCreates(t *testing.T) {
	m, svc := reconcileDeps(t)
	ctx := context.Background()

	m.users.EXPECT().GetByBadge(ctx, int64(96880)).Return(&model.User{Badge: 96880}, nil)
	m.accomplishments.EXPECT().FindByNaturalKey(ctx, int64(96880), "2025-08-18", "2025-08-24").Return(nil, nil)

	var upserted model.Accomplishment
	m.accomplishments.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a model.Accomplishment) (model.Accomplishment, error) {
			upserted = a
			a.ID = 1
			return a, nil
		})

	saved, created, err := svc.Reconcile(ctx, ReconcileInput{
		UserBadge:       96880,
		StartWeekDate:   "2025-08-18",
		EndWeekDate:     "2025-08-24",
		Accomplishments: "Did X",
	})
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, int64(1), saved.ID)

	// Defaults fill the optional fields on first write.
	require.Equal(t, config.DefaultTaskStatus, upserted.TaskStatus)
	require.Equal(t, time.Now().Format(config.DateLayout), upserted.DateSubmitted)
	require.Equal(t, "Did X", upserted.Accomplishments)
}

func TestAccomplishmentService_ReconcileUpdatesKeepingStoredFields(t *testing.T) {
	m, svc := reconcileDeps(t)
	ctx := context.Background()

	appID := int64(7)
	existing := &model.Accomplishment{
		ID: 5, UserBadge: 96880,
		StartWeekDate: "2025-08-18", EndWeekDate: "2025-08-24",
		Accomplishments: "Did X",
		DateSubmitted:   "2025-08-20", TaskStatus: "Approved",
		ApplicationID: &appID,
	}

	m.users.EXPECT().GetByBadge(ctx, int64(96880)).Return(&model.User{Badge: 96880}, nil)
	m.accomplishments.EXPECT().FindByNaturalKey(ctx, int64(96880), "2025-08-18", "2025-08-24").Return(existing, nil)

	var upserted model.Accomplishment
	m.accomplishments.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a model.Accomplishment) (model.Accomplishment, error) {
			upserted = a
			a.ID = existing.ID
			return a, nil
		})

	saved, created, err := svc.Reconcile(ctx, ReconcileInput{
		UserBadge:       96880,
		StartWeekDate:   "2025-08-18",
		EndWeekDate:     "2025-08-24",
		Accomplishments: "Did X and Y",
	})
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, existing.ID, saved.ID)

	// Absent optional fields fall back to the stored record.
	require.Equal(t, "Did X and Y", upserted.Accomplishments)
	require.Equal(t, "2025-08-20", upserted.DateSubmitted)
	require.Equal(t, "Approved", upserted.TaskStatus)
	require.Equal(t, &appID, upserted.ApplicationID)
}

func TestAccomplishmentService_ReconcileExplicitFieldsWin(t *testing.T) {
	m, svc := reconcileDeps(t)
	ctx := context.Background()

	m.users.EXPECT().GetByBadge(ctx, int64(1)).Return(&model.User{Badge: 1}, nil)
	m.accomplishments.EXPECT().FindByNaturalKey(ctx, int64(1), "2025-08-18", "2025-08-24").Return(&model.Accomplishment{
		ID: 9, DateSubmitted: "2025-08-19", TaskStatus: "Approved",
	}, nil)

	var upserted model.Accomplishment
	m.accomplishments.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a model.Accomplishment) (model.Accomplishment, error) {
			upserted = a
			return a, nil
		})

	_, _, err := svc.Reconcile(ctx, ReconcileInput{
		UserBadge:       1,
		StartWeekDate:   "2025-08-18",
		EndWeekDate:     "2025-08-24",
		Accomplishments: "body",
		DateSubmitted:   strPtr("2025-08-23"),
		TaskStatus:      strPtr("Submitted"),
	})
	require.NoError(t, err)
	require.Equal(t, "2025-08-23", upserted.DateSubmitted)
	require.Equal(t, "Submitted", upserted.TaskStatus)
}

func TestAccomplishmentService_ReconcileOwnerMissing(t *testing.T) {
	m, svc := reconcileDeps(t)
	ctx := context.Background()

	m.users.EXPECT().GetByBadge(ctx, int64(404)).Return(nil, nil)

	_, _, err := svc.Reconcile(ctx, ReconcileInput{
		UserBadge:       404,
		StartWeekDate:   "2025-08-18",
		EndWeekDate:     "2025-08-24",
		Accomplishments: "body",
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAccomplishmentService_ReconcileValidation(t *testing.T) {
	_, svc := reconcileDeps(t)
	ctx := context.Background()

	cases := []ReconcileInput{
		{UserBadge: 0, StartWeekDate: "2025-08-18", EndWeekDate: "2025-08-24", Accomplishments: "x"},
		{UserBadge: 1, StartWeekDate: "bad", EndWeekDate: "2025-08-24", Accomplishments: "x"},
		{UserBadge: 1, StartWeekDate: "2025-08-24", EndWeekDate: "2025-08-18", Accomplishments: "x"},
		{UserBadge: 1, StartWeekDate: "2025-08-18", EndWeekDate: "2025-08-24", Accomplishments: "   "},
		{UserBadge: 1, StartWeekDate: "2025-08-18", EndWeekDate: "2025-08-24", Accomplishments: "x", DateSubmitted: strPtr("08/22/2025")},
	}
	for _, in := range cases {
		_, _, err := svc.Reconcile(ctx, in)
		require.ErrorIs(t, err, ErrInvalid)
	}
}

func TestAccomplishmentService_ReconcileSanitizesBody(t *testing.T) {
	m, svc := reconcileDeps(t)
	ctx := context.Background()

	m.users.EXPECT().GetByBadge(ctx, int64(1)).Return(&model.User{Badge: 1}, nil)
	m.accomplishments.EXPECT().FindByNaturalKey(ctx, int64(1), "2025-08-18", "2025-08-24").Return(nil, nil)

	var upserted model.Accomplishment
	m.accomplishments.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a model.Accomplishment) (model.Accomplishment, error) {
			upserted = a
			return a, nil
		})

	_, _, err := svc.Reconcile(ctx, ReconcileInput{
		UserBadge:       1,
		StartWeekDate:   "2025-08-18",
		EndWeekDate:     "2025-08-24",
		Accomplishments: `<p>ok</p><script>alert(1)</script>`,
	})
	require.NoError(t, err)
	require.NotContains(t, upserted.Accomplishments, "script")
	require.Contains(t, upserted.Accomplishments, "ok")
}

func TestAccomplishmentService_ReconcileApplicationMissing(t *testing.T) {
	m, svc := reconcileDeps(t)
	ctx := context.Background()

	m.users.EXPECT().GetByBadge(ctx, int64(1)).Return(&model.User{Badge: 1}, nil)
	m.applications.EXPECT().GetByID(ctx, int64(999)).Return(nil, nil)

	appID := int64(999)
	_, _, err := svc.Reconcile(ctx, ReconcileInput{
		UserBadge:       1,
		StartWeekDate:   "2025-08-18",
		EndWeekDate:     "2025-08-24",
		Accomplishments: "body",
		ApplicationID:   &appID,
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAccomplishmentService_ReconcileApplicationResolved(t *testing.T) {
	m, svc := reconcileDeps(t)
	ctx := context.Background()

	appID := int64(7)
	m.users.EXPECT().GetByBadge(ctx, int64(1)).Return(&model.User{Badge: 1}, nil)
	m.applications.EXPECT().GetByID(ctx, appID).Return(&model.Application{ID: appID}, nil)
	m.accomplishments.EXPECT().FindByNaturalKey(ctx, int64(1), "2025-08-18", "2025-08-24").Return(nil, nil)

	var upserted model.Accomplishment
	m.accomplishments.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a model.Accomplishment) (model.Accomplishment, error) {
			upserted = a
			return a, nil
		})

	_, _, err := svc.Reconcile(ctx, ReconcileInput{
		UserBadge:       1,
		StartWeekDate:   "2025-08-18",
		EndWeekDate:     "2025-08-24",
		Accomplishments: "body",
		ApplicationID:   &appID,
	})
	require.NoError(t, err)
	require.Equal(t, &appID, upserted.ApplicationID)
}

func TestAccomplishmentService_UpdateApplicationMissing(t *testing.T) {
	m, svc := reconcileDeps(t)
	ctx := context.Background()

	m.accomplishments.EXPECT().GetByID(ctx, int64(5)).Return(&model.Accomplishment{
		ID: 5, UserBadge: 1,
		StartWeekDate: "2025-08-18", EndWeekDate: "2025-08-24",
		Accomplishments: "body",
	}, nil)
	m.applications.EXPECT().GetByID(ctx, int64(999)).Return(nil, nil)

	appID := int64(999)
	_, err := svc.Update(ctx, 5, ReconcileInput{ApplicationID: &appID})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAccomplishmentService_UpdateMissing(t *testing.T) {
	m, svc := reconcileDeps(t)
	ctx := context.Background()

	m.accomplishments.EXPECT().GetByID(ctx, int64(42)).Return(nil, nil)

	_, err := svc.Update(ctx, 42, ReconcileInput{Accomplishments: "x"})
	require.ErrorIs(t, err, ErrNotFound)
}
