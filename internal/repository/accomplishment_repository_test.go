package repository_test

import (
	"context"
	"testing"

	"portal/backend/internal/model"
	"portal/backend/internal/repository"
	"portal/backend/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestAccomplishmentRepository_UpsertCreatesThenUpdates(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewAccomplishmentRepository(db)
	ctx := context.Background()

	badge := testutil.SeedUser(t, db, model.User{Badge: 96880, FirstName: "Trung"})

	first, err := repo.Upsert(ctx, model.Accomplishment{
		UserBadge:       badge,
		Accomplishments: "Did X",
		StartWeekDate:   "2025-08-18",
		EndWeekDate:     "2025-08-24",
		DateSubmitted:   "2025-08-22",
		TaskStatus:      "Submitted",
	})
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	second, err := repo.Upsert(ctx, model.Accomplishment{
		UserBadge:       badge,
		Accomplishments: "Did X and Y",
		StartWeekDate:   "2025-08-18",
		EndWeekDate:     "2025-08-24",
		DateSubmitted:   "2025-08-23",
		TaskStatus:      "Submitted",
	})
	require.NoError(t, err)

	// Same row mutated in place, not a new one.
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, "Did X and Y", second.Accomplishments)
	require.Equal(t, "2025-08-23", second.DateSubmitted)

	records, err := repo.ListByUser(ctx, badge)
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestAccomplishmentRepository_UpsertNoCrossWeekBleed(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewAccomplishmentRepository(db)
	ctx := context.Background()

	badge := testutil.SeedUser(t, db, model.User{Badge: 100})

	weekA, err := repo.Upsert(ctx, model.Accomplishment{
		UserBadge: badge, Accomplishments: "week A",
		StartWeekDate: "2025-08-11", EndWeekDate: "2025-08-17",
		DateSubmitted: "2025-08-15", TaskStatus: "Submitted",
	})
	require.NoError(t, err)

	_, err = repo.Upsert(ctx, model.Accomplishment{
		UserBadge: badge, Accomplishments: "week B",
		StartWeekDate: "2025-08-18", EndWeekDate: "2025-08-24",
		DateSubmitted: "2025-08-22", TaskStatus: "Submitted",
	})
	require.NoError(t, err)

	// Week A is untouched by the week B write.
	got, err := repo.FindByNaturalKey(ctx, badge, "2025-08-11", "2025-08-17")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, weekA.ID, got.ID)
	require.Equal(t, "week A", got.Accomplishments)

	records, err := repo.ListByUser(ctx, badge)
	require.NoError(t, err)
	require.Len(t, records, 2)
}

func TestAccomplishmentRepository_InsertDuplicateNaturalKey(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewAccomplishmentRepository(db)
	ctx := context.Background()

	badge := testutil.SeedUser(t, db, model.User{Badge: 200})

	_, err := repo.Insert(ctx, model.Accomplishment{
		UserBadge: badge, Accomplishments: "first",
		StartWeekDate: "2025-08-18", EndWeekDate: "2025-08-24",
		DateSubmitted: "2025-08-20", TaskStatus: "Submitted",
	})
	require.NoError(t, err)

	// A bare insert for the same triple loses to the unique index.
	_, err = repo.Insert(ctx, model.Accomplishment{
		UserBadge: badge, Accomplishments: "second",
		StartWeekDate: "2025-08-18", EndWeekDate: "2025-08-24",
		DateSubmitted: "2025-08-21", TaskStatus: "Submitted",
	})
	require.Error(t, err)
	require.True(t, repository.IsUniqueViolation(err))

	records, err := repo.ListByUser(ctx, badge)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "first", records[0].Accomplishments)
}

func TestAccomplishmentRepository_FindByNaturalKey_Absent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewAccomplishmentRepository(db)

	got, err := repo.FindByNaturalKey(context.Background(), 999, "2025-01-01", "2025-01-07")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestAccomplishmentRepository_ListByUserInWindow(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewAccomplishmentRepository(db)
	ctx := context.Background()

	badge := testutil.SeedUser(t, db, model.User{Badge: 300})

	testutil.SeedAccomplishment(t, db, model.Accomplishment{
		UserBadge: badge, Accomplishments: "in window",
		StartWeekDate: "2025-08-04", EndWeekDate: "2025-08-10",
	})
	testutil.SeedAccomplishment(t, db, model.Accomplishment{
		UserBadge: badge, Accomplishments: "straddles window start",
		StartWeekDate: "2025-07-28", EndWeekDate: "2025-08-03",
	})
	testutil.SeedAccomplishment(t, db, model.Accomplishment{
		UserBadge: badge, Accomplishments: "before window",
		StartWeekDate: "2025-07-14", EndWeekDate: "2025-07-20",
	})

	records, err := repo.ListByUserInWindow(ctx, badge, "2025-08-01", "2025-08-31")
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "straddles window start", records[0].Accomplishments)
	require.Equal(t, "in window", records[1].Accomplishments)
}

func TestAccomplishmentRepository_UpdateByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewAccomplishmentRepository(db)
	ctx := context.Background()

	badge := testutil.SeedUser(t, db, model.User{Badge: 400})
	id := testutil.SeedAccomplishment(t, db, model.Accomplishment{
		UserBadge: badge, Accomplishments: "before",
		StartWeekDate: "2025-08-18", EndWeekDate: "2025-08-24",
	})

	rec, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, rec)

	rec.Accomplishments = "after"
	rec.TaskStatus = "Approved"
	require.NoError(t, repo.Update(ctx, *rec))

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "after", got.Accomplishments)
	require.Equal(t, "Approved", got.TaskStatus)
}
