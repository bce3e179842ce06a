package repository_test

import (
	"context"
	"testing"

	"portal/backend/internal/model"
	"portal/backend/internal/repository"
	"portal/backend/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestServerRepository_ListKeywordSearch(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewServerRepository(db)
	ctx := context.Background()

	folder := "Web Farm"
	testutil.SeedServer(t, db, model.Server{
		Hostname: "app-prod-01", IPAddress: "10.0.0.1", OS: "RHEL 9",
		Status: "Online", Environment: "Production", Role: "App", Location: "DC1",
	})
	testutil.SeedServer(t, db, model.Server{
		Hostname: "db-dev-01", IPAddress: "10.0.1.5", OS: "Ubuntu 22.04",
		Status: "Online", Environment: "Development", Role: "Database", Location: "DC2",
		Folder: &folder,
	})

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Ordered by hostname.
	require.Equal(t, "app-prod-01", all[0].Hostname)
	require.Equal(t, "db-dev-01", all[1].Hostname)

	byHostname, err := repo.List(ctx, "prod")
	require.NoError(t, err)
	require.Len(t, byHostname, 1)
	require.Equal(t, "app-prod-01", byHostname[0].Hostname)

	byOS, err := repo.List(ctx, "Ubuntu")
	require.NoError(t, err)
	require.Len(t, byOS, 1)
	require.Equal(t, "db-dev-01", byOS[0].Hostname)

	byFolder, err := repo.List(ctx, "Web Farm")
	require.NoError(t, err)
	require.Len(t, byFolder, 1)
	require.Equal(t, "db-dev-01", byFolder[0].Hostname)

	none, err := repo.List(ctx, "nomatch")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestServerRepository_UpdateMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewServerRepository(db)

	err := repo.Update(context.Background(), model.Server{ID: 12345, Hostname: "ghost"})
	require.Error(t, err)
}
