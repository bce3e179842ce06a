package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"portal/backend/internal/model"
	"portal/backend/internal/repository/mock"
)

func TestAuthService_SessionRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	settings := &fakeSettings{}
	svc := NewAuthService(users, settings)
	ctx := context.Background()

	users.EXPECT().GetByBadge(ctx, int64(96880)).Return(&model.User{Badge: 96880, FirstName: "Trung"}, nil)

	session, err := svc.CreateSession(ctx, SessionProfile{Badge: 96880, Name: "Trung Nguyen"})
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
	require.Equal(t, int64(96880), session.User.Badge)

	badge, err := svc.ValidateToken(session.Token)
	require.NoError(t, err)
	require.Equal(t, int64(96880), badge)

	// Secret persisted once, so a new service instance still validates.
	svc2 := NewAuthService(users, settings)
	badge, err = svc2.ValidateToken(session.Token)
	require.NoError(t, err)
	require.Equal(t, int64(96880), badge)
}

func TestAuthService_ProvisionsUnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(users, &fakeSettings{})
	ctx := context.Background()

	users.EXPECT().GetByBadge(ctx, int64(7)).Return(nil, nil)

	var created model.User
	users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u model.User) (model.User, error) {
			created = u
			return u, nil
		})

	session, err := svc.CreateSession(ctx, SessionProfile{Badge: 7, Name: "Grace Brewster Hopper", Email: "grace@example.com"})
	require.NoError(t, err)
	require.Equal(t, int64(7), session.User.Badge)
	require.Equal(t, "Grace Brewster", created.FirstName)
	require.Equal(t, "Hopper", created.LastName)
	require.NotNil(t, created.Email)
}

func TestAuthService_RejectsGarbageToken(t *testing.T) {
	svc := NewAuthService(nil, &fakeSettings{})

	_, err := svc.ValidateToken("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_RejectsInvalidProfile(t *testing.T) {
	svc := NewAuthService(nil, &fakeSettings{})

	_, err := svc.CreateSession(context.Background(), SessionProfile{Badge: 0, Name: "x"})
	require.ErrorIs(t, err, ErrInvalid)

	_, err = svc.CreateSession(context.Background(), SessionProfile{Badge: 1, Name: "  "})
	require.ErrorIs(t, err, ErrInvalid)
}
