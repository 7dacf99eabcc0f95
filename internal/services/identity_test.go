package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mtarza13/FlavorDash/internal/models"
	"github.com/mtarza13/FlavorDash/internal/store"
)

func newTestIdentity(t *testing.T) (*IdentityService, *store.MemoryStore) {
	t.Helper()
	st := store.NewSeededMemoryStore()
	return NewIdentityService(st, ZeroLatency()), st
}

func TestRegister_DuplicateEmailFails(t *testing.T) {
	svc, _ := newTestIdentity(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ana", "ana@example.com", "555-0100", "pw")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Other Ana", "ana@example.com", "555-0101", "pw2")
	require.ErrorIs(t, err, ErrDuplicateEmail)

	// Exact string equality: a case variant is a different email.
	_, err = svc.Register(ctx, "Ana Caps", "Ana@example.com", "555-0102", "pw3")
	require.NoError(t, err)
}

func TestRegister_LogsTheUserIn(t *testing.T) {
	svc, st := newTestIdentity(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Ben", "ben@example.com", "", "pw")
	require.NoError(t, err)
	require.Equal(t, models.RoleUser, user.Role)
	require.Empty(t, user.Favorites)
	require.Equal(t, "mock-jwt-"+user.ID, user.Token)

	session, err := st.SessionUser()
	require.NoError(t, err)
	require.NotNil(t, session)
	require.Equal(t, user.ID, session.ID)
}

func TestLogin_AdminBypassAlwaysSucceeds(t *testing.T) {
	svc, _ := newTestIdentity(t)

	user, err := svc.Login(context.Background(), "admin@flavor.dash", "admin")
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, user.Role)
	require.Equal(t, "mock-jwt-admin-token", user.Token)
}

func TestLogin_KnownEmailSucceedsWithAnyPassword(t *testing.T) {
	svc, _ := newTestIdentity(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "Cam", "cam@example.com", "", "right")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	user, err := svc.Login(ctx, "cam@example.com", "completely-wrong")
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)
}

func TestLogin_UnknownEmailFails(t *testing.T) {
	svc, _ := newTestIdentity(t)

	_, err := svc.Login(context.Background(), "ghost@example.com", "pw")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogout_ClearsSessionOnly(t *testing.T) {
	svc, st := newTestIdentity(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Dee", "dee@example.com", "", "pw")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))

	session, err := st.SessionUser()
	require.NoError(t, err)
	require.Nil(t, session)

	users, err := st.Users()
	require.NoError(t, err)
	require.Len(t, users, 2) // admin + Dee
}

func TestToggleFavorite_IsItsOwnInverse(t *testing.T) {
	svc, st := newTestIdentity(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Eve", "eve@example.com", "", "pw")
	require.NoError(t, err)

	user, err := svc.ToggleFavorite(ctx, "5")
	require.NoError(t, err)
	require.Equal(t, []string{"5"}, user.Favorites)

	// Both the session pointer and the user collection must agree.
	session, err := st.SessionUser()
	require.NoError(t, err)
	require.Equal(t, []string{"5"}, session.Favorites)
	users, err := st.Users()
	require.NoError(t, err)
	for _, u := range users {
		if u.ID == user.ID {
			require.Equal(t, []string{"5"}, u.Favorites)
		}
	}

	user, err = svc.ToggleFavorite(ctx, "5")
	require.NoError(t, err)
	require.Empty(t, user.Favorites)
}

func TestToggleFavorite_RequiresSession(t *testing.T) {
	svc, _ := newTestIdentity(t)

	_, err := svc.ToggleFavorite(context.Background(), "5")
	require.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestUpdateProfile_WritesBothCopies(t *testing.T) {
	svc, st := newTestIdentity(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Fin", "fin@example.com", "", "pw")
	require.NoError(t, err)

	user.Name = "Finley"
	user.Phone = "555-0123"
	require.NoError(t, svc.UpdateProfile(ctx, user))

	session, err := st.SessionUser()
	require.NoError(t, err)
	require.Equal(t, "Finley", session.Name)

	users, err := st.Users()
	require.NoError(t, err)
	for _, u := range users {
		if u.ID == user.ID {
			require.Equal(t, "Finley", u.Name)
			require.Equal(t, "555-0123", u.Phone)
		}
	}
}
