package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mtarza13/FlavorDash/internal/models"
	"github.com/mtarza13/FlavorDash/internal/store"
)

// Demo credentials. The admin pair always logs in regardless of stored state.
const (
	adminEmail    = store.AdminEmail
	adminPassword = "admin"
	adminToken    = "mock-jwt-admin-token"
)

// IdentityService manages accounts and the single session pointer.
//
// This is deliberately not a real auth system: no password is ever stored or
// checked. Login succeeds for any known email, and the admin pair above
// bypasses even that lookup result. The behavior is contracted by the demo and
// must not be quietly hardened.
type IdentityService struct {
	store store.Store
	lat   Latency
	newID func() string
}

func NewIdentityService(st store.Store, lat Latency) *IdentityService {
	return &IdentityService{
		store: st,
		lat:   lat,
		newID: uuid.NewString,
	}
}

func (s *IdentityService) Login(ctx context.Context, email, password string) (models.User, error) {
	sleepFor(ctx, s.lat.Login)

	users, err := s.store.Users()
	if err != nil {
		return models.User{}, storageErr(err)
	}

	for _, u := range users {
		if u.Email != email {
			continue
		}
		if email == adminEmail && password == adminPassword {
			u.Token = adminToken
		} else {
			u.Token = "mock-jwt-" + u.ID
		}
		if err := s.store.SetSessionUser(&u); err != nil {
			return models.User{}, storageErr(err)
		}
		slog.Info("User logged in", "user_id", u.ID, "role", u.Role)
		return u, nil
	}

	return models.User{}, ErrInvalidCredentials
}

// Register creates an account and logs it in. Email uniqueness is exact
// string equality; no normalization is applied.
func (s *IdentityService) Register(ctx context.Context, name, email, phone, password string) (models.User, error) {
	sleepFor(ctx, s.lat.Register)

	users, err := s.store.Users()
	if err != nil {
		return models.User{}, storageErr(err)
	}

	for _, u := range users {
		if u.Email == email {
			return models.User{}, ErrDuplicateEmail
		}
	}

	user := models.User{
		ID:        s.newID(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Role:      models.RoleUser,
		Favorites: []string{},
	}

	users = append(users, user)
	if err := s.store.PutUsers(users); err != nil {
		return models.User{}, storageErr(err)
	}

	user.Token = "mock-jwt-" + user.ID
	if err := s.store.SetSessionUser(&user); err != nil {
		return models.User{}, storageErr(err)
	}

	slog.Info("User registered", "user_id", user.ID, "email", email)
	return user, nil
}

// Logout clears the session pointer only; the user collection is untouched.
func (s *IdentityService) Logout(ctx context.Context) error {
	if err := s.store.SetSessionUser(nil); err != nil {
		return storageErr(err)
	}
	return nil
}

func (s *IdentityService) CurrentUser(ctx context.Context) (*models.User, error) {
	user, err := s.store.SessionUser()
	if err != nil {
		return nil, storageErr(err)
	}
	return user, nil
}

// UpdateProfile writes the user to both the session pointer and the user
// collection. Updating only one of the two is a classic way to end up with a
// profile that reverts on reload.
func (s *IdentityService) UpdateProfile(ctx context.Context, user models.User) error {
	if err := s.store.SetSessionUser(&user); err != nil {
		return storageErr(err)
	}

	users, err := s.store.Users()
	if err != nil {
		return storageErr(err)
	}
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = user
			if err := s.store.PutUsers(users); err != nil {
				return storageErr(err)
			}
			return nil
		}
	}
	return fmt.Errorf("user %s: %w", user.ID, ErrNotFound)
}

// ToggleFavorite flips productID in the current user's favorites set and
// persists the result. Toggling twice restores the original set.
func (s *IdentityService) ToggleFavorite(ctx context.Context, productID string) (models.User, error) {
	user, err := s.store.SessionUser()
	if err != nil {
		return models.User{}, storageErr(err)
	}
	if user == nil {
		return models.User{}, ErrNotLoggedIn
	}

	found := false
	favorites := make([]string, 0, len(user.Favorites)+1)
	for _, id := range user.Favorites {
		if id == productID {
			found = true
			continue
		}
		favorites = append(favorites, id)
	}
	if !found {
		favorites = append(favorites, productID)
	}
	user.Favorites = favorites

	if err := s.UpdateProfile(ctx, *user); err != nil {
		return models.User{}, err
	}
	return *user, nil
}
