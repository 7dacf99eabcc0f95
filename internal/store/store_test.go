package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mtarza13/FlavorDash/internal/models"
)

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "flavordash.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLite_SeedsOnFirstOpen(t *testing.T) {
	s := newTestSQLite(t)

	products, err := s.Products()
	require.NoError(t, err)
	require.Len(t, products, len(SeedProducts))

	users, err := s.Users()
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, AdminEmail, users[0].Email)
	require.Equal(t, models.RoleAdmin, users[0].Role)

	orders, err := s.Orders()
	require.NoError(t, err)
	require.Empty(t, orders)
}

func TestSQLite_SeedingIsIdempotentAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flavordash.db")

	s, err := NewSQLiteStore(path)
	require.NoError(t, err)

	// Mutate the seeded data, then reopen.
	require.NoError(t, s.PutProducts([]models.Product{{ID: "only", Name: "Leftovers", Price: 1.00}}))
	require.NoError(t, s.PutUsers(nil))
	require.NoError(t, s.Close())

	s, err = NewSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()

	products, err := s.Products()
	require.NoError(t, err)
	require.Len(t, products, 1, "reopen must not restore the seed catalog")
	require.Equal(t, "Leftovers", products[0].Name)

	users, err := s.Users()
	require.NoError(t, err)
	require.Empty(t, users, "reopen must not restore the admin over an emptied collection")
}

func TestSQLite_OrderRoundTripPreservesFields(t *testing.T) {
	s := newTestSQLite(t)

	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	order := models.Order{
		ID:     "o1",
		UserID: "u1",
		Items: []models.CartItem{
			{Product: models.Product{ID: "1", Name: "Burger", Price: 16.99, Ingredients: []string{"Beef", "Bun"}}, Quantity: 2},
		},
		Subtotal:      33.98,
		DeliveryFee:   2.50,
		Tax:           2.7184,
		Total:         39.1984,
		Date:          created,
		Status:        models.StatusPending,
		PaymentMethod: models.PaymentCard,
		PaymentStatus: models.PaymentStatusPaid,
		Address:       "1 Main St",
		Phone:         "555-0100",
		Instructions:  "ring twice",
		CardLast4:     "4242",
	}

	require.NoError(t, s.PutOrders([]models.Order{order}))
	got, err := s.Orders()
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, order, got[0])
}

func TestSQLite_SessionUserLifecycle(t *testing.T) {
	s := newTestSQLite(t)

	session, err := s.SessionUser()
	require.NoError(t, err)
	require.Nil(t, session)

	user := models.User{ID: "u1", Name: "Gia", Email: "gia@example.com", Role: models.RoleUser, Token: "mock-jwt-u1", Favorites: []string{"2"}}
	require.NoError(t, s.SetSessionUser(&user))

	session, err = s.SessionUser()
	require.NoError(t, err)
	require.NotNil(t, session)
	require.Equal(t, user, *session)

	require.NoError(t, s.SetSessionUser(nil))
	session, err = s.SessionUser()
	require.NoError(t, err)
	require.Nil(t, session)
}

func TestMemory_ReadsAndWritesAreIsolatedCopies(t *testing.T) {
	s := NewSeededMemoryStore()

	products, err := s.Products()
	require.NoError(t, err)
	original := products[0].Name

	// Mutating a read result must not reach the store.
	products[0].Name = "Hacked"
	again, err := s.Products()
	require.NoError(t, err)
	require.Equal(t, original, again[0].Name)

	// Mutating a written slice afterwards must not reach the store either.
	users := []models.User{{ID: "u1", Name: "Hal", Email: "hal@example.com", Favorites: []string{}}}
	require.NoError(t, s.PutUsers(users))
	users[0].Name = "Changed"
	got, err := s.Users()
	require.NoError(t, err)
	require.Equal(t, "Hal", got[0].Name)
}

func TestMemory_SessionUserCopies(t *testing.T) {
	s := NewMemoryStore()

	user := models.User{ID: "u1", Name: "Ira", Email: "ira@example.com", Favorites: []string{"1"}}
	require.NoError(t, s.SetSessionUser(&user))

	user.Favorites[0] = "mutated"
	session, err := s.SessionUser()
	require.NoError(t, err)
	require.Equal(t, []string{"1"}, session.Favorites)
}
