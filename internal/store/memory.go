package store

import (
	"encoding/json"
	"sync"

	"github.com/mtarza13/FlavorDash/internal/models"
)

// MemoryStore implements Store without a database. It is used by tests and
// copies every value through JSON on the way in and out, the same fidelity
// guarantee the SQLite backend gives for free.
type MemoryStore struct {
	mu       sync.RWMutex
	users    []models.User
	products []models.Product
	orders   []models.Order
	session  *models.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    []models.User{},
		products: []models.Product{},
		orders:   []models.Order{},
	}
}

// NewSeededMemoryStore returns a MemoryStore provisioned the way a fresh
// SQLite store would be: seed catalog plus the admin account.
func NewSeededMemoryStore() *MemoryStore {
	s := NewMemoryStore()
	s.PutProducts(SeedProducts)
	s.PutUsers([]models.User{{
		ID:        "admin",
		Name:      "Admin User",
		Email:     AdminEmail,
		Phone:     "555-0199",
		Role:      models.RoleAdmin,
		Favorites: []string{},
	}})
	return s
}

func deepCopy[T any](src T) T {
	var dst T
	data, err := json.Marshal(src)
	if err != nil {
		return dst
	}
	_ = json.Unmarshal(data, &dst)
	return dst
}

func (s *MemoryStore) Users() ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return deepCopy(s.users), nil
}

func (s *MemoryStore) PutUsers(users []models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = deepCopy(users)
	return nil
}

func (s *MemoryStore) Products() ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return deepCopy(s.products), nil
}

func (s *MemoryStore) PutProducts(products []models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = deepCopy(products)
	return nil
}

func (s *MemoryStore) Orders() ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return deepCopy(s.orders), nil
}

func (s *MemoryStore) PutOrders(orders []models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = deepCopy(orders)
	return nil
}

func (s *MemoryStore) SessionUser() (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil, nil
	}
	u := deepCopy(*s.session)
	return &u, nil
}

func (s *MemoryStore) SetSessionUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user == nil {
		s.session = nil
		return nil
	}
	u := deepCopy(*user)
	s.session = &u
	return nil
}

func (s *MemoryStore) Close() error { return nil }
