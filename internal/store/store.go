package store

import (
	"github.com/mtarza13/FlavorDash/internal/models"
)

// Store is the durable key-value layer behind every service. Each collection
// is read and replaced as a whole; there is no partial-patch primitive.
// Services do read-modify-replace within one logical call and must never hold
// references into store-owned memory, so implementations hand out copies.
type Store interface {
	Users() ([]models.User, error)
	PutUsers(users []models.User) error

	Products() ([]models.Product, error)
	PutProducts(products []models.Product) error

	// Orders returns the collection in storage order, newest-first by convention.
	Orders() ([]models.Order, error)
	PutOrders(orders []models.Order) error

	// SessionUser returns the currently logged-in user, or nil when logged out.
	SessionUser() (*models.User, error)
	SetSessionUser(user *models.User) error

	Close() error
}

// Collection names. They double as row keys in the SQLite backend.
const (
	keyUsers       = "fd_users"
	keyProducts    = "fd_products"
	keyOrders      = "fd_orders"
	keyCurrentUser = "fd_current_user"
)
