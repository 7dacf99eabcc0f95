package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/mtarza13/FlavorDash/internal/models"
)

func (s *SQLiteStore) Users() ([]models.User, error) {
	var users []models.User
	if err := s.readCollection(keyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *SQLiteStore) PutUsers(users []models.User) error {
	if users == nil {
		users = []models.User{}
	}
	return s.writeCollection(keyUsers, users)
}

func (s *SQLiteStore) Products() ([]models.Product, error) {
	var products []models.Product
	if err := s.readCollection(keyProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *SQLiteStore) PutProducts(products []models.Product) error {
	if products == nil {
		products = []models.Product{}
	}
	return s.writeCollection(keyProducts, products)
}

func (s *SQLiteStore) Orders() ([]models.Order, error) {
	var orders []models.Order
	if err := s.readCollection(keyOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *SQLiteStore) PutOrders(orders []models.Order) error {
	if orders == nil {
		orders = []models.Order{}
	}
	return s.writeCollection(keyOrders, orders)
}

func (s *SQLiteStore) SessionUser() (*models.User, error) {
	var data string
	err := s.DB.QueryRow(`SELECT data FROM collections WHERE name = ?`, keyCurrentUser).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session user: %w", err)
	}
	var user models.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, fmt.Errorf("decode session user: %w", err)
	}
	return &user, nil
}

// SetSessionUser with nil clears the session, matching logout semantics.
func (s *SQLiteStore) SetSessionUser(user *models.User) error {
	if user == nil {
		if _, err := s.DB.Exec(`DELETE FROM collections WHERE name = ?`, keyCurrentUser); err != nil {
			return fmt.Errorf("clear session user: %w", err)
		}
		return nil
	}
	return s.writeCollection(keyCurrentUser, user)
}
