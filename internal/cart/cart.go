// Package cart holds the active shopping session's items. The cart is never
// persisted by the store; it lives and dies with the session.
package cart

import (
	"sync"

	"github.com/mtarza13/FlavorDash/internal/models"
)

type Cart struct {
	mu    sync.Mutex
	items []models.CartItem
}

func New() *Cart {
	return &Cart{}
}

// Add puts qty units of product into the cart, merging with an existing line
// for the same product. Quantities at or below zero remove the line entirely;
// a zero-quantity line is never stored.
func (c *Cart) Add(product models.Product, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == product.ID {
			c.setQuantityLocked(i, c.items[i].Quantity+qty)
			return
		}
	}
	if qty > 0 {
		c.items = append(c.items, models.CartItem{Product: product, Quantity: qty})
	}
}

// SetQuantity replaces the quantity of a line. Zero or negative removes it.
func (c *Cart) SetQuantity(productID string, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == productID {
			c.setQuantityLocked(i, qty)
			return
		}
	}
}

func (c *Cart) setQuantityLocked(i, qty int) {
	if qty <= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
		return
	}
	c.items[i].Quantity = qty
}

func (c *Cart) Remove(productID string) {
	c.SetQuantity(productID, 0)
}

// Items returns a snapshot copy of the cart lines.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]models.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var sum float64
	for _, item := range c.items {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}

// Count is the total number of units across all lines.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var n int
	for _, item := range c.items {
		n += item.Quantity
	}
	return n
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}
