package models

import (
	"time"
)

// Product categories shown in the catalog. "All" is a UI filter, not a
// category a product can carry.
var Categories = []string{"Burgers", "Pizza", "Sushi", "Salads", "Desserts", "Drinks"}

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`  // image URL
	Rating      float64  `json:"rating"` // 0-5
	Calories    int      `json:"calories"`
	PrepTime    int      `json:"prepTime"` // minutes
	Ingredients []string `json:"ingredients"`
	IsAvailable bool     `json:"isAvailable"`
	Reviews     int      `json:"reviews"`
}

// CartItem is a product snapshot plus a quantity. Cart contents live only in
// the active session and are never written to the store.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"` // unique across all users
	Phone     string   `json:"phone,omitempty"`
	Role      Role     `json:"role"`
	Token     string   `json:"token,omitempty"` // opaque session token, set while logged in
	Favorites []string `json:"favorites"`       // product IDs
}

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusPreparing  OrderStatus = "preparing"
	StatusDelivering OrderStatus = "delivering"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled" // admin action only, the simulator never sets it
)

type PaymentMethod string

const (
	PaymentCard     PaymentMethod = "card"
	PaymentCash     PaymentMethod = "cash"
	PaymentApplePay PaymentMethod = "apple_pay"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Order is immutable after creation except for Status. Line items are a
// snapshot of the cart at purchase time and do not track later catalog edits.
type Order struct {
	ID     string     `json:"id"` // time-ordered, sorts by recency
	UserID string     `json:"userId"`
	Items  []CartItem `json:"items"`

	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`

	Date   time.Time   `json:"date"`
	Status OrderStatus `json:"status"`

	PaymentMethod PaymentMethod `json:"paymentMethod"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	Address       string        `json:"address"`
	Phone         string        `json:"phone"`
	Instructions  string        `json:"instructions,omitempty"`
	CardLast4     string        `json:"cardLast4,omitempty"` // receipt display only, full card data never persisted
}

// CatalogPage is one page of a paginated catalog read.
type CatalogPage struct {
	Products []Product `json:"products"`
	HasMore  bool      `json:"hasMore"`
}
