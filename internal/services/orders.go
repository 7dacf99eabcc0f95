package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mtarza13/FlavorDash/internal/models"
	"github.com/mtarza13/FlavorDash/internal/store"
)

// Pricing constants applied on the service side. Client-supplied totals are
// never trusted beyond the subtotal and the item list.
const (
	DeliveryFee = 2.50
	TaxRate     = 0.08
)

// CreateOrderParams is the checkout payload.
type CreateOrderParams struct {
	UserID        string               `validate:"required"`
	Items         []models.CartItem    `validate:"required,min=1"`
	Subtotal      float64              `validate:"gt=0"`
	Address       string               `validate:"required"`
	Phone         string               `validate:"required"`
	PaymentMethod models.PaymentMethod `validate:"required,oneof=card cash apple_pay"`
	CardLast4     string               `validate:"omitempty,len=4,numeric"`
	Instructions  string
}

// OrderService creates orders, answers history queries, and mutates status.
// Status transitions after creation come from the lifecycle simulator; this
// service persists them without judging their legality.
type OrderService struct {
	store    store.Store
	sim      *Simulator
	lat      Latency
	validate *validatorv10.Validate
	nowFunc  func() time.Time
	newID    func() string
}

func NewOrderService(st store.Store, sim *Simulator, lat Latency) *OrderService {
	return &OrderService{
		store:    st,
		sim:      sim,
		lat:      lat,
		validate: validatorv10.New(),
		nowFunc:  time.Now,
		newID:    newOrderID,
	}
}

// newOrderID returns a time-ordered identifier so orders sort by recency.
func newOrderID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Create persists a new pending order and arms the lifecycle simulator for it.
// It returns as soon as the order is written; the simulated kitchen progresses
// the status on its own afterwards.
func (s *OrderService) Create(ctx context.Context, params CreateOrderParams) (models.Order, error) {
	if err := s.validate.Struct(params); err != nil {
		return models.Order{}, fmt.Errorf("invalid order: %w", err)
	}

	sleepFor(ctx, s.lat.OrderCreate)
	// A checkout abandoned during the wait must not leave a half-written
	// record behind.
	if err := ctx.Err(); err != nil {
		return models.Order{}, err
	}

	tax := params.Subtotal * TaxRate
	total := params.Subtotal + DeliveryFee + tax

	paymentStatus := models.PaymentStatusPaid
	if params.PaymentMethod == models.PaymentCash {
		paymentStatus = models.PaymentStatusPending
	}

	items := make([]models.CartItem, len(params.Items))
	copy(items, params.Items)

	order := models.Order{
		ID:            s.newID(),
		UserID:        params.UserID,
		Items:         items,
		Subtotal:      params.Subtotal,
		DeliveryFee:   DeliveryFee,
		Tax:           tax,
		Total:         total,
		Date:          s.nowFunc(),
		Status:        models.StatusPending,
		PaymentMethod: params.PaymentMethod,
		PaymentStatus: paymentStatus,
		Address:       params.Address,
		Phone:         params.Phone,
		Instructions:  params.Instructions,
		CardLast4:     params.CardLast4,
	}

	orders, err := s.store.Orders()
	if err != nil {
		return models.Order{}, storageErr(err)
	}
	orders = append([]models.Order{order}, orders...)
	if err := s.store.PutOrders(orders); err != nil {
		return models.Order{}, storageErr(err)
	}

	s.sim.Start(order.ID, s)

	slog.Info("Order created",
		"order_id", order.ID,
		"user_id", order.UserID,
		"total", order.Total,
		"payment_method", order.PaymentMethod,
	)
	return order, nil
}

// UserOrders returns the user's orders, newest first. Storage is newest-first
// already, but the sort here is a guarantee, not an optimization.
func (s *OrderService) UserOrders(ctx context.Context, userID string) ([]models.Order, error) {
	sleepFor(ctx, s.lat.OrderQuery)

	orders, err := s.store.Orders()
	if err != nil {
		return nil, storageErr(err)
	}

	var result []models.Order
	for _, o := range orders {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

// AllOrders returns every order in storage order, for administrative use.
func (s *OrderService) AllOrders(ctx context.Context) ([]models.Order, error) {
	sleepFor(ctx, s.lat.OrderQuery)

	orders, err := s.store.Orders()
	if err != nil {
		return nil, storageErr(err)
	}
	return orders, nil
}

// UpdateStatus replaces the status of an order in place. There is no
// transition-legality check; the simulator is the only caller in normal
// operation, and the admin override writes whatever it is told to.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) (models.Order, error) {
	orders, err := s.store.Orders()
	if err != nil {
		return models.Order{}, storageErr(err)
	}

	for i := range orders {
		if orders[i].ID != orderID {
			continue
		}
		orders[i].Status = status
		if err := s.store.PutOrders(orders); err != nil {
			return models.Order{}, storageErr(err)
		}
		return orders[i], nil
	}

	return models.Order{}, fmt.Errorf("order %s: %w", orderID, ErrNotFound)
}

// WatchUserOrders re-reads the user's order history on a fixed interval and
// sends each snapshot on the returned channel, so callers observe the
// simulator's progress. The channel closes when ctx is done. Read errors are
// skipped; the next tick retries.
func (s *OrderService) WatchUserOrders(ctx context.Context, userID string, interval time.Duration) <-chan []models.Order {
	ch := make(chan []models.Order)
	go func() {
		defer close(ch)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			orders, err := s.UserOrders(ctx, userID)
			if err == nil {
				select {
				case ch <- orders:
				case <-ctx.Done():
					return
				}
			}
			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}
