package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/mtarza13/FlavorDash/internal/models"
)

// Schedule holds the three delays for simulated kitchen progress, each
// measured from order creation at t=0. The timers are armed together and run
// independently; they are not chained off each other's completion.
type Schedule struct {
	Preparing  time.Duration
	Delivering time.Duration
	Delivered  time.Duration
}

// DefaultSchedule mirrors the reference kitchen timings.
func DefaultSchedule() Schedule {
	return Schedule{
		Preparing:  5 * time.Second,
		Delivering: 10 * time.Second,
		Delivered:  15 * time.Second,
	}
}

// StatusUpdater is the slice of OrderService the simulator needs.
type StatusUpdater interface {
	UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) (models.Order, error)
}

// Simulator drives the one-way order lifecycle pending -> preparing ->
// delivering -> delivered with fire-and-forget timers. Nothing observes its
// completion and nothing cancels it: each timer writes its status
// unconditionally, so a concurrent cancellation inside the window can be
// overwritten by a later timer. Timers are not persisted either; a process
// restart strands in-flight orders at their last written status. Both
// limitations are part of the simulation's contract.
type Simulator struct {
	schedule  Schedule
	afterFunc func(d time.Duration, f func()) *time.Timer
}

func NewSimulator(schedule Schedule) *Simulator {
	return &Simulator{
		schedule:  schedule,
		afterFunc: time.AfterFunc,
	}
}

// Start arms the three transitions for a freshly created order and returns
// immediately.
func (s *Simulator) Start(orderID string, updater StatusUpdater) {
	s.transitionAfter(s.schedule.Preparing, orderID, updater, models.StatusPreparing)
	s.transitionAfter(s.schedule.Delivering, orderID, updater, models.StatusDelivering)
	s.transitionAfter(s.schedule.Delivered, orderID, updater, models.StatusDelivered)
}

func (s *Simulator) transitionAfter(d time.Duration, orderID string, updater StatusUpdater, status models.OrderStatus) {
	s.afterFunc(d, func() {
		if _, err := updater.UpdateStatus(context.Background(), orderID, status); err != nil {
			// Nothing waits on the simulator, so a vanished order is
			// logged and dropped.
			slog.Warn("Order progression skipped", "order_id", orderID, "status", status, "error", err)
			return
		}
		slog.Debug("Order progressed", "order_id", orderID, "status", status)
	})
}
