package services

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mtarza13/FlavorDash/internal/models"
	"github.com/mtarza13/FlavorDash/internal/store"
)

// armedTimer records a scheduled transition so tests can fast-forward virtual
// time instead of sleeping.
type armedTimer struct {
	delay time.Duration
	fire  func()
}

func capturedSimulator(schedule Schedule) (*Simulator, *[]armedTimer) {
	timers := &[]armedTimer{}
	sim := NewSimulator(schedule)
	sim.afterFunc = func(d time.Duration, f func()) *time.Timer {
		*timers = append(*timers, armedTimer{delay: d, fire: f})
		return nil
	}
	return sim, timers
}

func TestSimulator_ArmsThreeIndependentTimersAtCreation(t *testing.T) {
	schedule := Schedule{
		Preparing:  5 * time.Second,
		Delivering: 10 * time.Second,
		Delivered:  15 * time.Second,
	}
	sim, timers := capturedSimulator(schedule)

	st := store.NewSeededMemoryStore()
	svc := NewOrderService(st, sim, ZeroLatency())

	order, err := svc.Create(context.Background(), createParams(20.00, models.PaymentCard))
	require.NoError(t, err)
	require.Equal(t, models.StatusPending, order.Status, "status is pending immediately after creation")

	// All three delays are armed up front at t=0, not chained.
	require.Len(t, *timers, 3)
	delays := []time.Duration{(*timers)[0].delay, (*timers)[1].delay, (*timers)[2].delay}
	require.ElementsMatch(t, []time.Duration{5 * time.Second, 10 * time.Second, 15 * time.Second}, delays)
}

func TestSimulator_ProgressesThroughEveryStatusInOrder(t *testing.T) {
	sim, timers := capturedSimulator(DefaultSchedule())
	st := store.NewSeededMemoryStore()
	svc := NewOrderService(st, sim, ZeroLatency())
	ctx := context.Background()

	order, err := svc.Create(ctx, createParams(20.00, models.PaymentCard))
	require.NoError(t, err)

	// Fast-forward: fire the timers in delay order, the way a real clock would.
	sort.Slice(*timers, func(i, j int) bool { return (*timers)[i].delay < (*timers)[j].delay })

	want := []models.OrderStatus{models.StatusPreparing, models.StatusDelivering, models.StatusDelivered}
	for i, timer := range *timers {
		timer.fire()
		stored, err := st.Orders()
		require.NoError(t, err)
		require.Equal(t, want[i], stored[0].Status)
		require.Equal(t, order.ID, stored[0].ID)
	}
}

func TestSimulator_OrderingHoldsForCustomSchedules(t *testing.T) {
	// Different absolute delays, same t=0 origin: ordering must still hold.
	schedule := Schedule{
		Preparing:  1 * time.Millisecond,
		Delivering: 2 * time.Millisecond,
		Delivered:  3 * time.Millisecond,
	}
	sim, timers := capturedSimulator(schedule)
	st := store.NewSeededMemoryStore()
	svc := NewOrderService(st, sim, ZeroLatency())

	_, err := svc.Create(context.Background(), createParams(20.00, models.PaymentCard))
	require.NoError(t, err)

	sort.Slice(*timers, func(i, j int) bool { return (*timers)[i].delay < (*timers)[j].delay })
	for _, timer := range *timers {
		timer.fire()
	}

	stored, err := st.Orders()
	require.NoError(t, err)
	require.Equal(t, models.StatusDelivered, stored[0].Status)
}

func TestSimulator_TransitionsWriteUnconditionally(t *testing.T) {
	// Known race, preserved on purpose: a cancellation inside the simulated
	// window is overwritten by the next scheduled transition.
	sim, timers := capturedSimulator(DefaultSchedule())
	st := store.NewSeededMemoryStore()
	svc := NewOrderService(st, sim, ZeroLatency())
	ctx := context.Background()

	order, err := svc.Create(ctx, createParams(20.00, models.PaymentCard))
	require.NoError(t, err)

	sort.Slice(*timers, func(i, j int) bool { return (*timers)[i].delay < (*timers)[j].delay })
	(*timers)[0].fire() // preparing

	_, err = svc.UpdateStatus(ctx, order.ID, models.StatusCancelled)
	require.NoError(t, err)

	(*timers)[1].fire() // delivering, stomping the cancellation

	stored, err := st.Orders()
	require.NoError(t, err)
	require.Equal(t, models.StatusDelivering, stored[0].Status)
}

func TestSimulator_VanishedOrderIsSwallowed(t *testing.T) {
	sim, timers := capturedSimulator(DefaultSchedule())
	st := store.NewSeededMemoryStore()
	svc := NewOrderService(st, sim, ZeroLatency())

	_, err := svc.Create(context.Background(), createParams(20.00, models.PaymentCard))
	require.NoError(t, err)
	require.NoError(t, st.PutOrders(nil))

	// Must not panic; the failure is logged and dropped.
	for _, timer := range *timers {
		timer.fire()
	}
}
