package services

import (
	"context"
	"sort"

	"github.com/mtarza13/FlavorDash/internal/models"
)

type DashboardStats struct {
	TotalProducts  int
	TotalOrders    int
	OrdersByStatus map[models.OrderStatus]int
	Revenue        float64 // sum of totals for paid orders
	TopProducts    []ProductOrderCount
}

type ProductOrderCount struct {
	ProductID  string
	Name       string
	OrderCount int
}

// DashboardStats aggregates the admin dashboard numbers from the product and
// order collections.
func (s *OrderService) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	sleepFor(ctx, s.lat.OrderQuery)

	products, err := s.store.Products()
	if err != nil {
		return nil, storageErr(err)
	}
	orders, err := s.store.Orders()
	if err != nil {
		return nil, storageErr(err)
	}

	stats := &DashboardStats{
		TotalProducts:  len(products),
		TotalOrders:    len(orders),
		OrdersByStatus: make(map[models.OrderStatus]int),
	}

	counts := make(map[string]int)
	for _, o := range orders {
		stats.OrdersByStatus[o.Status]++
		if o.PaymentStatus == models.PaymentStatusPaid {
			stats.Revenue += o.Total
		}
		for _, item := range o.Items {
			counts[item.ID] += item.Quantity
		}
	}

	for _, p := range products {
		if n, ok := counts[p.ID]; ok {
			stats.TopProducts = append(stats.TopProducts, ProductOrderCount{
				ProductID:  p.ID,
				Name:       p.Name,
				OrderCount: n,
			})
		}
	}
	sort.Slice(stats.TopProducts, func(i, j int) bool {
		return stats.TopProducts[i].OrderCount > stats.TopProducts[j].OrderCount
	})

	return stats, nil
}
