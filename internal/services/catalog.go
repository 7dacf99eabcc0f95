package services

import (
	"context"
	"fmt"
	"log/slog"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mtarza13/FlavorDash/internal/cache"
	"github.com/mtarza13/FlavorDash/internal/models"
	"github.com/mtarza13/FlavorDash/internal/store"
)

// ProductInput is a product without an identifier, as submitted by the admin
// screens. The service assigns the identifier on Add.
type ProductInput struct {
	Name        string   `validate:"required"`
	Description string   `validate:"required"`
	Price       float64  `validate:"gte=0"`
	Category    string   `validate:"required,oneof=Burgers Pizza Sushi Salads Desserts Drinks"`
	Image       string   `validate:"required"`
	Rating      float64  `validate:"gte=0,lte=5"`
	Calories    int      `validate:"gte=0"`
	PrepTime    int      `validate:"gte=0"`
	Ingredients []string `validate:"required,min=1"`
	IsAvailable bool
	Reviews     int `validate:"gte=0"`
}

// CatalogService owns product reads and writes. Paginated reads are memoized
// through the page cache; every write clears the whole cache so a read after
// a write always sees fresh data.
type CatalogService struct {
	store    store.Store
	cache    *cache.PageCache
	lat      Latency
	validate *validatorv10.Validate
	newID    func() string
}

func NewCatalogService(st store.Store, c *cache.PageCache, lat Latency) *CatalogService {
	return &CatalogService{
		store:    st,
		cache:    c,
		lat:      lat,
		validate: validatorv10.New(),
		newID:    uuid.NewString,
	}
}

// GetAll returns the page-th slice of the catalog (1-based) and whether more
// pages follow. Cache hits still pay a small delay so the presentation layer
// shows a consistent loading state.
func (s *CatalogService) GetAll(ctx context.Context, page, limit int) (models.CatalogPage, error) {
	if page < 1 || limit < 1 {
		return models.CatalogPage{}, fmt.Errorf("invalid page %d or limit %d", page, limit)
	}

	key := cache.PageKey{Page: page, Limit: limit}
	if cached, ok := s.cache.Get(key); ok {
		sleepFor(ctx, s.lat.CacheHit)
		return cached, nil
	}

	sleepFor(ctx, s.lat.CatalogRead)
	products, err := s.store.Products()
	if err != nil {
		return models.CatalogPage{}, storageErr(err)
	}

	start := (page - 1) * limit
	end := start + limit
	if start > len(products) {
		start = len(products)
	}
	if end > len(products) {
		end = len(products)
	}

	result := models.CatalogPage{
		Products: products[start:end],
		HasMore:  end < len(products),
	}
	s.cache.Set(key, result)
	return result, nil
}

func (s *CatalogService) Add(ctx context.Context, input ProductInput) (models.Product, error) {
	if err := s.validate.Struct(input); err != nil {
		return models.Product{}, fmt.Errorf("invalid product: %w", err)
	}

	sleepFor(ctx, s.lat.ProductWrite)
	products, err := s.store.Products()
	if err != nil {
		return models.Product{}, storageErr(err)
	}

	product := models.Product{
		ID:          s.newID(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Image:       input.Image,
		Rating:      input.Rating,
		Calories:    input.Calories,
		PrepTime:    input.PrepTime,
		Ingredients: input.Ingredients,
		IsAvailable: input.IsAvailable,
		Reviews:     input.Reviews,
	}

	products = append(products, product)
	if err := s.store.PutProducts(products); err != nil {
		return models.Product{}, storageErr(err)
	}
	s.cache.Clear()

	slog.Info("Product added", "product_id", product.ID, "name", product.Name)
	return product, nil
}

func (s *CatalogService) Update(ctx context.Context, product models.Product) (models.Product, error) {
	sleepFor(ctx, s.lat.ProductWrite)
	products, err := s.store.Products()
	if err != nil {
		return models.Product{}, storageErr(err)
	}

	idx := -1
	for i := range products {
		if products[i].ID == product.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.Product{}, fmt.Errorf("product %s: %w", product.ID, ErrNotFound)
	}

	products[idx] = product
	if err := s.store.PutProducts(products); err != nil {
		return models.Product{}, storageErr(err)
	}
	s.cache.Clear()

	slog.Info("Product updated", "product_id", product.ID)
	return product, nil
}

// Delete removes a product. Deleting an unknown id is not an error; the
// collection is simply unchanged.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	sleepFor(ctx, s.lat.ProductDelete)
	products, err := s.store.Products()
	if err != nil {
		return storageErr(err)
	}

	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}

	if err := s.store.PutProducts(kept); err != nil {
		return storageErr(err)
	}
	s.cache.Clear()

	slog.Info("Product deleted", "product_id", id)
	return nil
}
