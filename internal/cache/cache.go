package cache

import (
	"sync"

	"github.com/mtarza13/FlavorDash/internal/models"
)

// PageKey identifies one memoized catalog read.
type PageKey struct {
	Page  int
	Limit int
}

// PageCache memoizes paginated catalog reads for the life of the process.
// Invalidation is deliberately coarse: any catalog write calls Clear, so a
// cached page can never be stale after a mutation.
type PageCache struct {
	mu sync.RWMutex
	m  map[PageKey]models.CatalogPage
}

func New() *PageCache {
	return &PageCache{m: make(map[PageKey]models.CatalogPage)}
}

func (c *PageCache) Get(key PageKey) (models.CatalogPage, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	page, ok := c.m[key]
	if !ok {
		return models.CatalogPage{}, false
	}
	return copyPage(page), true
}

func (c *PageCache) Set(key PageKey, page models.CatalogPage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = copyPage(page)
}

func (c *PageCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m = make(map[PageKey]models.CatalogPage)
}

func (c *PageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

// copyPage detaches the slice header so callers cannot mutate cached entries.
func copyPage(page models.CatalogPage) models.CatalogPage {
	products := make([]models.Product, len(page.Products))
	copy(products, page.Products)
	page.Products = products
	return page
}
