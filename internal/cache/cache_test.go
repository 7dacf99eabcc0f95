package cache

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mtarza13/FlavorDash/internal/models"
)

func TestPageCache_GetSetClear(t *testing.T) {
	c := New()
	key := PageKey{Page: 1, Limit: 10}

	_, ok := c.Get(key)
	require.False(t, ok)

	page := models.CatalogPage{
		Products: []models.Product{{ID: "1", Name: "Burger"}},
		HasMore:  true,
	}
	c.Set(key, page)

	got, ok := c.Get(key)
	require.True(t, ok)
	require.Equal(t, page, got)
	require.Equal(t, 1, c.Len())

	c.Clear()
	_, ok = c.Get(key)
	require.False(t, ok)
	require.Equal(t, 0, c.Len())
}

func TestPageCache_KeysAreCompositeOfPageAndLimit(t *testing.T) {
	c := New()
	c.Set(PageKey{Page: 1, Limit: 10}, models.CatalogPage{HasMore: true})

	_, ok := c.Get(PageKey{Page: 1, Limit: 20})
	require.False(t, ok)
	_, ok = c.Get(PageKey{Page: 2, Limit: 10})
	require.False(t, ok)
}

func TestPageCache_EntriesAreDetachedFromCallers(t *testing.T) {
	c := New()
	key := PageKey{Page: 1, Limit: 10}

	products := []models.Product{{ID: "1", Name: "Burger"}}
	c.Set(key, models.CatalogPage{Products: products})

	// Mutating the slice given to Set must not change the cached entry.
	products[0].Name = "Mutated"
	got, _ := c.Get(key)
	require.Equal(t, "Burger", got.Products[0].Name)

	// Mutating a returned entry must not change the cache either.
	got.Products[0].Name = "Mutated"
	again, _ := c.Get(key)
	require.Equal(t, "Burger", again.Products[0].Name)
}
