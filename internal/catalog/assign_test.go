package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blahpunk/shotlist/internal/model"
)

func testHierarchy() ([]model.Cache, []model.Theme) {
	caches := []model.Cache{
		{ID: 10, Name: "Summer"},
		{ID: 20, Name: "Winter"},
	}
	themes := []model.Theme{
		{ID: 11, Name: "Beach", CacheID: 10, CacheName: "Summer"},
		{ID: 12, Name: "Boardwalk", CacheID: 10, CacheName: "Summer"},
		{ID: 21, Name: "Slopes", CacheID: 20, CacheName: "Winter"},
	}
	return caches, themes
}

func TestAssignThemeMatch(t *testing.T) {
	caches, themes := testHierarchy()
	products := []model.Product{
		{ID: 1, Name: "Towel", CategoryIDs: []int64{99, 11}},
	}

	Assign(products, caches, themes)

	p := products[0]
	assert.Equal(t, int64(11), p.ThemeID)
	assert.Equal(t, "Beach", p.ThemeName)
	assert.Equal(t, int64(10), p.CacheID)
	assert.Equal(t, "Summer", p.CacheName)
}

func TestAssignThemeBeatsEarlierCache(t *testing.T) {
	caches, themes := testHierarchy()
	// The unrelated Winter cache id appears before the Beach theme id.
	// The theme scan runs first, so Beach (and its parent Summer) wins.
	products := []model.Product{
		{ID: 1, Name: "Towel", CategoryIDs: []int64{20, 11}},
	}

	Assign(products, caches, themes)

	p := products[0]
	assert.Equal(t, int64(11), p.ThemeID)
	assert.Equal(t, int64(10), p.CacheID)
	assert.Equal(t, "Summer", p.CacheName)
}

func TestAssignCacheOnlyFallback(t *testing.T) {
	caches, themes := testHierarchy()
	products := []model.Product{
		{ID: 1, Name: "Parka", CategoryIDs: []int64{99, 20}},
	}

	Assign(products, caches, themes)

	p := products[0]
	assert.Zero(t, p.ThemeID)
	assert.Empty(t, p.ThemeName)
	assert.Equal(t, int64(20), p.CacheID)
	assert.Equal(t, "Winter", p.CacheName)
}

func TestAssignFirstThemeInCategoryOrderWins(t *testing.T) {
	caches, themes := testHierarchy()
	products := []model.Product{
		{ID: 1, Name: "Sandals", CategoryIDs: []int64{12, 11}},
	}

	Assign(products, caches, themes)

	assert.Equal(t, int64(12), products[0].ThemeID)
	assert.Equal(t, "Boardwalk", products[0].ThemeName)
}

func TestAssignNoMatch(t *testing.T) {
	caches, themes := testHierarchy()
	products := []model.Product{
		{ID: 1, Name: "Mug", CategoryIDs: []int64{99}},
	}

	Assign(products, caches, themes)

	p := products[0]
	assert.Zero(t, p.ThemeID)
	assert.Zero(t, p.CacheID)
	assert.Equal(t, model.UnassignedCache, p.CacheLabel())
}
