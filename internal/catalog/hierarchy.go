package catalog

import (
	"strings"

	"github.com/blahpunk/shotlist/internal/model"
)

// cachesRootName is the category under which the cache/theme hierarchy
// lives, matched case-insensitively.
const cachesRootName = "caches"

// ResolveHierarchy scans the flat category list and builds the two-level
// Cache → Theme structure under the "Caches" root. Only two levels are
// inspected; grandchildren of a theme are ignored. A missing root is not
// an error and yields empty results. Emission order follows the input
// category list order.
func ResolveHierarchy(cats []model.RawCategory) ([]model.Cache, []model.Theme) {
	byID := make(map[int64]model.RawCategory, len(cats))
	children := make(map[int64][]model.RawCategory, len(cats))
	for _, c := range cats {
		byID[c.ID] = c
	}
	for _, c := range cats {
		if c.Parent == 0 {
			continue
		}
		if _, ok := byID[c.Parent]; !ok {
			// Unresolvable parent: treated as a root.
			continue
		}
		children[c.Parent] = append(children[c.Parent], c)
	}

	var root *model.RawCategory
	for _, c := range cats {
		if strings.EqualFold(c.Name, cachesRootName) {
			root = &c
			break
		}
	}
	if root == nil {
		return nil, nil
	}

	var caches []model.Cache
	var themes []model.Theme
	for _, cache := range children[root.ID] {
		caches = append(caches, model.Cache{ID: cache.ID, Name: cache.Name})
		for _, theme := range children[cache.ID] {
			themes = append(themes, model.Theme{
				ID:        theme.ID,
				Name:      theme.Name,
				CacheID:   cache.ID,
				CacheName: cache.Name,
			})
		}
	}
	return caches, themes
}
