package catalog

import "github.com/blahpunk/shotlist/internal/model"

// Assign links each product to at most one theme and one cache by scanning
// its category ids in their existing order. A theme match always wins over
// a cache-only match regardless of position: the theme scan runs first and
// carries the theme's parent cache with it. Products matching neither stay
// unassigned and display under the "Unassigned" bucket.
//
// Runs exactly once per sync, after normalization and hierarchy resolution.
func Assign(products []model.Product, caches []model.Cache, themes []model.Theme) {
	themeByID := make(map[int64]model.Theme, len(themes))
	for _, t := range themes {
		themeByID[t.ID] = t
	}
	cacheByID := make(map[int64]model.Cache, len(caches))
	for _, c := range caches {
		cacheByID[c.ID] = c
	}

	for i := range products {
		p := &products[i]

		assigned := false
		for _, cid := range p.CategoryIDs {
			if t, ok := themeByID[cid]; ok {
				p.ThemeID = t.ID
				p.ThemeName = t.Name
				p.CacheID = t.CacheID
				p.CacheName = t.CacheName
				assigned = true
				break
			}
		}
		if assigned {
			continue
		}

		for _, cid := range p.CategoryIDs {
			if c, ok := cacheByID[cid]; ok {
				p.CacheID = c.ID
				p.CacheName = c.Name
				break
			}
		}
	}
}
