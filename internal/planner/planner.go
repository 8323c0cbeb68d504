// Package planner expands a synced catalog into the full list of planned
// shots: per-color product stills plus fixed creative quotas per theme and
// per cache, shuffled into a working order.
package planner

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/blahpunk/shotlist/internal/model"
)

// Fixed creative quotas.
const (
	ReelsPerTheme   = 5
	WorldsPerTheme  = 3
	MainArtPerTheme = 1
	ArtsPerCache    = 3
)

// Generate builds the full shot list for a catalog snapshot: stills for
// every product-color pair, themed extras for every theme, cache art for
// every cache, then one whole-list shuffle. Shot ids are fresh on every
// call; generation is intentionally not reproducible.
func Generate(snap *model.CatalogSnapshot) []model.Shot {
	shots := productStills(snap.Products)
	shots = append(shots, themeExtras(snap.Products, snap.Themes)...)
	shots = append(shots, cacheExtras(snap.Caches)...)

	rand.Shuffle(len(shots), func(i, j int) {
		shots[i], shots[j] = shots[j], shots[i]
	})
	return shots
}

// shotID builds an opaque row id. The prefix and entity id only aid
// debugging; uniqueness comes from the UUID.
func shotID(prefix string, entity int64) string {
	return fmt.Sprintf("%s_%d_%s", prefix, entity, uuid.NewString())
}

// productStills emits one flat and one model still per product color,
// including the empty sentinel color for colorless products.
func productStills(products []model.Product) []model.Shot {
	var shots []model.Shot
	for i := range products {
		p := &products[i]
		for _, color := range p.Colors {
			shots = append(shots, model.Shot{
				ID:      shotID("flat", p.ID),
				Type:    model.ShotProductStillFlat,
				Garment: p.Name,
				Color:   color,
				Cache:   p.CacheLabel(),
				Theme:   p.ThemeName,
			})
			shots = append(shots, model.Shot{
				ID:      shotID("model", p.ID),
				Type:    model.ShotProductStillModel,
				Garment: p.Name,
				Color:   color,
				Cache:   p.CacheLabel(),
				Theme:   p.ThemeName,
			})
		}
	}
	return shots
}

// reelPair is one (garment, color, cache) candidate for a themed reel.
type reelPair struct {
	garment string
	color   string
	cache   string
}

// themeExtras emits the fixed per-theme quota: ReelsPerTheme reels drawn
// from a shuffled pool of the theme's product-color pairs (cycling with
// wraparound when the pool is small), plus WorldsPerTheme worlds and
// MainArtPerTheme main art pieces.
func themeExtras(products []model.Product, themes []model.Theme) []model.Shot {
	byTheme := make(map[int64][]*model.Product)
	for i := range products {
		p := &products[i]
		if p.ThemeID != 0 {
			byTheme[p.ThemeID] = append(byTheme[p.ThemeID], p)
		}
	}

	var shots []model.Shot
	for _, t := range themes {
		var pairs []reelPair
		for _, p := range byTheme[t.ID] {
			for _, color := range p.Colors {
				pairs = append(pairs, reelPair{garment: p.Name, color: color, cache: p.CacheLabel()})
			}
		}
		if len(pairs) > 0 {
			rand.Shuffle(len(pairs), func(i, j int) {
				pairs[i], pairs[j] = pairs[j], pairs[i]
			})
		}

		themeCache := t.CacheName
		if themeCache == "" {
			themeCache = model.UnassignedCache
		}

		for i := 0; i < ReelsPerTheme; i++ {
			pair := reelPair{cache: model.UnassignedCache}
			if len(pairs) > 0 {
				pair = pairs[i%len(pairs)]
			}
			shots = append(shots, model.Shot{
				ID:      shotID("treel", t.ID),
				Type:    model.ShotProductReelModel,
				Garment: pair.garment,
				Color:   pair.color,
				Cache:   pair.cache,
				Theme:   t.Name,
			})
		}
		for i := 0; i < WorldsPerTheme; i++ {
			shots = append(shots, model.Shot{
				ID:    shotID("tworld", t.ID),
				Type:  model.ShotWorldTheme,
				Cache: themeCache,
				Theme: t.Name,
			})
		}
		for i := 0; i < MainArtPerTheme; i++ {
			shots = append(shots, model.Shot{
				ID:    shotID("tmain", t.ID),
				Type:  model.ShotMainArtTheme,
				Cache: themeCache,
				Theme: t.Name,
			})
		}
	}
	return shots
}

// cacheExtras emits ArtsPerCache cache art pieces per cache.
func cacheExtras(caches []model.Cache) []model.Shot {
	var shots []model.Shot
	for _, c := range caches {
		for i := 0; i < ArtsPerCache; i++ {
			shots = append(shots, model.Shot{
				ID:    shotID("cart", c.ID),
				Type:  model.ShotCacheArtCache,
				Cache: c.Name,
			})
		}
	}
	return shots
}
