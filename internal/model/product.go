package model

import "time"

// TypeVariable is the store's type discriminator for products whose colors
// live on per-variation attributes rather than on the product itself.
const TypeVariable = "variable"

// UnassignedCache is the display bucket for products that matched no cache.
const UnassignedCache = "Unassigned"

// RawCategoryRef is the category membership entry embedded in a raw product.
type RawCategoryRef struct {
	Name string
	ID   int64
}

// RawAttribute is a declared attribute on a simple product, e.g. Color with
// its full option list.
type RawAttribute struct {
	Name    string
	Options []string
}

// RawProduct is a product as returned by the store, before normalization.
type RawProduct struct {
	Name       string
	Type       string
	Categories []RawCategoryRef
	Attributes []RawAttribute
	ID         int64
}

// Variable reports whether colors must be gathered from the product's
// variations instead of its own attributes.
func (p *RawProduct) Variable() bool {
	return p.Type == TypeVariable
}

// RawVariationAttribute is one attribute assignment on a variation.
type RawVariationAttribute struct {
	Name   string
	Option string
}

// RawVariation is a single variation of a variable product.
type RawVariation struct {
	Attributes []RawVariationAttribute
	ID         int64
}

// Product is the normalized, color-bearing product record used by the
// planner. ThemeID/CacheID are 0 until the assignment pass runs; store
// category ids are always positive.
type Product struct {
	Name          string
	Type          string
	ThemeName     string
	CacheName     string
	CategoryNames []string
	Colors        []string
	CategoryIDs   []int64
	ID            int64
	ThemeID       int64
	CacheID       int64
}

// CacheLabel returns the cache display name, falling back to the
// unassigned bucket.
func (p *Product) CacheLabel() string {
	if p.CacheName == "" {
		return UnassignedCache
	}
	return p.CacheName
}

// CatalogSnapshot is one fully synced view of the store: normalized
// products with assignments plus the resolved cache/theme hierarchy.
// A sync replaces the whole snapshot or leaves the previous one intact.
type CatalogSnapshot struct {
	SyncedAt time.Time
	Products []Product
	Caches   []Cache
	Themes   []Theme
}
