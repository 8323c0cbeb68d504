// Package model defines the core domain types shared across the application.
package model

// RawCategory is a product category as returned by the store, before any
// hierarchy resolution. Parent is 0 for root categories.
type RawCategory struct {
	Name   string
	ID     int64
	Parent int64
}

// Cache is a top-level shoot grouping: a direct child of the "Caches"
// category in the store.
type Cache struct {
	Name string
	ID   int64
}

// Theme is a shoot grouping nested one level under a Cache. Every theme
// belongs to exactly one cache.
type Theme struct {
	Name      string
	CacheName string
	ID        int64
	CacheID   int64
}
