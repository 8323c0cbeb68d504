package model

// ShotType identifies one of the six planned production item kinds.
type ShotType string

// The closed set of shot types. The display strings are part of the export
// format, so they never change casing or punctuation.
const (
	ShotProductStillFlat  ShotType = "Product Still (Flat)"
	ShotProductStillModel ShotType = "Product Still (Model)"
	ShotProductReelModel  ShotType = "Product Reel (Model)"
	ShotWorldTheme        ShotType = "World (Theme)"
	ShotMainArtTheme      ShotType = "Main Art (Theme)"
	ShotCacheArtCache     ShotType = "Cache Art (Cache)"
)

// AllShotTypes lists every shot type in display order.
var AllShotTypes = []ShotType{
	ShotProductStillFlat,
	ShotProductStillModel,
	ShotProductReelModel,
	ShotWorldTheme,
	ShotMainArtTheme,
	ShotCacheArtCache,
}

// Shot is one planned production item. The ID is opaque, unique for the
// life of the row, and doubles as the lock key.
type Shot struct {
	ID      string
	Type    ShotType
	Garment string
	Color   string
	Note    string
	Cache   string
	Theme   string
}

// DisplayName picks the most specific label for a shot: the garment for
// product shots, else the theme, else the cache.
func (s *Shot) DisplayName() string {
	switch {
	case s.Garment != "":
		return s.Garment
	case s.Theme != "":
		return s.Theme
	case s.Cache != "":
		return s.Cache
	default:
		return ""
	}
}
