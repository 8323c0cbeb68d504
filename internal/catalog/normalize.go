package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/blahpunk/shotlist/internal/model"
	"github.com/blahpunk/shotlist/internal/service"
)

// Normalizer builds canonical product records from raw store data. For
// variable products it issues one extra FetchVariations call per product;
// transport failures propagate to the caller unmasked.
type Normalizer struct {
	source service.CatalogSource
}

// NewNormalizer creates a normalizer backed by the given catalog source.
func NewNormalizer(source service.CatalogSource) *Normalizer {
	return &Normalizer{source: source}
}

// Normalize converts one raw product into a Product. Theme and cache links
// are left unset; the assignment pass fills them after hierarchy
// resolution.
func (n *Normalizer) Normalize(ctx context.Context, raw model.RawProduct) (model.Product, error) {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		name = fmt.Sprintf("Product %d", raw.ID)
	}

	catIDs := make([]int64, 0, len(raw.Categories))
	catNames := make([]string, 0, len(raw.Categories))
	for _, c := range raw.Categories {
		if c.ID != 0 {
			catIDs = append(catIDs, c.ID)
		}
		if c.Name != "" {
			catNames = append(catNames, c.Name)
		}
	}

	var colors []string
	if raw.Variable() {
		variations, err := n.source.FetchVariations(ctx, raw.ID)
		if err != nil {
			return model.Product{}, fmt.Errorf("failed to fetch variations for product %d: %w", raw.ID, err)
		}
		colors = VariationColors(variations)
	} else {
		colors = AttributeColors(raw.Attributes)
	}

	// Downstream generation iterates at least once per product, so a
	// colorless product carries a single empty-string sentinel.
	if len(colors) == 0 {
		colors = []string{""}
	}

	return model.Product{
		ID:            raw.ID,
		Name:          name,
		Type:          raw.Type,
		CategoryIDs:   catIDs,
		CategoryNames: catNames,
		Colors:        colors,
	}, nil
}
