// Package catalog normalizes raw store data into the canonical product,
// cache, and theme records the planner consumes.
package catalog

import (
	"strings"

	"github.com/blahpunk/shotlist/internal/model"
)

// isColorName reports whether an attribute name looks like the color axis.
// Matching is a case-insensitive substring check so "Colour", "pa_color"
// and "Color Family" all qualify.
func isColorName(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "color") || strings.Contains(lower, "colour")
}

// VariationColors extracts the distinct color options across a variable
// product's variations. Each variation is matched independently: the first
// of its attributes that looks like a color axis supplies the option.
// Results keep first-seen casing and order; duplicates are folded
// case-insensitively and blank options are skipped.
func VariationColors(variations []model.RawVariation) []string {
	values := make([]string, 0, len(variations))
	for _, v := range variations {
		for _, attr := range v.Attributes {
			if isColorName(attr.Name) {
				values = append(values, attr.Option)
				break
			}
		}
	}
	return dedupeColors(values)
}

// AttributeColors extracts the distinct color options from a simple
// product's own attribute list, using the first color-looking attribute.
func AttributeColors(attrs []model.RawAttribute) []string {
	for _, attr := range attrs {
		if isColorName(attr.Name) {
			return dedupeColors(attr.Options)
		}
	}
	return nil
}

// dedupeColors trims values, drops blanks, and removes case-insensitive
// duplicates while preserving first-seen casing and order.
func dedupeColors(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}
