package catalog

import (
	"strings"

	"agritrust/entities"
)

// Categories are free text; comparison is case-insensitive on the trimmed
// spelling, display keeps the first spelling seen. The category list is an
// emergent enumeration recomputed whenever the product collection changes,
// not a lookup table.

func normCategory(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Categories returns the distinct category list of the collection in first
// appearance order, using each category's first-seen display spelling.
func Categories(products []entities.ProductView) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, p := range products {
		k := normCategory(p.Category)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, strings.TrimSpace(p.Category))
	}
	return out
}

// FarmerStats is the per-farmer aggregation derived from products.
type FarmerStats struct {
	Categories   []string
	ProductCount int
}

// DeriveFarmerStats computes category set and product count per farmer in a
// single pass. Every place that needs these numbers goes through here so the
// derivation cannot diverge.
func DeriveFarmerStats(products []entities.ProductView) map[string]FarmerStats {
	stats := map[string]FarmerStats{}
	seen := map[string]map[string]bool{}
	for _, p := range products {
		s := stats[p.FarmerID]
		s.ProductCount++
		k := normCategory(p.Category)
		if k != "" {
			if seen[p.FarmerID] == nil {
				seen[p.FarmerID] = map[string]bool{}
			}
			if !seen[p.FarmerID][k] {
				seen[p.FarmerID][k] = true
				s.Categories = append(s.Categories, strings.TrimSpace(p.Category))
			}
		}
		stats[p.FarmerID] = s
	}
	return stats
}

// RatingSource supplies a farmer's displayed rating. The product has no
// review system yet, so production wiring uses FixedRating; swapping in a
// computed source is a wiring change only.
type RatingSource interface {
	Rating(farmerID string) float64
}

type FixedRating float64

func (f FixedRating) Rating(string) float64 { return float64(f) }
