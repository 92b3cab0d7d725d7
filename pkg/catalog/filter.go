package catalog

import (
	"strings"

	"agritrust/entities"
)

// ProductCriteria is the ephemeral filter state for the marketplace list.
// Zero value applies no restriction (MaxPrice 0 = unbounded).
type ProductCriteria struct {
	Search      string
	Categories  []string
	MinPrice    float64
	MaxPrice    float64
	OrganicOnly bool
}

// FarmerCriteria is the ephemeral filter state for the farmer directory.
type FarmerCriteria struct {
	Search     string
	Categories []string
	MinRating  float64
	MaxRating  float64
}

// FarmerEntry is a directory row: the farmer profile plus the stats derived
// from the product collection.
type FarmerEntry struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Bio          string   `json:"bio"`
	Image        string   `json:"image"`
	Rating       float64  `json:"rating"`
	Categories   []string `json:"categories"`
	ProductCount int      `json:"product_count"`
}

// FilterProducts reduces the full collection to the subset matching c.
// Pure and stable: matching entries keep their relative input order.
func FilterProducts(in []entities.ProductView, c ProductCriteria) []entities.ProductView {
	out := make([]entities.ProductView, 0, len(in))
	sel := normSet(c.Categories)
	term := strings.ToLower(strings.TrimSpace(c.Search))
	for _, p := range in {
		if term != "" && !anyContains(term, p.Name, p.Description, p.Category) {
			continue
		}
		if len(sel) > 0 && !sel[normCategory(p.Category)] {
			continue
		}
		if p.Price < c.MinPrice {
			continue
		}
		if c.MaxPrice > 0 && p.Price > c.MaxPrice {
			continue
		}
		if c.OrganicOnly && !p.IsOrganic {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterFarmers reduces the directory to the subset matching c. A farmer
// matches the category filter if any derived category intersects the
// selection; empty selection matches everyone.
func FilterFarmers(in []FarmerEntry, c FarmerCriteria) []FarmerEntry {
	out := make([]FarmerEntry, 0, len(in))
	sel := normSet(c.Categories)
	term := strings.ToLower(strings.TrimSpace(c.Search))
	for _, f := range in {
		if term != "" && !anyContains(term, f.Name, f.Location, f.Bio) {
			continue
		}
		if len(sel) > 0 && !intersects(sel, f.Categories) {
			continue
		}
		if f.Rating < c.MinRating {
			continue
		}
		if c.MaxRating > 0 && f.Rating > c.MaxRating {
			continue
		}
		out = append(out, f)
	}
	return out
}

func anyContains(term string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func intersects(sel map[string]bool, cats []string) bool {
	for _, c := range cats {
		if sel[normCategory(c)] {
			return true
		}
	}
	return false
}

func normSet(cats []string) map[string]bool {
	if len(cats) == 0 {
		return nil
	}
	m := make(map[string]bool, len(cats))
	for _, c := range cats {
		m[normCategory(c)] = true
	}
	return m
}
