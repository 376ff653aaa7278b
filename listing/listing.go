// Package listing filters and sorts a fetched product list on the client,
// mirroring the buyer dashboard's search bar, category picker and sort picker.
package listing

import (
	"math"
	"sort"
	"strings"

	"farm-market/models"
)

// CategoryAll disables category filtering.
const CategoryAll = "All"

// Sort options as the dashboard labels them.
const (
	SortNewest       = "Newest"
	SortPriceLowHigh = "Price: Low to High"
	SortPriceHighLow = "Price: High to Low"
)

// Query is the combined filter. Zero value matches everything.
type Query struct {
	Text     string
	Category string // display name, or CategoryAll/""
	MinPrice float64
	MaxPrice float64 // 0 means unbounded
}

// Filter keeps products whose name or description contains the search text
// (case-insensitive), whose category matches, and whose price falls inside
// the inclusive range. Input order is preserved, so Filter is idempotent.
func Filter(products []models.Product, q Query) []models.Product {
	text := strings.ToLower(strings.TrimSpace(q.Text))
	maxPrice := q.MaxPrice
	if maxPrice == 0 {
		maxPrice = math.MaxFloat64
	}

	out := []models.Product{}
	for _, p := range products {
		if text != "" &&
			!strings.Contains(strings.ToLower(p.Name), text) &&
			!strings.Contains(strings.ToLower(p.Description), text) {
			continue
		}
		if q.Category != "" && q.Category != CategoryAll &&
			models.CategoryName(p.CategoryID) != q.Category {
			continue
		}
		if p.Price < q.MinPrice || p.Price > maxPrice {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Sort orders a copy of products by the given option. Equal keys keep their
// relative input order. Newest uses id descending; ids are assigned in
// creation order and stand in for a created-at field the backend lacks.
// Unknown options return the input order unchanged.
func Sort(products []models.Product, option string) []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)

	switch option {
	case SortPriceLowHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHighLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	}
	return out
}

// SortOptions lists the supported options for pickers and flag validation.
func SortOptions() []string {
	return []string{SortNewest, SortPriceLowHigh, SortPriceHighLow}
}
