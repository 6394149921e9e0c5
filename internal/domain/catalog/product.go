package catalog

import "strings"

// Product is a catalog entry. Price is in cents. Stock is the authoritative
// remaining purchasable count and is only mutated by order submission and the
// administrative product endpoints.
type Product struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       int     `json:"price"`
	Image       string  `json:"image,omitempty"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Stock       int     `json:"stock"`
}

// FilterOptions narrows a product listing. Zero values mean "no constraint":
// an empty Category or Search does not filter, MinPrice/MaxPrice apply only
// when positive. Bounds are inclusive.
type FilterOptions struct {
	Category string
	MinPrice int
	MaxPrice int
	Search   string
}

// Matches reports whether the product passes every criterion that is set.
// The search term matches the title or description as a case-insensitive
// substring.
func (f FilterOptions) Matches(p *Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.MinPrice > 0 && p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		return strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Description), q)
	}
	return true
}

// Filter returns the subset of products matching the options, preserving
// order. Pure and side-effect free.
func Filter(products []*Product, opts FilterOptions) []*Product {
	matched := make([]*Product, 0, len(products))
	for _, p := range products {
		if opts.Matches(p) {
			matched = append(matched, p)
		}
	}
	return matched
}
