package catalog

import (
	"sort"
	"strings"

	"github.com/shopscout/backend/internal/domain"
)

// Store is an immutable in-memory product catalog. The product slice is
// copied at construction and never modified, so a single Store can serve
// concurrent queries without locking.
type Store struct {
	products []domain.Product
}

// NewStore creates a catalog store over the given products
func NewStore(products []domain.Product) *Store {
	copied := make([]domain.Product, len(products))
	copy(copied, products)
	return &Store{products: copied}
}

// Search returns products matching the filter, preserving catalog order.
// Hard constraints (category, budget, excluded brands) always apply; the
// keyword constraint is soft and is skipped when it would eliminate every
// remaining candidate. An empty result is valid, never an error.
func (s *Store) Search(filter domain.SearchFilter) []domain.Product {
	result := make([]domain.Product, 0, len(s.products))

	for _, p := range s.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.HasBudget && p.Price > filter.MaxBudget {
			continue
		}
		if brandExcluded(p.Brand, filter.ExcludedBrands) {
			continue
		}
		result = append(result, p)
	}

	if len(filter.Keywords) == 0 || len(result) == 0 {
		return result
	}

	narrowed := make([]domain.Product, 0, len(result))
	for _, p := range result {
		if matchesAnyKeyword(p, filter.Keywords) {
			narrowed = append(narrowed, p)
		}
	}
	if len(narrowed) == 0 {
		// Keyword filter is a soft hint: overly literal keywords must
		// not turn a non-empty candidate set into an empty one.
		return result
	}
	return narrowed
}

// All returns a copy of the full catalog in insertion order
func (s *Store) All() []domain.Product {
	copied := make([]domain.Product, len(s.products))
	copy(copied, s.products)
	return copied
}

// Categories returns the unique categories in first-seen order
func (s *Store) Categories() []string {
	return s.uniqueField(func(p domain.Product) string { return p.Category })
}

// Brands returns the unique brands in first-seen order
func (s *Store) Brands() []string {
	return s.uniqueField(func(p domain.Product) string { return p.Brand })
}

// PriceRange returns the minimum and maximum price, optionally restricted
// to one category. An empty selection yields a zero range.
func (s *Store) PriceRange(category string) domain.PriceRange {
	r := domain.PriceRange{Currency: "INR"}
	first := true
	for _, p := range s.products {
		if category != "" && p.Category != category {
			continue
		}
		if first || p.Price < r.Min {
			r.Min = p.Price
		}
		if first || p.Price > r.Max {
			r.Max = p.Price
		}
		first = false
	}
	return r
}

// TopRated returns up to limit products sorted by rating, highest first.
// Ties keep catalog order.
func (s *Store) TopRated(category string, limit int) []domain.Product {
	selected := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if category != "" && p.Category != category {
			continue
		}
		selected = append(selected, p)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Rating > selected[j].Rating
	})

	if limit > 0 && len(selected) > limit {
		selected = selected[:limit]
	}
	return selected
}

func (s *Store) uniqueField(field func(domain.Product) string) []string {
	var values []string
	seen := make(map[string]bool)
	for _, p := range s.products {
		v := field(p)
		if v == "" || seen[v] {
			continue
		}
		values = append(values, v)
		seen[v] = true
	}
	return values
}

func brandExcluded(brand string, excluded []string) bool {
	if len(excluded) == 0 {
		return false
	}
	brandLower := strings.ToLower(brand)
	for _, e := range excluded {
		if brandLower == e {
			return true
		}
	}
	return false
}

// matchesAnyKeyword reports whether any keyword appears as a substring of
// the product's searchable text
func matchesAnyKeyword(p domain.Product, keywords []string) bool {
	text := strings.ToLower(p.Name + " " + p.Description + " " + p.Color + " " + p.Brand)
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
