package domain

// SearchFilter describes the hard constraints applied by the catalog store.
// Zero values mean "no constraint".
type SearchFilter struct {
	Category       string
	MaxBudget      float64
	HasBudget      bool
	ExcludedBrands []string // lowercased
	Keywords       []string // soft filter: skipped if it would empty the result
}

// CatalogRepository defines read-only access to the product catalog.
// Implementations must be safe for concurrent use; the catalog never
// changes after construction.
type CatalogRepository interface {
	Search(filter SearchFilter) []Product
	Categories() []string
	Brands() []string
	PriceRange(category string) PriceRange
	TopRated(category string, limit int) []Product
}
