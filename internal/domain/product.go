package domain

// Product represents a single catalog entry. Products are loaded once at
// startup and never mutated afterwards, so they are safe to share across
// concurrent queries.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"` // 0-5 star rating
	Brand       string  `json:"brand"`
	Color       string  `json:"color"`
	Category    string  `json:"category"`
	Platform    string  `json:"platform"` // e.g., "Amazon", "Flipkart"
	Description string  `json:"description"`
	BuyLink     string  `json:"buy_link"`
	ImageURL    string  `json:"image_url"`
}

// ScoredProduct pairs a product with its relevance score for one query.
// Computed transiently per request, never persisted.
type ScoredProduct struct {
	Product Product `json:"product"`
	Score   float64 `json:"score"`
}

// PriceRange holds the minimum and maximum catalog price, optionally
// restricted to one category.
type PriceRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

// SearchResult is the full response produced for one shopping query.
type SearchResult struct {
	Query      string    `json:"query"`
	Analysis   Analysis  `json:"analysis"`
	Products   []Product `json:"products"`
	TotalFound int       `json:"total_found"` // count before truncation to limit
	Category   string    `json:"category,omitempty"`
	MaxBudget  float64   `json:"max_budget,omitempty"`
}

// Analysis is the serializable summary of the extracted intent.
type Analysis struct {
	Category   string  `json:"category,omitempty"`
	MaxBudget  float64 `json:"max_budget,omitempty"`
	BudgetType string  `json:"budget_type"`
}

// Suggestions contains search hints for a query: candidate categories when
// none could be detected, and category context when one was.
type Suggestions struct {
	Categories     []string    `json:"categories"`
	PriceRange     *PriceRange `json:"price_range,omitempty"`
	PopularBrands  []string    `json:"popular_brands"`
	SampleProducts []Product   `json:"sample_products"`
}
