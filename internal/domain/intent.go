package domain

// BudgetType describes how the budget ceiling of an intent was determined.
type BudgetType string

const (
	// BudgetSpecific means an explicit amount was found in the query.
	BudgetSpecific BudgetType = "specific"
	// BudgetApproximate means only a vague qualifier ("cheap", "premium")
	// was present and a category default ceiling was assigned.
	BudgetApproximate BudgetType = "approximate"
	// BudgetNone means the query carried no budget signal at all.
	BudgetNone BudgetType = "none"
)

// Intent is the structured representation of a parsed shopping query.
// Created fresh per request and discarded after the result is built.
type Intent struct {
	RawText        string
	MaxBudget      float64 // valid only when HasBudget is true
	HasBudget      bool
	BudgetType     BudgetType
	Category       string // empty when no category was detected
	ExcludedBrands []string
	PreferredColor string
	Keywords       []string // leftover tokens, original order, deduplicated
}

// ExcludesBrand reports whether the given brand is excluded by the intent.
// Comparison is case-insensitive; ExcludedBrands is stored lowercased.
func (i *Intent) ExcludesBrand(brandLower string) bool {
	for _, b := range i.ExcludedBrands {
		if b == brandLower {
			return true
		}
	}
	return false
}
