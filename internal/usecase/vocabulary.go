package usecase

// CategoryEntry maps a category name to the keywords that signal it.
// Declaration order matters: it breaks ties between categories with the
// same number of keyword hits.
type CategoryEntry struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// QualifierTier maps a budget tier name to the vague qualifiers that
// signal it ("cheap" -> low, "premium" -> high).
type QualifierTier struct {
	Name       string   `json:"name"`
	Qualifiers []string `json:"qualifiers"`
}

// Vocabulary bundles every tunable word list used by intent extraction
// and suggestions. It is injected at construction time so vocabularies can
// change without touching extraction logic.
type Vocabulary struct {
	Categories      []CategoryEntry
	QualifierTiers  []QualifierTier
	BudgetSignals   []string
	NegationMarkers []string
	Colors          []string

	// BudgetDefaults holds the ceiling assigned to approximate budgets,
	// keyed by category then tier. FallbackCeiling is used when the
	// category or tier has no entry.
	BudgetDefaults  map[string]map[string]float64
	FallbackCeiling float64
}

// DefaultVocabulary returns the built-in vocabulary. Prices are in INR.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Categories: []CategoryEntry{
			{
				Name: "apparel",
				Keywords: []string{
					"shoes", "clothes", "t-shirt", "shirt", "pants", "trousers", "jeans",
					"dress", "jacket", "coat", "footwear", "sneakers", "boots", "sandals",
					"sweater", "hoodie", "joggers", "shorts", "skirt", "blouse",
				},
			},
			{
				Name: "mobiles",
				Keywords: []string{
					"phone", "smartphone", "mobile", "iphone", "android", "cellphone",
					"redmi", "samsung", "realme", "vivo", "oppo", "oneplus", "nokia",
					"moto", "motorola", "poco", "pixel",
				},
			},
			{
				Name: "electronics",
				Keywords: []string{
					"laptop", "computer", "pc", "notebook", "macbook", "thinkpad",
					"tv", "television", "camera", "dslr", "headphones", "earphones",
					"speaker", "soundbar", "tablet", "ipad", "monitor", "keyboard",
					"mouse", "printer", "projector", "console",
				},
			},
		},
		QualifierTiers: []QualifierTier{
			{
				Name: "low",
				Qualifiers: []string{
					"cheap", "budget", "affordable", "low cost", "economical",
					"inexpensive", "budget-friendly", "low price", "economy",
					"basic", "entry level",
				},
			},
			{
				Name: "medium",
				Qualifiers: []string{
					"mid-range", "reasonable", "moderate", "mid priced", "standard",
					"average", "decent", "fair price",
				},
			},
			{
				Name: "high",
				Qualifiers: []string{
					"premium", "expensive", "high-end", "luxury", "flagship",
					"professional", "elite", "top of the line",
				},
			},
		},
		BudgetSignals: []string{
			"under", "below", "less than", "upto", "up to", "within",
			"budget", "max", "maximum", "around", "about",
		},
		NegationMarkers: []string{"non-", "not ", "except ", "without "},
		Colors: []string{
			"red", "blue", "black", "white", "green", "yellow", "pink", "purple",
			"orange", "silver", "gold", "navy", "beige", "brown", "gray", "grey",
			"maroon", "cyan", "magenta", "violet", "indigo", "turquoise", "khaki",
		},
		BudgetDefaults: map[string]map[string]float64{
			"apparel":     {"low": 3000, "medium": 8000, "high": 20000},
			"mobiles":     {"low": 15000, "medium": 35000, "high": 70000},
			"electronics": {"low": 50000, "medium": 100000, "high": 250000},
		},
		FallbackCeiling: 50000,
	}
}

// CategoryNames returns the configured category names in declaration order.
func (v Vocabulary) CategoryNames() []string {
	names := make([]string, 0, len(v.Categories))
	for _, c := range v.Categories {
		names = append(names, c.Name)
	}
	return names
}

// CeilingFor returns the default budget ceiling for a category and tier.
func (v Vocabulary) CeilingFor(category, tier string) float64 {
	if tiers, ok := v.BudgetDefaults[category]; ok {
		if ceiling, ok := tiers[tier]; ok {
			return ceiling
		}
	}
	return v.FallbackCeiling
}
