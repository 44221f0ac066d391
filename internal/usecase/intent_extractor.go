package usecase

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/shopscout/backend/internal/domain"
)

// Package-level compiled regex patterns for budget extraction
var (
	// Explicit currency amounts: "₹5,000", "rs. 30000", "₹5k"
	currencyAmountPattern = regexp.MustCompile(`(?:₹|\brs\.?\s*|\binr\s+)(\d+(?:,\d+)*(?:\.\d+)?)\s*(k?)\b`)

	// Shorthand magnitudes: "5k" -> 5000, "1.5k" -> 1500
	shorthandPattern = regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s*k\b`)

	// Range form: "between 40000 and 80000", "between 1k and 2k" (upper
	// bound wins)
	rangePattern = regexp.MustCompile(`between\s+(?:rs\.?|₹)?\s*(\d+(?:,\d+)*(?:\.\d+)?)\s*(k?)\b\s+and\s+(?:rs\.?|₹)?\s*(\d+(?:,\d+)*(?:\.\d+)?)\s*(k?)\b`)

	// Tokens that were consumed by budget extraction
	numericTokenPattern = regexp.MustCompile(`^\d+(?:,\d+)*(?:\.\d+)?k?$`)

	wordPattern = regexp.MustCompile(`[a-z0-9]+(?:['-][a-z0-9]+)*`)
)

// budgetMatcher pairs a compiled pattern with a handler that turns its
// match groups into an amount. Matchers run in priority order; the first
// successful one wins.
type budgetMatcher struct {
	re      *regexp.Regexp
	extract func(groups []string) (float64, bool)
}

// ExtractorConfig holds validation bounds for the intent extractor
type ExtractorConfig struct {
	MinQueryLength int
	MaxQueryLength int
}

// IntentExtractor parses raw shopping queries into structured intents
type IntentExtractor struct {
	vocab           Vocabulary
	minLen          int
	maxLen          int
	budgetMatchers  []budgetMatcher
	negationPattern *regexp.Regexp
	signalWords     map[string]bool
	log             *zap.Logger
}

// NewIntentExtractor creates an extractor over the given vocabulary
func NewIntentExtractor(vocab Vocabulary, cfg ExtractorConfig, log *zap.Logger) *IntentExtractor {
	minLen := cfg.MinQueryLength
	if minLen <= 0 {
		minLen = 2
	}
	maxLen := cfg.MaxQueryLength
	if maxLen <= 0 {
		maxLen = 500
	}
	if log == nil {
		log = zap.NewNop()
	}

	e := &IntentExtractor{
		vocab:           vocab,
		minLen:          minLen,
		maxLen:          maxLen,
		negationPattern: compileNegationPattern(vocab.NegationMarkers),
		signalWords:     signalWordSet(vocab.BudgetSignals),
		log:             log,
	}
	e.budgetMatchers = e.buildBudgetMatchers()
	return e
}

// Extract parses a query into an Intent. Returns domain.ErrInvalidQuery
// when the normalized query is outside the configured length bounds or
// carries no alphanumeric content.
func (e *IntentExtractor) Extract(query string) (*domain.Intent, error) {
	trimmed := strings.TrimSpace(query)
	normalized := strings.ToLower(trimmed)

	if n := utf8.RuneCountInString(normalized); n < e.minLen || n > e.maxLen {
		return nil, fmt.Errorf("%w: query length must be between %d and %d characters",
			domain.ErrInvalidQuery, e.minLen, e.maxLen)
	}
	if !hasAlphanumeric(normalized) {
		return nil, fmt.Errorf("%w: query must contain alphanumeric characters", domain.ErrInvalidQuery)
	}

	intent := &domain.Intent{
		RawText:    trimmed,
		BudgetType: domain.BudgetNone,
	}

	intent.Category = e.detectCategory(normalized)

	if amount, ok := e.extractBudget(normalized); ok {
		intent.MaxBudget = amount
		intent.HasBudget = true
		intent.BudgetType = domain.BudgetSpecific
	} else if tier, ok := e.detectTier(normalized); ok {
		intent.MaxBudget = e.vocab.CeilingFor(intent.Category, tier)
		intent.HasBudget = true
		intent.BudgetType = domain.BudgetApproximate
	}

	intent.ExcludedBrands = e.detectExclusions(normalized)
	intent.PreferredColor = e.detectColor(normalized)
	intent.Keywords = e.collectKeywords(normalized, intent)

	e.log.Debug("extracted intent",
		zap.String("query", trimmed),
		zap.String("category", intent.Category),
		zap.Float64("max_budget", intent.MaxBudget),
		zap.String("budget_type", string(intent.BudgetType)),
		zap.Strings("excluded_brands", intent.ExcludedBrands),
		zap.String("color", intent.PreferredColor),
		zap.Strings("keywords", intent.Keywords))

	return intent, nil
}

// buildBudgetMatchers assembles the ordered (pattern, handler) list.
// Priority: explicit currency amount, between-range upper bound, shorthand
// magnitude, signal-word adjacent number. The range form must outrank the
// shorthand form so "between 1k and 2k" yields the upper bound instead of
// the first shorthand hit.
func (e *IntentExtractor) buildBudgetMatchers() []budgetMatcher {
	signalPattern := compileSignalPattern(e.vocab.BudgetSignals)

	return []budgetMatcher{
		{
			re: currencyAmountPattern,
			extract: func(groups []string) (float64, bool) {
				amount, ok := parseAmount(groups[1])
				if ok && groups[2] == "k" {
					amount *= 1000
				}
				return amount, ok
			},
		},
		{
			re: rangePattern,
			extract: func(groups []string) (float64, bool) {
				amount, ok := parseAmount(groups[3])
				if ok && groups[4] == "k" {
					amount *= 1000
				}
				return amount, ok
			},
		},
		{
			re: shorthandPattern,
			extract: func(groups []string) (float64, bool) {
				amount, ok := parseAmount(groups[1])
				return amount * 1000, ok
			},
		},
		{
			re: signalPattern,
			extract: func(groups []string) (float64, bool) {
				return parseAmount(groups[1])
			},
		},
	}
}

// extractBudget runs the budget matchers in priority order; the first
// successful match wins regardless of its position in the text.
func (e *IntentExtractor) extractBudget(normalized string) (float64, bool) {
	for _, m := range e.budgetMatchers {
		groups := m.re.FindStringSubmatch(normalized)
		if groups == nil {
			continue
		}
		if amount, ok := m.extract(groups); ok {
			return amount, true
		}
	}
	return 0, false
}

// detectCategory matches the token stream against the configured category
// table. The category with the most keyword hits wins; ties go to the one
// declared first.
func (e *IntentExtractor) detectCategory(normalized string) string {
	best := ""
	bestCount := 0
	for _, entry := range e.vocab.Categories {
		count := 0
		for _, kw := range entry.Keywords {
			if strings.Contains(normalized, kw) {
				count++
			}
		}
		if count > bestCount {
			best = entry.Name
			bestCount = count
		}
	}
	return best
}

// CategorySuggestions returns every category with at least one keyword
// hit, most hits first. Ties keep declaration order. Used for ambiguous
// queries where no single category won.
func (e *IntentExtractor) CategorySuggestions(query string) []string {
	normalized := strings.ToLower(strings.TrimSpace(query))

	type scored struct {
		name  string
		count int
	}
	var hits []scored
	for _, entry := range e.vocab.Categories {
		count := 0
		for _, kw := range entry.Keywords {
			if strings.Contains(normalized, kw) {
				count++
			}
		}
		if count > 0 {
			hits = append(hits, scored{entry.Name, count})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].count > hits[j].count })

	names := make([]string, 0, len(hits))
	for _, h := range hits {
		names = append(names, h.name)
	}
	return names
}

// detectTier returns the first vague-qualifier tier present in the query
func (e *IntentExtractor) detectTier(normalized string) (string, bool) {
	for _, tier := range e.vocab.QualifierTiers {
		for _, q := range tier.Qualifiers {
			if strings.Contains(normalized, q) {
				return tier.Name, true
			}
		}
	}
	return "", false
}

// detectExclusions finds brand tokens preceded by a negation marker
func (e *IntentExtractor) detectExclusions(normalized string) []string {
	matches := e.negationPattern.FindAllStringSubmatch(normalized, -1)
	if len(matches) == 0 {
		return nil
	}

	var brands []string
	seen := make(map[string]bool)
	for _, m := range matches {
		brand := m[1]
		if !seen[brand] {
			brands = append(brands, brand)
			seen[brand] = true
		}
	}
	return brands
}

// detectColor returns the first vocabulary color present as a whole token
func (e *IntentExtractor) detectColor(normalized string) string {
	tokens := make(map[string]bool)
	for _, t := range wordPattern.FindAllString(normalized, -1) {
		tokens[t] = true
	}
	for _, color := range e.vocab.Colors {
		if tokens[color] {
			return color
		}
	}
	return ""
}

// collectKeywords returns the tokens not consumed by budget, category,
// exclusion, or color matching. Original order is preserved and values
// are deduplicated.
func (e *IntentExtractor) collectKeywords(normalized string, intent *domain.Intent) []string {
	categoryWords := e.categoryKeywordSet(intent.Category)
	excluded := make(map[string]bool, len(intent.ExcludedBrands))
	for _, b := range intent.ExcludedBrands {
		excluded[b] = true
	}

	var keywords []string
	seen := make(map[string]bool)
	for _, token := range wordPattern.FindAllString(normalized, -1) {
		switch {
		case seen[token]:
		case numericTokenPattern.MatchString(token):
		case token == "rs" || token == "inr":
		case e.signalWords[token]:
		case e.isNegationToken(token):
		case excluded[token]:
		case token == intent.PreferredColor:
		case matchesCategoryWord(token, categoryWords):
		default:
			keywords = append(keywords, token)
			seen[token] = true
		}
	}
	return keywords
}

// categoryKeywordSet returns the individual words of the detected
// category's keywords, for token removal
func (e *IntentExtractor) categoryKeywordSet(category string) map[string]bool {
	words := make(map[string]bool)
	if category == "" {
		return words
	}
	for _, entry := range e.vocab.Categories {
		if entry.Name != category {
			continue
		}
		for _, kw := range entry.Keywords {
			for _, w := range strings.Fields(kw) {
				words[w] = true
			}
		}
	}
	return words
}

// isNegationToken reports whether the token is a negation marker itself
// or a marker-prefixed compound like "non-apple"
func (e *IntentExtractor) isNegationToken(token string) bool {
	for _, marker := range e.vocab.NegationMarkers {
		trimmed := strings.TrimSpace(marker)
		if token == strings.TrimSuffix(trimmed, "-") {
			return true
		}
		if strings.HasSuffix(trimmed, "-") && strings.HasPrefix(token, trimmed) {
			return true
		}
	}
	return false
}

// matchesCategoryWord handles simple singular/plural variation between a
// token and the category keyword list ("phones" matches keyword "phone")
func matchesCategoryWord(token string, words map[string]bool) bool {
	if words[token] {
		return true
	}
	if strings.HasSuffix(token, "s") && words[strings.TrimSuffix(token, "s")] {
		return true
	}
	if words[token+"s"] {
		return true
	}
	return false
}

// compileSignalPattern builds the "signal word followed by a number"
// matcher from the configured budget signal words
func compileSignalPattern(signals []string) *regexp.Regexp {
	alts := make([]string, 0, len(signals))
	for _, s := range signals {
		alts = append(alts, strings.ReplaceAll(regexp.QuoteMeta(s), " ", `\s+`))
	}
	return regexp.MustCompile(
		`\b(?:` + strings.Join(alts, "|") + `)\s+(?:rs\.?|₹)?\s*(\d+(?:,\d+)*(?:\.\d+)?)`,
	)
}

// compileNegationPattern builds the exclusion matcher from the configured
// negation markers
func compileNegationPattern(markers []string) *regexp.Regexp {
	alts := make([]string, 0, len(markers))
	for _, m := range markers {
		alts = append(alts, strings.ReplaceAll(regexp.QuoteMeta(m), " ", `\s+`))
	}
	return regexp.MustCompile(
		`(?:^|\s)(?:` + strings.Join(alts, "|") + `)([a-z0-9]+)`,
	)
}

// signalWordSet splits the configured signal phrases into individual
// words for keyword stripping. The range-form words are included so a
// consumed "between X and Y" leaves no residue in the keyword stream.
func signalWordSet(signals []string) map[string]bool {
	words := map[string]bool{"between": true, "and": true}
	for _, s := range signals {
		for _, w := range strings.Fields(s) {
			words[w] = true
		}
	}
	return words
}

// parseAmount parses a numeric string with optional thousands separators
func parseAmount(s string) (float64, bool) {
	amount, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil || amount < 0 {
		return 0, false
	}
	return amount, true
}

// hasAlphanumeric reports whether the string contains at least one letter
// or digit
func hasAlphanumeric(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
