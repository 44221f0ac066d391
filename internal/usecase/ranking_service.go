package usecase

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/shopscout/backend/internal/domain"
)

// defaultRankLimit is the number of results returned when no limit is given
const defaultRankLimit = 3

// RankingWeights holds the contribution of each scoring signal. The
// defaults mirror the documented tuning; all values are externally
// configurable.
type RankingWeights struct {
	KeywordMatch      float64 // per matched keyword token
	KeywordCap        float64 // ceiling on the total keyword contribution
	ColorMatch        float64 // flat bonus for an exact color match
	BrandMatch        float64 // flat bonus when the brand is named in the query
	CategoryMatch     float64 // flat bonus for matching the detected category
	PriceFit          float64 // scaled by closeness to the budget ceiling
	OverBudgetPenalty float64 // subtracted when the price exceeds the ceiling
	RatingMultiplier  float64 // applied to the 0-5 product rating
}

// DefaultRankingWeights returns the stable documented weight set
func DefaultRankingWeights() RankingWeights {
	return RankingWeights{
		KeywordMatch:      2.0,
		KeywordCap:        10.0,
		ColorMatch:        3.0,
		BrandMatch:        2.0,
		CategoryMatch:     1.0,
		PriceFit:          2.0,
		OverBudgetPenalty: 5.0,
		RatingMultiplier:  1.5,
	}
}

// RankingService orders candidate products by relevance to an intent
type RankingService struct {
	weights RankingWeights
	log     *zap.Logger
}

// NewRankingService creates a ranking service with the given weights.
// A zero-value weight set falls back to the defaults.
func NewRankingService(weights RankingWeights, log *zap.Logger) *RankingService {
	if weights == (RankingWeights{}) {
		weights = DefaultRankingWeights()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &RankingService{weights: weights, log: log}
}

// Rank scores the candidates against the intent and returns the top
// entries sorted by descending score. Equal scores rank the cheaper
// product first; remaining ties keep catalog order. The input slice is
// never modified, and the output is deterministic for fixed input.
func (s *RankingService) Rank(intent *domain.Intent, candidates []domain.Product, limit int) []domain.ScoredProduct {
	if limit <= 0 {
		limit = defaultRankLimit
	}

	scored := make([]domain.ScoredProduct, 0, len(candidates))
	for _, p := range candidates {
		scored = append(scored, domain.ScoredProduct{
			Product: p,
			Score:   s.score(intent, p),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Product.Price < scored[j].Product.Price
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	s.log.Debug("ranked candidates",
		zap.Int("candidates", len(candidates)),
		zap.Int("returned", len(scored)))

	return scored
}

// score computes the additive relevance score of one product
func (s *RankingService) score(intent *domain.Intent, p domain.Product) float64 {
	text := strings.ToLower(p.Name + " " + p.Description + " " + p.Brand + " " + p.Color)
	score := 0.0

	// Keyword hits, capped so one product cannot dominate on token count
	keywordScore := 0.0
	for _, kw := range intent.Keywords {
		if strings.Contains(text, kw) {
			keywordScore += s.weights.KeywordMatch
		}
	}
	if keywordScore > s.weights.KeywordCap {
		keywordScore = s.weights.KeywordCap
	}
	score += keywordScore

	if intent.PreferredColor != "" && strings.EqualFold(p.Color, intent.PreferredColor) {
		score += s.weights.ColorMatch
	}

	brandLower := strings.ToLower(p.Brand)
	if brandLower != "" && !intent.ExcludesBrand(brandLower) &&
		strings.Contains(strings.ToLower(intent.RawText), brandLower) {
		score += s.weights.BrandMatch
	}

	if intent.Category != "" && p.Category == intent.Category {
		score += s.weights.CategoryMatch
	}

	if intent.HasBudget && intent.MaxBudget > 0 {
		ratio := p.Price / intent.MaxBudget
		if ratio <= 1.0 {
			// More headroom under the ceiling earns a larger bonus
			score += (1.0 - ratio) * s.weights.PriceFit
		} else {
			score -= s.weights.OverBudgetPenalty
		}
	}

	score += p.Rating * s.weights.RatingMultiplier

	return score
}
