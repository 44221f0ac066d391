package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/shopscout/backend/internal/domain"
)

// ShoppingServiceConfig holds result limit settings for the orchestrator
type ShoppingServiceConfig struct {
	DefaultLimit int
	MaxLimit     int
}

// ShoppingService composes intent extraction, catalog search, and ranking
// into a single query pipeline. This is the only type exposed to the
// delivery layer.
type ShoppingService struct {
	extractor    *IntentExtractor
	ranker       *RankingService
	catalog      domain.CatalogRepository
	defaultLimit int
	maxLimit     int
	log          *zap.Logger
}

// NewShoppingService creates the query pipeline over an immutable catalog
func NewShoppingService(
	extractor *IntentExtractor,
	ranker *RankingService,
	catalog domain.CatalogRepository,
	cfg ShoppingServiceConfig,
	log *zap.Logger,
) *ShoppingService {
	defaultLimit := cfg.DefaultLimit
	if defaultLimit <= 0 {
		defaultLimit = defaultRankLimit
	}
	maxLimit := cfg.MaxLimit
	if maxLimit < defaultLimit {
		maxLimit = defaultLimit
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &ShoppingService{
		extractor:    extractor,
		ranker:       ranker,
		catalog:      catalog,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		log:          log,
	}
}

// ProcessQuery runs the full pipeline for one raw query. limit <= 0 uses
// the configured default; larger values are clamped to the configured
// maximum. Only validation failures produce an error; an empty result set
// is a valid outcome.
func (s *ShoppingService) ProcessQuery(ctx context.Context, rawQuery string, limit int) (*domain.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	intent, err := s.extractor.Extract(rawQuery)
	if err != nil {
		return nil, err
	}

	candidates := s.catalog.Search(domain.SearchFilter{
		Category:       intent.Category,
		MaxBudget:      intent.MaxBudget,
		HasBudget:      intent.HasBudget,
		ExcludedBrands: intent.ExcludedBrands,
		Keywords:       intent.Keywords,
	})

	if limit <= 0 {
		limit = s.defaultLimit
	} else if limit > s.maxLimit {
		limit = s.maxLimit
	}

	ranked := s.ranker.Rank(intent, candidates, limit)
	products := make([]domain.Product, 0, len(ranked))
	for _, sp := range ranked {
		products = append(products, sp.Product)
	}

	result := &domain.SearchResult{
		Query: intent.RawText,
		Analysis: domain.Analysis{
			Category:   intent.Category,
			BudgetType: string(intent.BudgetType),
		},
		Products:   products,
		TotalFound: len(candidates),
		Category:   intent.Category,
	}
	if intent.HasBudget {
		result.Analysis.MaxBudget = intent.MaxBudget
		result.MaxBudget = intent.MaxBudget
	}

	s.log.Info("query processed",
		zap.String("query", intent.RawText),
		zap.String("category", intent.Category),
		zap.Int("total_found", result.TotalFound),
		zap.Int("returned", len(products)))

	return result, nil
}

// GetSuggestions returns search hints for a query: candidate categories
// when none was detected, otherwise the category's price range, popular
// brands, and its top-rated products as samples.
func (s *ShoppingService) GetSuggestions(ctx context.Context, rawQuery string) (*domain.Suggestions, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	intent, err := s.extractor.Extract(rawQuery)
	if err != nil {
		return nil, err
	}

	suggestions := &domain.Suggestions{}

	if intent.Category == "" {
		suggestions.Categories = s.extractor.CategorySuggestions(rawQuery)
		return suggestions, nil
	}

	pr := s.catalog.PriceRange(intent.Category)
	suggestions.PriceRange = &pr

	inCategory := s.catalog.Search(domain.SearchFilter{Category: intent.Category})
	seen := make(map[string]bool)
	for _, p := range inCategory {
		if len(suggestions.PopularBrands) == 5 {
			break
		}
		if p.Brand != "" && !seen[p.Brand] {
			suggestions.PopularBrands = append(suggestions.PopularBrands, p.Brand)
			seen[p.Brand] = true
		}
	}
	suggestions.SampleProducts = s.catalog.TopRated(intent.Category, 3)

	return suggestions, nil
}

// Categories returns the catalog's category list
func (s *ShoppingService) Categories() []string {
	return s.catalog.Categories()
}

// Brands returns the catalog's brand list
func (s *ShoppingService) Brands() []string {
	return s.catalog.Brands()
}
