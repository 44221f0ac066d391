package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/shopscout/backend/config"
	httpDelivery "github.com/shopscout/backend/internal/delivery/http"
	"github.com/shopscout/backend/internal/infrastructure/catalog"
	"github.com/shopscout/backend/internal/logger"
	"github.com/shopscout/backend/internal/usecase"
)

func main() {
	// .env is optional; environment variables win either way
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zlog.Sync()

	zlog.Info("starting shopscout backend",
		zap.String("version", "1.0.0"),
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port))

	products, err := catalog.LoadProducts(cfg.Catalog.DataFile)
	if err != nil {
		zlog.Fatal("failed to load catalog", zap.Error(err))
	}
	store := catalog.NewStore(products)
	zlog.Info("catalog loaded",
		zap.Int("products", len(products)),
		zap.Strings("categories", store.Categories()))

	vocab := usecase.DefaultVocabulary()
	extractor := usecase.NewIntentExtractor(vocab, usecase.ExtractorConfig{
		MinQueryLength: cfg.Search.MinQueryLength,
		MaxQueryLength: cfg.Search.MaxQueryLength,
	}, zlog)

	ranker := usecase.NewRankingService(usecase.RankingWeights{
		KeywordMatch:      cfg.Ranking.KeywordMatch,
		KeywordCap:        cfg.Ranking.KeywordCap,
		ColorMatch:        cfg.Ranking.ColorMatch,
		BrandMatch:        cfg.Ranking.BrandMatch,
		CategoryMatch:     cfg.Ranking.CategoryMatch,
		PriceFit:          cfg.Ranking.PriceFit,
		OverBudgetPenalty: cfg.Ranking.OverBudgetPenalty,
		RatingMultiplier:  cfg.Ranking.RatingMultiplier,
	}, zlog)

	shopping := usecase.NewShoppingService(extractor, ranker, store, usecase.ShoppingServiceConfig{
		DefaultLimit: cfg.Search.DefaultLimit,
		MaxLimit:     cfg.Search.MaxLimit,
	}, zlog)

	handler := httpDelivery.NewHandler(shopping, zlog)
	router := httpDelivery.SetupRouter(cfg, handler, zlog)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zlog.Info("server listening", zap.String("addr", addr))

	if err := router.Run(addr); err != nil {
		zlog.Fatal("server failed", zap.Error(err))
	}
}
