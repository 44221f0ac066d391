package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/shopscout/backend/config"
	"github.com/shopscout/backend/internal/infrastructure/catalog"
	"github.com/shopscout/backend/internal/usecase"
)

// TestMain sets up test environment before running tests
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			Environment:    "test",
			AllowedOrigins: []string{"*"},
		},
		Search: config.SearchConfig{
			MinQueryLength: 2,
			MaxQueryLength: 500,
			DefaultLimit:   3,
			MaxLimit:       10,
		},
		RateLimit: config.RateLimitConfig{
			PerMinute: 600,
			Burst:     100,
		},
	}
}

// setupTestRouter builds a router over the seed catalog
func setupTestRouter(cfg *config.Config) *gin.Engine {
	store := catalog.NewStore(catalog.SeedProducts())
	extractor := usecase.NewIntentExtractor(usecase.DefaultVocabulary(), usecase.ExtractorConfig{
		MinQueryLength: cfg.Search.MinQueryLength,
		MaxQueryLength: cfg.Search.MaxQueryLength,
	}, nil)
	ranker := usecase.NewRankingService(usecase.RankingWeights{}, nil)
	shopping := usecase.NewShoppingService(extractor, ranker, store, usecase.ShoppingServiceConfig{
		DefaultLimit: cfg.Search.DefaultLimit,
		MaxLimit:     cfg.Search.MaxLimit,
	}, nil)

	return SetupRouter(cfg, NewHandler(shopping, nil), nil)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return body
}

func TestHealthCheckEndpoint(t *testing.T) {
	router := setupTestRouter(testConfig())

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
	}

	body := decodeBody(t, w)
	if body["success"] != true {
		t.Errorf("success = %v, want true", body["success"])
	}
	if body["service"] != "shopscout-backend" {
		t.Errorf("service = %v, want shopscout-backend", body["service"])
	}
}

func TestSearchEndpoint(t *testing.T) {
	router := setupTestRouter(testConfig())

	t.Run("valid query", func(t *testing.T) {
		payload := `{"query": "red running shoes under 3000"}`
		req, _ := http.NewRequest("POST", "/api/v1/shopping/search", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
		}

		body := decodeBody(t, w)
		if body["success"] != true {
			t.Errorf("success = %v, want true", body["success"])
		}

		analysis, ok := body["analysis"].(map[string]interface{})
		if !ok {
			t.Fatalf("analysis missing from response: %s", w.Body.String())
		}
		if analysis["category"] != "apparel" {
			t.Errorf("analysis.category = %v, want apparel", analysis["category"])
		}
		if analysis["max_budget"] != float64(3000) {
			t.Errorf("analysis.max_budget = %v, want 3000", analysis["max_budget"])
		}
		if analysis["budget_type"] != "specific" {
			t.Errorf("analysis.budget_type = %v, want specific", analysis["budget_type"])
		}

		products, ok := body["products"].([]interface{})
		if !ok {
			t.Fatalf("products missing from response: %s", w.Body.String())
		}
		for _, raw := range products {
			p := raw.(map[string]interface{})
			if price := p["price"].(float64); price > 3000 {
				t.Errorf("product %v priced %v exceeds budget", p["name"], price)
			}
		}
	})

	t.Run("missing query field", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/api/v1/shopping/search", strings.NewReader(`{"limit": 3}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("malformed JSON", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/api/v1/shopping/search", strings.NewReader(`{"query":`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("query too short", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/api/v1/shopping/search", strings.NewReader(`{"query": "a"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
		body := decodeBody(t, w)
		if body["success"] != false {
			t.Errorf("success = %v, want false", body["success"])
		}
	})

	t.Run("no matches is still 200", func(t *testing.T) {
		payload := `{"query": "shoes under 100"}`
		req, _ := http.NewRequest("POST", "/api/v1/shopping/search", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}
		body := decodeBody(t, w)
		if body["total_found"] != float64(0) {
			t.Errorf("total_found = %v, want 0", body["total_found"])
		}
	})
}

func TestSuggestionsEndpoint(t *testing.T) {
	router := setupTestRouter(testConfig())

	t.Run("with category", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/v1/shopping/suggestions?query=running+shoes", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
		}
		body := decodeBody(t, w)
		suggestions, ok := body["suggestions"].(map[string]interface{})
		if !ok {
			t.Fatalf("suggestions missing from response: %s", w.Body.String())
		}
		if suggestions["price_range"] == nil {
			t.Error("price_range missing for a detected category")
		}
	})

	t.Run("missing query parameter", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/v1/shopping/suggestions", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestCatalogEndpoints(t *testing.T) {
	router := setupTestRouter(testConfig())

	t.Run("categories", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/v1/shopping/categories", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}
		body := decodeBody(t, w)
		categories, ok := body["categories"].([]interface{})
		if !ok || len(categories) == 0 {
			t.Errorf("categories = %v, want non-empty list", body["categories"])
		}
	})

	t.Run("brands", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/v1/shopping/brands", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}
		body := decodeBody(t, w)
		brands, ok := body["brands"].([]interface{})
		if !ok || len(brands) == 0 {
			t.Errorf("brands = %v, want non-empty list", body["brands"])
		}
	})
}
