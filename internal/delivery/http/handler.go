package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shopscout/backend/internal/domain"
	"github.com/shopscout/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	shopping *usecase.ShoppingService
	log      *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(shopping *usecase.ShoppingService, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{shopping: shopping, log: log}
}

type searchRequest struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit"`
}

type searchResponse struct {
	Success bool `json:"success"`
	domain.SearchResult
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"service": "shopscout-backend",
		"version": "1.0.0",
	})
}

// Search handles shopping search requests
func (h *Handler) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "query is required",
		})
		return
	}

	result, err := h.shopping.ProcessQuery(c.Request.Context(), req.Query, req.Limit)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidQuery) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   err.Error(),
			})
			return
		}
		h.log.Error("search failed", zap.String("query", req.Query), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, searchResponse{Success: true, SearchResult: *result})
}

// Suggestions returns search hints for a query passed as a URL parameter
func (h *Handler) Suggestions(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "query parameter required",
		})
		return
	}

	suggestions, err := h.shopping.GetSuggestions(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidQuery) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   err.Error(),
			})
			return
		}
		h.log.Error("suggestions failed", zap.String("query", query), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"suggestions": suggestions,
	})
}

// Categories returns the available product categories
func (h *Handler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": h.shopping.Categories(),
	})
}

// Brands returns the available brands
func (h *Handler) Brands(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"brands":  h.shopping.Brands(),
	})
}
