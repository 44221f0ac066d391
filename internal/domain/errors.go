package domain

import "errors"

var (
	// ErrInvalidQuery is returned when a query fails length or format validation
	ErrInvalidQuery = errors.New("invalid query")

	// ErrRateLimited is returned when a client exceeds the request quota
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCatalogLoad is returned when the product catalog cannot be loaded
	ErrCatalogLoad = errors.New("failed to load product catalog")
)
