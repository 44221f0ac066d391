package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopscout/backend/internal/domain"
)

// LoadProducts reads a product catalog from a JSON file. An empty path
// returns the built-in seed catalog, matching the behavior of deployments
// that ship without an external data file.
func LoadProducts(path string) ([]domain.Product, error) {
	if path == "" {
		return SeedProducts(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrCatalogLoad, path, err)
	}

	var products []domain.Product
	if err := json.Unmarshal(b, &products); err != nil {
		return nil, fmt.Errorf("%w: unmarshal %s: %v", domain.ErrCatalogLoad, path, err)
	}

	for i, p := range products {
		if p.Price <= 0 {
			return nil, fmt.Errorf("%w: product %d (%q) has non-positive price", domain.ErrCatalogLoad, i, p.Name)
		}
		if p.Rating < 0 || p.Rating > 5 {
			return nil, fmt.Errorf("%w: product %d (%q) has rating outside [0,5]", domain.ErrCatalogLoad, i, p.Name)
		}
	}

	return products, nil
}
