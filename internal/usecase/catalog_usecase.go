package usecase

import (
	"context"
	"fmt"
	"time"

	"smartchoice-state/internal/domain"
	"smartchoice-state/pkg/cache"
	"smartchoice-state/pkg/logger"
)

// CatalogUsecase serves the one-time product lookups used to build the
// denormalized snapshots embedded in session collections. Lookups are
// cached: the catalog is read-only from this side, and a slightly stale
// price in a snapshot is acceptable by design.
type CatalogUsecase struct {
	repo       domain.CatalogRepository
	cache      cache.CacheService
	productTTL time.Duration
}

func NewCatalogUsecase(repo domain.CatalogRepository, cacheService cache.CacheService, productTTL time.Duration) *CatalogUsecase {
	return &CatalogUsecase{
		repo:       repo,
		cache:      cacheService,
		productTTL: productTTL,
	}
}

// GetProduct returns the catalog snapshot for id, nil when the product
// does not exist.
func (u *CatalogUsecase) GetProduct(ctx context.Context, id int64) (*domain.ProductSnapshot, error) {
	cacheKey := fmt.Sprintf("product:%d", id)

	if cached, found := u.cache.Get(cacheKey); found {
		if product, ok := cached.(*domain.ProductSnapshot); ok {
			logger.Debug().Int64("product_id", id).Msg("Catalog cache hit")
			return product, nil
		}
	}

	product, err := u.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catalog lookup: %w", err)
	}
	if product == nil {
		return nil, nil
	}

	u.cache.Set(cacheKey, product, u.productTTL)
	return product, nil
}
