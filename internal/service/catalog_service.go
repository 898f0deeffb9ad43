package service

import (
	"context"

	"yippee/internal/domain"
)

type CatalogService struct {
	repo  RestaurantRepository
	cache CatalogCache
}

func NewCatalogService(repo RestaurantRepository, cache CatalogCache) *CatalogService {
	return &CatalogService{repo: repo, cache: cache}
}

// List returns the full catalog, read through the cache when one is wired.
// The dataset is a handful of rows by design, so a full scan is fine.
func (s *CatalogService) List(ctx context.Context) ([]domain.Restaurant, error) {
	if s.cache != nil {
		if restaurants, ok := s.cache.GetCatalog(ctx); ok {
			return restaurants, nil
		}
	}

	restaurants, err := s.repo.ListRestaurants()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetCatalog(ctx, restaurants)
	}
	return restaurants, nil
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
