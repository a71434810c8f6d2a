package service

import (
	"context"

	"github.com/smartbite/servesoft/internal/domain"
	"github.com/smartbite/servesoft/internal/repository"
	apperrors "github.com/smartbite/servesoft/pkg/util"
)

// CatalogSnapshot is the one-shot bulk read served to clients at startup:
// every restaurant, seating table and menu item in a single document.
type CatalogSnapshot struct {
	Restaurants []domain.Restaurant
	Tables      []domain.RestaurantTable
	MenuItems   []domain.MenuItem
}

// CatalogService serves the read-only restaurant/table/menu passthrough.
type CatalogService struct {
	catalog repository.CatalogRepository
}

// NewCatalogService constructs the service.
func NewCatalogService(catalog repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// Snapshot loads the full catalog.
func (s *CatalogService) Snapshot(ctx context.Context) (*CatalogSnapshot, error) {
	restaurants, err := s.catalog.ListRestaurants(ctx)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	tables, err := s.catalog.ListTables(ctx)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	menuItems, err := s.catalog.ListMenuItems(ctx)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return &CatalogSnapshot{
		Restaurants: restaurants,
		Tables:      tables,
		MenuItems:   menuItems,
	}, nil
}

// Menu lists a restaurant's menu items, ordered by id.
func (s *CatalogService) Menu(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	items, err := s.catalog.ListMenuByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return items, nil
}
