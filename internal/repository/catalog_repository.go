package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartbite/servesoft/internal/domain"
)

// CatalogRepository is the read-only view over restaurant, table and menu
// data. These tables are owned elsewhere; this service only reads them.
type CatalogRepository interface {
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	ListTables(ctx context.Context) ([]domain.RestaurantTable, error)
	ListMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	ListMenuByRestaurant(ctx context.Context, restaurantID string) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error)
}

type catalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository instantiates the repository.
func NewCatalogRepository(pool *pgxpool.Pool) CatalogRepository {
	return &catalogRepository{pool: pool}
}

func (r *catalogRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	const query = `
        SELECT id, name, status, location, contact_number, address
        FROM restaurants ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Restaurant
	for rows.Next() {
		var restaurant domain.Restaurant
		if err := rows.Scan(
			&restaurant.ID,
			&restaurant.Name,
			&restaurant.Status,
			&restaurant.Location,
			&restaurant.ContactNumber,
			&restaurant.Address,
		); err != nil {
			return nil, err
		}
		result = append(result, restaurant)
	}
	return result, rows.Err()
}

func (r *catalogRepository) ListTables(ctx context.Context) ([]domain.RestaurantTable, error) {
	const query = `
        SELECT id, restaurant_id, table_number, capacity, status
        FROM restaurant_tables ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.RestaurantTable
	for rows.Next() {
		var table domain.RestaurantTable
		if err := rows.Scan(
			&table.ID,
			&table.RestaurantID,
			&table.Number,
			&table.Capacity,
			&table.Status,
		); err != nil {
			return nil, err
		}
		result = append(result, table)
	}
	return result, rows.Err()
}

func (r *catalogRepository) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	const query = `
        SELECT id, restaurant_id, name, description, price, available
        FROM menu_items ORDER BY id`

	return r.collectMenuItems(ctx, query)
}

func (r *catalogRepository) ListMenuByRestaurant(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	const query = `
        SELECT id, restaurant_id, name, description, price, available
        FROM menu_items WHERE restaurant_id=$1 ORDER BY id`

	return r.collectMenuItems(ctx, query, restaurantID)
}

func (r *catalogRepository) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	const query = `
        SELECT id, restaurant_id, name, description, price, available
        FROM menu_items WHERE id=$1`

	var item domain.MenuItem
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.RestaurantID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.Available,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *catalogRepository) collectMenuItems(ctx context.Context, query string, args ...any) ([]domain.MenuItem, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(
			&item.ID,
			&item.RestaurantID,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.Available,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}
