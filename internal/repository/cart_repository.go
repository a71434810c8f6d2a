package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartbite/servesoft/internal/domain"
)

// CartRepository handles the ephemeral customer cart. Checkout is the
// transactional boundary: order creation and cart clearing land together or
// not at all. Remove and Clear are idempotent so a retry after a partial
// failure is always safe.
type CartRepository interface {
	ListByCustomer(ctx context.Context, customerID string) ([]domain.CartItem, error)
	AddItem(ctx context.Context, item *domain.CartItem) error
	RemoveItem(ctx context.Context, customerID, cartItemID string) error
	Clear(ctx context.Context, customerID string) error
	Checkout(ctx context.Context, order *domain.Order) error
}

type cartRepository struct {
	pool *pgxpool.Pool
}

// NewCartRepository instantiates the repository.
func NewCartRepository(pool *pgxpool.Pool) CartRepository {
	return &cartRepository{pool: pool}
}

func (r *cartRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.CartItem, error) {
	const query = `
        SELECT ci.id, ci.customer_id, ci.menu_item_id, m.name, m.price, ci.quantity, ci.created_at
        FROM cart_items ci
        JOIN menu_items m ON m.id = ci.menu_item_id
        WHERE ci.customer_id=$1
        ORDER BY ci.created_at ASC`

	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(
			&item.ID,
			&item.CustomerID,
			&item.MenuItemID,
			&item.Name,
			&item.UnitPrice,
			&item.Quantity,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

// AddItem merges quantity into an existing row for the same menu item.
func (r *cartRepository) AddItem(ctx context.Context, item *domain.CartItem) error {
	const query = `
        INSERT INTO cart_items (customer_id, menu_item_id, quantity)
        VALUES ($1, $2, $3)
        ON CONFLICT (customer_id, menu_item_id)
        DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		item.CustomerID,
		item.MenuItemID,
		item.Quantity,
	).Scan(&item.ID, &item.CreatedAt)
}

// RemoveItem deletes one cart row. Removing an absent row is a no-op.
func (r *cartRepository) RemoveItem(ctx context.Context, customerID, cartItemID string) error {
	const query = `DELETE FROM cart_items WHERE id=$1 AND customer_id=$2`

	_, err := r.pool.Exec(ctx, query, cartItemID, customerID)
	return err
}

// Clear drops every cart row for the customer. Clearing an empty cart is a
// no-op, not an error.
func (r *cartRepository) Clear(ctx context.Context, customerID string) error {
	const query = `DELETE FROM cart_items WHERE customer_id=$1`

	_, err := r.pool.Exec(ctx, query, customerID)
	return err
}

// Checkout writes the order with its line items and clears the cart inside
// one transaction.
func (r *cartRepository) Checkout(ctx context.Context, order *domain.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const orderQuery = `
        INSERT INTO orders (reference_key, restaurant_id, customer_id, order_type, status, delivery_address, total_amount)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

	if err := tx.QueryRow(ctx, orderQuery,
		order.ReferenceKey,
		order.RestaurantID,
		order.CustomerID,
		order.Type,
		order.Status,
		order.DeliveryAddress,
		order.TotalAmount,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
		return err
	}

	const itemQuery = `
        INSERT INTO order_items (order_id, menu_item_id, item_name, unit_price, quantity)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		if err := tx.QueryRow(ctx, itemQuery,
			order.ID,
			item.MenuItemID,
			item.Name,
			item.UnitPrice,
			item.Quantity,
		).Scan(&item.ID); err != nil {
			return err
		}
	}

	const clearQuery = `DELETE FROM cart_items WHERE customer_id=$1`
	if _, err := tx.Exec(ctx, clearQuery, order.CustomerID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
