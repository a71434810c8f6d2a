package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartbite/servesoft/internal/domain"
)

// OrderFilter defines query params for restaurant order listing.
type OrderFilter struct {
	Statuses []domain.OrderStatus
	Type     *domain.OrderType
	Limit    int
	Offset   int
}

// OrderRepository handles persistence for orders. Status flips are
// conditional on the expected current status so a concurrent writer can
// never produce a partial or out-of-order write.
type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
	ListByRestaurant(ctx context.Context, restaurantID string, filter OrderFilter) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID string, from, to domain.OrderStatus) (bool, error)
	UpdateStatusWithDelivery(ctx context.Context, orderID string, from, to domain.OrderStatus, address string) (*domain.Delivery, bool, error)
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository instantiates the repository.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

const orderColumns = `id, reference_key, restaurant_id, customer_id, order_type, status, delivery_address, total_amount, created_at, updated_at`

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE id=$1`, orderColumns)

	order, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	items, err := r.listItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE customer_id=$1 ORDER BY created_at DESC`, orderColumns)

	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (r *orderRepository) ListByRestaurant(ctx context.Context, restaurantID string, filter OrderFilter) ([]domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders`, orderColumns)
	args := []any{restaurantID}
	clauses := []string{"restaurant_id=$1"}

	if len(filter.Statuses) > 0 {
		args = append(args, filter.Statuses)
		clauses = append(clauses, fmt.Sprintf("status=ANY($%d)", len(args)))
	}
	if filter.Type != nil {
		args = append(args, *filter.Type)
		clauses = append(clauses, fmt.Sprintf("order_type=$%d", len(args)))
	}
	query += " WHERE " + strings.Join(clauses, " AND ")
	query += " ORDER BY created_at DESC"

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	query += fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

// UpdateStatus applies the transition only when the row still carries the
// expected current status. Returns false when the guard did not match.
func (r *orderRepository) UpdateStatus(ctx context.Context, orderID string, from, to domain.OrderStatus) (bool, error) {
	const query = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2 AND status=$3`

	cmd, err := r.pool.Exec(ctx, query, to, orderID, from)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

// UpdateStatusWithDelivery flips the status and creates the PENDING delivery
// in one transaction; either both land or neither does.
func (r *orderRepository) UpdateStatusWithDelivery(ctx context.Context, orderID string, from, to domain.OrderStatus, address string) (*domain.Delivery, bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, false, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const statusQuery = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2 AND status=$3`
	cmd, err := tx.Exec(ctx, statusQuery, to, orderID, from)
	if err != nil {
		return nil, false, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, false, nil
	}

	const deliveryQuery = `
        INSERT INTO deliveries (order_id, status, address)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	delivery := &domain.Delivery{
		OrderID: orderID,
		Status:  domain.DeliveryStatusPending,
		Address: address,
	}
	if err := tx.QueryRow(ctx, deliveryQuery, orderID, delivery.Status, address).Scan(
		&delivery.ID,
		&delivery.CreatedAt,
		&delivery.UpdatedAt,
	); err != nil {
		return nil, false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, err
	}
	return delivery, true, nil
}

func (r *orderRepository) listItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	const query = `
        SELECT id, order_id, menu_item_id, item_name, unit_price, quantity
        FROM order_items WHERE order_id=$1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.MenuItemID,
			&item.Name,
			&item.UnitPrice,
			&item.Quantity,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	if err := row.Scan(
		&order.ID,
		&order.ReferenceKey,
		&order.RestaurantID,
		&order.CustomerID,
		&order.Type,
		&order.Status,
		&order.DeliveryAddress,
		&order.TotalAmount,
		&order.CreatedAt,
		&order.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &order, nil
}

func collectOrders(rows pgx.Rows) ([]domain.Order, error) {
	var result []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	return result, rows.Err()
}
