package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartbite/servesoft/internal/domain"
)

// DeliverySummary is the denormalized driver-facing row. Drivers never see
// raw order states, only delivery states plus order/customer summary fields.
type DeliverySummary struct {
	Delivery     domain.Delivery
	RestaurantID string
	CustomerName string
}

// DeliveryRepository handles persistence for deliveries. Claim is the single
// cross-request mutual-exclusion point in the system and is implemented as an
// atomic conditional update.
type DeliveryRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Delivery, error)
	ListPending(ctx context.Context, restaurantID *string) ([]DeliverySummary, error)
	ListByAgent(ctx context.Context, agentStaffID string) ([]DeliverySummary, error)
	Claim(ctx context.Context, deliveryID, agentStaffID string) (bool, error)
	Complete(ctx context.Context, deliveryID, agentStaffID string) (bool, error)
}

type deliveryRepository struct {
	pool *pgxpool.Pool
}

// NewDeliveryRepository instantiates the repository.
func NewDeliveryRepository(pool *pgxpool.Pool) DeliveryRepository {
	return &deliveryRepository{pool: pool}
}

func (r *deliveryRepository) GetByID(ctx context.Context, id string) (*domain.Delivery, error) {
	const query = `
        SELECT id, order_id, status, agent_staff_id, address, created_at, updated_at
        FROM deliveries WHERE id=$1`

	var delivery domain.Delivery
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&delivery.ID,
		&delivery.OrderID,
		&delivery.Status,
		&delivery.AgentStaffID,
		&delivery.Address,
		&delivery.CreatedAt,
		&delivery.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &delivery, nil
}

func (r *deliveryRepository) ListPending(ctx context.Context, restaurantID *string) ([]DeliverySummary, error) {
	query := `
        SELECT d.id, d.order_id, d.status, d.agent_staff_id, d.address, d.created_at, d.updated_at,
               o.restaurant_id, u.name
        FROM deliveries d
        JOIN orders o ON o.id = d.order_id
        JOIN customer_profiles c ON c.id = o.customer_id
        JOIN users u ON u.id = c.user_id
        WHERE d.status=$1`
	args := []any{domain.DeliveryStatusPending}

	if restaurantID != nil {
		args = append(args, *restaurantID)
		query += ` AND o.restaurant_id=$2`
	}
	query += ` ORDER BY d.created_at ASC`

	return r.collectSummaries(ctx, query, args...)
}

func (r *deliveryRepository) ListByAgent(ctx context.Context, agentStaffID string) ([]DeliverySummary, error) {
	const query = `
        SELECT d.id, d.order_id, d.status, d.agent_staff_id, d.address, d.created_at, d.updated_at,
               o.restaurant_id, u.name
        FROM deliveries d
        JOIN orders o ON o.id = d.order_id
        JOIN customer_profiles c ON c.id = o.customer_id
        JOIN users u ON u.id = c.user_id
        WHERE d.agent_staff_id=$1
        ORDER BY d.updated_at DESC`

	return r.collectSummaries(ctx, query, agentStaffID)
}

// Claim transitions PENDING to ACCEPTED for exactly one caller. The status
// guard in the WHERE clause serializes concurrent attempts; the loser sees
// zero rows affected.
func (r *deliveryRepository) Claim(ctx context.Context, deliveryID, agentStaffID string) (bool, error) {
	const query = `
        UPDATE deliveries SET status=$1, agent_staff_id=$2, updated_at=NOW()
        WHERE id=$3 AND status=$4`

	cmd, err := r.pool.Exec(ctx, query,
		domain.DeliveryStatusAccepted,
		agentStaffID,
		deliveryID,
		domain.DeliveryStatusPending,
	)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

// Complete finishes an accepted delivery, guarded on the assigned agent.
func (r *deliveryRepository) Complete(ctx context.Context, deliveryID, agentStaffID string) (bool, error) {
	const query = `
        UPDATE deliveries SET status=$1, updated_at=NOW()
        WHERE id=$2 AND status=$3 AND agent_staff_id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		domain.DeliveryStatusCompleted,
		deliveryID,
		domain.DeliveryStatusAccepted,
		agentStaffID,
	)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *deliveryRepository) collectSummaries(ctx context.Context, query string, args ...any) ([]DeliverySummary, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []DeliverySummary
	for rows.Next() {
		var summary DeliverySummary
		if err := rows.Scan(
			&summary.Delivery.ID,
			&summary.Delivery.OrderID,
			&summary.Delivery.Status,
			&summary.Delivery.AgentStaffID,
			&summary.Delivery.Address,
			&summary.Delivery.CreatedAt,
			&summary.Delivery.UpdatedAt,
			&summary.RestaurantID,
			&summary.CustomerName,
		); err != nil {
			return nil, err
		}
		result = append(result, summary)
	}
	return result, rows.Err()
}
