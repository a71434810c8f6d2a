package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartbite/servesoft/internal/domain"
)

// IdentityRepository exposes the per-role profile rows the role resolver
// walks. All lookups are independent reads keyed by user or staff id.
type IdentityRepository interface {
	GetCustomerByUserID(ctx context.Context, userID string) (*domain.CustomerProfile, error)
	GetAdminByUserID(ctx context.Context, userID string) (*domain.AdminProfile, error)
	ListActiveStaffByUserID(ctx context.Context, userID string) ([]domain.StaffProfile, error)
	GetManagerByStaffID(ctx context.Context, staffID string) (*domain.ManagerRole, error)
	GetDeliveryAgentByStaffID(ctx context.Context, staffID string) (*domain.DeliveryAgent, error)
}

type identityRepository struct {
	pool *pgxpool.Pool
}

// NewIdentityRepository instantiates the repository.
func NewIdentityRepository(pool *pgxpool.Pool) IdentityRepository {
	return &identityRepository{pool: pool}
}

func (r *identityRepository) GetCustomerByUserID(ctx context.Context, userID string) (*domain.CustomerProfile, error) {
	const query = `SELECT id, user_id, created_at FROM customer_profiles WHERE user_id=$1`

	var profile domain.CustomerProfile
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *identityRepository) GetAdminByUserID(ctx context.Context, userID string) (*domain.AdminProfile, error) {
	const query = `SELECT id, user_id, created_at FROM admin_profiles WHERE user_id=$1`

	var profile domain.AdminProfile
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *identityRepository) ListActiveStaffByUserID(ctx context.Context, userID string) ([]domain.StaffProfile, error) {
	const query = `
        SELECT id, user_id, restaurant_id, title, status, created_at, updated_at
        FROM staff_profiles WHERE user_id=$1 AND status=$2
        ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, userID, domain.StaffStatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.StaffProfile
	for rows.Next() {
		var staff domain.StaffProfile
		if err := rows.Scan(
			&staff.ID,
			&staff.UserID,
			&staff.RestaurantID,
			&staff.Title,
			&staff.Status,
			&staff.CreatedAt,
			&staff.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, staff)
	}
	return result, rows.Err()
}

func (r *identityRepository) GetManagerByStaffID(ctx context.Context, staffID string) (*domain.ManagerRole, error) {
	const query = `SELECT id, staff_id FROM manager_roles WHERE staff_id=$1`

	var manager domain.ManagerRole
	if err := r.pool.QueryRow(ctx, query, staffID).Scan(&manager.ID, &manager.StaffID); err != nil {
		return nil, err
	}
	return &manager, nil
}

func (r *identityRepository) GetDeliveryAgentByStaffID(ctx context.Context, staffID string) (*domain.DeliveryAgent, error) {
	const query = `SELECT id, staff_id FROM delivery_agents WHERE staff_id=$1`

	var agent domain.DeliveryAgent
	if err := r.pool.QueryRow(ctx, query, staffID).Scan(&agent.ID, &agent.StaffID); err != nil {
		return nil, err
	}
	return &agent, nil
}
