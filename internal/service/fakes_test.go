package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/smartbite/servesoft/internal/domain"
	"github.com/smartbite/servesoft/internal/repository"
)

// fakeIdentityRepo serves profile rows from in-memory maps. Missing rows
// surface as pgx.ErrNoRows, matching the real repository.
type fakeIdentityRepo struct {
	customers map[string]*domain.CustomerProfile
	admins    map[string]*domain.AdminProfile
	staff     map[string][]domain.StaffProfile
	managers  map[string]*domain.ManagerRole
	agents    map[string]*domain.DeliveryAgent
}

func newFakeIdentityRepo() *fakeIdentityRepo {
	return &fakeIdentityRepo{
		customers: map[string]*domain.CustomerProfile{},
		admins:    map[string]*domain.AdminProfile{},
		staff:     map[string][]domain.StaffProfile{},
		managers:  map[string]*domain.ManagerRole{},
		agents:    map[string]*domain.DeliveryAgent{},
	}
}

func (f *fakeIdentityRepo) GetCustomerByUserID(_ context.Context, userID string) (*domain.CustomerProfile, error) {
	if profile, ok := f.customers[userID]; ok {
		return profile, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeIdentityRepo) GetAdminByUserID(_ context.Context, userID string) (*domain.AdminProfile, error) {
	if profile, ok := f.admins[userID]; ok {
		return profile, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeIdentityRepo) ListActiveStaffByUserID(_ context.Context, userID string) ([]domain.StaffProfile, error) {
	var active []domain.StaffProfile
	for _, row := range f.staff[userID] {
		if row.Status == domain.StaffStatusActive {
			active = append(active, row)
		}
	}
	return active, nil
}

func (f *fakeIdentityRepo) GetManagerByStaffID(_ context.Context, staffID string) (*domain.ManagerRole, error) {
	if role, ok := f.managers[staffID]; ok {
		return role, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeIdentityRepo) GetDeliveryAgentByStaffID(_ context.Context, staffID string) (*domain.DeliveryAgent, error) {
	if agent, ok := f.agents[staffID]; ok {
		return agent, nil
	}
	return nil, pgx.ErrNoRows
}

// fakeOrderRepo applies status flips with the same compare-and-set contract
// as the SQL implementation, guarded by a mutex so concurrent callers observe
// exactly one winner.
type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*domain.Order
}

func newFakeOrderRepo(orders ...*domain.Order) *fakeOrderRepo {
	repo := &fakeOrderRepo{orders: map[string]*domain.Order{}}
	for _, order := range orders {
		repo.orders[order.ID] = order
	}
	return repo
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *order
	return &copied, nil
}

func (f *fakeOrderRepo) ListByCustomer(_ context.Context, customerID string) ([]domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.Order
	for _, order := range f.orders {
		if order.CustomerID == customerID {
			result = append(result, *order)
		}
	}
	return result, nil
}

func (f *fakeOrderRepo) ListByRestaurant(_ context.Context, restaurantID string, _ repository.OrderFilter) ([]domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.Order
	for _, order := range f.orders {
		if order.RestaurantID == restaurantID {
			result = append(result, *order)
		}
	}
	return result, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, orderID string, from, to domain.OrderStatus) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[orderID]
	if !ok || order.Status != from {
		return false, nil
	}
	order.Status = to
	return true, nil
}

func (f *fakeOrderRepo) UpdateStatusWithDelivery(_ context.Context, orderID string, from, to domain.OrderStatus, address string) (*domain.Delivery, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[orderID]
	if !ok || order.Status != from {
		return nil, false, nil
	}
	order.Status = to
	delivery := &domain.Delivery{
		ID:      uuid.NewString(),
		OrderID: orderID,
		Status:  domain.DeliveryStatusPending,
		Address: address,
	}
	return delivery, true, nil
}

// fakeDeliveryRepo mirrors the conditional-update semantics of the SQL claim
// and complete paths.
type fakeDeliveryRepo struct {
	mu         sync.Mutex
	deliveries map[string]*domain.Delivery
}

func newFakeDeliveryRepo(deliveries ...*domain.Delivery) *fakeDeliveryRepo {
	repo := &fakeDeliveryRepo{deliveries: map[string]*domain.Delivery{}}
	for _, delivery := range deliveries {
		repo.deliveries[delivery.ID] = delivery
	}
	return repo
}

func (f *fakeDeliveryRepo) GetByID(_ context.Context, id string) (*domain.Delivery, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delivery, ok := f.deliveries[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *delivery
	if delivery.AgentStaffID != nil {
		agent := *delivery.AgentStaffID
		copied.AgentStaffID = &agent
	}
	return &copied, nil
}

func (f *fakeDeliveryRepo) ListPending(_ context.Context, _ *string) ([]repository.DeliverySummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []repository.DeliverySummary
	for _, delivery := range f.deliveries {
		if delivery.Status == domain.DeliveryStatusPending {
			result = append(result, repository.DeliverySummary{Delivery: *delivery})
		}
	}
	return result, nil
}

func (f *fakeDeliveryRepo) ListByAgent(_ context.Context, agentStaffID string) ([]repository.DeliverySummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []repository.DeliverySummary
	for _, delivery := range f.deliveries {
		if delivery.AgentStaffID != nil && *delivery.AgentStaffID == agentStaffID {
			result = append(result, repository.DeliverySummary{Delivery: *delivery})
		}
	}
	return result, nil
}

func (f *fakeDeliveryRepo) Claim(_ context.Context, deliveryID, agentStaffID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delivery, ok := f.deliveries[deliveryID]
	if !ok || delivery.Status != domain.DeliveryStatusPending {
		return false, nil
	}
	delivery.Status = domain.DeliveryStatusAccepted
	delivery.AgentStaffID = &agentStaffID
	return true, nil
}

func (f *fakeDeliveryRepo) Complete(_ context.Context, deliveryID, agentStaffID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delivery, ok := f.deliveries[deliveryID]
	if !ok || delivery.Status != domain.DeliveryStatusAccepted {
		return false, nil
	}
	if delivery.AgentStaffID == nil || *delivery.AgentStaffID != agentStaffID {
		return false, nil
	}
	delivery.Status = domain.DeliveryStatusCompleted
	return true, nil
}

// fakeCartRepo keeps cart rows in memory and clears them atomically with
// order creation on checkout.
type fakeCartRepo struct {
	mu     sync.Mutex
	items  []domain.CartItem
	orders []*domain.Order
}

func (f *fakeCartRepo) ListByCustomer(_ context.Context, customerID string) ([]domain.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.CartItem
	for _, item := range f.items {
		if item.CustomerID == customerID {
			result = append(result, item)
		}
	}
	return result, nil
}

func (f *fakeCartRepo) AddItem(_ context.Context, item *domain.CartItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].CustomerID == item.CustomerID && f.items[i].MenuItemID == item.MenuItemID {
			f.items[i].Quantity += item.Quantity
			*item = f.items[i]
			return nil
		}
	}
	item.ID = uuid.NewString()
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeCartRepo) RemoveItem(_ context.Context, customerID, cartItemID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	remaining := f.items[:0]
	for _, item := range f.items {
		if item.CustomerID == customerID && item.ID == cartItemID {
			continue
		}
		remaining = append(remaining, item)
	}
	f.items = remaining
	return nil
}

func (f *fakeCartRepo) Clear(_ context.Context, customerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	remaining := f.items[:0]
	for _, item := range f.items {
		if item.CustomerID == customerID {
			continue
		}
		remaining = append(remaining, item)
	}
	f.items = remaining
	return nil
}

func (f *fakeCartRepo) Checkout(ctx context.Context, order *domain.Order) error {
	f.mu.Lock()
	order.ID = uuid.NewString()
	f.orders = append(f.orders, order)
	f.mu.Unlock()
	return f.Clear(ctx, order.CustomerID)
}

// fakeCatalogRepo serves menu items from a map.
type fakeCatalogRepo struct {
	menu map[string]*domain.MenuItem
}

func newFakeCatalogRepo(items ...*domain.MenuItem) *fakeCatalogRepo {
	repo := &fakeCatalogRepo{menu: map[string]*domain.MenuItem{}}
	for _, item := range items {
		repo.menu[item.ID] = item
	}
	return repo
}

func (f *fakeCatalogRepo) ListRestaurants(_ context.Context) ([]domain.Restaurant, error) {
	return nil, nil
}

func (f *fakeCatalogRepo) ListTables(_ context.Context) ([]domain.RestaurantTable, error) {
	return nil, nil
}

func (f *fakeCatalogRepo) ListMenuItems(_ context.Context) ([]domain.MenuItem, error) {
	var result []domain.MenuItem
	for _, item := range f.menu {
		result = append(result, *item)
	}
	return result, nil
}

func (f *fakeCatalogRepo) ListMenuByRestaurant(_ context.Context, restaurantID string) ([]domain.MenuItem, error) {
	var result []domain.MenuItem
	for _, item := range f.menu {
		if item.RestaurantID == restaurantID {
			result = append(result, *item)
		}
	}
	return result, nil
}

func (f *fakeCatalogRepo) GetMenuItem(_ context.Context, id string) (*domain.MenuItem, error) {
	item, ok := f.menu[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return item, nil
}
