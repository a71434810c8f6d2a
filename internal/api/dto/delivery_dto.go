package dto

import (
	"time"

	"github.com/smartbite/servesoft/internal/domain"
	"github.com/smartbite/servesoft/internal/repository"
)

// DeliveryResponse is the driver projection: delivery status case-normalized
// plus denormalized order and customer summary fields. Raw order states are
// never exposed here.
type DeliveryResponse struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"order_id"`
	Status       string    `json:"status"`
	AgentStaffID *string   `json:"agent_staff_id,omitempty"`
	Address      string    `json:"address"`
	RestaurantID string    `json:"restaurant_id,omitempty"`
	CustomerName string    `json:"customer_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewDeliveryResponse maps a bare delivery.
func NewDeliveryResponse(delivery *domain.Delivery) DeliveryResponse {
	return DeliveryResponse{
		ID:           delivery.ID,
		OrderID:      delivery.OrderID,
		Status:       delivery.Status.DriverView(),
		AgentStaffID: delivery.AgentStaffID,
		Address:      delivery.Address,
		CreatedAt:    delivery.CreatedAt,
	}
}

// NewDeliverySummaryResponse maps a denormalized listing row.
func NewDeliverySummaryResponse(summary repository.DeliverySummary) DeliveryResponse {
	response := NewDeliveryResponse(&summary.Delivery)
	response.RestaurantID = summary.RestaurantID
	response.CustomerName = summary.CustomerName
	return response
}
