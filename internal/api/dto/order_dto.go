package dto

import (
	"time"

	"github.com/smartbite/servesoft/internal/domain"
)

// CheckoutRequest payload for placing an order from the cart.
type CheckoutRequest struct {
	RestaurantID    string  `json:"restaurant_id"`
	DeliveryAddress *string `json:"delivery_address"`
}

// UpdateOrderStatusRequest payload for manager transitions.
type UpdateOrderStatusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

// OrderItemResponse is one priced line item.
type OrderItemResponse struct {
	ID         string  `json:"id"`
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int     `json:"quantity"`
}

// CustomerOrderResponse is the customer projection: status case-normalized.
type CustomerOrderResponse struct {
	ID              string              `json:"id"`
	ReferenceKey    string              `json:"reference_key"`
	RestaurantID    string              `json:"restaurant_id"`
	Type            domain.OrderType    `json:"type"`
	Status          string              `json:"status"`
	DeliveryAddress *string             `json:"delivery_address,omitempty"`
	TotalAmount     float64             `json:"total_amount"`
	Items           []OrderItemResponse `json:"items,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
}

// ManagerOrderResponse is the manager projection: canonical status.
type ManagerOrderResponse struct {
	ID              string              `json:"id"`
	ReferenceKey    string              `json:"reference_key"`
	CustomerID      string              `json:"customer_id"`
	Type            domain.OrderType    `json:"type"`
	Status          domain.OrderStatus  `json:"status"`
	DeliveryAddress *string             `json:"delivery_address,omitempty"`
	TotalAmount     float64             `json:"total_amount"`
	Items           []OrderItemResponse `json:"items,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// NewCustomerOrderResponse maps an order into the customer view.
func NewCustomerOrderResponse(order *domain.Order) CustomerOrderResponse {
	return CustomerOrderResponse{
		ID:              order.ID,
		ReferenceKey:    order.ReferenceKey,
		RestaurantID:    order.RestaurantID,
		Type:            order.Type,
		Status:          order.Status.CustomerView(),
		DeliveryAddress: order.DeliveryAddress,
		TotalAmount:     order.TotalAmount,
		Items:           newOrderItemResponses(order.Items),
		CreatedAt:       order.CreatedAt,
	}
}

// NewManagerOrderResponse maps an order into the manager view.
func NewManagerOrderResponse(order *domain.Order) ManagerOrderResponse {
	return ManagerOrderResponse{
		ID:              order.ID,
		ReferenceKey:    order.ReferenceKey,
		CustomerID:      order.CustomerID,
		Type:            order.Type,
		Status:          order.Status,
		DeliveryAddress: order.DeliveryAddress,
		TotalAmount:     order.TotalAmount,
		Items:           newOrderItemResponses(order.Items),
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

func newOrderItemResponses(items []domain.OrderItem) []OrderItemResponse {
	if len(items) == 0 {
		return nil
	}
	result := make([]OrderItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, OrderItemResponse{
			ID:         item.ID,
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
		})
	}
	return result
}
