package dto

import "github.com/smartbite/servesoft/internal/domain"

// AddCartItemRequest payload.
type AddCartItemRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

// CartItemResponse is one cart line.
type CartItemResponse struct {
	ID         string  `json:"id"`
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int     `json:"quantity"`
}

// CartResponse is the full cart with its running total.
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total float64            `json:"total"`
}

// NewCartResponse maps cart items and computes the total.
func NewCartResponse(items []domain.CartItem) CartResponse {
	response := CartResponse{Items: make([]CartItemResponse, 0, len(items))}
	for _, item := range items {
		response.Items = append(response.Items, CartItemResponse{
			ID:         item.ID,
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
		})
		response.Total += item.UnitPrice * float64(item.Quantity)
	}
	return response
}
