package dto

import (
	"fmt"

	"github.com/smartbite/servesoft/internal/domain"
)

// RestaurantResponse is the catalog restaurant shape.
type RestaurantResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// TableResponse is the catalog seating shape.
type TableResponse struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	Label        string `json:"label"`
	Capacity     int    `json:"capacity"`
	State        string `json:"state"`
}

// MenuItemResponse is the catalog menu shape.
type MenuItemResponse struct {
	ID           string  `json:"id"`
	RestaurantID string  `json:"restaurant_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Available    bool    `json:"available"`
}

// BootstrapResponse is the one-shot catalog document.
type BootstrapResponse struct {
	Restaurants []RestaurantResponse `json:"restaurants"`
	Tables      []TableResponse      `json:"tables"`
	MenuItems   []MenuItemResponse   `json:"menu_items"`
}

// NewRestaurantResponses maps restaurants.
func NewRestaurantResponses(restaurants []domain.Restaurant) []RestaurantResponse {
	result := make([]RestaurantResponse, 0, len(restaurants))
	for _, r := range restaurants {
		result = append(result, RestaurantResponse{
			ID:       r.ID,
			Name:     r.Name,
			Status:   r.Status,
			Location: r.Location,
			Phone:    r.ContactNumber,
			Address:  r.Address,
		})
	}
	return result
}

// NewTableResponses maps seating tables.
func NewTableResponses(tables []domain.RestaurantTable) []TableResponse {
	result := make([]TableResponse, 0, len(tables))
	for _, t := range tables {
		result = append(result, TableResponse{
			ID:           t.ID,
			RestaurantID: t.RestaurantID,
			Label:        fmt.Sprintf("Table %d", t.Number),
			Capacity:     t.Capacity,
			State:        t.Status,
		})
	}
	return result
}

// NewMenuItemResponses maps menu items.
func NewMenuItemResponses(items []domain.MenuItem) []MenuItemResponse {
	result := make([]MenuItemResponse, 0, len(items))
	for _, m := range items {
		result = append(result, MenuItemResponse{
			ID:           m.ID,
			RestaurantID: m.RestaurantID,
			Name:         m.Name,
			Description:  m.Description,
			Price:        m.Price,
			Available:    m.Available,
		})
	}
	return result
}
