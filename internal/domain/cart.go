package domain

import "time"

// CartItem is an ephemeral customer selection. It exists only until the cart
// is checked out into an order or the item is removed; a cart has no identity
// beyond "all cart items for this customer".
type CartItem struct {
	ID         string
	CustomerID string
	MenuItemID string
	Name       string
	UnitPrice  float64
	Quantity   int
	CreatedAt  time.Time
}
