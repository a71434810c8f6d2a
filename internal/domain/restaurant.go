package domain

// Restaurant is catalog data, read-only from this service's perspective.
type Restaurant struct {
	ID            string
	Name          string
	Status        string
	Location      string
	ContactNumber string
	Address       string
}

// RestaurantTable is a seating row exposed through the catalog read.
type RestaurantTable struct {
	ID           string
	RestaurantID string
	Number       int
	Capacity     int
	Status       string
}

// MenuItem is a sellable item on a restaurant's menu.
type MenuItem struct {
	ID           string
	RestaurantID string
	Name         string
	Description  string
	Price        float64
	Available    bool
}
