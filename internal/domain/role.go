package domain

// RoleKind enumerates the capabilities a user can hold. Customer, admin and
// the staff-derived kinds are independent axes; one user may hold several.
type RoleKind string

const (
	RoleCustomer RoleKind = "customer"
	RoleAdmin    RoleKind = "admin"
	RoleStaff    RoleKind = "staff"
	RoleManager  RoleKind = "manager"
	RoleDriver   RoleKind = "driver"
)

// RoleGrant is a derived capability, resolved fresh per request and never
// stored. StaffID/RestaurantID are set only for staff-derived kinds.
type RoleGrant struct {
	Kind         RoleKind
	RoleID       string
	StaffID      string
	RestaurantID string
	StaffTitle   string
}

// GrantSet is the full set of grants a user currently holds.
type GrantSet []RoleGrant

// Has reports whether the set contains a grant of the given kind.
func (g GrantSet) Has(kind RoleKind) bool {
	_, ok := g.Find(kind)
	return ok
}

// Find returns the first grant of the given kind.
func (g GrantSet) Find(kind RoleKind) (RoleGrant, bool) {
	for _, grant := range g {
		if grant.Kind == kind {
			return grant, true
		}
	}
	return RoleGrant{}, false
}

// Kinds lists the held kinds, in resolution order.
func (g GrantSet) Kinds() []RoleKind {
	kinds := make([]RoleKind, 0, len(g))
	for _, grant := range g {
		kinds = append(kinds, grant.Kind)
	}
	return kinds
}
