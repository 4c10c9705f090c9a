// Package entity contains the core business objects of the marketplace.
package entity

// Role is the marketplace role carried on a profile.
type Role string

const (
	// RoleConsumer buys and browses but never posts listings.
	RoleConsumer Role = "consumer"
	// RoleBackyardGrower is a hobby grower selling surplus.
	RoleBackyardGrower Role = "backyard_grower"
	// RoleMarketGardener sells at small scale, typically at markets.
	RoleMarketGardener Role = "market_gardener"
	// RoleProductionFarmer runs a commercial operation.
	RoleProductionFarmer Role = "production_farmer"
)

// AllRoles lists every role in display order.
var AllRoles = []Role{RoleConsumer, RoleBackyardGrower, RoleMarketGardener, RoleProductionFarmer}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleConsumer, RoleBackyardGrower, RoleMarketGardener, RoleProductionFarmer:
		return true
	default:
		return false
	}
}

// IsFarmer reports whether the role grants access to farmers-only listings
// and to listing creation. Unknown roles are never farmers.
func (r Role) IsFarmer() bool {
	switch r {
	case RoleBackyardGrower, RoleMarketGardener, RoleProductionFarmer:
		return true
	case RoleConsumer:
		return false
	default:
		return false
	}
}

// FarmerRoles lists the roles for which IsFarmer holds, in display order.
func FarmerRoles() []Role {
	roles := make([]Role, 0, len(AllRoles))
	for _, role := range AllRoles {
		if role.IsFarmer() {
			roles = append(roles, role)
		}
	}

	return roles
}

// ParseRole converts a raw string into a Role, defaulting to consumer for
// empty or unknown input.
func ParseRole(s string) Role {
	role := Role(s)
	if !role.IsValid() {
		return RoleConsumer
	}

	return role
}
