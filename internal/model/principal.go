package model

import "github.com/google/uuid"

type Role string

const (
	RoleTenant   Role = "TENANT"
	RoleLandlord Role = "LANDLORD"
)

// Principal is the authenticated identity attached to a request by the
// auth middleware.
type Principal struct {
	ID   uuid.UUID
	Role Role
}

func (p Principal) IsTenant() bool   { return p.Role == RoleTenant }
func (p Principal) IsLandlord() bool { return p.Role == RoleLandlord }
