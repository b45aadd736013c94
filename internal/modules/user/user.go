package user

import (
	"time"

	"github.com/google/uuid"
)

// Role is the mutually exclusive capability level of an account.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleMerchant Role = "merchant"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleMerchant, RoleAdmin:
		return true
	}
	return false
}

// roleTransitions defines the permitted role state machine. Admin is assigned
// operationally, never through the vendor lifecycle.
var roleTransitions = map[Role][]Role{
	RoleCustomer: {RoleMerchant},
	RoleMerchant: {RoleCustomer},
	RoleAdmin:    {},
}

// CanTransition reports whether the role state machine allows from -> to.
func CanTransition(from, to Role) bool {
	for _, r := range roleTransitions[from] {
		if r == to {
			return true
		}
	}
	return false
}

// User represents an account in the system.
// @Description Account information
// @Description with id, name, email, role, created_at, and updated_at
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
