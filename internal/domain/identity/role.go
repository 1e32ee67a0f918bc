package identity

import (
	"strings"

	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleProvider, RoleAdmin:
		return true
	}
	return false
}

func ParseRole(raw string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(raw)))
	if !r.Valid() {
		return "", httperr.ErrInvalidInput("invalid_role", "Role must be customer, provider or admin.")
	}
	return r, nil
}

// Principal is the authenticated caller as resolved by the auth middleware.
type Principal struct {
	ID   uint
	Role Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
