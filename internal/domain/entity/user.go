package entity

import "time"

// Roles válidos para User.
const (
	RoleSuperAdmin = "SUPERADMIN"
	RoleVendor     = "VENDOR"
	RoleCustomer   = "CUSTOMER"
)

// ValidRole indica si el rol pertenece al conjunto cerrado de roles.
func ValidRole(role string) bool {
	switch role {
	case RoleSuperAdmin, RoleVendor, RoleCustomer:
		return true
	}
	return false
}

// User representa un usuario de la tienda. El login es por teléfono.
type User struct {
	ID           string
	Phone        string
	Name         string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // SUPERADMIN, VENDOR, CUSTOMER
	Status       bool   // false = cuenta deshabilitada
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
