package domain

import (
	"time"

	"github.com/google/uuid"
)

// Employee roles.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Employee owns work records. An admin may mutate any employee's records but
// never owns them.
type Employee struct {
	ID        string
	Name      string
	Role      string
	CreatedAt time.Time
}

// NewEmployee creates an employee with a fresh identifier.
func NewEmployee(name, role string) *Employee {
	return &Employee{
		ID:        uuid.NewString(),
		Name:      name,
		Role:      role,
		CreatedAt: time.Now(),
	}
}

// IsAdmin reports whether the employee has the admin role.
func (e *Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}

// IsValidRole reports whether role is one of the known roles.
func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleMember
}
