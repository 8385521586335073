package models

const (
	RoleAdmin  = "admin"
	RoleTenant = "tenant"
)

type SessionUser struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       string `json:"role"` // admin, tenant
	RoomNumber int    `json:"roomNumber,omitempty"`
}
