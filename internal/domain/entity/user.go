package entity

import "time"

// Roles válidos para User.
const (
	RoleManager = "manager"
	RoleCashier = "cashier"
)

// User representa un usuario del sistema (pertenece a una Shop).
type User struct {
	ID           string
	ShopID       string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // manager, cashier
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CashierInvitation invitación emitida por un manager para que un nuevo usuario
// se una a su boutique como caissier. El token es el propio ID (uuid).
type CashierInvitation struct {
	ID        string // token
	ShopID    string
	CreatedBy string // UserID del manager
	UsedBy    string // UserID que consumió la invitación; vacío si no usada
	IsUsed    bool
	CreatedAt time.Time
}
