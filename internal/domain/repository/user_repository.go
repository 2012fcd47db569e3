package repository

import "github.com/kmutombo/redpos-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	ListByShop(shopID string) ([]*entity.User, error)
}

// InvitationRepository persiste invitaciones de caissier.
type InvitationRepository interface {
	Create(inv *entity.CashierInvitation) error
	GetByID(id string) (*entity.CashierInvitation, error)
	MarkUsed(id, usedBy string) error
	ListByShop(shopID string) ([]*entity.CashierInvitation, error)
}
