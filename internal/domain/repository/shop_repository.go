package repository

import "github.com/kmutombo/redpos-api/internal/domain/entity"

// ShopRepository define el puerto de persistencia para Shop (tenant).
type ShopRepository interface {
	Create(shop *entity.Shop) error
	GetByID(id string) (*entity.Shop, error)
	Update(shop *entity.Shop) error
}
