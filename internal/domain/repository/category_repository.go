package repository

import "github.com/kmutombo/redpos-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByShopAndName(shopID, name string) (*entity.Category, error)
	Update(category *entity.Category) error
	ListByShop(shopID string) ([]*entity.Category, error)
	Delete(id string) error
}
