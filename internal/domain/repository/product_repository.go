package repository

import "github.com/kmutombo/redpos-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// CurrentStock solo se modifica vía UpdateStock dentro de una transacción del
// ledger, tras un GetForUpdate que bloquea la fila.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByShopAndBarcode(shopID, barcode string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListByShop(shopID string, onlyActive bool, limit, offset int) ([]*entity.Product, error)
	ListLowStock(shopID string) ([]*entity.Product, error)
	Search(shopID, query string, limit int) ([]*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Product, error)
	// UpdateStock fija el stock absoluto; usar solo tras GetForUpdate.
	UpdateStock(productID string, stock int) error
	Delete(id string) error
}
