package repository

import (
	"github.com/shopspring/decimal"

	"github.com/kmutombo/redpos-api/internal/domain/entity"
)

// PurchaseStats contadores para el listado de achats.
type PurchaseStats struct {
	Total       int
	Received    int
	Pending     int
	TotalAmount decimal.Decimal
}

// PurchaseRepository define el puerto de persistencia para Purchase y sus líneas.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	CreateItem(item *entity.PurchaseItem) error
	GetByID(id string) (*entity.Purchase, error)
	GetItems(purchaseID string) ([]*entity.PurchaseItem, error)
	UpdateTotal(purchaseID string, total decimal.Decimal) error
	SetReceived(purchaseID string, received bool) error
	ListByShop(shopID string, limit, offset int) ([]*entity.Purchase, error)
	Stats(shopID string) (*PurchaseStats, error)
}
