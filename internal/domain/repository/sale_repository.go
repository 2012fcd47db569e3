package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kmutombo/redpos-api/internal/domain/entity"
)

// SaleFilter filtros del historial de ventas. Los campos vacíos no filtran.
type SaleFilter struct {
	From          *time.Time
	To            *time.Time
	CashierID     string
	PaymentMethod string
	Limit         int
	Offset        int
}

// SaleRepository define el puerto de persistencia para Sale y sus líneas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	GetItems(saleID string) ([]*entity.SaleItem, error)
	UpdateTotal(saleID string, total decimal.Decimal) error
	SetCancelled(saleID string, cancelled bool) error
	ListByShop(shopID string, filter SaleFilter) ([]*entity.Sale, error)
}
