package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase representa un achat de mercancía a un proveedor. El stock solo se
// incrementa cuando IsReceived es verdadero: al crear las líneas si ya venía
// marcado, o vía el toggle de recepción después.
type Purchase struct {
	ID            string
	ShopID        string
	PurchaseDate  time.Time
	Supplier      string
	InvoiceNumber string
	Total         decimal.Decimal
	Notes         string
	CreatedBy     string
	IsReceived    bool
}

// PurchaseItem línea de compra. PurchasePrice es el precio en el momento del
// pedido, independiente del precio de compra actual del producto.
type PurchaseItem struct {
	ID            string
	PurchaseID    string
	ProductID     string
	Quantity      int // >= 1
	PurchasePrice decimal.Decimal
	Subtotal      decimal.Decimal // Quantity * PurchasePrice
}

// ComputePurchaseTotal suma los subtotales de las líneas de compra.
func ComputePurchaseTotal(items []*PurchaseItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal)
	}
	return total
}
