package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados en caja.
const (
	PaymentCash   = "CASH"
	PaymentCard   = "CARD"
	PaymentCheck  = "CHECK"
	PaymentMobile = "MOBILE"
	PaymentOther  = "OTHER"
)

// ValidPaymentMethod indica si el método de pago es uno de los aceptados.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentCheck, PaymentMobile, PaymentOther:
		return true
	}
	return false
}

// Sale representa una venta efectuada en caja. Total es derivado: siempre la
// suma de los subtotales de sus líneas, nunca lo fija el caller.
type Sale struct {
	ID            string
	ShopID        string
	CashierID     string
	SaleDate      time.Time
	PaymentMethod string
	Total         decimal.Decimal
	Notes         string
	IsCancelled   bool
}

// SaleItem línea de venta. UnitPrice es un snapshot del precio de venta en el
// momento de la transacción, no el precio vivo del producto.
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  int // >= 1
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal // Quantity * UnitPrice
}

// ComputeTotal suma los subtotales de las líneas.
func ComputeTotal(items []*SaleItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal)
	}
	return total
}

// ItemCount número total de artículos vendidos (suma de cantidades).
func ItemCount(items []*SaleItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}
