package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de stock derivados (etiquetas del dominio retail francófono).
const (
	StockStatusRupture = "Rupture" // stock = 0
	StockStatusFaible  = "Faible"  // stock <= mínimo
	StockStatusOK      = "OK"
)

// Product representa un producto en venta. CurrentStock nunca se muta fuera del
// ledger (líneas de venta/compra y la compensación del toggle de recepción).
// El código de barras EAN-13 es único por boutique y se autogenera si falta.
type Product struct {
	ID            string
	ShopID        string
	CategoryID    string
	Name          string
	Barcode       string          // EAN-13
	PurchasePrice decimal.Decimal // prix d'achat unitario, > 0
	SellingPrice  decimal.Decimal // prix de vente, > 0
	CurrentStock  int
	MinimumStock  int // umbral de alerta de reaprovisionamiento
	IsActive      bool
	Description   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProfitMargin margen bruto en porcentaje: (venta - compra) / compra * 100.
// Devuelve cero si el precio de compra no es positivo.
func (p *Product) ProfitMargin() decimal.Decimal {
	if !p.PurchasePrice.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}
	hundred := decimal.NewFromInt(100)
	return p.SellingPrice.Sub(p.PurchasePrice).Div(p.PurchasePrice).Mul(hundred)
}

// IsLowStock indica si el stock está en o por debajo del mínimo.
func (p *Product) IsLowStock() bool {
	return p.CurrentStock <= p.MinimumStock
}

// StockStatus estado derivado: Rupture (0), Faible (<= mínimo) u OK.
func (p *Product) StockStatus() string {
	if p.CurrentStock == 0 {
		return StockStatusRupture
	}
	if p.IsLowStock() {
		return StockStatusFaible
	}
	return StockStatusOK
}
