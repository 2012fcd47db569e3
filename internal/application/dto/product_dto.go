package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body de POST /api/products.
// Barcode vacío genera un EAN-13 único automáticamente.
type CreateProductRequest struct {
	Name          string          `json:"name"`
	Barcode       string          `json:"barcode,omitempty"`
	CategoryID    string          `json:"category_id"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	CurrentStock  int             `json:"current_stock,omitempty"`
	MinimumStock  int             `json:"minimum_stock,omitempty"`
	Description   string          `json:"description,omitempty"`
}

// UpdateProductRequest body de PUT /api/products/:id. Campos nil no se tocan.
// CurrentStock no figura a propósito: el stock solo lo mueve el ledger.
type UpdateProductRequest struct {
	Name          *string          `json:"name,omitempty"`
	CategoryID    *string          `json:"category_id,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	SellingPrice  *decimal.Decimal `json:"selling_price,omitempty"`
	MinimumStock  *int             `json:"minimum_stock,omitempty"`
	IsActive      *bool            `json:"is_active,omitempty"`
	Description   *string          `json:"description,omitempty"`
}

// ProductResponse producto con sus campos derivados.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Barcode       string          `json:"barcode"`
	CategoryID    string          `json:"category_id"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	CurrentStock  int             `json:"current_stock"`
	MinimumStock  int             `json:"minimum_stock"`
	IsActive      bool            `json:"is_active"`
	ProfitMargin  decimal.Decimal `json:"profit_margin"`
	StockStatus   string          `json:"stock_status"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
