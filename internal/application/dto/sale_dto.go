package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea del panier: producto + cantidad. El precio unitario se
// toma del precio de venta vigente del producto (snapshot), no del cliente.
type SaleItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateSaleRequest body de POST /api/sales (validación de venta en caja).
type CreateSaleRequest struct {
	Items         []SaleItemRequest `json:"items"`
	PaymentMethod string            `json:"payment_method"`
	Notes         string            `json:"notes,omitempty"`
}

// SaleItemResponse línea de venta persistida.
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse venta con sus líneas.
type SaleResponse struct {
	ID            string             `json:"id"`
	SaleDate      time.Time          `json:"sale_date"`
	CashierID     string             `json:"cashier_id"`
	PaymentMethod string             `json:"payment_method"`
	Total         decimal.Decimal    `json:"total"`
	TotalFC       string             `json:"total_fc,omitempty"` // formateado en FC
	IsCancelled   bool               `json:"is_cancelled"`
	ItemCount     int                `json:"item_count"`
	Items         []SaleItemResponse `json:"items,omitempty"`
}

// SaleListResponse historial con totales agregados.
type SaleListResponse struct {
	Sales       []SaleResponse  `json:"sales"`
	TotalSales  int             `json:"total_sales"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}
