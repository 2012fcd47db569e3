package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItemRequest línea de compra con precio negociado con el proveedor.
type PurchaseItemRequest struct {
	ProductID     string          `json:"product_id"`
	Quantity      int             `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
}

// CreatePurchaseRequest body de POST /api/purchases.
type CreatePurchaseRequest struct {
	Supplier      string                `json:"supplier"`
	InvoiceNumber string                `json:"invoice_number,omitempty"`
	Notes         string                `json:"notes,omitempty"`
	IsReceived    bool                  `json:"is_received"`
	Items         []PurchaseItemRequest `json:"items"`
}

// PurchaseItemResponse línea de compra persistida.
type PurchaseItemResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name,omitempty"`
	Quantity      int             `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

// PurchaseResponse compra con sus líneas.
type PurchaseResponse struct {
	ID            string                 `json:"id"`
	PurchaseDate  time.Time              `json:"purchase_date"`
	Supplier      string                 `json:"supplier"`
	InvoiceNumber string                 `json:"invoice_number,omitempty"`
	Total         decimal.Decimal        `json:"total"`
	IsReceived    bool                   `json:"is_received"`
	Items         []PurchaseItemResponse `json:"items,omitempty"`
}

// PurchaseListResponse listado con estadísticas.
type PurchaseListResponse struct {
	Purchases     []PurchaseResponse `json:"purchases"`
	TotalCount    int                `json:"total_count"`
	ReceivedCount int                `json:"received_count"`
	PendingCount  int                `json:"pending_count"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
}
