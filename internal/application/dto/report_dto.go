package dto

import "github.com/shopspring/decimal"

// LowStockProductDTO producto bajo el umbral mínimo.
type LowStockProductDTO struct {
	ProductID    string `json:"product_id"`
	Name         string `json:"name"`
	Barcode      string `json:"barcode"`
	CurrentStock int    `json:"current_stock"`
	MinimumStock int    `json:"minimum_stock"`
	StockStatus  string `json:"stock_status"`
}

// TopProductDTO producto del top por ingresos.
type TopProductDTO struct {
	ProductID   string          `json:"product_id"`
	Name        string          `json:"name"`
	Barcode     string          `json:"barcode"`
	Quantity    int64           `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenue"`
	RevenueFC   string          `json:"revenue_fc,omitempty"`
}

// ReportDashboardResponse KPIs del día para el manager. Excluye ventas anuladas.
type ReportDashboardResponse struct {
	DailyTotal   decimal.Decimal      `json:"daily_total"`
	DailyTotalFC string               `json:"daily_total_fc,omitempty"`
	DailyCount   int                  `json:"daily_count"`
	LowStock     []LowStockProductDTO `json:"low_stock"`
	TopProducts  []TopProductDTO      `json:"top_products"`
}

// DailyTrendDTO punto del gráfico de tendencia diaria.
type DailyTrendDTO struct {
	Date  string          `json:"date"` // YYYY-MM-DD
	Total decimal.Decimal `json:"total"`
}

// SalesReportResponse reporte de ventas de un período. Excluye ventas anuladas.
type SalesReportResponse struct {
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalTransactions int             `json:"total_transactions"`
	AverageBasket     decimal.Decimal `json:"average_basket"`
	DailyTrend        []DailyTrendDTO `json:"daily_trend"`
}
