package dto

import "time"

// ProductForecastDTO fila del dashboard de predicción de stock ("le Cerveau").
// DaysLeft usa el centinela 999 cuando Unbounded es true; el orden del listado
// ya viene resuelto por el use case (ascendente, sin rupture previsible al final).
type ProductForecastDTO struct {
	ProductID      string     `json:"product_id"`
	ProductName    string     `json:"product_name"`
	Barcode        string     `json:"barcode"`
	CurrentStock   int        `json:"current_stock"`
	Velocity       float64    `json:"velocity"`  // unidades/día, redondeado a 2 decimales
	DaysLeft       float64    `json:"days_left"` // redondeado a 1 decimal
	Unbounded      bool       `json:"unbounded"`
	StockoutDate   *time.Time `json:"stockout_date,omitempty"`
	RiskLevel      string     `json:"risk_level"`
	Recommendation string     `json:"recommendation"`
	ReorderQty     int        `json:"reorder_qty,omitempty"`
}

// ForecastDashboardResponse respuesta de GET /api/forecast/dashboard.
type ForecastDashboardResponse struct {
	WindowDays int                  `json:"window_days"`
	Products   []ProductForecastDTO `json:"products"`
}
