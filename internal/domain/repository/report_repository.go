package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// UnitsSoldResult unidades vendidas de un producto en una ventana de análisis.
// Alimenta el motor de predicción; NO excluye ventas anuladas: toda salida de
// mercancía cuenta, a diferencia de los reportes de ingresos.
type UnitsSoldResult struct {
	ProductID string
	Units     int64
}

// TopProductResult fila del top de productos por ingresos.
type TopProductResult struct {
	ProductID   string
	ProductName string
	Barcode     string
	Quantity    int64
	Revenue     decimal.Decimal
}

// DailyTrendRow total de ventas de un día (para el gráfico del reporte).
type DailyTrendRow struct {
	Date  time.Time
	Total decimal.Decimal
}

// ReportRepository consultas de lectura para reportes y predicción.
// Las implementaciones son read-only.
type ReportRepository interface {
	// GetUnitsSoldSince suma cantidades de líneas de venta por producto desde
	// la fecha dada. Incluye ventas anuladas (ver nota en UnitsSoldResult).
	GetUnitsSoldSince(ctx context.Context, shopID string, since time.Time) ([]UnitsSoldResult, error)

	// GetRevenue ingresos y número de transacciones del período, excluyendo
	// ventas anuladas. COALESCE a cero si no hay ventas.
	GetRevenue(ctx context.Context, shopID string, from, to time.Time) (total decimal.Decimal, count int, err error)

	// GetTopProducts productos con mayor ingreso del período, excluyendo
	// ventas anuladas.
	GetTopProducts(ctx context.Context, shopID string, from, to time.Time, limit int) ([]TopProductResult, error)

	// GetDailyTrend totales por día del período, excluyendo ventas anuladas.
	GetDailyTrend(ctx context.Context, shopID string, from, to time.Time) ([]DailyTrendRow, error)
}
