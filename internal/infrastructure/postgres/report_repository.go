package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kmutombo/redpos-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de agregación para reportes y predicción (read-only).
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// GetUnitsSoldSince unidades vendidas por producto desde la fecha dada.
// No filtra is_cancelled: el motor de predicción cuenta toda salida de caja,
// a diferencia de los reportes de ingresos.
func (r *ReportRepo) GetUnitsSoldSince(ctx context.Context, shopID string, since time.Time) ([]repository.UnitsSoldResult, error) {
	query := `
		SELECT si.product_id, COALESCE(SUM(si.quantity), 0)
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		WHERE s.shop_id = $1 AND s.sale_date >= $2
		GROUP BY si.product_id`
	rows, err := r.q.Query(ctx, query, shopID, since)
	if err != nil {
		return nil, fmt.Errorf("units sold: %w", err)
	}
	defer rows.Close()
	var list []repository.UnitsSoldResult
	for rows.Next() {
		var res repository.UnitsSoldResult
		if err := rows.Scan(&res.ProductID, &res.Units); err != nil {
			return nil, fmt.Errorf("scan units sold: %w", err)
		}
		list = append(list, res)
	}
	return list, rows.Err()
}

// GetRevenue ingresos y número de transacciones del período, sin ventas anuladas.
func (r *ReportRepo) GetRevenue(ctx context.Context, shopID string, from, to time.Time) (decimal.Decimal, int, error) {
	query := `
		SELECT COALESCE(SUM(total), 0), COUNT(*)
		FROM sales
		WHERE shop_id = $1 AND sale_date BETWEEN $2 AND $3 AND is_cancelled = FALSE`
	var total decimal.Decimal
	var count int
	if err := r.q.QueryRow(ctx, query, shopID, from, to).Scan(&total, &count); err != nil {
		return decimal.Zero, 0, fmt.Errorf("revenue: %w", err)
	}
	return total, count, nil
}

// GetTopProducts productos con mayor ingreso del período, sin ventas anuladas.
func (r *ReportRepo) GetTopProducts(ctx context.Context, shopID string, from, to time.Time, limit int) ([]repository.TopProductResult, error) {
	query := `
		SELECT si.product_id, p.name, p.barcode, SUM(si.quantity), SUM(si.subtotal)
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		JOIN products p ON p.id = si.product_id
		WHERE s.shop_id = $1 AND s.sale_date BETWEEN $2 AND $3 AND s.is_cancelled = FALSE
		GROUP BY si.product_id, p.name, p.barcode
		ORDER BY SUM(si.subtotal) DESC
		LIMIT $4`
	rows, err := r.q.Query(ctx, query, shopID, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()
	var list []repository.TopProductResult
	for rows.Next() {
		var res repository.TopProductResult
		if err := rows.Scan(&res.ProductID, &res.ProductName, &res.Barcode, &res.Quantity, &res.Revenue); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		list = append(list, res)
	}
	return list, rows.Err()
}

// GetDailyTrend totales por día del período, sin ventas anuladas. Los días sin
// ventas no devuelven fila.
func (r *ReportRepo) GetDailyTrend(ctx context.Context, shopID string, from, to time.Time) ([]repository.DailyTrendRow, error) {
	query := `
		SELECT date_trunc('day', sale_date) AS day, COALESCE(SUM(total), 0)
		FROM sales
		WHERE shop_id = $1 AND sale_date BETWEEN $2 AND $3 AND is_cancelled = FALSE
		GROUP BY day
		ORDER BY day`
	rows, err := r.q.Query(ctx, query, shopID, from, to)
	if err != nil {
		return nil, fmt.Errorf("daily trend: %w", err)
	}
	defer rows.Close()
	var list []repository.DailyTrendRow
	for rows.Next() {
		var row repository.DailyTrendRow
		if err := rows.Scan(&row.Date, &row.Total); err != nil {
			return nil, fmt.Errorf("scan daily trend: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
