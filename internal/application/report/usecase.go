// Package report genera los reportes de ventas del manager. Todas las
// consultas de ingresos excluyen las ventas anuladas.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kmutombo/redpos-api/internal/application/dto"
	"github.com/kmutombo/redpos-api/internal/domain/repository"
	"github.com/kmutombo/redpos-api/pkg/currency"
)

const dashboardTopProducts = 10 // filas del widget de top productos

// UseCase reportes de negocio: KPIs del día y reporte por período.
type UseCase struct {
	reportRepo  repository.ReportRepository
	productRepo repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(reportRepo repository.ReportRepository, productRepo repository.ProductRepository) *UseCase {
	return &UseCase{reportRepo: reportRepo, productRepo: productRepo}
}

// GetDashboard KPIs del día para el manager.
//
// Tres consultas en paralelo:
//  1. GetRevenue(hoy)           → total y número de ventas del día
//  2. ListLowStock              → productos en o bajo el umbral mínimo
//  3. GetTopProducts(7 días)    → top 10 por ingresos de la semana
func (uc *UseCase) GetDashboard(ctx context.Context, shopID string) (*dto.ReportDashboardResponse, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)
	weekAgo := now.AddDate(0, 0, -7)

	type revenueResult struct {
		total decimal.Decimal
		count int
		err   error
	}
	type lowStockResult struct {
		rows []dto.LowStockProductDTO
		err  error
	}
	type topResult struct {
		rows []repository.TopProductResult
		err  error
	}

	revCh := make(chan revenueResult, 1)
	lowCh := make(chan lowStockResult, 1)
	topCh := make(chan topResult, 1)

	go func() {
		total, count, err := uc.reportRepo.GetRevenue(ctx, shopID, todayStart, todayEnd)
		revCh <- revenueResult{total, count, err}
	}()
	go func() {
		products, err := uc.productRepo.ListLowStock(shopID)
		if err != nil {
			lowCh <- lowStockResult{nil, err}
			return
		}
		rows := make([]dto.LowStockProductDTO, 0, len(products))
		for _, p := range products {
			rows = append(rows, dto.LowStockProductDTO{
				ProductID:    p.ID,
				Name:         p.Name,
				Barcode:      p.Barcode,
				CurrentStock: p.CurrentStock,
				MinimumStock: p.MinimumStock,
				StockStatus:  p.StockStatus(),
			})
		}
		lowCh <- lowStockResult{rows, nil}
	}()
	go func() {
		rows, err := uc.reportRepo.GetTopProducts(ctx, shopID, weekAgo, now, dashboardTopProducts)
		topCh <- topResult{rows, err}
	}()

	rev := <-revCh
	low := <-lowCh
	top := <-topCh

	if rev.err != nil {
		return nil, fmt.Errorf("dashboard: ventas del día: %w", rev.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", low.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top productos: %w", top.err)
	}

	resp := &dto.ReportDashboardResponse{
		DailyTotal:   rev.total.Round(2),
		DailyTotalFC: currency.FormatFC(rev.total),
		DailyCount:   rev.count,
		LowStock:     low.rows,
	}
	for _, t := range top.rows {
		resp.TopProducts = append(resp.TopProducts, dto.TopProductDTO{
			ProductID: t.ProductID,
			Name:      t.ProductName,
			Barcode:   t.Barcode,
			Quantity:  t.Quantity,
			Revenue:   t.Revenue,
			RevenueFC: currency.FormatFC(t.Revenue),
		})
	}
	return resp, nil
}

// GetSalesReport reporte de un período: ingresos, transacciones, panier medio
// y tendencia diaria.
func (uc *UseCase) GetSalesReport(ctx context.Context, shopID string, from, to time.Time) (*dto.SalesReportResponse, error) {
	if to.Before(from) {
		from, to = to, from
	}
	total, count, err := uc.reportRepo.GetRevenue(ctx, shopID, from, to)
	if err != nil {
		return nil, fmt.Errorf("reporte: ingresos: %w", err)
	}
	trend, err := uc.reportRepo.GetDailyTrend(ctx, shopID, from, to)
	if err != nil {
		return nil, fmt.Errorf("reporte: tendencia diaria: %w", err)
	}

	avgBasket := decimal.Zero
	if count > 0 {
		avgBasket = total.Div(decimal.NewFromInt(int64(count))).Round(2)
	}

	resp := &dto.SalesReportResponse{
		TotalRevenue:      total.Round(2),
		TotalTransactions: count,
		AverageBasket:     avgBasket,
	}
	for _, row := range trend {
		resp.DailyTrend = append(resp.DailyTrend, dto.DailyTrendDTO{
			Date:  row.Date.Format("2006-01-02"),
			Total: row.Total,
		})
	}
	return resp, nil
}
