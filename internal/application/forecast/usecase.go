// Package forecast expone el dashboard de predicción de stock para el manager.
package forecast

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/kmutombo/redpos-api/internal/application/dto"
	domforecast "github.com/kmutombo/redpos-api/internal/domain/forecast"
	"github.com/kmutombo/redpos-api/internal/domain/repository"
)

// listAllProducts tope de productos activos analizados por boutique.
const listAllProducts = 10000

// dormantStockThreshold los productos sin ventas recientes solo aparecen en el
// dashboard si su stock cae por debajo de este umbral (reducción de ruido).
const dormantStockThreshold = 5

// DashboardUseCase calcula las métricas predictivas de todos los productos
// activos de una boutique y arma el listado ordenado por urgencia.
type DashboardUseCase struct {
	productRepo repository.ProductRepository
	reportRepo  repository.ReportRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(productRepo repository.ProductRepository, reportRepo repository.ReportRepository) *DashboardUseCase {
	return &DashboardUseCase{productRepo: productRepo, reportRepo: reportRepo}
}

// GetDashboard analiza cada producto activo sobre la ventana dada (30 días por
// defecto) y devuelve las filas filtradas y ordenadas:
//
//   - se suprimen los productos sin actividad y con stock sano
//     (velocity = 0 y stock >= 5);
//   - orden ascendente por días restantes, con los "sin rupture previsible"
//     siempre al final.
//
// La suma de unidades vendidas incluye ventas anuladas: una venta anulada
// también sacó mercancía de la estantería, así que cuenta como salida para la
// predicción aunque los reportes de ingresos la excluyan.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context, shopID string, windowDays int) (*dto.ForecastDashboardResponse, error) {
	if windowDays <= 0 {
		windowDays = domforecast.DefaultWindowDays
	}
	now := time.Now()
	since := now.AddDate(0, 0, -windowDays)

	soldRows, err := uc.reportRepo.GetUnitsSoldSince(ctx, shopID, since)
	if err != nil {
		return nil, err
	}
	soldByProduct := make(map[string]int64, len(soldRows))
	for _, row := range soldRows {
		soldByProduct[row.ProductID] = row.Units
	}

	products, err := uc.productRepo.ListByShop(shopID, true, listAllProducts, 0)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.ProductForecastDTO, 0, len(products))
	for _, p := range products {
		a := domforecast.Analyze(p.CurrentStock, soldByProduct[p.ID], windowDays, now)
		if a.Velocity <= 0 && p.CurrentStock >= dormantStockThreshold {
			continue
		}
		rows = append(rows, dto.ProductForecastDTO{
			ProductID:      p.ID,
			ProductName:    p.Name,
			Barcode:        p.Barcode,
			CurrentStock:   a.CurrentStock,
			Velocity:       round2(a.Velocity),
			DaysLeft:       round1(a.DaysLeft),
			Unbounded:      a.Unbounded,
			StockoutDate:   a.StockoutDate,
			RiskLevel:      a.RiskLevel,
			Recommendation: a.Recommendation,
			ReorderQty:     a.ReorderQty,
		})
	}

	// Urgencia creciente; el centinela de "sin rupture" ordena último pase lo
	// que pase con su codificación numérica.
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Unbounded != rows[j].Unbounded {
			return !rows[i].Unbounded
		}
		return rows[i].DaysLeft < rows[j].DaysLeft
	})

	return &dto.ForecastDashboardResponse{WindowDays: windowDays, Products: rows}, nil
}

func round2(f float64) float64 { return math.Round(f*100) / 100 }
func round1(f float64) float64 { return math.Round(f*10) / 10 }
