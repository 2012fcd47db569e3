package forecast_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmutombo/redpos-api/internal/application/forecast"
	"github.com/kmutombo/redpos-api/internal/domain/entity"
	domforecast "github.com/kmutombo/redpos-api/internal/domain/forecast"
	"github.com/kmutombo/redpos-api/internal/domain/repository"
)

const shopID = "shop-1"

type stubProductRepo struct {
	products []*entity.Product
}

func (r *stubProductRepo) Create(*entity.Product) error                  { return nil }
func (r *stubProductRepo) GetByID(string) (*entity.Product, error)       { return nil, nil }
func (r *stubProductRepo) GetForUpdate(string) (*entity.Product, error)  { return nil, nil }
func (r *stubProductRepo) Update(*entity.Product) error                  { return nil }
func (r *stubProductRepo) UpdateStock(string, int) error                 { return nil }
func (r *stubProductRepo) Delete(string) error                           { return nil }
func (r *stubProductRepo) ListLowStock(string) ([]*entity.Product, error) { return nil, nil }
func (r *stubProductRepo) Search(string, string, int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *stubProductRepo) GetByShopAndBarcode(string, string) (*entity.Product, error) {
	return nil, nil
}

func (r *stubProductRepo) ListByShop(shop string, onlyActive bool, limit, offset int) ([]*entity.Product, error) {
	return r.products, nil
}

type stubReportRepo struct {
	unitsSold []repository.UnitsSoldResult
}

func (r *stubReportRepo) GetUnitsSoldSince(ctx context.Context, shop string, since time.Time) ([]repository.UnitsSoldResult, error) {
	return r.unitsSold, nil
}

func (r *stubReportRepo) GetRevenue(ctx context.Context, shop string, from, to time.Time) (decimal.Decimal, int, error) {
	return decimal.Zero, 0, nil
}

func (r *stubReportRepo) GetTopProducts(ctx context.Context, shop string, from, to time.Time, limit int) ([]repository.TopProductResult, error) {
	return nil, nil
}

func (r *stubReportRepo) GetDailyTrend(ctx context.Context, shop string, from, to time.Time) ([]repository.DailyTrendRow, error) {
	return nil, nil
}

func activeProduct(id string, stock int) *entity.Product {
	return &entity.Product{ID: id, ShopID: shopID, Name: "Produit " + id, CurrentStock: stock, IsActive: true}
}

func TestGetDashboard_OrdenPorUrgencia(t *testing.T) {
	products := &stubProductRepo{products: []*entity.Product{
		activeProduct("lento", 100),  // 30 vendidas → 100 días
		activeProduct("urgente", 2),  // 60 vendidas → 1 día
		activeProduct("medio", 20),   // 60 vendidas → 10 días
	}}
	reports := &stubReportRepo{unitsSold: []repository.UnitsSoldResult{
		{ProductID: "lento", Units: 30},
		{ProductID: "urgente", Units: 60},
		{ProductID: "medio", Units: 60},
	}}

	uc := forecast.NewDashboardUseCase(products, reports)
	resp, err := uc.GetDashboard(context.Background(), shopID, 30)
	require.NoError(t, err)
	require.Len(t, resp.Products, 3)

	assert.Equal(t, "urgente", resp.Products[0].ProductID)
	assert.Equal(t, "medio", resp.Products[1].ProductID)
	assert.Equal(t, "lento", resp.Products[2].ProductID)

	assert.Equal(t, domforecast.RiskCritical, resp.Products[0].RiskLevel)
	assert.InDelta(t, 2.0, resp.Products[0].Velocity, 1e-9)
	assert.Equal(t, 30, resp.WindowDays)
}

// Sin ventas y stock sano: el producto no hace ruido en el dashboard. Con stock
// bajo sí aparece, al final de la lista.
func TestGetDashboard_SupresionDeDormidos(t *testing.T) {
	products := &stubProductRepo{products: []*entity.Product{
		activeProduct("dormido-sano", 50),
		activeProduct("dormido-bajo", 3),
		activeProduct("activo", 10),
	}}
	reports := &stubReportRepo{unitsSold: []repository.UnitsSoldResult{
		{ProductID: "activo", Units: 30},
	}}

	uc := forecast.NewDashboardUseCase(products, reports)
	resp, err := uc.GetDashboard(context.Background(), shopID, 30)
	require.NoError(t, err)
	require.Len(t, resp.Products, 2)

	assert.Equal(t, "activo", resp.Products[0].ProductID)
	assert.Equal(t, "dormido-bajo", resp.Products[1].ProductID, "sin rupture previsible ordena último")
	assert.True(t, resp.Products[1].Unbounded)
	assert.Nil(t, resp.Products[1].StockoutDate)
}

func TestGetDashboard_VentanaPorDefecto(t *testing.T) {
	products := &stubProductRepo{products: []*entity.Product{activeProduct("p", 10)}}
	reports := &stubReportRepo{unitsSold: []repository.UnitsSoldResult{{ProductID: "p", Units: 30}}}

	uc := forecast.NewDashboardUseCase(products, reports)
	resp, err := uc.GetDashboard(context.Background(), shopID, 0)
	require.NoError(t, err)
	assert.Equal(t, domforecast.DefaultWindowDays, resp.WindowDays)
}
