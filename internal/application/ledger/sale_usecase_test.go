package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmutombo/redpos-api/internal/application/dto"
	"github.com/kmutombo/redpos-api/internal/application/ledger"
	"github.com/kmutombo/redpos-api/internal/domain"
	"github.com/kmutombo/redpos-api/internal/domain/entity"
	"github.com/kmutombo/redpos-api/internal/domain/repository"
)

const (
	shopID    = "shop-1"
	otherShop = "shop-2"
	cashierID = "cashier-1"
)

func newSaleFixture(products ...*entity.Product) (*ledger.SaleUseCase, *fakeSaleRepo, *fakeProductRepo) {
	productRepo := newFakeProductRepo(products...)
	saleRepo := newFakeSaleRepo()
	tx := &fakeTxRunner{sales: saleRepo, purchases: newFakePurchaseRepo(), products: productRepo}
	return ledger.NewSaleUseCase(tx, saleRepo, productRepo), saleRepo, productRepo
}

func producto(id, shop string, stock int, price int64) *entity.Product {
	return &entity.Product{
		ID:           id,
		ShopID:       shop,
		Name:         "Produit " + id,
		SellingPrice: decimal.NewFromInt(price),
		CurrentStock: stock,
		IsActive:     true,
	}
}

func TestCreateSale_DescuentaStockUnaVez(t *testing.T) {
	uc, _, products := newSaleFixture(
		producto("p1", shopID, 8, 10),
		producto("p2", shopID, 3, 5),
	)

	resp, err := uc.CreateSale(context.Background(), shopID, cashierID, dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	// 2 × 10 + 1 × 5 = 25, 3 artículos.
	assert.True(t, decimal.NewFromInt(25).Equal(resp.Total), "total %s", resp.Total)
	assert.Equal(t, 3, resp.ItemCount)
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, "Produit p1", resp.Items[0].ProductName)
	assert.NotEmpty(t, resp.TotalFC)

	assert.Equal(t, 6, products.stockOf("p1"))
	assert.Equal(t, 2, products.stockOf("p2"))
}

func TestCreateSale_StockInsuficiente_TodoONada(t *testing.T) {
	// La primera línea alcanza, la segunda no: nada debe quedar descontado.
	uc, sales, products := newSaleFixture(
		producto("p1", shopID, 8, 10),
		producto("p2", shopID, 1, 5),
	)

	_, err := uc.CreateSale(context.Background(), shopID, cashierID, dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 4},
		},
	})
	require.Error(t, err)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "p2", stockErr.ProductID)
	assert.Equal(t, 1, stockErr.Available)
	assert.Equal(t, 4, stockErr.Requested)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Rollback completo: ni stock descontado ni venta huérfana.
	assert.Equal(t, 8, products.stockOf("p1"))
	assert.Equal(t, 1, products.stockOf("p2"))
	assert.Empty(t, sales.sales)
	assert.Empty(t, sales.items)
}

func TestCreateSale_ProductoInactivo(t *testing.T) {
	inactivo := producto("p1", shopID, 10, 10)
	inactivo.IsActive = false
	uc, _, products := newSaleFixture(inactivo)

	_, err := uc.CreateSale(context.Background(), shopID, cashierID, dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 10, products.stockOf("p1"))
}

func TestCreateSale_ProductoDeOtraBoutique(t *testing.T) {
	uc, _, _ := newSaleFixture(producto("p1", otherShop, 10, 10))

	_, err := uc.CreateSale(context.Background(), shopID, cashierID, dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateSale_ValidacionDeEntrada(t *testing.T) {
	uc, _, _ := newSaleFixture(producto("p1", shopID, 10, 10))

	_, err := uc.CreateSale(context.Background(), shopID, cashierID, dto.CreateSaleRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin líneas")

	_, err = uc.CreateSale(context.Background(), shopID, cashierID, dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: "p1", Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	_, err = uc.CreateSale(context.Background(), shopID, cashierID, dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
		PaymentMethod: "BITCOIN",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "método de pago desconocido")
}

func TestCreateSale_MetodoDePagoPorDefecto(t *testing.T) {
	uc, _, _ := newSaleFixture(producto("p1", shopID, 10, 10))

	resp, err := uc.CreateSale(context.Background(), shopID, cashierID, dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentCash, resp.PaymentMethod)
}

func TestCancelSale_NoRestituyeStock(t *testing.T) {
	uc, _, products := newSaleFixture(producto("p1", shopID, 10, 10))

	resp, err := uc.CreateSale(context.Background(), shopID, cashierID, dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: "p1", Quantity: 4}},
	})
	require.NoError(t, err)
	require.Equal(t, 6, products.stockOf("p1"))

	require.NoError(t, uc.CancelSale(context.Background(), shopID, resp.ID))

	// La anulación es contable: el stock no vuelve a subir.
	assert.Equal(t, 6, products.stockOf("p1"))

	cancelled, err := uc.GetSale(context.Background(), shopID, resp.ID)
	require.NoError(t, err)
	assert.True(t, cancelled.IsCancelled)
}

func TestCancelSale_YaAnulada(t *testing.T) {
	uc, _, _ := newSaleFixture(producto("p1", shopID, 10, 10))

	resp, err := uc.CreateSale(context.Background(), shopID, cashierID, dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, uc.CancelSale(context.Background(), shopID, resp.ID))
	err = uc.CancelSale(context.Background(), shopID, resp.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCancelSale_VentaAjena(t *testing.T) {
	uc, _, _ := newSaleFixture(producto("p1", shopID, 10, 10))

	resp, err := uc.CreateSale(context.Background(), shopID, cashierID, dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.CancelSale(context.Background(), otherShop, resp.ID), domain.ErrForbidden)
	assert.True(t, errors.Is(uc.CancelSale(context.Background(), shopID, "nope"), domain.ErrNotFound))
}

func TestListSales_Totales(t *testing.T) {
	uc, _, _ := newSaleFixture(producto("p1", shopID, 100, 10))

	for i := 0; i < 3; i++ {
		_, err := uc.CreateSale(context.Background(), shopID, cashierID, dto.CreateSaleRequest{
			Items: []dto.SaleItemRequest{{ProductID: "p1", Quantity: 2}},
		})
		require.NoError(t, err)
	}

	resp, err := uc.ListSales(context.Background(), shopID, repository.SaleFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalSales)
	assert.True(t, decimal.NewFromInt(60).Equal(resp.TotalAmount))
}
