package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kmutombo/redpos-api/internal/domain/entity"
)

func TestProfitMargin(t *testing.T) {
	p := &entity.Product{
		PurchasePrice: decimal.NewFromInt(100),
		SellingPrice:  decimal.NewFromInt(150),
	}
	assert.True(t, decimal.NewFromInt(50).Equal(p.ProfitMargin()), "margen 50%%")

	// Precio de compra no positivo: margen cero, nunca división por cero.
	p.PurchasePrice = decimal.Zero
	assert.True(t, p.ProfitMargin().IsZero())
}

func TestStockStatus(t *testing.T) {
	p := &entity.Product{MinimumStock: 5}

	p.CurrentStock = 0
	assert.Equal(t, entity.StockStatusRupture, p.StockStatus())

	p.CurrentStock = 5
	assert.Equal(t, entity.StockStatusFaible, p.StockStatus(), "en el umbral cuenta como Faible")
	assert.True(t, p.IsLowStock())

	p.CurrentStock = 6
	assert.Equal(t, entity.StockStatusOK, p.StockStatus())
	assert.False(t, p.IsLowStock())
}
