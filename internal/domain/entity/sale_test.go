package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kmutombo/redpos-api/internal/domain/entity"
)

func TestComputeTotalYItemCount(t *testing.T) {
	// 2 × 10 + 1 × 5 = 25, con 3 artículos.
	items := []*entity.SaleItem{
		{Quantity: 2, Subtotal: decimal.NewFromInt(20)},
		{Quantity: 1, Subtotal: decimal.NewFromInt(5)},
	}
	assert.True(t, decimal.NewFromInt(25).Equal(entity.ComputeTotal(items)))
	assert.Equal(t, 3, entity.ItemCount(items))

	assert.True(t, entity.ComputeTotal(nil).IsZero())
	assert.Zero(t, entity.ItemCount(nil))
}

func TestValidPaymentMethod(t *testing.T) {
	for _, m := range []string{entity.PaymentCash, entity.PaymentCard, entity.PaymentCheck, entity.PaymentMobile, entity.PaymentOther} {
		assert.True(t, entity.ValidPaymentMethod(m), m)
	}
	assert.False(t, entity.ValidPaymentMethod("BITCOIN"))
	assert.False(t, entity.ValidPaymentMethod(""))
	assert.False(t, entity.ValidPaymentMethod("cash"), "sensible a mayúsculas")
}
