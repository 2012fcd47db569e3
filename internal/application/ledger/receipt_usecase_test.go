package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kmutombo/redpos-api/internal/application/ledger"
)

// Los precios de venta incluyen la TVA: el ticket la extrae, no la añade.
func TestReceiptTotals_ExtraeTVAIncluida(t *testing.T) {
	ht, tva := ledger.ReceiptTotals(decimal.NewFromInt(11600), decimal.NewFromInt(16))

	assert.True(t, decimal.NewFromInt(10000).Equal(ht), "HT %s", ht)
	assert.True(t, decimal.NewFromInt(1600).Equal(tva), "TVA %s", tva)
	assert.True(t, ht.Add(tva).Equal(decimal.NewFromInt(11600)), "HT + TVA == TTC")
}

func TestReceiptTotals_TVACero(t *testing.T) {
	total := decimal.NewFromInt(500)
	ht, tva := ledger.ReceiptTotals(total, decimal.Zero)

	assert.True(t, ht.Equal(total))
	assert.True(t, tva.IsZero())
}

func TestReceiptTotals_TVAInvalidaNoDividePorCero(t *testing.T) {
	total := decimal.NewFromInt(500)
	ht, tva := ledger.ReceiptTotals(total, decimal.NewFromInt(-100))

	assert.True(t, ht.Equal(total))
	assert.True(t, tva.IsZero())
}
