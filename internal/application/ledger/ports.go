// Package ledger implementa el libro de stock: toda mutación de
// Product.CurrentStock pasa por aquí, dentro de una transacción y con bloqueo
// de fila, de modo que stock y totales nunca diverjan de las líneas de venta y
// compra confirmadas.
package ledger

import (
	"context"

	"github.com/kmutombo/redpos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el ledger: un fallo
// en cualquier punto revierte todas las escrituras de líneas, totales y stock.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		purchaseRepo repository.PurchaseRepository,
		productRepo repository.ProductRepository,
	) error) error
}
