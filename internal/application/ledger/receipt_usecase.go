package ledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kmutombo/redpos-api/internal/domain"
	"github.com/kmutombo/redpos-api/internal/domain/entity"
	"github.com/kmutombo/redpos-api/internal/domain/repository"
)

// ReceiptLineForPDF línea de venta enriquecida con el nombre del producto.
type ReceiptLineForPDF struct {
	entity.SaleItem
	ProductName string
}

// ReceiptPDFGenerator genera el ticket de caisse en PDF.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(
		ctx context.Context,
		sale *entity.Sale,
		shop *entity.Shop,
		cashierName string,
		lines []ReceiptLineForPDF,
	) ([]byte, error)
}

// ReceiptUseCase arma los datos del ticket de una venta y delega el render al
// generador PDF.
type ReceiptUseCase struct {
	saleRepo    repository.SaleRepository
	shopRepo    repository.ShopRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	generator   ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso inyectando todas sus dependencias.
func NewReceiptUseCase(
	saleRepo repository.SaleRepository,
	shopRepo repository.ShopRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	generator ReceiptPDFGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		saleRepo:    saleRepo,
		shopRepo:    shopRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		generator:   generator,
	}
}

// DownloadReceiptPDF recupera venta, boutique y líneas, y genera el ticket.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la venta no existe.
//   - domain.ErrForbidden        si la venta no pertenece a la boutique del token.
func (uc *ReceiptUseCase) DownloadReceiptPDF(ctx context.Context, shopID, saleID string) (pdfBytes []byte, filename string, err error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("ticket: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}
	if sale.ShopID != shopID {
		return nil, "", domain.ErrForbidden
	}

	shop, err := uc.shopRepo.GetByID(shopID)
	if err != nil || shop == nil {
		return nil, "", fmt.Errorf("ticket: obtener boutique: %w", err)
	}

	cashierName := "Caissier"
	if cashier, cErr := uc.userRepo.GetByID(sale.CashierID); cErr == nil && cashier != nil {
		cashierName = cashier.Name
	}

	rawItems, err := uc.saleRepo.GetItems(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("ticket: obtener líneas: %w", err)
	}
	lines := make([]ReceiptLineForPDF, 0, len(rawItems))
	for _, it := range rawItems {
		name := "Produit " + it.ProductID // fallback
		if product, pErr := uc.productRepo.GetByID(it.ProductID); pErr == nil && product != nil {
			name = product.Name
		}
		lines = append(lines, ReceiptLineForPDF{SaleItem: *it, ProductName: name})
	}

	pdfBytes, err = uc.generator.GenerateReceiptPDF(ctx, sale, shop, cashierName, lines)
	if err != nil {
		return nil, "", fmt.Errorf("ticket: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("recu_%s.pdf", shortID(sale.ID))
	return pdfBytes, filename, nil
}

// shortID primeros 8 caracteres del uuid para el nombre de archivo y el número
// de ticket visible.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// ReceiptTotals desglosa el total en HT/TVA/TTC con la TVA de la boutique.
// El precio de venta ya incluye la TVA; se extrae para mostrarla en el ticket.
func ReceiptTotals(total, vatPercentage decimal.Decimal) (ht, tva decimal.Decimal) {
	hundred := decimal.NewFromInt(100)
	divisor := hundred.Add(vatPercentage)
	if !divisor.GreaterThan(decimal.Zero) {
		return total, decimal.Zero
	}
	ht = total.Mul(hundred).Div(divisor).Round(2)
	tva = total.Sub(ht)
	return ht, tva
}
