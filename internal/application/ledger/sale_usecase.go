package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kmutombo/redpos-api/internal/application/dto"
	"github.com/kmutombo/redpos-api/internal/domain"
	"github.com/kmutombo/redpos-api/internal/domain/entity"
	"github.com/kmutombo/redpos-api/internal/domain/repository"
	"github.com/kmutombo/redpos-api/pkg/currency"
)

// SaleUseCase valida y registra ventas de caja de forma transaccional:
// bloqueo de fila por producto (SELECT FOR UPDATE), verificación de stock y
// descuento exactamente una vez por línea, todo o nada.
type SaleUseCase struct {
	txRunner    TxRunner
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(txRunner TxRunner, saleRepo repository.SaleRepository, productRepo repository.ProductRepository) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, saleRepo: saleRepo, productRepo: productRepo}
}

// CreateSale crea la venta con todas sus líneas en una sola transacción.
//
// Por cada línea: bloquea la fila del producto, verifica stock disponible y lo
// descuenta. El precio unitario es el precio de venta vigente en ese instante
// (snapshot). Si un producto no alcanza, retorna InsufficientStockError con el
// nombre y el disponible, y NINGÚN stock queda modificado (rollback completo).
func (uc *SaleUseCase) CreateSale(ctx context.Context, shopID, cashierID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.PaymentMethod == "" {
		in.PaymentMethod = entity.PaymentCash
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		ShopID:        shopID,
		CashierID:     cashierID,
		SaleDate:      now,
		PaymentMethod: in.PaymentMethod,
		Total:         decimal.Zero,
		Notes:         in.Notes,
	}

	var items []*entity.SaleItem
	namesByID := make(map[string]string, len(in.Items))

	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		_ repository.PurchaseRepository,
		productRepo repository.ProductRepository,
	) error {
		// La venta nace vacía (total = 0) y se puebla en la misma transacción.
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, line := range in.Items {
			// Bloquea la fila: dos cajas concurrentes no pueden pasar ambas
			// la verificación de stock con una lectura obsoleta.
			product, err := productRepo.GetForUpdate(line.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if product.ShopID != shopID {
				// Referencia de otra boutique: se niega sin filtrar datos ajenos.
				return domain.ErrForbidden
			}
			if !product.IsActive {
				return domain.ErrInvalidInput
			}
			if product.CurrentStock < line.Quantity {
				return &domain.InsufficientStockError{
					ProductID:   product.ID,
					ProductName: product.Name,
					Available:   product.CurrentStock,
					Requested:   line.Quantity,
				}
			}
			// Descuento exactamente una vez por línea.
			if err := productRepo.UpdateStock(product.ID, product.CurrentStock-line.Quantity); err != nil {
				return err
			}
			unitPrice := product.SellingPrice
			item := &entity.SaleItem{
				ID:        uuid.New().String(),
				SaleID:    sale.ID,
				ProductID: product.ID,
				Quantity:  line.Quantity,
				UnitPrice: unitPrice,
				Subtotal:  unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))),
			}
			if err := saleRepo.CreateItem(item); err != nil {
				return err
			}
			items = append(items, item)
			namesByID[product.ID] = product.Name
		}
		// Total derivado: suma de subtotales, recalculado al cierre de la tx.
		sale.Total = entity.ComputeTotal(items)
		return saleRepo.UpdateTotal(sale.ID, sale.Total)
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponse(sale, items, namesByID), nil
}

// CancelSale marca la venta como anulada. No restituye stock: la anulación es
// contable, el reingreso físico se registra como compra o ajuste aparte.
func (uc *SaleUseCase) CancelSale(ctx context.Context, shopID, saleID string) error {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	if sale.ShopID != shopID {
		return domain.ErrForbidden
	}
	if sale.IsCancelled {
		return domain.ErrConflict
	}
	return uc.saleRepo.SetCancelled(saleID, true)
}

// GetSale obtiene una venta con sus líneas (para el ticket de caisse).
func (uc *SaleUseCase) GetSale(ctx context.Context, shopID, saleID string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.ShopID != shopID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.saleRepo.GetItems(saleID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(items))
	for _, it := range items {
		if _, ok := names[it.ProductID]; ok {
			continue
		}
		if p, err := uc.productRepo.GetByID(it.ProductID); err == nil && p != nil {
			names[it.ProductID] = p.Name
		}
	}
	return toSaleResponse(sale, items, names), nil
}

// ListSales historial filtrado de ventas de la boutique, con totales.
func (uc *SaleUseCase) ListSales(ctx context.Context, shopID string, filter repository.SaleFilter) (*dto.SaleListResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	sales, err := uc.saleRepo.ListByShop(shopID, filter)
	if err != nil {
		return nil, err
	}
	resp := &dto.SaleListResponse{TotalAmount: decimal.Zero}
	for _, s := range sales {
		resp.Sales = append(resp.Sales, *toSaleResponse(s, nil, nil))
		resp.TotalAmount = resp.TotalAmount.Add(s.Total)
	}
	resp.TotalSales = len(sales)
	return resp, nil
}

func toSaleResponse(sale *entity.Sale, items []*entity.SaleItem, names map[string]string) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            sale.ID,
		SaleDate:      sale.SaleDate,
		CashierID:     sale.CashierID,
		PaymentMethod: sale.PaymentMethod,
		Total:         sale.Total,
		TotalFC:       currency.FormatFC(sale.Total),
		IsCancelled:   sale.IsCancelled,
		ItemCount:     entity.ItemCount(items),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: names[it.ProductID],
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return resp
}
