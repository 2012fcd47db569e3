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
)

// PurchaseUseCase registra compras a proveedores y la recepción de mercancía.
// El stock solo sube cuando la compra está marcada como recibida: al crearla si
// ya venía marcada, o al alternar la recepción después (compensación ± por
// línea, atómica).
type PurchaseUseCase struct {
	txRunner     TxRunner
	purchaseRepo repository.PurchaseRepository
	productRepo  repository.ProductRepository
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(txRunner TxRunner, purchaseRepo repository.PurchaseRepository, productRepo repository.ProductRepository) *PurchaseUseCase {
	return &PurchaseUseCase{txRunner: txRunner, purchaseRepo: purchaseRepo, productRepo: productRepo}
}

// CreatePurchase crea la compra con todas sus líneas en una sola transacción.
// Si IsReceived viene activo, incrementa el stock de cada producto con la fila
// bloqueada; si no, el stock queda intacto hasta la recepción.
func (uc *PurchaseUseCase) CreatePurchase(ctx context.Context, shopID, userID string, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if in.Supplier == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity < 1 || !item.PurchasePrice.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	purchase := &entity.Purchase{
		ID:            uuid.New().String(),
		ShopID:        shopID,
		PurchaseDate:  now,
		Supplier:      in.Supplier,
		InvoiceNumber: in.InvoiceNumber,
		Total:         decimal.Zero,
		Notes:         in.Notes,
		CreatedBy:     userID,
		IsReceived:    in.IsReceived,
	}

	var items []*entity.PurchaseItem
	namesByID := make(map[string]string, len(in.Items))

	err := uc.txRunner.Run(ctx, func(
		_ repository.SaleRepository,
		purchaseRepo repository.PurchaseRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := purchaseRepo.Create(purchase); err != nil {
			return err
		}
		for _, line := range in.Items {
			product, err := productRepo.GetForUpdate(line.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if product.ShopID != shopID {
				return domain.ErrForbidden
			}
			item := &entity.PurchaseItem{
				ID:            uuid.New().String(),
				PurchaseID:    purchase.ID,
				ProductID:     product.ID,
				Quantity:      line.Quantity,
				PurchasePrice: line.PurchasePrice,
				Subtotal:      line.PurchasePrice.Mul(decimal.NewFromInt(int64(line.Quantity))),
			}
			if err := purchaseRepo.CreateItem(item); err != nil {
				return err
			}
			// El incremento ocurre solo si la compra ya está recibida en el
			// momento de crear la línea.
			if purchase.IsReceived {
				if err := productRepo.UpdateStock(product.ID, product.CurrentStock+line.Quantity); err != nil {
					return err
				}
			}
			items = append(items, item)
			namesByID[product.ID] = product.Name
		}
		purchase.Total = entity.ComputePurchaseTotal(items)
		return purchaseRepo.UpdateTotal(purchase.ID, purchase.Total)
	})
	if err != nil {
		return nil, err
	}

	return toPurchaseResponse(purchase, items, namesByID), nil
}

// ToggleReceived alterna la recepción de la compra aplicando la compensación
// de stock de todas sus líneas en una sola transacción: false→true suma cada
// cantidad, true→false la resta. Un fallo a mitad de recorrido no deja ningún
// stock modificado.
func (uc *PurchaseUseCase) ToggleReceived(ctx context.Context, shopID, purchaseID string) (*dto.PurchaseResponse, error) {
	var purchase *entity.Purchase
	var items []*entity.PurchaseItem

	err := uc.txRunner.Run(ctx, func(
		_ repository.SaleRepository,
		purchaseRepo repository.PurchaseRepository,
		productRepo repository.ProductRepository,
	) error {
		var err error
		purchase, err = purchaseRepo.GetByID(purchaseID)
		if err != nil {
			return err
		}
		if purchase == nil {
			return domain.ErrNotFound
		}
		if purchase.ShopID != shopID {
			return domain.ErrForbidden
		}
		items, err = purchaseRepo.GetItems(purchaseID)
		if err != nil {
			return err
		}
		for _, item := range items {
			product, err := productRepo.GetForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			newStock := product.CurrentStock
			if purchase.IsReceived {
				newStock -= item.Quantity
			} else {
				newStock += item.Quantity
			}
			if err := productRepo.UpdateStock(product.ID, newStock); err != nil {
				return err
			}
		}
		purchase.IsReceived = !purchase.IsReceived
		return purchaseRepo.SetReceived(purchaseID, purchase.IsReceived)
	})
	if err != nil {
		return nil, err
	}

	return toPurchaseResponse(purchase, items, nil), nil
}

// GetPurchase obtiene una compra con sus líneas.
func (uc *PurchaseUseCase) GetPurchase(ctx context.Context, shopID, purchaseID string) (*dto.PurchaseResponse, error) {
	purchase, err := uc.purchaseRepo.GetByID(purchaseID)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	if purchase.ShopID != shopID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.purchaseRepo.GetItems(purchaseID)
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
	return toPurchaseResponse(purchase, items, names), nil
}

// ListPurchases listado paginado con estadísticas de recepción.
func (uc *PurchaseUseCase) ListPurchases(ctx context.Context, shopID string, limit, offset int) (*dto.PurchaseListResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	purchases, err := uc.purchaseRepo.ListByShop(shopID, limit, offset)
	if err != nil {
		return nil, err
	}
	stats, err := uc.purchaseRepo.Stats(shopID)
	if err != nil {
		return nil, err
	}
	resp := &dto.PurchaseListResponse{
		TotalCount:    stats.Total,
		ReceivedCount: stats.Received,
		PendingCount:  stats.Pending,
		TotalAmount:   stats.TotalAmount,
	}
	for _, p := range purchases {
		resp.Purchases = append(resp.Purchases, *toPurchaseResponse(p, nil, nil))
	}
	return resp, nil
}

func toPurchaseResponse(p *entity.Purchase, items []*entity.PurchaseItem, names map[string]string) *dto.PurchaseResponse {
	resp := &dto.PurchaseResponse{
		ID:            p.ID,
		PurchaseDate:  p.PurchaseDate,
		Supplier:      p.Supplier,
		InvoiceNumber: p.InvoiceNumber,
		Total:         p.Total,
		IsReceived:    p.IsReceived,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.PurchaseItemResponse{
			ID:            it.ID,
			ProductID:     it.ProductID,
			ProductName:   names[it.ProductID],
			Quantity:      it.Quantity,
			PurchasePrice: it.PurchasePrice,
			Subtotal:      it.Subtotal,
		})
	}
	return resp
}
