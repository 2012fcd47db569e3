package ledger_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kmutombo/redpos-api/internal/domain/entity"
	"github.com/kmutombo/redpos-api/internal/domain/repository"
)

// Dobles in-memory para los casos de uso del ledger. El fakeTxRunner simula el
// rollback restaurando un snapshot completo cuando fn devuelve error, para
// poder afirmar "ningún stock modificado" en los tests de todo-o-nada.

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		r.products[p.ID] = &cp
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByShopAndBarcode(shopID, barcode string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ShopID == shopID && p.Barcode == barcode {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) ListByShop(shopID string, onlyActive bool, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.ShopID != shopID || (onlyActive && !p.IsActive) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) ListLowStock(shopID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.ShopID == shopID && p.IsActive && p.CurrentStock <= p.MinimumStock {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Search(shopID, query string, limit int) ([]*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) UpdateStock(productID string, stock int) error {
	if p, ok := r.products[productID]; ok {
		p.CurrentStock = stock
	}
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) stockOf(id string) int {
	return r.products[id].CurrentStock
}

type fakeSaleRepo struct {
	sales map[string]*entity.Sale
	items []*entity.SaleItem
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[string]*entity.Sale)}
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error {
	cp := *s
	r.sales[s.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) CreateItem(it *entity.SaleItem) error {
	cp := *it
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSaleRepo) GetItems(saleID string) ([]*entity.SaleItem, error) {
	var out []*entity.SaleItem
	for _, it := range r.items {
		if it.SaleID == saleID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) UpdateTotal(saleID string, total decimal.Decimal) error {
	if s, ok := r.sales[saleID]; ok {
		s.Total = total
	}
	return nil
}

func (r *fakeSaleRepo) SetCancelled(saleID string, cancelled bool) error {
	if s, ok := r.sales[saleID]; ok {
		s.IsCancelled = cancelled
	}
	return nil
}

func (r *fakeSaleRepo) ListByShop(shopID string, filter repository.SaleFilter) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if s.ShopID == shopID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakePurchaseRepo struct {
	purchases map[string]*entity.Purchase
	items     []*entity.PurchaseItem
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{purchases: make(map[string]*entity.Purchase)}
}

func (r *fakePurchaseRepo) Create(p *entity.Purchase) error {
	cp := *p
	r.purchases[p.ID] = &cp
	return nil
}

func (r *fakePurchaseRepo) CreateItem(it *entity.PurchaseItem) error {
	cp := *it
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakePurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	p, ok := r.purchases[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePurchaseRepo) GetItems(purchaseID string) ([]*entity.PurchaseItem, error) {
	var out []*entity.PurchaseItem
	for _, it := range r.items {
		if it.PurchaseID == purchaseID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakePurchaseRepo) UpdateTotal(purchaseID string, total decimal.Decimal) error {
	if p, ok := r.purchases[purchaseID]; ok {
		p.Total = total
	}
	return nil
}

func (r *fakePurchaseRepo) SetReceived(purchaseID string, received bool) error {
	if p, ok := r.purchases[purchaseID]; ok {
		p.IsReceived = received
	}
	return nil
}

func (r *fakePurchaseRepo) ListByShop(shopID string, limit, offset int) ([]*entity.Purchase, error) {
	var out []*entity.Purchase
	for _, p := range r.purchases {
		if p.ShopID == shopID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakePurchaseRepo) Stats(shopID string) (*repository.PurchaseStats, error) {
	stats := &repository.PurchaseStats{TotalAmount: decimal.Zero}
	for _, p := range r.purchases {
		if p.ShopID != shopID {
			continue
		}
		stats.Total++
		if p.IsReceived {
			stats.Received++
		} else {
			stats.Pending++
		}
		stats.TotalAmount = stats.TotalAmount.Add(p.Total)
	}
	return stats, nil
}

// fakeTxRunner ejecuta fn sobre los fakes y restaura el snapshot si falla,
// imitando el rollback de PostgreSQL.
type fakeTxRunner struct {
	sales     *fakeSaleRepo
	purchases *fakePurchaseRepo
	products  *fakeProductRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	purchaseRepo repository.PurchaseRepository,
	productRepo repository.ProductRepository,
) error) error {
	prodSnap := make(map[string]entity.Product, len(r.products.products))
	for id, p := range r.products.products {
		prodSnap[id] = *p
	}
	saleSnap := make(map[string]entity.Sale, len(r.sales.sales))
	for id, s := range r.sales.sales {
		saleSnap[id] = *s
	}
	saleItemsLen := len(r.sales.items)
	purchaseSnap := make(map[string]entity.Purchase, len(r.purchases.purchases))
	for id, p := range r.purchases.purchases {
		purchaseSnap[id] = *p
	}
	purchaseItemsLen := len(r.purchases.items)

	err := fn(r.sales, r.purchases, r.products)
	if err == nil {
		return nil
	}

	r.products.products = make(map[string]*entity.Product, len(prodSnap))
	for id, p := range prodSnap {
		cp := p
		r.products.products[id] = &cp
	}
	r.sales.sales = make(map[string]*entity.Sale, len(saleSnap))
	for id, s := range saleSnap {
		cp := s
		r.sales.sales[id] = &cp
	}
	r.sales.items = r.sales.items[:saleItemsLen]
	r.purchases.purchases = make(map[string]*entity.Purchase, len(purchaseSnap))
	for id, p := range purchaseSnap {
		cp := p
		r.purchases.purchases[id] = &cp
	}
	r.purchases.items = r.purchases.items[:purchaseItemsLen]
	return err
}
