package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/kmutombo/redpos-api/internal/domain/entity"
	"github.com/kmutombo/redpos-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository sobre PostgreSQL (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador de compras. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste la cabecera de la compra.
func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	query := `
		INSERT INTO purchases (id, shop_id, purchase_date, supplier, invoice_number, total, notes, created_by, is_received)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.ShopID, purchase.PurchaseDate, purchase.Supplier, purchase.InvoiceNumber,
		purchase.Total, purchase.Notes, purchase.CreatedBy, purchase.IsReceived,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de compra.
func (r *PurchaseRepo) CreateItem(item *entity.PurchaseItem) error {
	query := `
		INSERT INTO purchase_items (id, purchase_id, product_id, quantity, purchase_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.PurchaseID, item.ProductID, item.Quantity, item.PurchasePrice, item.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert purchase item: %w", err)
	}
	return nil
}

// GetByID obtiene una compra por ID.
func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	query := `
		SELECT id, shop_id, purchase_date, supplier, invoice_number, total, notes, created_by, is_received
		FROM purchases WHERE id = $1`
	var p entity.Purchase
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ShopID, &p.PurchaseDate, &p.Supplier, &p.InvoiceNumber,
		&p.Total, &p.Notes, &p.CreatedBy, &p.IsReceived,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return &p, nil
}

// GetItems líneas de una compra.
func (r *PurchaseRepo) GetItems(purchaseID string) ([]*entity.PurchaseItem, error) {
	query := `
		SELECT id, purchase_id, product_id, quantity, purchase_price, subtotal
		FROM purchase_items WHERE purchase_id = $1`
	rows, err := r.q.Query(context.Background(), query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("list purchase items: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseItem
	for rows.Next() {
		var it entity.PurchaseItem
		if err := rows.Scan(&it.ID, &it.PurchaseID, &it.ProductID, &it.Quantity, &it.PurchasePrice, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan purchase item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// UpdateTotal fija el total derivado de las líneas.
func (r *PurchaseRepo) UpdateTotal(purchaseID string, total decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE purchases SET total = $2 WHERE id = $1`, purchaseID, total)
	if err != nil {
		return fmt.Errorf("update purchase total: %w", err)
	}
	return nil
}

// SetReceived marca o desmarca la recepción de mercancía.
func (r *PurchaseRepo) SetReceived(purchaseID string, received bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE purchases SET is_received = $2 WHERE id = $1`, purchaseID, received)
	if err != nil {
		return fmt.Errorf("set purchase received: %w", err)
	}
	return nil
}

// ListByShop compras de la boutique, recientes primero, con paginación.
func (r *PurchaseRepo) ListByShop(shopID string, limit, offset int) ([]*entity.Purchase, error) {
	query := `
		SELECT id, shop_id, purchase_date, supplier, invoice_number, total, notes, created_by, is_received
		FROM purchases WHERE shop_id = $1 ORDER BY purchase_date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, shopID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.ShopID, &p.PurchaseDate, &p.Supplier, &p.InvoiceNumber,
			&p.Total, &p.Notes, &p.CreatedBy, &p.IsReceived); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Stats contadores agregados de compras de la boutique.
func (r *PurchaseRepo) Stats(shopID string) (*repository.PurchaseStats, error) {
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE is_received),
			COUNT(*) FILTER (WHERE NOT is_received),
			COALESCE(SUM(total), 0)
		FROM purchases WHERE shop_id = $1`
	var stats repository.PurchaseStats
	err := r.q.QueryRow(context.Background(), query, shopID).Scan(
		&stats.Total, &stats.Received, &stats.Pending, &stats.TotalAmount,
	)
	if err != nil {
		return nil, fmt.Errorf("purchase stats: %w", err)
	}
	return &stats, nil
}
