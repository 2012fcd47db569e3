package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/kmutombo/redpos-api/internal/domain/entity"
	"github.com/kmutombo/redpos-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, shop_id, cashier_id, sale_date, payment_method, total, notes, is_cancelled)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ShopID, sale.CashierID, sale.SaleDate, sale.PaymentMethod,
		sale.Total, sale.Notes, sale.IsCancelled,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de venta con el precio ya congelado.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, product_id, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, item.ProductID, item.Quantity, item.UnitPrice, item.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, shop_id, cashier_id, sale_date, payment_method, total, notes, is_cancelled
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ShopID, &s.CashierID, &s.SaleDate, &s.PaymentMethod, &s.Total, &s.Notes, &s.IsCancelled,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// GetItems líneas de una venta.
func (r *SaleRepo) GetItems(saleID string) ([]*entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product_id, quantity, unit_price, subtotal
		FROM sale_items WHERE sale_id = $1`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// UpdateTotal fija el total derivado de la suma de líneas.
func (r *SaleRepo) UpdateTotal(saleID string, total decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sales SET total = $2 WHERE id = $1`, saleID, total)
	if err != nil {
		return fmt.Errorf("update sale total: %w", err)
	}
	return nil
}

// SetCancelled marca o desmarca la anulación de la venta.
func (r *SaleRepo) SetCancelled(saleID string, cancelled bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sales SET is_cancelled = $2 WHERE id = $1`, saleID, cancelled)
	if err != nil {
		return fmt.Errorf("set sale cancelled: %w", err)
	}
	return nil
}

// ListByShop historial de ventas, recientes primero, con filtros opcionales.
func (r *SaleRepo) ListByShop(shopID string, filter repository.SaleFilter) ([]*entity.Sale, error) {
	query := `
		SELECT id, shop_id, cashier_id, sale_date, payment_method, total, notes, is_cancelled
		FROM sales WHERE shop_id = $1`
	args := []any{shopID}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += ` AND sale_date >= $` + strconv.Itoa(len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += ` AND sale_date <= $` + strconv.Itoa(len(args))
	}
	if filter.CashierID != "" {
		args = append(args, filter.CashierID)
		query += ` AND cashier_id = $` + strconv.Itoa(len(args))
	}
	if filter.PaymentMethod != "" {
		args = append(args, filter.PaymentMethod)
		query += ` AND payment_method = $` + strconv.Itoa(len(args))
	}
	args = append(args, filter.Limit)
	query += ` ORDER BY sale_date DESC LIMIT $` + strconv.Itoa(len(args))
	args = append(args, filter.Offset)
	query += ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.ShopID, &s.CashierID, &s.SaleDate, &s.PaymentMethod,
			&s.Total, &s.Notes, &s.IsCancelled); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
