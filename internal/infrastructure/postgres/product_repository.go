package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kmutombo/redpos-api/internal/domain"
	"github.com/kmutombo/redpos-api/internal/domain/entity"
	"github.com/kmutombo/redpos-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, shop_id, category_id, name, barcode, purchase_price, selling_price, current_stock, minimum_stock, is_active, description, created_at, updated_at`

// ProductRepo implementación de ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo. Barcode duplicado por boutique -> ErrDuplicate.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.ShopID, product.CategoryID, product.Name, product.Barcode,
		product.PurchasePrice, product.SellingPrice, product.CurrentStock, product.MinimumStock,
		product.IsActive, product.Description, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getOne(`WHERE id = $1`, id)
}

// GetByShopAndBarcode obtiene un producto por boutique y código de barras.
func (r *ProductRepo) GetByShopAndBarcode(shopID, barcode string) (*entity.Product, error) {
	return r.getOne(`WHERE shop_id = $1 AND barcode = $2`, shopID, barcode)
}

// GetForUpdate obtiene el producto y bloquea su fila (SELECT FOR UPDATE).
// Dos ventas concurrentes sobre el mismo producto se serializan aquí.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.getOne(`WHERE id = $1 FOR UPDATE`, id)
}

func (r *ProductRepo) getOne(where string, args ...any) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ` + where
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.ShopID, &p.CategoryID, &p.Name, &p.Barcode,
		&p.PurchasePrice, &p.SellingPrice, &p.CurrentStock, &p.MinimumStock,
		&p.IsActive, &p.Description, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto. current_stock no se toca aquí: las mutaciones
// de stock pasan por UpdateStock dentro de una transacción.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET category_id = $2, name = $3, barcode = $4, purchase_price = $5,
			selling_price = $6, minimum_stock = $7, is_active = $8, description = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.CategoryID, product.Name, product.Barcode, product.PurchasePrice,
		product.SellingPrice, product.MinimumStock, product.IsActive, product.Description, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock fija el stock absoluto. Usar solo con la fila bloqueada por GetForUpdate.
func (r *ProductRepo) UpdateStock(productID string, stock int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET current_stock = $2, updated_at = now() WHERE id = $1`,
		productID, stock,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// ListByShop lista productos por boutique con paginación.
func (r *ProductRepo) ListByShop(shopID string, onlyActive bool, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE shop_id = $1`
	if onlyActive {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, shopID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return scanProducts(rows)
}

// ListLowStock productos activos en o bajo su umbral mínimo, más crítico primero.
func (r *ProductRepo) ListLowStock(shopID string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products
		WHERE shop_id = $1 AND is_active = TRUE AND current_stock <= minimum_stock
		ORDER BY current_stock, name`
	rows, err := r.q.Query(context.Background(), query, shopID)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	return scanProducts(rows)
}

// Search busca productos activos por nombre parcial o código de barras
// (prefijo; el lector de códigos manda el EAN-13 completo).
func (r *ProductRepo) Search(shopID, search string, limit int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products
		WHERE shop_id = $1 AND is_active = TRUE AND (name ILIKE '%' || $2 || '%' OR barcode LIKE $2 || '%')
		ORDER BY name LIMIT $3`
	rows, err := r.q.Query(context.Background(), query, shopID, search, limit)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return scanProducts(rows)
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.ShopID, &p.CategoryID, &p.Name, &p.Barcode,
			&p.PurchasePrice, &p.SellingPrice, &p.CurrentStock, &p.MinimumStock,
			&p.IsActive, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
