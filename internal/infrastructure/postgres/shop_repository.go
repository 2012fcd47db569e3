package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kmutombo/redpos-api/internal/domain/entity"
	"github.com/kmutombo/redpos-api/internal/domain/repository"
)

var _ repository.ShopRepository = (*ShopRepo)(nil)

// ShopRepo implementación de ShopRepository sobre PostgreSQL (usable con pool o tx).
type ShopRepo struct {
	q Querier
}

// NewShopRepository construye el adaptador. Pasar pool o tx (Querier).
func NewShopRepository(q Querier) *ShopRepo {
	return &ShopRepo{q: q}
}

// Create persiste una boutique nueva.
func (r *ShopRepo) Create(shop *entity.Shop) error {
	query := `
		INSERT INTO shops (id, name, owner_id, address, rccm, id_nat, nif, phone, email, usd_to_cdf_rate, vat_percentage, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		shop.ID, shop.Name, shop.OwnerID, shop.Address, shop.RCCM, shop.IDNat, shop.NIF,
		shop.Phone, shop.Email, shop.UsdToCdfRate, shop.VatPercentage, shop.CreatedAt, shop.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert shop: %w", err)
	}
	return nil
}

// GetByID obtiene una boutique por ID.
func (r *ShopRepo) GetByID(id string) (*entity.Shop, error) {
	query := `
		SELECT id, name, owner_id, address, rccm, id_nat, nif, phone, email, usd_to_cdf_rate, vat_percentage, created_at, updated_at
		FROM shops WHERE id = $1`
	var s entity.Shop
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.OwnerID, &s.Address, &s.RCCM, &s.IDNat, &s.NIF,
		&s.Phone, &s.Email, &s.UsdToCdfRate, &s.VatPercentage, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shop: %w", err)
	}
	return &s, nil
}

// Update actualiza la configuración de la boutique.
func (r *ShopRepo) Update(shop *entity.Shop) error {
	query := `
		UPDATE shops SET name = $2, address = $3, rccm = $4, id_nat = $5, nif = $6, phone = $7, email = $8,
			usd_to_cdf_rate = $9, vat_percentage = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		shop.ID, shop.Name, shop.Address, shop.RCCM, shop.IDNat, shop.NIF, shop.Phone, shop.Email,
		shop.UsdToCdfRate, shop.VatPercentage, shop.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update shop: %w", err)
	}
	return nil
}
