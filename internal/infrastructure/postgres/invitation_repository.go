package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kmutombo/redpos-api/internal/domain/entity"
	"github.com/kmutombo/redpos-api/internal/domain/repository"
)

var _ repository.InvitationRepository = (*InvitationRepo)(nil)

// InvitationRepo implementación de InvitationRepository sobre PostgreSQL.
type InvitationRepo struct {
	q Querier
}

// NewInvitationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvitationRepository(q Querier) *InvitationRepo {
	return &InvitationRepo{q: q}
}

// Create persiste una invitación nueva.
func (r *InvitationRepo) Create(inv *entity.CashierInvitation) error {
	query := `
		INSERT INTO cashier_invitations (id, shop_id, created_by, used_by, is_used, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.ShopID, inv.CreatedBy, nullIfEmpty(inv.UsedBy), inv.IsUsed, inv.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invitation: %w", err)
	}
	return nil
}

// GetByID obtiene una invitación por su token.
func (r *InvitationRepo) GetByID(id string) (*entity.CashierInvitation, error) {
	query := `
		SELECT id, shop_id, created_by, COALESCE(used_by, ''), is_used, created_at
		FROM cashier_invitations WHERE id = $1`
	var inv entity.CashierInvitation
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.ShopID, &inv.CreatedBy, &inv.UsedBy, &inv.IsUsed, &inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invitation: %w", err)
	}
	return &inv, nil
}

// MarkUsed consume la invitación registrando quién la usó.
func (r *InvitationRepo) MarkUsed(id, usedBy string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE cashier_invitations SET is_used = TRUE, used_by = $2 WHERE id = $1`,
		id, usedBy,
	)
	if err != nil {
		return fmt.Errorf("mark invitation used: %w", err)
	}
	return nil
}

// ListByShop invitaciones emitidas por la boutique, recientes primero.
func (r *InvitationRepo) ListByShop(shopID string) ([]*entity.CashierInvitation, error) {
	query := `
		SELECT id, shop_id, created_by, COALESCE(used_by, ''), is_used, created_at
		FROM cashier_invitations WHERE shop_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, shopID)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	defer rows.Close()
	var list []*entity.CashierInvitation
	for rows.Next() {
		var inv entity.CashierInvitation
		if err := rows.Scan(&inv.ID, &inv.ShopID, &inv.CreatedBy, &inv.UsedBy, &inv.IsUsed, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invitation: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// nullIfEmpty convierte "" en NULL para columnas opcionales.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
