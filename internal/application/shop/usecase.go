// Package shop gestiona la configuración de la boutique (tenant).
package shop

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kmutombo/redpos-api/internal/application/dto"
	"github.com/kmutombo/redpos-api/internal/domain"
	"github.com/kmutombo/redpos-api/internal/domain/entity"
	"github.com/kmutombo/redpos-api/internal/domain/repository"
)

// UseCase lectura y actualización de la boutique.
type UseCase struct {
	repo repository.ShopRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ShopRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Get devuelve la boutique del usuario autenticado.
func (uc *UseCase) Get(shopID string) (*dto.ShopResponse, error) {
	shop, err := uc.repo.GetByID(shopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrNotFound
	}
	return toShopResponse(shop), nil
}

// Update modifica la configuración. La tasa USD→FC debe ser estrictamente
// positiva; la TVA no puede ser negativa.
func (uc *UseCase) Update(shopID string, in dto.UpdateShopRequest) (*dto.ShopResponse, error) {
	shop, err := uc.repo.GetByID(shopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		shop.Name = *in.Name
	}
	if in.Address != nil {
		shop.Address = *in.Address
	}
	if in.RCCM != nil {
		shop.RCCM = *in.RCCM
	}
	if in.IDNat != nil {
		shop.IDNat = *in.IDNat
	}
	if in.NIF != nil {
		shop.NIF = *in.NIF
	}
	if in.Phone != nil {
		shop.Phone = *in.Phone
	}
	if in.Email != nil {
		shop.Email = *in.Email
	}
	if in.UsdToCdfRate != nil {
		if !in.UsdToCdfRate.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		shop.UsdToCdfRate = *in.UsdToCdfRate
	}
	if in.VatPercentage != nil {
		if in.VatPercentage.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		shop.VatPercentage = *in.VatPercentage
	}
	shop.UpdatedAt = time.Now()
	if err := uc.repo.Update(shop); err != nil {
		return nil, err
	}
	return toShopResponse(shop), nil
}

func toShopResponse(s *entity.Shop) *dto.ShopResponse {
	return &dto.ShopResponse{
		ID:            s.ID,
		Name:          s.Name,
		Address:       s.Address,
		RCCM:          s.RCCM,
		IDNat:         s.IDNat,
		NIF:           s.NIF,
		Phone:         s.Phone,
		Email:         s.Email,
		UsdToCdfRate:  s.UsdToCdfRate,
		VatPercentage: s.VatPercentage,
	}
}
