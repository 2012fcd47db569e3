// Package catalog casos de uso CRUD para categorías y productos. El stock no
// se toca aquí: toda mutación de CurrentStock pasa por el ledger.
package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/kmutombo/redpos-api/internal/application/dto"
	"github.com/kmutombo/redpos-api/internal/domain"
	"github.com/kmutombo/redpos-api/internal/domain/entity"
	"github.com/kmutombo/redpos-api/internal/domain/repository"
)

// CategoryUseCase CRUD de categorías, con nombre único por boutique.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría. Nombre duplicado en la boutique → ErrDuplicate.
func (uc *CategoryUseCase) Create(shopID string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByShopAndName(shopID, in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	category := &entity.Category{
		ID:           uuid.New().String(),
		ShopID:       shopID,
		Name:         in.Name,
		Description:  in.Description,
		IsActive:     true,
		DisplayOrder: in.DisplayOrder,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Update modifica una categoría de la boutique.
func (uc *CategoryUseCase) Update(shopID, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if category.ShopID != shopID {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil && *in.Name != category.Name {
		existing, _ := uc.repo.GetByShopAndName(shopID, *in.Name)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}
	if in.DisplayOrder != nil {
		category.DisplayOrder = *in.DisplayOrder
	}
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List categorías de la boutique, ordenadas por DisplayOrder y nombre.
func (uc *CategoryUseCase) List(shopID string) ([]dto.CategoryResponse, error) {
	categories, err := uc.repo.ListByShop(shopID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

// Delete elimina una categoría de la boutique.
func (uc *CategoryUseCase) Delete(shopID, id string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	if category.ShopID != shopID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		IsActive:     c.IsActive,
		DisplayOrder: c.DisplayOrder,
		CreatedAt:    c.CreatedAt,
	}
}
