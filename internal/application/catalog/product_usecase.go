package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kmutombo/redpos-api/internal/application/dto"
	"github.com/kmutombo/redpos-api/internal/domain"
	"github.com/kmutombo/redpos-api/internal/domain/barcode"
	"github.com/kmutombo/redpos-api/internal/domain/entity"
	"github.com/kmutombo/redpos-api/internal/domain/repository"
)

// barcodeAttempts intentos de generación antes de rendirse (colisión de un
// EAN-13 aleatorio por boutique es prácticamente imposible; el bucle cubre el
// caso igualmente).
const barcodeAttempts = 10

// ProductUseCase CRUD de productos. CurrentStock solo lo mueve el ledger; aquí
// únicamente se fija el stock inicial al crear.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create crea un producto. Sin código de barras se genera un EAN-13 con
// checksum, único dentro de la boutique; uno provisto debe ser válido y libre.
func (uc *ProductUseCase) Create(shopID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.PurchasePrice.GreaterThan(decimal.Zero) || !in.SellingPrice.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.CurrentStock < 0 || in.MinimumStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil || category.ShopID != shopID {
		return nil, domain.ErrNotFound
	}

	code := in.Barcode
	if code == "" {
		code, err = uc.generateBarcode(shopID)
		if err != nil {
			return nil, err
		}
	} else {
		if !barcode.IsValid(code) {
			return nil, domain.ErrInvalidInput
		}
		existing, _ := uc.repo.GetByShopAndBarcode(shopID, code)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}

	minStock := in.MinimumStock
	if minStock == 0 {
		minStock = 5
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		ShopID:        shopID,
		CategoryID:    in.CategoryID,
		Name:          in.Name,
		Barcode:       code,
		PurchasePrice: in.PurchasePrice,
		SellingPrice:  in.SellingPrice,
		CurrentStock:  in.CurrentStock,
		MinimumStock:  minStock,
		IsActive:      true,
		Description:   in.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// generateBarcode genera un EAN-13 libre en la boutique.
func (uc *ProductUseCase) generateBarcode(shopID string) (string, error) {
	for i := 0; i < barcodeAttempts; i++ {
		code := barcode.Random()
		existing, err := uc.repo.GetByShopAndBarcode(shopID, code)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return code, nil
		}
	}
	return "", domain.ErrConflict
}

// GetByID obtiene un producto de la boutique.
func (uc *ProductUseCase) GetByID(shopID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.ShopID != shopID {
		return nil, domain.ErrForbidden
	}
	return toProductResponse(product), nil
}

// Update modifica un producto. No permite tocar CurrentStock (ledger).
func (uc *ProductUseCase) Update(shopID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.ShopID != shopID {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil || category.ShopID != shopID {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = *in.CategoryID
	}
	if in.PurchasePrice != nil {
		if !in.PurchasePrice.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.PurchasePrice = *in.PurchasePrice
	}
	if in.SellingPrice != nil {
		if !in.SellingPrice.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.SellingPrice = *in.SellingPrice
	}
	if in.MinimumStock != nil {
		if *in.MinimumStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinimumStock = *in.MinimumStock
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List productos de la boutique con paginación.
func (uc *ProductUseCase) List(shopID string, onlyActive bool, page dto.PageRequest) ([]dto.ProductResponse, error) {
	page.DefaultPage()
	products, err := uc.repo.ListByShop(shopID, onlyActive, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Search búsqueda para la pantalla de caisse: nombre parcial o código de
// barras (parcial, o exacto para el lector).
func (uc *ProductUseCase) Search(shopID, query string, limit int) ([]dto.ProductResponse, error) {
	if query == "" {
		return []dto.ProductResponse{}, nil
	}
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	products, err := uc.repo.Search(shopID, query, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Barcode:       p.Barcode,
		CategoryID:    p.CategoryID,
		PurchasePrice: p.PurchasePrice,
		SellingPrice:  p.SellingPrice,
		CurrentStock:  p.CurrentStock,
		MinimumStock:  p.MinimumStock,
		IsActive:      p.IsActive,
		ProfitMargin:  p.ProfitMargin().Round(2),
		StockStatus:   p.StockStatus(),
		Description:   p.Description,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
