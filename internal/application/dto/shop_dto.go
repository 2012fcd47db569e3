package dto

import "github.com/shopspring/decimal"

// ShopResponse datos de la boutique.
type ShopResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Address       string          `json:"address,omitempty"`
	RCCM          string          `json:"rccm,omitempty"`
	IDNat         string          `json:"id_nat,omitempty"`
	NIF           string          `json:"nif,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	Email         string          `json:"email,omitempty"`
	UsdToCdfRate  decimal.Decimal `json:"usd_to_cdf_rate"`
	VatPercentage decimal.Decimal `json:"vat_percentage"`
}

// UpdateShopRequest body de PUT /api/shop. Campos nil no se modifican.
type UpdateShopRequest struct {
	Name          *string          `json:"name,omitempty"`
	Address       *string          `json:"address,omitempty"`
	RCCM          *string          `json:"rccm,omitempty"`
	IDNat         *string          `json:"id_nat,omitempty"`
	NIF           *string          `json:"nif,omitempty"`
	Phone         *string          `json:"phone,omitempty"`
	Email         *string          `json:"email,omitempty"`
	UsdToCdfRate  *decimal.Decimal `json:"usd_to_cdf_rate,omitempty"`
	VatPercentage *decimal.Decimal `json:"vat_percentage,omitempty"`
}
