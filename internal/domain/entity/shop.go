package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shop representa una boutique/tenant del sistema. Todo producto, venta y compra
// pertenece exactamente a una Shop; ningún usuario puede seguir referencias de
// otra boutique.
type Shop struct {
	ID        string
	Name      string
	OwnerID   string // UserID del manager propietario
	Address   string
	RCCM      string // registro de comercio (RDC)
	IDNat     string
	NIF       string
	Phone     string
	Email     string
	// Configuración financiera
	UsdToCdfRate  decimal.Decimal // tasa de conversión USD → FC, siempre > 0
	VatPercentage decimal.Decimal // TVA en %
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DefaultUsdToCdfRate tasa por defecto al crear la boutique.
var DefaultUsdToCdfRate = decimal.NewFromInt(2800)

// DefaultVatPercentage TVA por defecto (16%).
var DefaultVatPercentage = decimal.NewFromInt(16)
