// Package currency formatea montos en Franc Congolais (FC) con separador de
// miles según la convención francófona.
package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.French)

// FormatFC redondea al franco entero y devuelve "12 500 FC".
func FormatFC(amount decimal.Decimal) string {
	return printer.Sprintf("%d FC", amount.Round(0).IntPart())
}

// FormatUSD devuelve el monto con dos decimales, "$1 250,50".
func FormatUSD(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return printer.Sprintf("$%.2f", f)
}

// UsdToFc convierte USD a FC con la tasa de la boutique.
func UsdToFc(usd, rate decimal.Decimal) decimal.Decimal {
	return usd.Mul(rate)
}
