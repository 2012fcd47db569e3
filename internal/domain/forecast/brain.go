// Package forecast implementa el motor de predicción de stock ("le Cerveau"):
// a partir del historial de ventas recientes estima la velocidad diaria de cada
// producto, proyecta la fecha de rupture y clasifica el riesgo de
// reaprovisionamiento en una escala ordinal fija.
package forecast

import (
	"fmt"
	"math"
	"time"
)

// Niveles de riesgo, del más al menos urgente.
const (
	RiskOutOfStock = "OUT_OF_STOCK"
	RiskCritical   = "CRITICAL"
	RiskHigh       = "HIGH"
	RiskMedium     = "MEDIUM"
	RiskLow        = "LOW"
)

// DaysLeftUnbounded centinela para "sin rupture previsible" (velocidad cero).
// Se mantiene el valor 999 del sistema original; Unbounded en Analysis es la
// señal fiable, no el número.
const DaysLeftUnbounded = 999

// DefaultWindowDays ventana de análisis por defecto.
const DefaultWindowDays = 30

// reorderHorizonDays horizonte del pedido sugerido en nivel CRITICAL.
const reorderHorizonDays = 30

// Analysis métricas predictivas de un producto.
type Analysis struct {
	CurrentStock   int
	Velocity       float64    // unidades vendidas por día en la ventana
	DaysLeft       float64    // stock / velocity; DaysLeftUnbounded si velocity = 0
	Unbounded      bool       // true si no hay ventas en la ventana
	StockoutDate   *time.Time // nil si Unbounded
	RiskLevel      string
	Recommendation string
	ReorderQty     int // solo > 0 en CRITICAL: ceil(velocity * 30)
}

// Analyze clasifica un producto según su stock actual y las unidades vendidas
// en los últimos windowDays días. La división por cero se evita ramificando
// sobre velocity > 0 antes de dividir.
func Analyze(currentStock int, totalSold int64, windowDays int, now time.Time) Analysis {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	velocity := float64(totalSold) / float64(windowDays)

	a := Analysis{
		CurrentStock: currentStock,
		Velocity:     velocity,
		DaysLeft:     DaysLeftUnbounded,
		Unbounded:    true,
	}
	if velocity > 0 {
		a.DaysLeft = float64(currentStock) / velocity
		a.Unbounded = false
		d := now.Add(time.Duration(a.DaysLeft * 24 * float64(time.Hour)))
		a.StockoutDate = &d
	}

	// Prioridad fija: stock agotado manda sobre cualquier proyección.
	switch {
	case currentStock <= 0:
		a.RiskLevel = RiskOutOfStock
	case !a.Unbounded && a.DaysLeft < 3:
		a.RiskLevel = RiskCritical
	case !a.Unbounded && a.DaysLeft < 7:
		a.RiskLevel = RiskHigh
	case !a.Unbounded && a.DaysLeft < 14:
		a.RiskLevel = RiskMedium
	default:
		a.RiskLevel = RiskLow
	}

	a.Recommendation = recommendation(a.RiskLevel, velocity, &a.ReorderQty)
	return a
}

// recommendation texto de acción por nivel de riesgo. En CRITICAL calcula la
// cantidad sugerida para cubrir 30 días.
func recommendation(riskLevel string, velocity float64, reorderQty *int) string {
	switch riskLevel {
	case RiskOutOfStock:
		return "Commander URGEMMENT"
	case RiskCritical:
		*reorderQty = int(math.Ceil(velocity * reorderHorizonDays))
		return fmt.Sprintf("Commander %d unités", *reorderQty)
	case RiskHigh:
		return "Préparer commande"
	}
	return "Stock sain"
}
