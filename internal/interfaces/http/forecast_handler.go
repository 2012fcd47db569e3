package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kmutombo/redpos-api/internal/application/dto"
	"github.com/kmutombo/redpos-api/internal/application/forecast"
	domforecast "github.com/kmutombo/redpos-api/internal/domain/forecast"
)

// ForecastHandler expone el dashboard de predicción (protegido, solo manager).
type ForecastHandler struct {
	uc *forecast.DashboardUseCase
}

// NewForecastHandler construye el handler.
func NewForecastHandler(uc *forecast.DashboardUseCase) *ForecastHandler {
	return &ForecastHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Dashboard de predicción de rupture de stock
// @Tags         forecast
// @Security     Bearer
// @Produce      json
// @Param        window_days  query  int  false  "Ventana de análisis en días"  default(30)
// @Success      200  {object}  dto.ForecastDashboardResponse
// @Router       /api/forecast/dashboard [get]
func (h *ForecastHandler) Dashboard(c *fiber.Ctx) error {
	windowDays := c.QueryInt("window_days", domforecast.DefaultWindowDays)
	if windowDays < 1 || windowDays > 365 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "window_days debe estar entre 1 y 365"})
	}
	out, err := h.uc.GetDashboard(c.Context(), GetShopID(c), windowDays)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
