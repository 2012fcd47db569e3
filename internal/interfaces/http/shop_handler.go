package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kmutombo/redpos-api/internal/application/dto"
	"github.com/kmutombo/redpos-api/internal/application/shop"
)

// ShopHandler maneja la configuración de la boutique (protegido).
type ShopHandler struct {
	uc *shop.UseCase
}

// NewShopHandler construye el handler.
func NewShopHandler(uc *shop.UseCase) *ShopHandler {
	return &ShopHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener la boutique del token
// @Tags         shop
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ShopResponse
// @Router       /api/shop [get]
func (h *ShopHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetShopID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar la configuración de la boutique (solo manager)
// @Tags         shop
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateShopRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ShopResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/shop [put]
func (h *ShopHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateShopRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetShopID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
