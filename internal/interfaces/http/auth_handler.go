package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kmutombo/redpos-api/internal/application/auth"
	"github.com/kmutombo/redpos-api/internal/application/dto"
)

// AuthHandler maneja registro, login, invitaciones y equipo.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario (manager con boutique o caissier por invitación)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Datos de registro"
// @Success      201   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateInvitation godoc
// @Summary      Emitir invitación de caissier (solo manager)
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.InvitationResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/invitations [post]
func (h *AuthHandler) CreateInvitation(c *fiber.Ctx) error {
	out, err := h.uc.CreateInvitation(GetShopID(c), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListInvitations godoc
// @Summary      Listar invitaciones de la boutique (solo manager)
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InvitationResponse
// @Router       /api/invitations [get]
func (h *AuthHandler) ListInvitations(c *fiber.Ctx) error {
	out, err := h.uc.ListInvitations(GetShopID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListUsers godoc
// @Summary      Listar el equipo de la boutique (solo manager)
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/users [get]
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.uc.ListUsers(GetShopID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
