// Package auth registro, login e invitaciones de caissier.
package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kmutombo/redpos-api/internal/application/dto"
	"github.com/kmutombo/redpos-api/internal/domain"
	"github.com/kmutombo/redpos-api/internal/domain/entity"
	"github.com/kmutombo/redpos-api/internal/domain/repository"
)

const minPasswordLen = 8

// TokenIssuer emite el JWT de sesión.
type TokenIssuer interface {
	Generate(userID, shopID, role string) (string, error)
}

// UseCase flujo de cuentas: registro de manager (con su boutique), registro de
// caissier por invitación, login y emisión de invitaciones.
type UseCase struct {
	userRepo       repository.UserRepository
	shopRepo       repository.ShopRepository
	invitationRepo repository.InvitationRepository
	tokens         TokenIssuer
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	userRepo repository.UserRepository,
	shopRepo repository.ShopRepository,
	invitationRepo repository.InvitationRepository,
	tokens TokenIssuer,
) *UseCase {
	return &UseCase{userRepo: userRepo, shopRepo: shopRepo, invitationRepo: invitationRepo, tokens: tokens}
}

// Register crea la cuenta y devuelve sesión iniciada.
//
// Dos variantes según el body:
//   - sin invitation_token: manager nuevo con su propia boutique, creada de
//     forma síncrona con tasa y TVA por defecto;
//   - con invitation_token: caissier que se une a la boutique de la
//     invitación; la invitación se consume (un solo uso).
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Name == "" || len(in.Password) < minPasswordLen {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var invitation *entity.CashierInvitation
	if in.InvitationToken != "" {
		invitation, err = uc.invitationRepo.GetByID(in.InvitationToken)
		if err != nil {
			return nil, err
		}
		if invitation == nil {
			return nil, domain.ErrNotFound
		}
		if invitation.IsUsed {
			return nil, domain.ErrConflict
		}
		user.ShopID = invitation.ShopID
		user.Role = entity.RoleCashier
	} else {
		if in.ShopName == "" {
			return nil, domain.ErrInvalidInput
		}
		shop := &entity.Shop{
			ID:            uuid.New().String(),
			Name:          in.ShopName,
			OwnerID:       user.ID,
			UsdToCdfRate:  entity.DefaultUsdToCdfRate,
			VatPercentage: entity.DefaultVatPercentage,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := uc.shopRepo.Create(shop); err != nil {
			return nil, err
		}
		user.ShopID = shop.ID
		user.Role = entity.RoleManager
	}

	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	if invitation != nil {
		if err := uc.invitationRepo.MarkUsed(invitation.ID, user.ID); err != nil {
			return nil, err
		}
	}
	return uc.session(user)
}

// Login valida credenciales y devuelve el token de sesión.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	user, err := uc.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	return uc.session(user)
}

// CreateInvitation emite una invitación de caissier (solo managers; el rol lo
// valida el middleware HTTP).
func (uc *UseCase) CreateInvitation(shopID, managerID string) (*dto.InvitationResponse, error) {
	inv := &entity.CashierInvitation{
		ID:        uuid.New().String(),
		ShopID:    shopID,
		CreatedBy: managerID,
		CreatedAt: time.Now(),
	}
	if err := uc.invitationRepo.Create(inv); err != nil {
		return nil, err
	}
	return toInvitationResponse(inv), nil
}

// ListInvitations invitaciones emitidas por la boutique.
func (uc *UseCase) ListInvitations(shopID string) ([]dto.InvitationResponse, error) {
	invs, err := uc.invitationRepo.ListByShop(shopID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvitationResponse, 0, len(invs))
	for _, inv := range invs {
		out = append(out, *toInvitationResponse(inv))
	}
	return out, nil
}

// ListUsers usuarios de la boutique (equipo).
func (uc *UseCase) ListUsers(shopID string) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.ListByShop(shopID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

func (uc *UseCase) session(user *entity.User) (*dto.LoginResponse, error) {
	token, err := uc.tokens.Generate(user.ID, user.ShopID, user.Role)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		ShopID:    u.ShopID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}

func toInvitationResponse(inv *entity.CashierInvitation) *dto.InvitationResponse {
	return &dto.InvitationResponse{
		Token:     inv.ID,
		ShopID:    inv.ShopID,
		IsUsed:    inv.IsUsed,
		CreatedAt: inv.CreatedAt,
	}
}
