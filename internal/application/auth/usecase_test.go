package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmutombo/redpos-api/internal/application/auth"
	"github.com/kmutombo/redpos-api/internal/application/dto"
	"github.com/kmutombo/redpos-api/internal/domain"
	"github.com/kmutombo/redpos-api/internal/domain/entity"
)

type fakeUserRepo struct {
	users map[string]*entity.User // por ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ListByShop(shopID string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.ShopID == shopID {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeShopRepo struct {
	shops map[string]*entity.Shop
}

func newFakeShopRepo() *fakeShopRepo {
	return &fakeShopRepo{shops: make(map[string]*entity.Shop)}
}

func (r *fakeShopRepo) Create(s *entity.Shop) error {
	cp := *s
	r.shops[s.ID] = &cp
	return nil
}

func (r *fakeShopRepo) GetByID(id string) (*entity.Shop, error) {
	s, ok := r.shops[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeShopRepo) Update(s *entity.Shop) error {
	cp := *s
	r.shops[s.ID] = &cp
	return nil
}

type fakeInvitationRepo struct {
	invitations map[string]*entity.CashierInvitation
}

func newFakeInvitationRepo() *fakeInvitationRepo {
	return &fakeInvitationRepo{invitations: make(map[string]*entity.CashierInvitation)}
}

func (r *fakeInvitationRepo) Create(inv *entity.CashierInvitation) error {
	cp := *inv
	r.invitations[inv.ID] = &cp
	return nil
}

func (r *fakeInvitationRepo) GetByID(id string) (*entity.CashierInvitation, error) {
	inv, ok := r.invitations[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInvitationRepo) MarkUsed(id, usedBy string) error {
	if inv, ok := r.invitations[id]; ok {
		inv.IsUsed = true
		inv.UsedBy = usedBy
	}
	return nil
}

func (r *fakeInvitationRepo) ListByShop(shopID string) ([]*entity.CashierInvitation, error) {
	var out []*entity.CashierInvitation
	for _, inv := range r.invitations {
		if inv.ShopID == shopID {
			cp := *inv
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeTokenIssuer emite tokens predecibles para poder afirmar sobre ellos.
type fakeTokenIssuer struct{}

func (fakeTokenIssuer) Generate(userID, shopID, role string) (string, error) {
	return "token:" + userID + ":" + shopID + ":" + role, nil
}

func newFixture() (*auth.UseCase, *fakeUserRepo, *fakeShopRepo, *fakeInvitationRepo) {
	users := newFakeUserRepo()
	shops := newFakeShopRepo()
	invitations := newFakeInvitationRepo()
	return auth.NewUseCase(users, shops, invitations, fakeTokenIssuer{}), users, shops, invitations
}

func TestRegister_ManagerCreaSuBoutique(t *testing.T) {
	uc, _, shops, _ := newFixture()

	resp, err := uc.Register(dto.RegisterRequest{
		Email:    "Kalala@Example.CD",
		Password: "motdepasse",
		Name:     "Kalala",
		ShopName: "Boutique Kalala",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleManager, resp.User.Role)
	assert.Equal(t, "kalala@example.cd", resp.User.Email, "email normalizado a minúsculas")
	assert.NotEmpty(t, resp.Token)

	// La boutique nace con el registro, con los valores por defecto.
	shop, err := shops.GetByID(resp.User.ShopID)
	require.NoError(t, err)
	require.NotNil(t, shop)
	assert.Equal(t, "Boutique Kalala", shop.Name)
	assert.Equal(t, resp.User.ID, shop.OwnerID)
	assert.True(t, entity.DefaultUsdToCdfRate.Equal(shop.UsdToCdfRate))
	assert.True(t, entity.DefaultVatPercentage.Equal(shop.VatPercentage))
}

func TestRegister_SinBoutiqueNiInvitacion(t *testing.T) {
	uc, _, _, _ := newFixture()

	_, err := uc.Register(dto.RegisterRequest{
		Email:    "x@example.cd",
		Password: "motdepasse",
		Name:     "X",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_PasswordCorto(t *testing.T) {
	uc, _, _, _ := newFixture()

	_, err := uc.Register(dto.RegisterRequest{
		Email:    "x@example.cd",
		Password: "court",
		Name:     "X",
		ShopName: "B",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _, _, _ := newFixture()

	req := dto.RegisterRequest{Email: "x@example.cd", Password: "motdepasse", Name: "X", ShopName: "B"}
	_, err := uc.Register(req)
	require.NoError(t, err)

	_, err = uc.Register(req)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_CaissierPorInvitacion(t *testing.T) {
	uc, _, _, invitations := newFixture()

	manager, err := uc.Register(dto.RegisterRequest{
		Email: "manager@example.cd", Password: "motdepasse", Name: "M", ShopName: "B",
	})
	require.NoError(t, err)

	inv, err := uc.CreateInvitation(manager.User.ShopID, manager.User.ID)
	require.NoError(t, err)

	cashier, err := uc.Register(dto.RegisterRequest{
		Email:           "caissier@example.cd",
		Password:        "motdepasse",
		Name:            "C",
		InvitationToken: inv.Token,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleCashier, cashier.User.Role)
	assert.Equal(t, manager.User.ShopID, cashier.User.ShopID, "se une a la boutique de la invitación")

	// La invitación se consume: un segundo uso debe fallar.
	stored, _ := invitations.GetByID(inv.Token)
	require.True(t, stored.IsUsed)
	assert.Equal(t, cashier.User.ID, stored.UsedBy)

	_, err = uc.Register(dto.RegisterRequest{
		Email:           "otro@example.cd",
		Password:        "motdepasse",
		Name:            "O",
		InvitationToken: inv.Token,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRegister_InvitacionInexistente(t *testing.T) {
	uc, _, _, _ := newFixture()

	_, err := uc.Register(dto.RegisterRequest{
		Email:           "x@example.cd",
		Password:        "motdepasse",
		Name:            "X",
		InvitationToken: "no-existe",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLogin(t *testing.T) {
	uc, users, _, _ := newFixture()

	registered, err := uc.Register(dto.RegisterRequest{
		Email: "x@example.cd", Password: "motdepasse", Name: "X", ShopName: "B",
	})
	require.NoError(t, err)

	// Credenciales correctas, con el email en otra capitalización.
	resp, err := uc.Login(dto.LoginRequest{Email: "X@Example.CD", Password: "motdepasse"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, resp.User.ID)
	assert.NotEmpty(t, resp.Token)

	// Password incorrecto y usuario desconocido: mismo error, sin filtrar cuál.
	_, err = uc.Login(dto.LoginRequest{Email: "x@example.cd", Password: "incorrecto"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(dto.LoginRequest{Email: "nadie@example.cd", Password: "motdepasse"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Cuenta suspendida.
	u := users.users[registered.User.ID]
	u.Status = "suspended"
	_, err = uc.Login(dto.LoginRequest{Email: "x@example.cd", Password: "motdepasse"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
