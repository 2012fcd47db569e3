package dto

import "time"

// RegisterRequest body de POST /api/auth/register.
// Sin InvitationToken se crea un manager con su propia boutique; con token el
// usuario se une como caissier a la boutique de la invitación.
type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	Name            string `json:"name"`
	ShopName        string `json:"shop_name,omitempty"`
	InvitationToken string `json:"invitation_token,omitempty"`
}

// LoginRequest body de POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse usuario sin datos sensibles.
type UserResponse struct {
	ID        string    `json:"id"`
	ShopID    string    `json:"shop_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse token + usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// InvitationResponse invitación de caissier emitida.
type InvitationResponse struct {
	Token     string    `json:"token"`
	ShopID    string    `json:"shop_id"`
	IsUsed    bool      `json:"is_used"`
	CreatedAt time.Time `json:"created_at"`
}
