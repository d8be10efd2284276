package dto

import "time"

// LoginRequest entrada de login. Identifier puede ser usuario, cédula, email o teléfono.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required,max=200"`
	Password   string `json:"password" validate:"required"`
}

// UserResponse usuario autenticado (sin password).
type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	ClientID string `json:"client_id,omitempty"`
}

// LoginResponse token JWT + usuario.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}
