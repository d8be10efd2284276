package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/perfume-portal/internal/application/dto"
	"github.com/jhoicas/perfume-portal/internal/domain"
	"github.com/jhoicas/perfume-portal/internal/domain/entity"
	"github.com/jhoicas/perfume-portal/internal/domain/repository"
	"github.com/jhoicas/perfume-portal/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, logout y revocación.
type AuthUseCase struct {
	userRepo repository.UserRepository
	denylist repository.TokenDenylist
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, denylist repository.TokenDenylist, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, denylist: denylist, jwtCfg: jwtCfg}
}

// Login verifica identificador/password, genera JWT y retorna token + usuario.
// El identificador puede ser el usuario, la cédula, el email o el teléfono del cliente.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	identifier := strings.TrimSpace(in.Identifier)
	if identifier == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	if user.Role == entity.RoleClient && user.ClientID == "" {
		return nil, fmt.Errorf("%w: usuario cliente sin client_id", domain.ErrInvalidInput)
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Subject{
		UserID:   user.ID,
		Name:     user.Name,
		Role:     user.Role,
		ClientID: user.ClientID,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute),
		User:      ToUserResponse(entity.Session{UserID: user.ID, Name: user.Name, Role: user.Role, ClientID: user.ClientID}),
	}, nil
}

// Logout revoca el token (jti) hasta su expiración.
func (uc *AuthUseCase) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return domain.ErrInvalidInput
	}
	if !expiresAt.After(time.Now()) {
		return nil // ya expiró, no hay nada que revocar
	}
	return uc.denylist.Revoke(ctx, tokenID, expiresAt)
}

// IsRevoked indica si el token fue revocado por logout.
func (uc *AuthUseCase) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}
	return uc.denylist.IsRevoked(ctx, tokenID)
}

// ToUserResponse sesión -> DTO.
func ToUserResponse(s entity.Session) dto.UserResponse {
	return dto.UserResponse{
		ID:       s.UserID,
		Name:     s.Name,
		Role:     s.Role,
		ClientID: s.ClientID,
	}
}

// HashPassword genera el hash bcrypt de una contraseña.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
