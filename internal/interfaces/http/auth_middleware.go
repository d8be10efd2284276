package http

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/perfume-portal/internal/application/dto"
	"github.com/jhoicas/perfume-portal/internal/domain/entity"
	"github.com/jhoicas/perfume-portal/pkg/jwt"
)

// Locals keys que deja AuthMiddleware en Fiber.
const (
	LocalUserID      = "user_id"
	LocalName        = "name"
	LocalRole        = "role"
	LocalClientID    = "client_id"
	LocalTokenID     = "token_id"
	LocalTokenExpiry = "token_expiry"
)

// revocationChecker contrato mínimo para consultar la lista de tokens revocados.
// Lo implementa *auth.AuthUseCase.
type revocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthMiddleware valida el Bearer Token JWT y carga la sesión en c.Locals.
// Si checker no es nil, rechaza los tokens revocados por logout.
func AuthMiddleware(jwtSecret string, checker revocationChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if checker != nil && claims.ID != "" {
			revoked, err := checker.IsRevoked(c.UserContext(), claims.ID)
			if err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
					Code:    "REVOCATION_CHECK_FAILED",
					Message: "no se pudo verificar el token, intente más tarde",
				})
			}
			if revoked {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_REVOKED", Message: "sesión cerrada"})
			}
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalName, claims.Name)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalClientID, claims.ClientID)
		c.Locals(LocalTokenID, claims.ID)
		if claims.ExpiresAt != nil {
			c.Locals(LocalTokenExpiry, claims.ExpiresAt.Time)
		}
		return c.Next()
	}
}

// RequireRole autoriza solo a los roles indicados. Usar después de AuthMiddleware.
// Token sin rol -> 401 MISSING_ROLE; rol no permitido -> 403 FORBIDDEN.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		if !slices.Contains(roles, role) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "no tiene permisos para este recurso"})
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetRole devuelve el rol del token.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

// GetClientID devuelve el ClientID del token (vacío para admin).
func GetClientID(c *fiber.Ctx) string { return localString(c, LocalClientID) }

// GetTokenID devuelve el jti del token.
func GetTokenID(c *fiber.Ctx) string { return localString(c, LocalTokenID) }

// GetTokenExpiry devuelve la expiración del token (zero si no vino).
func GetTokenExpiry(c *fiber.Ctx) time.Time {
	t, _ := c.Locals(LocalTokenExpiry).(time.Time)
	return t
}

// GetSession arma la sesión que reciben los casos de uso.
func GetSession(c *fiber.Ctx) entity.Session {
	return entity.Session{
		UserID:   GetUserID(c),
		Name:     localString(c, LocalName),
		Role:     GetRole(c),
		ClientID: GetClientID(c),
	}
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
