package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/perfume-portal/internal/application/auth"
	"github.com/jhoicas/perfume-portal/internal/application/dto"
	"github.com/jhoicas/perfume-portal/internal/domain"
	"github.com/jhoicas/perfume-portal/internal/domain/entity"
	"github.com/jhoicas/perfume-portal/internal/infrastructure/memory"
	"github.com/jhoicas/perfume-portal/internal/infrastructure/seed"
	"github.com/jhoicas/perfume-portal/pkg/jwt"
)

const secret = "test-secret"

func cheapHash(p string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(p), bcrypt.MinCost)
	return string(b), err
}

func newAuth(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	data, err := seed.Demo(cheapHash)
	require.NoError(t, err)
	store := memory.NewStore(data)
	return auth.NewAuthUseCase(memory.NewUserRepository(store), memory.NewTokenDenylist(), auth.JWTConfig{
		Secret: secret, ExpMinutes: 30, Issuer: "perfume-portal",
	})
}

func TestLogin_PorIdentificadores(t *testing.T) {
	uc := newAuth(t)
	ctx := context.Background()

	cases := []struct {
		identifier, password, wantRole, wantClient string
	}{
		{"admin", "admin", entity.RoleAdmin, ""},
		{"1234567890123", "client1", entity.RoleClient, "client1"},
		{"JOHN@email.com", "client2", entity.RoleClient, "client2"},
		{"+66-87-654-3210", "client2", entity.RoleClient, "client2"},
	}
	for _, tc := range cases {
		out, err := uc.Login(ctx, dto.LoginRequest{Identifier: tc.identifier, Password: tc.password})
		require.NoError(t, err, tc.identifier)
		assert.Equal(t, tc.wantRole, out.User.Role)
		assert.Equal(t, tc.wantClient, out.User.ClientID)

		claims, err := jwt.Parse(secret, out.Token)
		require.NoError(t, err)
		assert.Equal(t, tc.wantClient, claims.ClientID)
		assert.NotEmpty(t, claims.ID)
	}
}

func TestLogin_Errores(t *testing.T) {
	uc := newAuth(t)
	ctx := context.Background()

	_, err := uc.Login(ctx, dto.LoginRequest{Identifier: "admin", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Identifier: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Login(ctx, dto.LoginRequest{Identifier: "  ", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogout_RevocaHastaExpirar(t *testing.T) {
	uc := newAuth(t)
	ctx := context.Background()

	require.NoError(t, uc.Logout(ctx, "jti-1", time.Now().Add(time.Hour)))
	revoked, err := uc.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	// token ya vencido: no se guarda
	require.NoError(t, uc.Logout(ctx, "jti-2", time.Now().Add(-time.Minute)))
	revoked, err = uc.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)

	assert.ErrorIs(t, uc.Logout(ctx, "", time.Now().Add(time.Hour)), domain.ErrInvalidInput)
}
