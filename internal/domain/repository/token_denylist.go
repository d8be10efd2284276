package repository

import (
	"context"
	"time"
)

// TokenDenylist guarda los IDs (jti) de tokens revocados por logout hasta su expiración.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
