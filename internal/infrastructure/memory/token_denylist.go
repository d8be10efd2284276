package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/perfume-portal/internal/domain/repository"
)

var _ repository.TokenDenylist = (*TokenDenylist)(nil)

// TokenDenylist lista de tokens revocados en memoria (sin Redis).
type TokenDenylist struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

// NewTokenDenylist construye la lista vacía.
func NewTokenDenylist() *TokenDenylist {
	return &TokenDenylist{entries: make(map[string]time.Time), now: time.Now}
}

// Revoke marca el token como revocado hasta expiresAt.
func (d *TokenDenylist) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.purge()
	d.entries[tokenID] = expiresAt
	return nil
}

// IsRevoked indica si el token está revocado y aún no expiró.
func (d *TokenDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	exp, ok := d.entries[tokenID]
	if !ok {
		return false, nil
	}
	if !exp.After(d.now()) {
		delete(d.entries, tokenID)
		return false, nil
	}
	return true, nil
}

func (d *TokenDenylist) purge() {
	now := d.now()
	for id, exp := range d.entries {
		if !exp.After(now) {
			delete(d.entries, id)
		}
	}
}
