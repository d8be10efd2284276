package redis

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/jhoicas/perfume-portal/pkg/config"
)

// newTestClient levanta Redis en Docker. Sin Docker (o con -short) el test se salta.
func newTestClient(t *testing.T) *goredis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("integración con Redis: omitido en -short")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err, "no se pudo iniciar el contenedor Redis")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := goredis.ParseURL(uri)
	require.NoError(t, err)

	client, err := NewClient(ctx, config.RedisConfig{Addr: opts.Addr})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestTokenDenylist_RevocarYConsultar(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	d := NewTokenDenylist(client)

	revoked, err := d.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, d.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))

	revoked, err = d.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	// la clave vive lo mismo que el token
	ttl, err := client.TTL(ctx, key("jti-1")).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 59*time.Minute)
	assert.LessOrEqual(t, ttl, time.Hour)

	revoked, err = d.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestTokenDenylist_ExpiraConElToken(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	d := NewTokenDenylist(client)

	require.NoError(t, d.Revoke(ctx, "jti-corto", time.Now().Add(time.Second)))
	revoked, err := d.IsRevoked(ctx, "jti-corto")
	require.NoError(t, err)
	assert.True(t, revoked)

	assert.Eventually(t, func() bool {
		r, err := d.IsRevoked(ctx, "jti-corto")
		return err == nil && !r
	}, 5*time.Second, 100*time.Millisecond)
}
