package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/perfume-portal/internal/domain"
	"github.com/jhoicas/perfume-portal/internal/domain/entity"
	"github.com/jhoicas/perfume-portal/internal/domain/repository"
	"github.com/jhoicas/perfume-portal/internal/infrastructure/seed"
	"github.com/jhoicas/perfume-portal/pkg/config"
	"github.com/jhoicas/perfume-portal/pkg/logger"
)

// newTestPool levanta PostgreSQL en Docker, aplica las migraciones embebidas y carga la demo.
// Sin Docker (o con -short) el test se salta.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("integración con PostgreSQL: omitido en -short")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("portal_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "no se pudo iniciar el contenedor PostgreSQL")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	mg, err := NewMigrator(dsn, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, mg.Up())
	require.NoError(t, mg.Close())

	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: dsn, MaxConns: 4, MinConns: 0})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	data, err := seed.Demo(func(pw string) (string, error) { return "hash:" + pw, nil })
	require.NoError(t, err)
	n, err := NewTxRunner(pool).Seed(ctx, data)
	require.NoError(t, err)
	require.Equal(t, len(data.Clients)+len(data.Payments)+len(data.Orders)+len(data.Users), n)

	return pool
}

func TestPostgres_Integracion(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()

	t.Run("SeedIdempotente", func(t *testing.T) {
		data, err := seed.Demo(func(pw string) (string, error) { return "hash:" + pw, nil })
		require.NoError(t, err)
		n, err := NewTxRunner(pool).Seed(ctx, data)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("Clientes", func(t *testing.T) {
		repo := NewClientRepository(pool)

		list, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 3)

		c, err := repo.GetByID(ctx, "client1")
		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, "สมชาย ใจดี", c.Name)
		assert.Equal(t, "1234567890123", c.IDNumber)

		missing, err := repo.GetByID(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, missing)

		c2, err := repo.GetByID(ctx, "client2")
		require.NoError(t, err)
		assert.Empty(t, c2.IDNumber)

		c.Email = "somchai@new.com"
		require.NoError(t, repo.Update(ctx, c))
		got, err := repo.GetByID(ctx, "client1")
		require.NoError(t, err)
		assert.Equal(t, "somchai@new.com", got.Email)

		assert.ErrorIs(t, repo.Update(ctx, &entity.Client{ID: "nope", Name: "x"}), domain.ErrNotFound)
		assert.ErrorIs(t, repo.Create(ctx, &entity.Client{ID: "client1", Name: "dup"}), domain.ErrDuplicate)
	})

	t.Run("Cobros", func(t *testing.T) {
		repo := NewPaymentRepository(pool)

		p, err := repo.GetByID(ctx, "pay3")
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.True(t, decimal.NewFromInt(3200).Equal(p.Amount))
		assert.Equal(t, entity.PaymentPaid, p.Status)
		require.NotNil(t, p.PaidDate)
		assert.Equal(t, "2024-11-28", p.PaidDate.Format("2006-01-02"))

		now := time.Now()
		err = repo.Create(ctx, &entity.Payment{
			ID: "pay-x", ClientID: "nope", Amount: decimal.NewFromInt(10), DueDate: now,
			Status: entity.PaymentPending, Description: "x", CreatedAt: now, UpdatedAt: now,
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)

		pending, err := repo.GetByID(ctx, "pay2")
		require.NoError(t, err)
		pending.Status = entity.PaymentPaid
		pending.PaidDate = &now
		require.NoError(t, repo.Update(ctx, pending))

		got, err := repo.GetByID(ctx, "pay2")
		require.NoError(t, err)
		assert.Equal(t, entity.PaymentPaid, got.Status)
		assert.NotNil(t, got.PaidDate)

		list, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 5)
	})

	t.Run("Pedidos", func(t *testing.T) {
		repo := NewOrderRepository(pool)
		now := time.Now().UTC().Truncate(time.Second)

		o := &entity.Order{
			ID: "ord-x", ClientID: "client2", Description: "Oud Night - 50ml", Amount: decimal.RequireFromString("3150.50"),
			Status: entity.OrderPending, CreatedAt: now, UpdatedAt: now, Notes: "sin alcohol",
		}
		require.NoError(t, repo.Create(ctx, o))

		got, err := repo.GetByID(ctx, "ord-x")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, o.Amount.Equal(got.Amount))
		assert.Equal(t, "sin alcohol", got.Notes)
		assert.Nil(t, got.CompletedAt)

		// completed -> cancelled deja completed_at en NULL
		done, err := repo.GetByID(ctx, "ord1")
		require.NoError(t, err)
		require.NotNil(t, done.CompletedAt)
		done.Status = entity.OrderCancelled
		done.CompletedAt = nil
		require.NoError(t, repo.Update(ctx, done))
		got, err = repo.GetByID(ctx, "ord1")
		require.NoError(t, err)
		assert.Nil(t, got.CompletedAt)

		assert.ErrorIs(t, repo.Update(ctx, &entity.Order{ID: "nope", Status: entity.OrderPending}), domain.ErrNotFound)
	})

	t.Run("UsuariosPorIdentificador", func(t *testing.T) {
		repo := NewUserRepository(pool)

		admin, err := repo.FindByIdentifier(ctx, "admin")
		require.NoError(t, err)
		require.NotNil(t, admin)
		assert.Equal(t, entity.RoleAdmin, admin.Role)

		byIDNumber, err := repo.FindByIdentifier(ctx, "1234567890123")
		require.NoError(t, err)
		require.NotNil(t, byIDNumber)
		assert.Equal(t, "client1", byIDNumber.ClientID)

		byPhone, err := repo.FindByIdentifier(ctx, "+66-87-654-3210")
		require.NoError(t, err)
		require.NotNil(t, byPhone)
		assert.Equal(t, "client2", byPhone.ClientID)

		none, err := repo.FindByIdentifier(ctx, "nadie")
		require.NoError(t, err)
		assert.Nil(t, none)
	})

	t.Run("TxRunnerCommitYRollback", func(t *testing.T) {
		runner := NewTxRunner(pool)
		clients := NewClientRepository(pool)
		now := time.Now()

		boom := errors.New("fallo simulado")
		err := runner.RunClient(ctx, func(c repository.ClientRepository, u repository.UserRepository) error {
			if err := c.Create(ctx, &entity.Client{ID: "client-rb", Name: "Rollback", CreatedAt: now, UpdatedAt: now}); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)
		got, err := clients.GetByID(ctx, "client-rb")
		require.NoError(t, err)
		assert.Nil(t, got)

		err = runner.RunClient(ctx, func(c repository.ClientRepository, u repository.UserRepository) error {
			if err := c.Create(ctx, &entity.Client{ID: "client-ok", Name: "Mali", Phone: "080-111-2222", CreatedAt: now, UpdatedAt: now}); err != nil {
				return err
			}
			return u.Create(ctx, &entity.User{
				ID: "user-ok", Name: "Mali", PasswordHash: "hash:x", Role: entity.RoleClient,
				ClientID: "client-ok", Status: "active", CreatedAt: now, UpdatedAt: now,
			})
		})
		require.NoError(t, err)

		u, err := NewUserRepository(pool).FindByIdentifier(ctx, "080-111-2222")
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, "user-ok", u.ID)
	})
}
