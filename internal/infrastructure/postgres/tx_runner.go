package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/perfume-portal/internal/application/usecase"
	"github.com/jhoicas/perfume-portal/internal/domain/repository"
	"github.com/jhoicas/perfume-portal/internal/infrastructure/seed"
)

var _ usecase.ClientTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunClient inicia una transacción, ejecuta fn con repos de clientes y usuarios atados a la tx
// y hace Commit o Rollback.
func (r *TxRunner) RunClient(ctx context.Context, fn func(
	clientRepo repository.ClientRepository,
	userRepo repository.UserRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewClientRepository(tx), NewUserRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Seed inserta el snapshot de demostración en una sola transacción.
// Los registros que ya existen (mismo ID) se dejan como están.
func (r *TxRunner) Seed(ctx context.Context, data seed.Data) (inserted int, err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, c := range data.Clients {
		tag, err := tx.Exec(ctx, `
			INSERT INTO clients (`+clientColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO NOTHING`,
			c.ID, c.Name, nullString(c.IDNumber), nullString(c.Email), nullString(c.Phone), c.CreatedAt, c.UpdatedAt)
		if err != nil {
			return 0, fmt.Errorf("seed client %s: %w", c.ID, err)
		}
		inserted += int(tag.RowsAffected())
	}
	for _, p := range data.Payments {
		tag, err := tx.Exec(ctx, `
			INSERT INTO payments (`+paymentColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (id) DO NOTHING`,
			p.ID, p.ClientID, p.Amount, dateOnly(p.DueDate), dateOnlyPtr(p.PaidDate), string(p.Status), p.Description,
			p.CreatedAt, p.UpdatedAt)
		if err != nil {
			return 0, fmt.Errorf("seed payment %s: %w", p.ID, err)
		}
		inserted += int(tag.RowsAffected())
	}
	for _, o := range data.Orders {
		tag, err := tx.Exec(ctx, `
			INSERT INTO orders (`+orderColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (id) DO NOTHING`,
			o.ID, o.ClientID, o.Description, o.Amount, string(o.Status), o.Notes, o.CreatedAt, o.CompletedAt, o.UpdatedAt)
		if err != nil {
			return 0, fmt.Errorf("seed order %s: %w", o.ID, err)
		}
		inserted += int(tag.RowsAffected())
	}
	for _, u := range data.Users {
		tag, err := tx.Exec(ctx, `
			INSERT INTO users (id, username, name, password_hash, role, client_id, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (id) DO NOTHING`,
			u.ID, nullString(u.Username), u.Name, u.PasswordHash, u.Role, nullString(u.ClientID), u.Status,
			u.CreatedAt, u.UpdatedAt)
		if err != nil {
			return 0, fmt.Errorf("seed user %s: %w", u.ID, err)
		}
		inserted += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return inserted, nil
}
