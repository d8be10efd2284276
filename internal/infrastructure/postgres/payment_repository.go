package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/perfume-portal/internal/domain"
	"github.com/jhoicas/perfume-portal/internal/domain/entity"
	"github.com/jhoicas/perfume-portal/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository. amount es NUMERIC(12,2) (codec pgx-shopspring-decimal).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador.
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

const paymentColumns = `id, client_id, amount, due_date, paid_date, status, description, created_at, updated_at`

// Create persiste un cobro. Cliente inexistente -> ErrNotFound.
func (r *PaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.ClientID, p.Amount, dateOnly(p.DueDate), dateOnlyPtr(p.PaidDate), string(p.Status), p.Description,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isForeignKeyViolation(err):
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID obtiene un cobro por ID.
func (r *PaymentRepo) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	p, err := scanPayment(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return p, nil
}

// List todos los cobros por vencimiento descendente.
func (r *PaymentRepo) List(ctx context.Context) ([]entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY due_date DESC, id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var list []entity.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, *p)
	}
	return list, rows.Err()
}

// Update guarda estado, fecha de pago y datos editables.
func (r *PaymentRepo) Update(ctx context.Context, p *entity.Payment) error {
	query := `
		UPDATE payments
		SET amount = $2, due_date = $3, paid_date = $4, status = $5, description = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		p.ID, p.Amount, dateOnly(p.DueDate), dateOnlyPtr(p.PaidDate), string(p.Status), p.Description, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanPayment(row pgx.Row) (*entity.Payment, error) {
	var (
		p      entity.Payment
		status string
	)
	if err := row.Scan(&p.ID, &p.ClientID, &p.Amount, &p.DueDate, &p.PaidDate, &status, &p.Description,
		&p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Status = entity.PaymentStatus(status)
	return &p, nil
}
