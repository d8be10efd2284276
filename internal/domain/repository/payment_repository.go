package repository

import (
	"context"

	"github.com/jhoicas/perfume-portal/internal/domain/entity"
)

// PaymentRepository define el puerto de persistencia para Payment.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	GetByID(ctx context.Context, id string) (*entity.Payment, error)
	// List devuelve todos los cobros ordenados por vencimiento descendente.
	List(ctx context.Context) ([]entity.Payment, error)
	Update(ctx context.Context, payment *entity.Payment) error
}
