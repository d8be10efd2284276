package repository

import (
	"context"

	"github.com/jhoicas/perfume-portal/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	// List devuelve todos los pedidos, más recientes primero.
	List(ctx context.Context) ([]entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
}
