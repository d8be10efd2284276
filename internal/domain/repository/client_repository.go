package repository

import (
	"context"

	"github.com/jhoicas/perfume-portal/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	// List devuelve el snapshot completo, más recientes primero.
	List(ctx context.Context) ([]entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
}
