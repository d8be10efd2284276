package repository

import (
	"context"

	"github.com/jhoicas/perfume-portal/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// FindByIdentifier busca por username o, para clientes, por cédula, email o teléfono del Client asociado.
	FindByIdentifier(ctx context.Context, identifier string) (*entity.User, error)
}
