package usecase

import (
	"context"

	"github.com/jhoicas/perfume-portal/internal/domain/repository"
)

// ClientTxRunner ejecuta fn dentro de una transacción con los repos de clientes y usuarios
// (alta de cliente + acceso al portal en un solo paso).
type ClientTxRunner interface {
	RunClient(ctx context.Context, fn func(
		clientRepo repository.ClientRepository,
		userRepo repository.UserRepository,
	) error) error
}
