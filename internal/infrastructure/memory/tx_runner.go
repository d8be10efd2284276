package memory

import (
	"context"

	"github.com/jhoicas/perfume-portal/internal/application/usecase"
	"github.com/jhoicas/perfume-portal/internal/domain/repository"
)

var _ usecase.ClientTxRunner = (*TxRunner)(nil)

// TxRunner emula una transacción: si fn falla se restaura el snapshot previo.
// No aísla escrituras concurrentes; alcanza para el modo demo y los tests.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner.
func NewTxRunner(s *Store) *TxRunner { return &TxRunner{s: s} }

// RunClient ejecuta fn con los repos de clientes y usuarios.
func (r *TxRunner) RunClient(ctx context.Context, fn func(
	clientRepo repository.ClientRepository,
	userRepo repository.UserRepository,
) error) error {
	before := r.s.snapshot()
	if err := fn(NewClientRepository(r.s), NewUserRepository(r.s)); err != nil {
		r.s.restore(before)
		return err
	}
	return nil
}
