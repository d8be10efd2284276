// Package memory adaptadores en memoria de los repositorios del portal.
// Sirven para el modo demo (APP_DATA_SOURCE=memory) y para los tests de casos de uso.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/jhoicas/perfume-portal/internal/domain"
	"github.com/jhoicas/perfume-portal/internal/domain/entity"
	"github.com/jhoicas/perfume-portal/internal/domain/repository"
	"github.com/jhoicas/perfume-portal/internal/infrastructure/seed"
)

// Store datos compartidos por los repositorios en memoria.
type Store struct {
	mu       sync.RWMutex
	clients  []entity.Client
	payments []entity.Payment
	orders   []entity.Order
	users    []entity.User
}

// NewStore crea un store con el snapshot inicial.
func NewStore(data seed.Data) *Store {
	return &Store{
		clients:  slices.Clone(data.Clients),
		payments: slices.Clone(data.Payments),
		orders:   slices.Clone(data.Orders),
		users:    slices.Clone(data.Users),
	}
}

type snapshot struct {
	clients  []entity.Client
	payments []entity.Payment
	orders   []entity.Order
	users    []entity.User
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{slices.Clone(s.clients), slices.Clone(s.payments), slices.Clone(s.orders), slices.Clone(s.users)}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients, s.payments, s.orders, s.users = snap.clients, snap.payments, snap.orders, snap.users
}

// ── Clients ──────────────────────────────────────────────────────────────────

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo ClientRepository en memoria.
type ClientRepo struct{ s *Store }

// NewClientRepository construye el adaptador.
func NewClientRepository(s *Store) *ClientRepo { return &ClientRepo{s: s} }

// Create agrega un cliente; ID repetido o cédula repetida -> ErrDuplicate.
func (r *ClientRepo) Create(_ context.Context, c *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.clients {
		if existing.ID == c.ID || (c.IDNumber != "" && existing.IDNumber == c.IDNumber) {
			return domain.ErrDuplicate
		}
	}
	r.s.clients = append(r.s.clients, *c)
	return nil
}

// GetByID devuelve nil, nil si no existe.
func (r *ClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.clients {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, nil
}

// List clientes, más recientes primero.
func (r *ClientRepo) List(_ context.Context) ([]entity.Client, error) {
	r.s.mu.RLock()
	out := slices.Clone(r.s.clients)
	r.s.mu.RUnlock()
	slices.SortStableFunc(out, func(a, b entity.Client) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out, nil
}

// Update reemplaza el cliente con el mismo ID.
func (r *ClientRepo) Update(_ context.Context, c *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.clients {
		if r.s.clients[i].ID == c.ID {
			r.s.clients[i] = *c
			return nil
		}
	}
	return domain.ErrNotFound
}

// ── Payments ─────────────────────────────────────────────────────────────────

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo PaymentRepository en memoria.
type PaymentRepo struct{ s *Store }

// NewPaymentRepository construye el adaptador.
func NewPaymentRepository(s *Store) *PaymentRepo { return &PaymentRepo{s: s} }

// Create agrega un cobro.
func (r *PaymentRepo) Create(_ context.Context, p *entity.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.payments {
		if existing.ID == p.ID {
			return domain.ErrDuplicate
		}
	}
	r.s.payments = append(r.s.payments, *p)
	return nil
}

// GetByID devuelve nil, nil si no existe.
func (r *PaymentRepo) GetByID(_ context.Context, id string) (*entity.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.payments {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

// List cobros por vencimiento descendente.
func (r *PaymentRepo) List(_ context.Context) ([]entity.Payment, error) {
	r.s.mu.RLock()
	out := slices.Clone(r.s.payments)
	r.s.mu.RUnlock()
	slices.SortStableFunc(out, func(a, b entity.Payment) int { return b.DueDate.Compare(a.DueDate) })
	return out, nil
}

// Update reemplaza el cobro con el mismo ID.
func (r *PaymentRepo) Update(_ context.Context, p *entity.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.payments {
		if r.s.payments[i].ID == p.ID {
			r.s.payments[i] = *p
			return nil
		}
	}
	return domain.ErrNotFound
}

// ── Orders ───────────────────────────────────────────────────────────────────

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo OrderRepository en memoria.
type OrderRepo struct{ s *Store }

// NewOrderRepository construye el adaptador.
func NewOrderRepository(s *Store) *OrderRepo { return &OrderRepo{s: s} }

// Create agrega un pedido.
func (r *OrderRepo) Create(_ context.Context, o *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.orders {
		if existing.ID == o.ID {
			return domain.ErrDuplicate
		}
	}
	r.s.orders = append(r.s.orders, *o)
	return nil
}

// GetByID devuelve nil, nil si no existe.
func (r *OrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, o := range r.s.orders {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, nil
}

// List pedidos, más recientes primero.
func (r *OrderRepo) List(_ context.Context) ([]entity.Order, error) {
	r.s.mu.RLock()
	out := slices.Clone(r.s.orders)
	r.s.mu.RUnlock()
	slices.SortStableFunc(out, func(a, b entity.Order) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out, nil
}

// Update reemplaza el pedido con el mismo ID.
func (r *OrderRepo) Update(_ context.Context, o *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.orders {
		if r.s.orders[i].ID == o.ID {
			r.s.orders[i] = *o
			return nil
		}
	}
	return domain.ErrNotFound
}

// ── Users ────────────────────────────────────────────────────────────────────

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo UserRepository en memoria.
type UserRepo struct{ s *Store }

// NewUserRepository construye el adaptador.
func NewUserRepository(s *Store) *UserRepo { return &UserRepo{s: s} }

// Create agrega un usuario; username repetido -> ErrDuplicate.
func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.ID == u.ID || (u.Username != "" && strings.EqualFold(existing.Username, u.Username)) {
			return domain.ErrDuplicate
		}
	}
	r.s.users = append(r.s.users, *u)
	return nil
}

// GetByID devuelve nil, nil si no existe.
func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, nil
}

// FindByIdentifier busca por username o por cédula/email/teléfono del cliente asociado.
func (r *UserRepo) FindByIdentifier(_ context.Context, identifier string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Username != "" && strings.EqualFold(u.Username, identifier) {
			return &u, nil
		}
	}
	for _, c := range r.s.clients {
		if !matchesClient(c, identifier) {
			continue
		}
		for _, u := range r.s.users {
			if u.Role == entity.RoleClient && u.ClientID == c.ID {
				return &u, nil
			}
		}
	}
	return nil, nil
}

func matchesClient(c entity.Client, identifier string) bool {
	return (c.IDNumber != "" && c.IDNumber == identifier) ||
		(c.Email != "" && strings.EqualFold(c.Email, identifier)) ||
		(c.Phone != "" && c.Phone == identifier)
}
