package portal

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/jhoicas/perfume-portal/internal/domain"
	"github.com/jhoicas/perfume-portal/internal/domain/entity"
)

// ScopeForSession decide qué cobros y pedidos ve la sesión:
// admin ve todo; client solo lo suyo (FilterByClient con su ClientID).
func ScopeForSession(s entity.Session, payments []entity.Payment, orders []entity.Order) ([]entity.Payment, []entity.Order, error) {
	scopedPayments, err := ScopeRecords(s, payments)
	if err != nil {
		return nil, nil, err
	}
	scopedOrders, err := ScopeRecords(s, orders)
	if err != nil {
		return nil, nil, err
	}
	return scopedPayments, scopedOrders, nil
}

// ScopeRecords aplica la misma regla de visibilidad a una sola colección.
func ScopeRecords[T entity.ClientRef](s entity.Session, records []T) ([]T, error) {
	switch s.Role {
	case entity.RoleAdmin:
		return records, nil
	case entity.RoleClient:
		if s.ClientID == "" {
			return nil, fmt.Errorf("%w: sesión de cliente sin client_id", domain.ErrInvalidInput)
		}
		return FilterByClient(records, s.ClientID), nil
	default:
		return nil, fmt.Errorf("%w: rol %q", domain.ErrInvalidInput, s.Role)
	}
}

// Reorderable solo los pedidos completados pueden repetirse tal cual.
func Reorderable(o entity.Order) bool {
	return o.Status == entity.OrderCompleted
}

// PartitionPayments agrupa por estado; dentro de cada grupo se conserva el orden de entrada.
func PartitionPayments(payments []entity.Payment) (map[entity.PaymentStatus][]entity.Payment, error) {
	groups := make(map[entity.PaymentStatus][]entity.Payment, 3)
	for _, p := range payments {
		if !p.Status.IsValid() {
			return nil, fmt.Errorf("%w: estado de pago %q en %s", domain.ErrInvalidInput, p.Status, p.ID)
		}
		groups[p.Status] = append(groups[p.Status], p)
	}
	return groups, nil
}

// PartitionOrders agrupa por estado; dentro de cada grupo se conserva el orden de entrada.
func PartitionOrders(orders []entity.Order) (map[entity.OrderStatus][]entity.Order, error) {
	groups := make(map[entity.OrderStatus][]entity.Order, 4)
	for _, o := range orders {
		if !o.Status.IsValid() {
			return nil, fmt.Errorf("%w: estado de pedido %q en %s", domain.ErrInvalidInput, o.Status, o.ID)
		}
		groups[o.Status] = append(groups[o.Status], o)
	}
	return groups, nil
}

// SortPaymentsByDueDate copia ordenada por vencimiento, el más reciente primero (estable).
func SortPaymentsByDueDate(payments []entity.Payment) []entity.Payment {
	out := slices.Clone(payments)
	slices.SortStableFunc(out, func(a, b entity.Payment) int {
		return b.DueDate.Compare(a.DueDate)
	})
	return out
}

// SortOrdersByCreatedAt copia ordenada por fecha de creación, el más reciente primero (estable).
func SortOrdersByCreatedAt(orders []entity.Order) []entity.Order {
	out := slices.Clone(orders)
	slices.SortStableFunc(out, func(a, b entity.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out
}

// SortClientsByName copia ordenada por nombre (estable).
func SortClientsByName(clients []entity.Client) []entity.Client {
	out := slices.Clone(clients)
	slices.SortStableFunc(out, func(a, b entity.Client) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}
