package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado de un pedido de perfume personalizado.
type OrderStatus string

// Estados válidos de Order.
const (
	OrderPending    OrderStatus = "pending"
	OrderInProgress OrderStatus = "in-progress"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

// IsValid indica si el estado pertenece al conjunto conocido.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderInProgress, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// IsActive: pendiente o en elaboración.
func (s OrderStatus) IsActive() bool {
	return s == OrderPending || s == OrderInProgress
}

// Order representa un pedido de fragancia personalizada.
type Order struct {
	ID          string
	ClientID    string
	Description string
	Amount      decimal.Decimal
	Status      OrderStatus
	Notes       string
	CreatedAt   time.Time
	CompletedAt *time.Time // solo debería existir con Status completed
	UpdatedAt   time.Time
}

// OwnerID implementa ClientRef.
func (o Order) OwnerID() string { return o.ClientID }
