package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus estado de un cobro.
type PaymentStatus string

// Estados válidos de Payment.
const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
	PaymentOverdue PaymentStatus = "overdue"
)

// IsValid indica si el estado pertenece al conjunto conocido.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPaid, PaymentPending, PaymentOverdue:
		return true
	}
	return false
}

// Payment representa un cobro emitido a un cliente.
// PaidDate debería existir solo cuando Status es paid; no se fuerza aquí.
type Payment struct {
	ID          string
	ClientID    string
	Amount      decimal.Decimal
	DueDate     time.Time
	PaidDate    *time.Time
	Status      PaymentStatus
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnerID implementa ClientRef.
func (p Payment) OwnerID() string { return p.ClientID }
