// Package portal contiene el motor de agregación y clasificación del portal de clientes:
// estadísticas del panel de administración, unión de registros con su cliente, filtrado por
// cliente, clasificación visual por estado y el payload (simulado) del QR de PromptPay.
//
// Todas las funciones son puras: reciben snapshots en memoria y no guardan estado.
package portal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/perfume-portal/internal/domain"
	"github.com/jhoicas/perfume-portal/internal/domain/entity"
)

// Statistics resumen del panel de administración.
type Statistics struct {
	TotalClients  int
	TotalRevenue  decimal.Decimal // suma de cobros pagados
	OverdueAmount decimal.Decimal // suma de cobros vencidos
	ActiveOrders  int             // pedidos pending + in-progress
}

// ComputeAdminStatistics calcula los totales del panel a partir de los snapshots.
// Colecciones vacías producen todo en cero. Un estado desconocido o un monto negativo
// se reporta como domain.ErrInvalidInput.
func ComputeAdminStatistics(clients []entity.Client, payments []entity.Payment, orders []entity.Order) (Statistics, error) {
	stats := Statistics{
		TotalClients:  len(clients),
		TotalRevenue:  decimal.Zero,
		OverdueAmount: decimal.Zero,
	}

	for _, p := range payments {
		if err := validatePayment(p); err != nil {
			return Statistics{}, err
		}
		switch p.Status {
		case entity.PaymentPaid:
			stats.TotalRevenue = stats.TotalRevenue.Add(p.Amount)
		case entity.PaymentOverdue:
			stats.OverdueAmount = stats.OverdueAmount.Add(p.Amount)
		}
	}

	for _, o := range orders {
		if err := validateOrder(o); err != nil {
			return Statistics{}, err
		}
		if o.Status.IsActive() {
			stats.ActiveOrders++
		}
	}

	return stats, nil
}

// OverdueTotal suma los montos vencidos de una colección (normalmente ya filtrada por cliente).
func OverdueTotal(payments []entity.Payment) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range payments {
		if err := validatePayment(p); err != nil {
			return decimal.Zero, err
		}
		if p.Status == entity.PaymentOverdue {
			total = total.Add(p.Amount)
		}
	}
	return total, nil
}

func validatePayment(p entity.Payment) error {
	if !p.Status.IsValid() {
		return fmt.Errorf("%w: estado de pago %q en %s", domain.ErrInvalidInput, p.Status, p.ID)
	}
	if p.Amount.IsNegative() {
		return fmt.Errorf("%w: monto negativo en pago %s", domain.ErrInvalidInput, p.ID)
	}
	return nil
}

func validateOrder(o entity.Order) error {
	if !o.Status.IsValid() {
		return fmt.Errorf("%w: estado de pedido %q en %s", domain.ErrInvalidInput, o.Status, o.ID)
	}
	if o.Amount.IsNegative() {
		return fmt.Errorf("%w: monto negativo en pedido %s", domain.ErrInvalidInput, o.ID)
	}
	return nil
}
