package portal

import (
	"fmt"

	"github.com/jhoicas/perfume-portal/internal/domain"
	"github.com/jhoicas/perfume-portal/internal/domain/entity"
)

// Category tratamiento visual de un estado (el front lo traduce a colores).
type Category string

// Categorías visuales.
const (
	CategorySuccess Category = "success"
	CategoryWarning Category = "warning"
	CategoryDanger  Category = "danger"
	CategoryInfo    Category = "info"
)

var paymentCategories = map[entity.PaymentStatus]Category{
	entity.PaymentPaid:    CategorySuccess,
	entity.PaymentPending: CategoryWarning,
	entity.PaymentOverdue: CategoryDanger,
}

var orderCategories = map[entity.OrderStatus]Category{
	entity.OrderCompleted:  CategorySuccess,
	entity.OrderInProgress: CategoryInfo,
	entity.OrderPending:    CategoryWarning,
	entity.OrderCancelled:  CategoryDanger,
}

// ClassifyPayment devuelve la categoría visual de un estado de pago.
func ClassifyPayment(status entity.PaymentStatus) (Category, error) {
	c, ok := paymentCategories[status]
	if !ok {
		return "", fmt.Errorf("%w: estado de pago %q", domain.ErrInvalidInput, status)
	}
	return c, nil
}

// ClassifyOrder devuelve la categoría visual de un estado de pedido.
func ClassifyOrder(status entity.OrderStatus) (Category, error) {
	c, ok := orderCategories[status]
	if !ok {
		return "", fmt.Errorf("%w: estado de pedido %q", domain.ErrInvalidInput, status)
	}
	return c, nil
}
