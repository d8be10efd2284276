package dto

import "github.com/shopspring/decimal"

// CreateOrderRequest body para POST /api/admin/orders.
type CreateOrderRequest struct {
	ClientID    string          `json:"client_id" validate:"required"`
	Description string          `json:"description" validate:"required,max=500"`
	Amount      decimal.Decimal `json:"amount"`
	Notes       string          `json:"notes" validate:"omitempty,max=1000"`
}

// UpdateOrderStatusRequest body para PATCH /api/admin/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in-progress completed cancelled"`
}

// OrderResponse pedido con datos de presentación.
type OrderResponse struct {
	ID          string          `json:"id"`
	ClientID    string          `json:"client_id"`
	ClientName  string          `json:"client_name,omitempty"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	AmountLabel string          `json:"amount_label"`
	Status      string          `json:"status"`
	StatusLabel string          `json:"status_label"`
	Category    string          `json:"category"` // success | info | warning | danger
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   string          `json:"created_at"`
	CompletedAt string          `json:"completed_at,omitempty"`
	Reorderable bool            `json:"reorderable"`
}
