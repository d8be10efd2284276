package dto

import "github.com/shopspring/decimal"

// CreatePaymentRequest body para POST /api/admin/payments.
type CreatePaymentRequest struct {
	ClientID    string          `json:"client_id" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     string          `json:"due_date" validate:"required,datetime=2006-01-02"`
	Description string          `json:"description" validate:"required,max=500"`
	Status      string          `json:"status" validate:"omitempty,oneof=pending overdue"`
}

// PaymentResponse cobro con datos de presentación.
// QRPayload solo se informa en cobros pendientes (pagables por PromptPay).
type PaymentResponse struct {
	ID          string          `json:"id"`
	ClientID    string          `json:"client_id"`
	ClientName  string          `json:"client_name,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	AmountLabel string          `json:"amount_label"`
	DueDate     string          `json:"due_date"`
	PaidDate    string          `json:"paid_date,omitempty"`
	Status      string          `json:"status"`
	StatusLabel string          `json:"status_label"`
	Category    string          `json:"category"` // success | warning | danger
	Description string          `json:"description"`
	QRPayload   string          `json:"qr_payload,omitempty"`
}

// ReminderResponse recordatorio de pago generado por el administrador.
type ReminderResponse struct {
	PaymentID   string          `json:"payment_id"`
	ClientID    string          `json:"client_id"`
	ClientName  string          `json:"client_name,omitempty"`
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"`
	AmountLabel string          `json:"amount_label"`
	DueDate     string          `json:"due_date"`
	QRPayload   string          `json:"qr_payload"`
}
