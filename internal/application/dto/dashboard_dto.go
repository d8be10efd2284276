package dto

import "github.com/shopspring/decimal"

// StatisticsDTO tarjetas del panel de administración.
type StatisticsDTO struct {
	TotalClients       int             `json:"total_clients"`
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	TotalRevenueLabel  string          `json:"total_revenue_label"`
	OverdueAmount      decimal.Decimal `json:"overdue_amount"`
	OverdueAmountLabel string          `json:"overdue_amount_label"`
	ActiveOrders       int             `json:"active_orders"`
}

// AdminDashboardDTO respuesta de GET /api/dashboard para rol admin.
type AdminDashboardDTO struct {
	Role       string            `json:"role"`
	Statistics StatisticsDTO     `json:"statistics"`
	Clients    []ClientResponse  `json:"clients"`
	Payments   []PaymentResponse `json:"payments"`
	Orders     []OrderResponse   `json:"orders"`
}

// OverdueAlertDTO aviso de deuda vencida con el QR del total.
type OverdueAlertDTO struct {
	Total      decimal.Decimal `json:"total"`
	TotalLabel string          `json:"total_label"`
	Reference  string          `json:"reference"`
	QRPayload  string          `json:"qr_payload"`
}

// ClientDashboardDTO respuesta de GET /api/dashboard para rol client.
type ClientDashboardDTO struct {
	Role     string            `json:"role"`
	ClientID string            `json:"client_id"`
	Name     string            `json:"name"`
	Overdue  *OverdueAlertDTO  `json:"overdue,omitempty"` // nil si no hay deuda vencida
	Payments []PaymentResponse `json:"payments"`
	Orders   []OrderResponse   `json:"orders"`
}
