// Package presenter convierte entidades del dominio en DTOs listos para el front:
// etiquetas traducidas, categoría visual, montos formateados y payload del QR.
package presenter

import (
	"time"

	"github.com/jhoicas/perfume-portal/internal/application/dto"
	"github.com/jhoicas/perfume-portal/internal/domain/entity"
	"github.com/jhoicas/perfume-portal/internal/domain/portal"
	"github.com/jhoicas/perfume-portal/pkg/i18n"
)

// Client cliente -> DTO.
func Client(lang i18n.Lang, c entity.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		IDNumber:  c.IDNumber,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: formatDay(c.CreatedAt),
		JoinedAt:  i18n.FormatDate(lang, c.CreatedAt),
	}
}

// Clients lista de clientes -> DTOs.
func Clients(lang i18n.Lang, clients []entity.Client) []dto.ClientResponse {
	out := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, Client(lang, c))
	}
	return out
}

// Payment cobro -> DTO. Los cobros pendientes llevan el payload PromptPay con referencia "PAY<id>".
func Payment(lang i18n.Lang, p entity.Payment, ownerName string) (dto.PaymentResponse, error) {
	category, err := portal.ClassifyPayment(p.Status)
	if err != nil {
		return dto.PaymentResponse{}, err
	}
	out := dto.PaymentResponse{
		ID:          p.ID,
		ClientID:    p.ClientID,
		ClientName:  ownerName,
		Amount:      p.Amount,
		AmountLabel: i18n.FormatAmount(lang, p.Amount),
		DueDate:     formatDay(p.DueDate),
		Status:      string(p.Status),
		StatusLabel: i18n.StatusLabel(lang, string(p.Status)),
		Category:    string(category),
		Description: p.Description,
	}
	if p.PaidDate != nil {
		out.PaidDate = formatDay(*p.PaidDate)
	}
	if p.Status == entity.PaymentPending {
		payload, err := portal.BuildPaymentReferencePayload(p.Amount, portal.PaymentReference(p))
		if err != nil {
			return dto.PaymentResponse{}, err
		}
		out.QRPayload = payload
	}
	return out, nil
}

// OwnedPayments cobros ya unidos con su cliente -> DTOs.
func OwnedPayments(lang i18n.Lang, owned []portal.Owned[entity.Payment]) ([]dto.PaymentResponse, error) {
	out := make([]dto.PaymentResponse, 0, len(owned))
	for _, o := range owned {
		p, err := Payment(lang, o.Record, o.OwnerName())
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Order pedido -> DTO.
func Order(lang i18n.Lang, o entity.Order, ownerName string) (dto.OrderResponse, error) {
	category, err := portal.ClassifyOrder(o.Status)
	if err != nil {
		return dto.OrderResponse{}, err
	}
	out := dto.OrderResponse{
		ID:          o.ID,
		ClientID:    o.ClientID,
		ClientName:  ownerName,
		Description: o.Description,
		Amount:      o.Amount,
		AmountLabel: i18n.FormatAmount(lang, o.Amount),
		Status:      string(o.Status),
		StatusLabel: i18n.StatusLabel(lang, string(o.Status)),
		Category:    string(category),
		Notes:       o.Notes,
		CreatedAt:   formatDay(o.CreatedAt),
		Reorderable: portal.Reorderable(o),
	}
	if o.CompletedAt != nil {
		out.CompletedAt = formatDay(*o.CompletedAt)
	}
	return out, nil
}

// OwnedOrders pedidos ya unidos con su cliente -> DTOs.
func OwnedOrders(lang i18n.Lang, owned []portal.Owned[entity.Order]) ([]dto.OrderResponse, error) {
	out := make([]dto.OrderResponse, 0, len(owned))
	for _, o := range owned {
		r, err := Order(lang, o.Record, o.OwnerName())
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// Statistics estadísticas -> tarjetas del panel.
func Statistics(lang i18n.Lang, s portal.Statistics) dto.StatisticsDTO {
	return dto.StatisticsDTO{
		TotalClients:       s.TotalClients,
		TotalRevenue:       s.TotalRevenue,
		TotalRevenueLabel:  i18n.FormatAmount(lang, s.TotalRevenue),
		OverdueAmount:      s.OverdueAmount,
		OverdueAmountLabel: i18n.FormatAmount(lang, s.OverdueAmount),
		ActiveOrders:       s.ActiveOrders,
	}
}

func formatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dto.DateLayout)
}
