package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/perfume-portal/internal/application/dto"
	"github.com/jhoicas/perfume-portal/internal/application/presenter"
	"github.com/jhoicas/perfume-portal/internal/domain"
	"github.com/jhoicas/perfume-portal/internal/domain/entity"
	"github.com/jhoicas/perfume-portal/internal/domain/portal"
	"github.com/jhoicas/perfume-portal/internal/domain/repository"
	"github.com/jhoicas/perfume-portal/pkg/i18n"
	"github.com/jhoicas/perfume-portal/pkg/logger"
)

// PaymentUseCase casos de uso de cobros: alta, listado, marcar pagado y recordatorio.
type PaymentUseCase struct {
	payments repository.PaymentRepository
	clients  repository.ClientRepository
	log      *logger.Logger
	now      func() time.Time
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(payments repository.PaymentRepository, clients repository.ClientRepository, log *logger.Logger) *PaymentUseCase {
	return &PaymentUseCase{payments: payments, clients: clients, log: log.Component("payments"), now: time.Now}
}

// Create registra un cobro para un cliente existente. Estado por defecto: pending.
func (uc *PaymentUseCase) Create(ctx context.Context, lang i18n.Lang, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if in.Amount.IsNegative() || strings.TrimSpace(in.Description) == "" {
		return nil, domain.ErrInvalidInput
	}
	due, err := time.Parse(dto.DateLayout, in.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: due_date %q", domain.ErrInvalidInput, in.DueDate)
	}
	status := entity.PaymentPending
	if in.Status != "" {
		status = entity.PaymentStatus(in.Status)
	}
	if status == entity.PaymentPaid || !status.IsValid() {
		// un cobro nace pendiente o vencido; "paid" solo vía MarkPaid
		return nil, fmt.Errorf("%w: estado inicial %q", domain.ErrInvalidInput, in.Status)
	}
	client, err := uc.clients.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	now := uc.now()
	p := &entity.Payment{
		ID:          uuid.New().String(),
		ClientID:    client.ID,
		Amount:      in.Amount,
		DueDate:     due,
		Status:      status,
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.payments.Create(ctx, p); err != nil {
		return nil, err
	}
	out, err := presenter.Payment(lang, *p, client.Name)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List cobros visibles para la sesión, unidos con el nombre del cliente.
func (uc *PaymentUseCase) List(ctx context.Context, lang i18n.Lang, s entity.Session) ([]dto.PaymentResponse, error) {
	all, err := uc.payments.List(ctx)
	if err != nil {
		return nil, err
	}
	scoped, err := portal.ScopeRecords(s, all)
	if err != nil {
		return nil, err
	}
	clients, err := uc.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	return presenter.OwnedPayments(lang, portal.ResolveOwners(scoped, clients))
}

// MarkPaid marca el cobro como pagado con fecha de hoy. ErrConflict si ya estaba pagado.
func (uc *PaymentUseCase) MarkPaid(ctx context.Context, lang i18n.Lang, id string) (*dto.PaymentResponse, error) {
	p, err := uc.payments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.Status == entity.PaymentPaid {
		return nil, domain.ErrConflict
	}
	now := uc.now()
	p.Status = entity.PaymentPaid
	p.PaidDate = &now
	p.UpdatedAt = now
	if err := uc.payments.Update(ctx, p); err != nil {
		return nil, err
	}
	uc.log.Info().Str("payment_id", p.ID).Str("client_id", p.ClientID).Str("amount", p.Amount.StringFixed(2)).Msg("cobro marcado como pagado")

	out, err := presenter.Payment(lang, *p, uc.ownerName(ctx, p.ClientID))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Remind arma el recordatorio de un cobro pendiente o vencido con su QR PromptPay.
func (uc *PaymentUseCase) Remind(ctx context.Context, lang i18n.Lang, id string) (*dto.ReminderResponse, error) {
	p, err := uc.payments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.Status == entity.PaymentPaid {
		return nil, domain.ErrConflict
	}
	payload, err := portal.BuildPaymentReferencePayload(p.Amount, portal.PaymentReference(*p))
	if err != nil {
		return nil, err
	}
	out := &dto.ReminderResponse{
		PaymentID:   p.ID,
		ClientID:    p.ClientID,
		ClientName:  uc.ownerName(ctx, p.ClientID),
		Title:       i18n.T(lang, i18n.KeyReminder),
		Amount:      p.Amount,
		AmountLabel: i18n.FormatAmount(lang, p.Amount),
		DueDate:     p.DueDate.Format(dto.DateLayout),
		QRPayload:   payload,
	}
	uc.log.Info().Str("payment_id", p.ID).Str("client_id", p.ClientID).Str("status", string(p.Status)).Msg("recordatorio de pago generado")
	return out, nil
}

// ownerName nombre del cliente o "" si no existe (no es un error: cobro huérfano).
func (uc *PaymentUseCase) ownerName(ctx context.Context, clientID string) string {
	c, err := uc.clients.GetByID(ctx, clientID)
	if err != nil || c == nil {
		return ""
	}
	return c.Name
}
