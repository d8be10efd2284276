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

// OrderUseCase casos de uso de pedidos: alta, listado, cambio de estado y re-pedido.
type OrderUseCase struct {
	orders  repository.OrderRepository
	clients repository.ClientRepository
	log     *logger.Logger
	now     func() time.Time
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orders repository.OrderRepository, clients repository.ClientRepository, log *logger.Logger) *OrderUseCase {
	return &OrderUseCase{orders: orders, clients: clients, log: log.Component("orders"), now: time.Now}
}

// Create registra un pedido pendiente para un cliente existente.
func (uc *OrderUseCase) Create(ctx context.Context, lang i18n.Lang, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.Amount.IsNegative() || strings.TrimSpace(in.Description) == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clients.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	now := uc.now()
	o := &entity.Order{
		ID:          uuid.New().String(),
		ClientID:    client.ID,
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount,
		Status:      entity.OrderPending,
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.orders.Create(ctx, o); err != nil {
		return nil, err
	}
	out, err := presenter.Order(lang, *o, client.Name)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List pedidos visibles para la sesión, unidos con el nombre del cliente.
func (uc *OrderUseCase) List(ctx context.Context, lang i18n.Lang, s entity.Session) ([]dto.OrderResponse, error) {
	all, err := uc.orders.List(ctx)
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
	return presenter.OwnedOrders(lang, portal.ResolveOwners(scoped, clients))
}

// UpdateStatus cambia el estado del pedido. Al pasar a completed se fija CompletedAt si no existía;
// al salir de completed se limpia, así la fecha solo acompaña al estado completed.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, lang i18n.Lang, id string, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	status := entity.OrderStatus(in.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, in.Status)
	}
	o, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	now := uc.now()
	prev := o.Status
	o.Status = status
	switch {
	case status == entity.OrderCompleted && o.CompletedAt == nil:
		o.CompletedAt = &now
	case status != entity.OrderCompleted:
		o.CompletedAt = nil
	}
	o.UpdatedAt = now
	if err := uc.orders.Update(ctx, o); err != nil {
		return nil, err
	}
	uc.log.Info().Str("order_id", o.ID).Str("from", string(prev)).Str("to", string(status)).Msg("estado de pedido actualizado")

	return uc.present(ctx, lang, *o)
}

// Reorder crea un pedido idéntico (descripción, monto, notas) a uno completado del propio cliente.
// Un pedido de otro cliente se trata como inexistente.
func (uc *OrderUseCase) Reorder(ctx context.Context, lang i18n.Lang, s entity.Session, id string) (*dto.OrderResponse, error) {
	if !s.IsClient() || s.ClientID == "" {
		return nil, domain.ErrForbidden
	}
	src, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if src == nil || src.ClientID != s.ClientID {
		return nil, domain.ErrNotFound
	}
	if !portal.Reorderable(*src) {
		return nil, domain.ErrConflict
	}
	now := uc.now()
	o := &entity.Order{
		ID:          uuid.New().String(),
		ClientID:    src.ClientID,
		Description: src.Description,
		Amount:      src.Amount,
		Status:      entity.OrderPending,
		Notes:       src.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.orders.Create(ctx, o); err != nil {
		return nil, err
	}
	uc.log.Info().Str("order_id", o.ID).Str("source_order_id", src.ID).Str("client_id", o.ClientID).Msg("re-pedido creado")

	return uc.present(ctx, lang, *o)
}

func (uc *OrderUseCase) present(ctx context.Context, lang i18n.Lang, o entity.Order) (*dto.OrderResponse, error) {
	name := ""
	if c, err := uc.clients.GetByID(ctx, o.ClientID); err == nil && c != nil {
		name = c.Name
	}
	out, err := presenter.Order(lang, o, name)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
