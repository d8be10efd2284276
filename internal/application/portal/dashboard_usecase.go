// Package portal contiene los casos de uso del tablero: vista de administración,
// vista del cliente con aviso de deuda vencida y estado de cuenta en PDF.
package portal

import (
	"context"
	"fmt"

	"github.com/jhoicas/perfume-portal/internal/application/dto"
	"github.com/jhoicas/perfume-portal/internal/application/presenter"
	"github.com/jhoicas/perfume-portal/internal/domain"
	"github.com/jhoicas/perfume-portal/internal/domain/entity"
	domportal "github.com/jhoicas/perfume-portal/internal/domain/portal"
	"github.com/jhoicas/perfume-portal/internal/domain/repository"
	"github.com/jhoicas/perfume-portal/pkg/i18n"
	"github.com/jhoicas/perfume-portal/pkg/logger"
)

// DashboardUseCase arma las vistas del tablero a partir de un snapshot de clientes, cobros y pedidos.
type DashboardUseCase struct {
	clients   repository.ClientRepository
	payments  repository.PaymentRepository
	orders    repository.OrderRepository
	generator StatementGenerator
	log       *logger.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	clients repository.ClientRepository,
	payments repository.PaymentRepository,
	orders repository.OrderRepository,
	generator StatementGenerator,
	log *logger.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		clients:   clients,
		payments:  payments,
		orders:    orders,
		generator: generator,
		log:       log.Component("dashboard"),
	}
}

type snapshot struct {
	clients  []entity.Client
	payments []entity.Payment
	orders   []entity.Order
}

// load lee las tres colecciones en paralelo.
func (uc *DashboardUseCase) load(ctx context.Context) (snapshot, error) {
	type clientsResult struct {
		list []entity.Client
		err  error
	}
	type paymentsResult struct {
		list []entity.Payment
		err  error
	}
	type ordersResult struct {
		list []entity.Order
		err  error
	}

	clientsCh := make(chan clientsResult, 1)
	paymentsCh := make(chan paymentsResult, 1)
	ordersCh := make(chan ordersResult, 1)

	go func() {
		l, err := uc.clients.List(ctx)
		clientsCh <- clientsResult{l, err}
	}()
	go func() {
		l, err := uc.payments.List(ctx)
		paymentsCh <- paymentsResult{l, err}
	}()
	go func() {
		l, err := uc.orders.List(ctx)
		ordersCh <- ordersResult{l, err}
	}()

	c, p, o := <-clientsCh, <-paymentsCh, <-ordersCh
	if c.err != nil {
		return snapshot{}, fmt.Errorf("dashboard: clientes: %w", c.err)
	}
	if p.err != nil {
		return snapshot{}, fmt.Errorf("dashboard: cobros: %w", p.err)
	}
	if o.err != nil {
		return snapshot{}, fmt.Errorf("dashboard: pedidos: %w", o.err)
	}
	return snapshot{clients: c.list, payments: p.list, orders: o.list}, nil
}

// AdminDashboard estadísticas globales y listados completos. Solo admin.
func (uc *DashboardUseCase) AdminDashboard(ctx context.Context, lang i18n.Lang, s entity.Session) (*dto.AdminDashboardDTO, error) {
	if !s.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	snap, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := domportal.ComputeAdminStatistics(snap.clients, snap.payments, snap.orders)
	if err != nil {
		return nil, err
	}
	uc.reportInconsistencies(snap.payments, snap.orders)

	payments, err := presenter.OwnedPayments(lang, domportal.ResolveOwners(snap.payments, snap.clients))
	if err != nil {
		return nil, err
	}
	orders, err := presenter.OwnedOrders(lang, domportal.ResolveOwners(snap.orders, snap.clients))
	if err != nil {
		return nil, err
	}
	return &dto.AdminDashboardDTO{
		Role:       string(entity.RoleAdmin),
		Statistics: presenter.Statistics(lang, stats),
		Clients:    presenter.Clients(lang, snap.clients),
		Payments:   payments,
		Orders:     orders,
	}, nil
}

// ClientDashboard cobros y pedidos del cliente de la sesión, con el aviso de deuda vencida
// si corresponde. Solo rol client.
func (uc *DashboardUseCase) ClientDashboard(ctx context.Context, lang i18n.Lang, s entity.Session) (*dto.ClientDashboardDTO, error) {
	if !s.IsClient() {
		return nil, domain.ErrForbidden
	}
	snap, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	payments, orders, err := domportal.ScopeForSession(s, snap.payments, snap.orders)
	if err != nil {
		return nil, err
	}

	out := &dto.ClientDashboardDTO{
		Role:     string(entity.RoleClient),
		ClientID: s.ClientID,
		Name:     s.Name,
	}
	owned := domportal.ResolveOwners(payments, snap.clients)
	if out.Payments, err = presenter.OwnedPayments(lang, owned); err != nil {
		return nil, err
	}
	if out.Orders, err = presenter.OwnedOrders(lang, domportal.ResolveOwners(orders, snap.clients)); err != nil {
		return nil, err
	}
	if len(owned) > 0 && owned[0].Owner != nil {
		out.Name = owned[0].Owner.Name
	}

	total, err := domportal.OverdueTotal(payments)
	if err != nil {
		return nil, err
	}
	if total.IsPositive() {
		ref := domportal.OverdueReference(s.ClientID)
		payload, err := domportal.BuildPaymentReferencePayload(total, ref)
		if err != nil {
			return nil, err
		}
		out.Overdue = &dto.OverdueAlertDTO{
			Total:      total,
			TotalLabel: i18n.FormatAmount(lang, total),
			Reference:  ref,
			QRPayload:  payload,
		}
	}
	return out, nil
}

// Statement genera el estado de cuenta en PDF del cliente de la sesión.
// Retorna los bytes y el nombre de archivo sugerido.
func (uc *DashboardUseCase) Statement(ctx context.Context, lang i18n.Lang, s entity.Session) ([]byte, string, error) {
	if !s.IsClient() {
		return nil, "", domain.ErrForbidden
	}
	client, err := uc.clients.GetByID(ctx, s.ClientID)
	if err != nil {
		return nil, "", fmt.Errorf("statement: obtener cliente: %w", err)
	}
	if client == nil {
		return nil, "", domain.ErrNotFound
	}
	all, err := uc.payments.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("statement: cobros: %w", err)
	}
	payments, err := domportal.ScopeRecords(s, all)
	if err != nil {
		return nil, "", err
	}
	total, err := domportal.OverdueTotal(payments)
	if err != nil {
		return nil, "", err
	}

	data := StatementData{
		Lang:     lang,
		Client:   *client,
		Payments: domportal.SortPaymentsByDueDate(payments),
		Overdue:  total,
	}
	if total.IsPositive() {
		if data.OverdueQR, err = domportal.BuildPaymentReferencePayload(total, domportal.OverdueReference(client.ID)); err != nil {
			return nil, "", err
		}
	}

	pdf, err := uc.generator.GenerateStatementPDF(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("statement: generar pdf: %w", err)
	}
	uc.log.Info().Str("client_id", client.ID).Int("payments", len(payments)).Int("bytes", len(pdf)).Msg("estado de cuenta generado")
	return pdf, fmt.Sprintf("statement-%s.pdf", client.ID), nil
}

// reportInconsistencies deja en el log los registros con fechas incoherentes con su estado.
// No corrige nada.
func (uc *DashboardUseCase) reportInconsistencies(payments []entity.Payment, orders []entity.Order) {
	for _, inc := range domportal.PaymentInconsistencies(payments) {
		uc.log.Warn().Str("payment_id", inc.RecordID).Str("kind", string(inc.Kind)).Msg("cobro inconsistente")
	}
	for _, inc := range domportal.OrderInconsistencies(orders) {
		uc.log.Warn().Str("order_id", inc.RecordID).Str("kind", string(inc.Kind)).Msg("pedido inconsistente")
	}
}
