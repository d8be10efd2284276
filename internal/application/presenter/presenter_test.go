package presenter_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/perfume-portal/internal/application/presenter"
	"github.com/jhoicas/perfume-portal/internal/domain"
	"github.com/jhoicas/perfume-portal/internal/domain/entity"
	"github.com/jhoicas/perfume-portal/internal/domain/portal"
	"github.com/jhoicas/perfume-portal/pkg/i18n"
)

func TestPayment_PendienteLlevaQR(t *testing.T) {
	p := entity.Payment{
		ID: "pay2", ClientID: "client1", Amount: decimal.NewFromInt(1800),
		DueDate: time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC), Status: entity.PaymentPending,
		Description: "Jasmine Night Fragrance",
	}

	out, err := presenter.Payment(i18n.EN, p, "สมชาย ใจดี")
	require.NoError(t, err)

	want, _ := portal.BuildPaymentReferencePayload(p.Amount, "PAYpay2")
	assert.Equal(t, want, out.QRPayload)
	assert.Equal(t, "warning", out.Category)
	assert.Equal(t, "Pending", out.StatusLabel)
	assert.Equal(t, "฿1,800", out.AmountLabel)
	assert.Equal(t, "2024-12-25", out.DueDate)
	assert.Empty(t, out.PaidDate)
}

func TestPayment_PagadoSinQR(t *testing.T) {
	paid := time.Date(2024, 11, 28, 0, 0, 0, 0, time.UTC)
	p := entity.Payment{ID: "pay3", Amount: decimal.NewFromInt(3200), Status: entity.PaymentPaid, PaidDate: &paid}

	out, err := presenter.Payment(i18n.TH, p, "")
	require.NoError(t, err)
	assert.Empty(t, out.QRPayload)
	assert.Equal(t, "2024-11-28", out.PaidDate)
	assert.Equal(t, "ชำระแล้ว", out.StatusLabel)
	assert.Equal(t, "success", out.Category)
}

func TestPayment_EstadoInvalido(t *testing.T) {
	_, err := presenter.Payment(i18n.EN, entity.Payment{ID: "x", Status: "void"}, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrder_CompletadoEsReordenable(t *testing.T) {
	done := time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC)
	o := entity.Order{ID: "ord1", Amount: decimal.NewFromInt(2500), Status: entity.OrderCompleted, CompletedAt: &done}

	out, err := presenter.Order(i18n.EN, o, "Somchai")
	require.NoError(t, err)
	assert.True(t, out.Reorderable)
	assert.Equal(t, "Completed", out.StatusLabel)
	assert.Equal(t, "2024-11-15", out.CompletedAt)
	assert.Equal(t, "Somchai", out.ClientName)
}

func TestStatistics_Etiquetas(t *testing.T) {
	s := portal.Statistics{TotalClients: 3, TotalRevenue: decimal.NewFromInt(6000), OverdueAmount: decimal.NewFromInt(2500), ActiveOrders: 2}
	out := presenter.Statistics(i18n.EN, s)
	assert.Equal(t, "฿6,000", out.TotalRevenueLabel)
	assert.Equal(t, "฿2,500", out.OverdueAmountLabel)
	assert.Equal(t, 2, out.ActiveOrders)
}
