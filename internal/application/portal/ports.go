package portal

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/perfume-portal/internal/domain/entity"
	"github.com/jhoicas/perfume-portal/pkg/i18n"
)

// StatementData datos ya resueltos para el estado de cuenta de un cliente.
type StatementData struct {
	Lang     i18n.Lang
	Client   entity.Client
	Payments []entity.Payment
	Overdue  decimal.Decimal
	// OverdueQR vacío si no hay deuda vencida.
	OverdueQR string
}

// StatementGenerator genera el PDF del estado de cuenta.
type StatementGenerator interface {
	GenerateStatementPDF(ctx context.Context, data StatementData) ([]byte, error)
}
