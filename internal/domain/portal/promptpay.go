package portal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/perfume-portal/internal/domain"
	"github.com/jhoicas/perfume-portal/internal/domain/entity"
)

// Plantilla fija del payload simulado. No es un QR EMV válido: no lleva TLV real ni CRC-16.
const (
	promptPayPrefix   = "00020101021129370016A000000677010111011300668765432105204000053037645802TH630"
	promptPayChecksum = "6304"
)

// Prefijos de referencia usados por el portal.
const (
	PaymentRefPrefix = "PAY"
	OverdueRefPrefix = "OVERDUE"
)

// BuildPaymentReferencePayload arma el payload del QR: prefijo + monto con dos decimales + "6304" + referencia.
// Es determinista: mismos argumentos, mismo string (el QR no debe cambiar entre renders).
func BuildPaymentReferencePayload(amount decimal.Decimal, reference string) (string, error) {
	if amount.IsNegative() {
		return "", fmt.Errorf("%w: monto negativo para PromptPay", domain.ErrInvalidInput)
	}
	return promptPayPrefix + amount.StringFixed(2) + promptPayChecksum + reference, nil
}

// PaymentReference referencia del QR de un cobro individual.
func PaymentReference(p entity.Payment) string {
	return PaymentRefPrefix + p.ID
}

// OverdueReference referencia del QR del total vencido de un cliente.
// Depende solo del cliente para que el código sea estable mientras no cambie el monto.
func OverdueReference(clientID string) string {
	return OverdueRefPrefix + clientID
}
