package portal

import "github.com/jhoicas/perfume-portal/internal/domain/entity"

// Tipos de inconsistencia entre estado y fechas. Se reportan, no se corrigen.
const (
	PaidWithoutDate         = "paid_without_paid_date"
	PaidDateWithoutPaid     = "paid_date_without_paid_status"
	CompletedWithoutDate    = "completed_without_completed_at"
	CompletedAtNotCompleted = "completed_at_without_completed_status"
)

// Inconsistency registro cuyo estado no coincide con sus fechas.
type Inconsistency struct {
	RecordID string
	Kind     string
}

// PaymentInconsistencies lista cobros cuyo PaidDate no acompaña al estado paid.
func PaymentInconsistencies(payments []entity.Payment) []Inconsistency {
	var out []Inconsistency
	for _, p := range payments {
		switch {
		case p.Status == entity.PaymentPaid && p.PaidDate == nil:
			out = append(out, Inconsistency{RecordID: p.ID, Kind: PaidWithoutDate})
		case p.Status != entity.PaymentPaid && p.PaidDate != nil:
			out = append(out, Inconsistency{RecordID: p.ID, Kind: PaidDateWithoutPaid})
		}
	}
	return out
}

// OrderInconsistencies lista pedidos cuyo CompletedAt no acompaña al estado completed.
func OrderInconsistencies(orders []entity.Order) []Inconsistency {
	var out []Inconsistency
	for _, o := range orders {
		switch {
		case o.Status == entity.OrderCompleted && o.CompletedAt == nil:
			out = append(out, Inconsistency{RecordID: o.ID, Kind: CompletedWithoutDate})
		case o.Status != entity.OrderCompleted && o.CompletedAt != nil:
			out = append(out, Inconsistency{RecordID: o.ID, Kind: CompletedAtNotCompleted})
		}
	}
	return out
}
