package ledger

import "errors"

// Status is the derived payment state of a sale.
type Status string

const (
	// StatusPaid means the balance is zero or negative (overpayment too).
	StatusPaid Status = "paid"
	// StatusPending means part of the total is still owed.
	StatusPending Status = "pending"
)

// Abono is a partial payment recorded against a sale. Its lifetime is
// bounded by the sale: deleting the sale cascades here.
type Abono struct {
	ID     string  `json:"id"`
	SaleID string  `json:"saleId"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}

// Summary is the ledger state derived for one sale. Never persisted;
// recomputed on every read.
type Summary struct {
	TotalPaid float64 `json:"totalPaid"`
	Balance   float64 `json:"balance"`
	Status    Status  `json:"status"`
}

// ErrInvalidAmount indicates a non-positive abono amount.
var ErrInvalidAmount = errors.New("ledger: abono amount must be positive")

// Compute derives the ledger summary of a sale from its total and the full
// abono collection. Abonos for other sales are ignored; order is irrelevant.
// The balance is not clamped, so an overpayment shows as negative and still
// counts as paid.
func Compute(saleID string, total float64, abonos []Abono) Summary {
	var paid float64
	for _, a := range abonos {
		if a.SaleID == saleID {
			paid += a.Amount
		}
	}
	balance := total - paid
	status := StatusPending
	if balance <= 0 {
		status = StatusPaid
	}
	return Summary{TotalPaid: paid, Balance: balance, Status: status}
}
