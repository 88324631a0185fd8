package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment method values.
const (
	PaymentMethodCard     = "card"
	PaymentMethodCash     = "cash"
	PaymentMethodTransfer = "bank_transfer"
	PaymentMethodOther    = "other"
)

// PaymentTransaction is one row of a student's payment history. The rows
// are shown to staff alongside the ledger; they are never summed into
// revenue totals (the ledger field on StudentAccount is canonical).
type PaymentTransaction struct {
	ID           string          `bson:"id" json:"id"`
	StudentID    string          `bson:"student_id" json:"studentId"` // May reference a student no longer on file
	Amount       decimal.Decimal `bson:"amount" json:"amount"`
	CreditsDelta int             `bson:"credits_delta" json:"creditsDelta"` // Lessons added (or removed) by this payment
	Method       string          `bson:"method" json:"method"`
	OccurredAt   time.Time       `bson:"occurred_at" json:"occurredAt"`
	Notes        string          `bson:"notes,omitempty" json:"notes,omitempty"`
}
