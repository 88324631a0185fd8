package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is one studio expense entry (court rental, equipment, travel).
type Expense struct {
	ID         string          `bson:"id" json:"id"`
	Name       string          `bson:"name" json:"name"`
	Amount     decimal.Decimal `bson:"amount" json:"amount"`
	IncurredAt time.Time       `bson:"incurred_at" json:"incurredAt"` // Date precision; time-of-day is not meaningful
	Category   string          `bson:"category,omitempty" json:"category,omitempty"`
	Notes      string          `bson:"notes,omitempty" json:"notes,omitempty"`
}
