package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WebsiteBooking is a row from the public website's booking table. Its
// identity space is independent from StudentAccount: the only join the
// engine performs is string equality on ReferralCode.
type WebsiteBooking struct {
	ID            string          `bson:"id" json:"id"`
	CustomerName  string          `bson:"customer_name" json:"customerName"`
	CustomerEmail string          `bson:"customer_email" json:"customerEmail"`
	ReferralCode  string          `bson:"referral_code,omitempty" json:"referralCode,omitempty"` // Empty when the booking carried no code
	PackageName   string          `bson:"package_name" json:"packageName"`
	Price         decimal.Decimal `bson:"price" json:"price"`
	CreatedAt     time.Time       `bson:"created_at" json:"createdAt"`
}
