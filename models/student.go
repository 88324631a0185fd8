package models

import "github.com/shopspring/decimal"

// Lead source values recognized on student records.
const (
	LeadSourceWebsite   = "website"
	LeadSourceReferral  = "referral"
	LeadSourceWalkIn    = "walk_in"
	LeadSourceSocial    = "social"
	LeadSourceCommunity = "community_event"
)

// StudentAccount is the coaching-app ledger record for one student.
// TotalRevenue and TotalLessonsPurchased are the authoritative ledger
// fields; per-payment transaction rows are display detail only.
type StudentAccount struct {
	ID                    string          `bson:"id" json:"id"`                                         // Opaque, stable identifier
	DisplayName           string          `bson:"display_name" json:"displayName"`                      // Shown on rosters and reports
	Email                 string          `bson:"email" json:"email"`                                   //
	LessonCredits         int             `bson:"lesson_credits" json:"lessonCredits"`                  // Remaining prepaid lessons, never negative
	TotalRevenue          decimal.Decimal `bson:"total_revenue" json:"totalRevenue"`                    // Lifetime revenue, ledger-canonical
	TotalLessonsPurchased int             `bson:"total_lessons_purchased" json:"totalLessonsPurchased"` //
	LeadSource            string          `bson:"lead_source,omitempty" json:"leadSource,omitempty"`    // Empty when unknown
	ReferredBy            string          `bson:"referred_by,omitempty" json:"referredBy,omitempty"`    // StudentAccount.ID of the referrer, empty when none
	IsActive              bool            `bson:"is_active" json:"isActive"`                            //
}
