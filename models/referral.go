package models

import "github.com/shopspring/decimal"

// Referral statistic sources. App referrals are attributed through the
// ReferredBy self-reference on student ledgers; website referrals through
// the booking table's referral codes. The two identity spaces are never
// unified.
const (
	ReferralSourceApp     = "app"
	ReferralSourceWebsite = "website"
)

// ReferrerSummary is the per-referrer leaderboard row. For app referrers
// ReferrerID holds a StudentAccount.ID and DisplayName the referrer's
// name; for website referrers ReferrerID holds the referral code itself.
type ReferrerSummary struct {
	ReferrerID      string          `json:"referrerId"`
	DisplayName     string          `json:"displayName,omitempty"`
	ReferralCount   int             `json:"referralCount"`
	ReferralRevenue decimal.Decimal `json:"referralRevenue"`
	Source          string          `json:"source"`
}

// CombinedReferrerTotals sums the app and website statistics as
// independent totals. UniqueReferrers is the count of app ids plus the
// count of website codes; no cross-source deduplication is attempted.
type CombinedReferrerTotals struct {
	TotalReferrals  int             `json:"totalReferrals"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	UniqueReferrers int             `json:"uniqueReferrers"`
}
