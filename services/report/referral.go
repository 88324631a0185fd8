package report

import (
	"sort"

	"courtside/models"

	"github.com/shopspring/decimal"
)

// ResolveAppReferrals builds per-referrer statistics from the ledger's
// ReferredBy self-references. Attribution is one hop only: a referred
// student's own referrals are never chased, so cyclic ReferredBy chains
// in raw data cannot loop. Self-references are invalid input and are
// discarded, not counted.
func ResolveAppReferrals(students []models.StudentAccount) map[string]models.ReferrerSummary {
	names := make(map[string]string, len(students))
	for _, st := range students {
		names[st.ID] = st.DisplayName
	}

	out := make(map[string]models.ReferrerSummary)
	for _, st := range students {
		if st.ReferredBy == "" || st.ReferredBy == st.ID {
			continue
		}
		summary, ok := out[st.ReferredBy]
		if !ok {
			summary = models.ReferrerSummary{
				ReferrerID:      st.ReferredBy,
				DisplayName:     names[st.ReferredBy],
				ReferralRevenue: decimal.Zero,
				Source:          models.ReferralSourceApp,
			}
		}
		summary.ReferralCount++
		summary.ReferralRevenue = summary.ReferralRevenue.Add(st.TotalRevenue)
		out[st.ReferredBy] = summary
	}
	return out
}

// ResolveWebsiteReferrals groups website bookings by referral code and
// sums price and count per code. Bookings without a code carry no
// attribution and are skipped.
func ResolveWebsiteReferrals(bookings []models.WebsiteBooking) map[string]models.ReferrerSummary {
	out := make(map[string]models.ReferrerSummary)
	for _, b := range bookings {
		if b.ReferralCode == "" {
			continue
		}
		summary, ok := out[b.ReferralCode]
		if !ok {
			summary = models.ReferrerSummary{
				ReferrerID:      b.ReferralCode,
				ReferralRevenue: decimal.Zero,
				Source:          models.ReferralSourceWebsite,
			}
		}
		summary.ReferralCount++
		summary.ReferralRevenue = summary.ReferralRevenue.Add(b.Price)
		out[b.ReferralCode] = summary
	}
	return out
}

// RankReferrers orders a leaderboard: revenue descending, ties broken by
// count descending, then display name ascending, then referrer id. The
// last key makes the order total, so reruns over the same input always
// produce the same sequence.
func RankReferrers(summaries map[string]models.ReferrerSummary) []models.ReferrerSummary {
	ranked := make([]models.ReferrerSummary, 0, len(summaries))
	for _, s := range summaries {
		ranked = append(ranked, s)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if c := ranked[i].ReferralRevenue.Cmp(ranked[j].ReferralRevenue); c != 0 {
			return c > 0
		}
		if ranked[i].ReferralCount != ranked[j].ReferralCount {
			return ranked[i].ReferralCount > ranked[j].ReferralCount
		}
		if ranked[i].DisplayName != ranked[j].DisplayName {
			return ranked[i].DisplayName < ranked[j].DisplayName
		}
		return ranked[i].ReferrerID < ranked[j].ReferrerID
	})
	return ranked
}

// Combine sums the two statistics as independent totals. App ids and
// website codes live in different identity spaces, so unique referrers
// are added, never deduplicated across sources.
func Combine(app, website map[string]models.ReferrerSummary) models.CombinedReferrerTotals {
	totals := models.CombinedReferrerTotals{
		TotalRevenue:    decimal.Zero,
		UniqueReferrers: len(app) + len(website),
	}
	for _, s := range app {
		totals.TotalReferrals += s.ReferralCount
		totals.TotalRevenue = totals.TotalRevenue.Add(s.ReferralRevenue)
	}
	for _, s := range website {
		totals.TotalReferrals += s.ReferralCount
		totals.TotalRevenue = totals.TotalRevenue.Add(s.ReferralRevenue)
	}
	return totals
}
