package report

import (
	"strings"
	"time"

	"courtside/models"

	"github.com/shopspring/decimal"
)

// FilterCriteria is the composable student-table filter. All set fields
// are ANDed together; zero values mean "not filtered". Month is only
// meaningful combined with Year and is ignored when Year is unset.
type FilterCriteria struct {
	Year        *int
	Month       *int
	TextQuery   string
	RevenueMin  *decimal.Decimal
	RevenueMax  *decimal.Decimal
	ActiveFrom  *time.Time
	ActiveTo    *time.Time
	LeadSources []string
	ActiveOnly  bool
}

// ApplyFilters returns the rows matching every supplied criterion. The
// input slice and its rows are never mutated. Date-based criteria can
// only be satisfied by rows that have lesson dates: a student who never
// attended a lesson has no date in any year and is excluded.
func ApplyFilters(rows []models.AggregatedStudentMetrics, c FilterCriteria) []models.AggregatedStudentMetrics {
	out := make([]models.AggregatedStudentMetrics, 0, len(rows))
	for _, row := range rows {
		if matches(row, c) {
			out = append(out, row)
		}
	}
	return out
}

func matches(row models.AggregatedStudentMetrics, c FilterCriteria) bool {
	if c.Year != nil && !hasLessonIn(row, *c.Year, c.Month) {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(c.TextQuery)); q != "" {
		name := strings.ToLower(row.DisplayName)
		email := strings.ToLower(row.Email)
		if !strings.Contains(name, q) && !strings.Contains(email, q) {
			return false
		}
	}
	if c.RevenueMin != nil && row.TotalRevenue.Cmp(*c.RevenueMin) < 0 {
		return false
	}
	if c.RevenueMax != nil && row.TotalRevenue.Cmp(*c.RevenueMax) > 0 {
		return false
	}
	if c.ActiveFrom != nil {
		if row.FirstLessonDate == nil || row.FirstLessonDate.Before(startOfDay(*c.ActiveFrom)) {
			return false
		}
	}
	if c.ActiveTo != nil {
		if row.LastLessonDate == nil || row.LastLessonDate.After(endOfDay(*c.ActiveTo)) {
			return false
		}
	}
	if len(c.LeadSources) > 0 && !containsString(c.LeadSources, row.LeadSource) {
		return false
	}
	if c.ActiveOnly && !row.IsActive {
		return false
	}
	return true
}

func hasLessonIn(row models.AggregatedStudentMetrics, year int, month *int) bool {
	for _, d := range row.LessonDates {
		if d.Year() != year {
			continue
		}
		if month != nil && int(d.Month()) != *month {
			continue
		}
		return true
	}
	return false
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
