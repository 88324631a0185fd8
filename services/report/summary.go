package report

import (
	"sort"
	"time"

	"courtside/models"

	"github.com/shopspring/decimal"
)

// Summarize computes the export header block from the exact row set it
// receives. Callers pass the filtered rows, never the full aggregation,
// so a filtered export always shows the totals of what is on screen.
// Expenses should already be scoped to the same year as the rows.
func Summarize(rows []models.AggregatedStudentMetrics, expenses []models.Expense) models.ReportSummary {
	s := models.ReportSummary{
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
		TotalStudents: len(rows),
	}
	for _, row := range rows {
		s.TotalRevenue = s.TotalRevenue.Add(row.TotalRevenue)
		s.TotalLessonsSold += row.TotalLessonsPurchased
		if row.IsActive {
			s.ActiveStudents++
		}
	}
	for _, e := range expenses {
		s.TotalExpenses = s.TotalExpenses.Add(e.Amount)
	}
	s.NetRevenue = s.TotalRevenue.Sub(s.TotalExpenses)
	return s
}

// ScopeExpensesToYear keeps expenses incurred in the given year; a nil
// year means all time.
func ScopeExpensesToYear(expenses []models.Expense, year *int) []models.Expense {
	if year == nil {
		return expenses
	}
	out := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.IncurredAt.Year() == *year {
			out = append(out, e)
		}
	}
	return out
}

// SummarizeExpenses groups expenses into calendar-month buckets with
// per-category totals, ordered oldest first. Expenses without a category
// fall under "uncategorized".
func SummarizeExpenses(expenses []models.Expense) []models.MonthlyExpenseSummary {
	buckets := make(map[time.Time]*models.MonthlyExpenseSummary)
	for _, e := range expenses {
		month := time.Date(e.IncurredAt.Year(), e.IncurredAt.Month(), 1, 0, 0, 0, 0, time.UTC)
		b, ok := buckets[month]
		if !ok {
			b = &models.MonthlyExpenseSummary{
				Month:      month,
				Total:      decimal.Zero,
				ByCategory: make(map[string]decimal.Decimal),
			}
			buckets[month] = b
		}
		category := e.Category
		if category == "" {
			category = "uncategorized"
		}
		b.Total = b.Total.Add(e.Amount)
		b.ByCategory[category] = b.ByCategory[category].Add(e.Amount)
	}

	months := make([]models.MonthlyExpenseSummary, 0, len(buckets))
	for _, b := range buckets {
		months = append(months, *b)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Month.Before(months[j].Month) })
	return months
}
