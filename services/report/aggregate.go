package report

import (
	"sort"
	"time"

	"courtside/models"

	"github.com/shopspring/decimal"
)

// Aggregate reconciles the student ledger with the lesson log into one
// metrics row per student. Revenue and purchased-lesson counts come from
// the ledger fields only; payment transaction rows are accepted for
// interface parity with the collection stage but are display detail and
// are deliberately never summed, so ledger totals cannot be double
// counted.
func Aggregate(students []models.StudentAccount, payments []models.PaymentTransaction, lessons []models.LessonTransaction) map[string]models.AggregatedStudentMetrics {
	attended := indexLessonDates(lessons)

	out := make(map[string]models.AggregatedStudentMetrics, len(students))
	for _, st := range students {
		dates := attended[st.ID]
		if dates == nil {
			dates = []time.Time{}
		}

		row := models.AggregatedStudentMetrics{
			StudentID:             st.ID,
			DisplayName:           st.DisplayName,
			Email:                 st.Email,
			LeadSource:            st.LeadSource,
			IsActive:              st.IsActive,
			TotalRevenue:          st.TotalRevenue,
			TotalLessonsPurchased: st.TotalLessonsPurchased,
			LessonCredits:         st.LessonCredits,
			LessonDates:           dates,
			AvgRevenuePerLesson:   decimal.Zero,
		}

		// Malformed ledger numerics coerce to zero rather than failing
		// the batch.
		if row.TotalLessonsPurchased < 0 {
			row.TotalLessonsPurchased = 0
		}
		if row.LessonCredits < 0 {
			row.LessonCredits = 0
		}
		if row.TotalRevenue.IsNegative() {
			row.TotalRevenue = decimal.Zero
		}

		if len(dates) > 0 {
			first := dates[0]
			last := dates[len(dates)-1]
			row.FirstLessonDate = &first
			row.LastLessonDate = &last
		}

		if row.TotalLessonsPurchased > 0 {
			row.AvgRevenuePerLesson = row.TotalRevenue.Div(decimal.NewFromInt(int64(row.TotalLessonsPurchased)))
		}

		out[st.ID] = row
	}
	return out
}

// indexLessonDates groups lesson_taken rows by student and sorts each
// group chronologically. Rows referencing unknown students are indexed
// too; they are simply never looked up.
func indexLessonDates(lessons []models.LessonTransaction) map[string][]time.Time {
	byStudent := make(map[string][]time.Time)
	for _, tx := range lessons {
		if tx.Type != models.LessonTakenType {
			continue
		}
		byStudent[tx.StudentID] = append(byStudent[tx.StudentID], tx.OccurredAt)
	}
	for id := range byStudent {
		dates := byStudent[id]
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	}
	return byStudent
}

// MetricsRows flattens the aggregation map into a slice ordered by
// display name then student id, so the unfiltered view is deterministic
// before any explicit sort is applied.
func MetricsRows(metrics map[string]models.AggregatedStudentMetrics) []models.AggregatedStudentMetrics {
	rows := make([]models.AggregatedStudentMetrics, 0, len(metrics))
	for _, row := range metrics {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].DisplayName != rows[j].DisplayName {
			return rows[i].DisplayName < rows[j].DisplayName
		}
		return rows[i].StudentID < rows[j].StudentID
	})
	return rows
}
