package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AggregatedStudentMetrics is one reconciled row of the student report.
// Rows are rebuilt in full on every collection run and are never mutated
// after aggregation; filtering and sorting work on copies of the slice
// header, not on the rows themselves.
type AggregatedStudentMetrics struct {
	StudentID             string          `json:"studentId"`
	DisplayName           string          `json:"displayName"`
	Email                 string          `json:"email"`
	LeadSource            string          `json:"leadSource,omitempty"`
	IsActive              bool            `json:"isActive"`
	TotalRevenue          decimal.Decimal `json:"totalRevenue"`
	TotalLessonsPurchased int             `json:"totalLessonsPurchased"`
	LessonCredits         int             `json:"lessonCredits"`
	LessonDates           []time.Time     `json:"lessonDates"`               // Chronological, lesson_taken rows only
	FirstLessonDate       *time.Time      `json:"firstLessonDate,omitempty"` // Nil when the student has no attended lessons
	LastLessonDate        *time.Time      `json:"lastLessonDate,omitempty"`
	AvgRevenuePerLesson   decimal.Decimal `json:"avgRevenuePerLesson"` // Zero when no lessons were purchased
}

// ReportSummary is the header block of an exported report. It is computed
// from the exact row set handed to the exporter, so a filtered export
// always matches the filtered screen.
type ReportSummary struct {
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	NetRevenue       decimal.Decimal `json:"netRevenue"`
	TotalStudents    int             `json:"totalStudents"`
	ActiveStudents   int             `json:"activeStudents"`
	TotalLessonsSold int             `json:"totalLessonsSold"`
}

// MonthlyExpenseSummary groups the expense store by calendar month.
type MonthlyExpenseSummary struct {
	Month      time.Time                  `json:"month"` // First day of the month, UTC
	Total      decimal.Decimal            `json:"total"`
	ByCategory map[string]decimal.Decimal `json:"byCategory"`
}
