package report

import (
	"sort"
	"strings"
	"time"

	"courtside/models"
)

// SortDirection toggles ascending/descending.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// SortKey selects the single column the student table is ordered by.
type SortKey string

const (
	SortByName             SortKey = "name"
	SortByRevenue          SortKey = "revenue"
	SortByLessonsPurchased SortKey = "lessonsPurchased"
	SortByCredits          SortKey = "credits"
	SortByFirstLesson      SortKey = "firstLesson"
	SortByLastLesson       SortKey = "lastLesson"
	SortByAvgRevenue       SortKey = "avgRevenuePerLesson"
)

// ApplySort returns a sorted copy of rows. The sort is stable, so rows
// equal under the key keep their prior relative order, and unset date
// values order as the lowest value ascending.
func ApplySort(rows []models.AggregatedStudentMetrics, key SortKey, dir SortDirection) []models.AggregatedStudentMetrics {
	out := make([]models.AggregatedStudentMetrics, len(rows))
	copy(out, rows)

	cmp := comparatorFor(key)
	if cmp == nil {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if dir == Descending {
			return c > 0
		}
		return c < 0
	})
	return out
}

func comparatorFor(key SortKey) func(a, b models.AggregatedStudentMetrics) int {
	switch key {
	case SortByName:
		return func(a, b models.AggregatedStudentMetrics) int {
			return strings.Compare(strings.ToLower(a.DisplayName), strings.ToLower(b.DisplayName))
		}
	case SortByRevenue:
		return func(a, b models.AggregatedStudentMetrics) int {
			return a.TotalRevenue.Cmp(b.TotalRevenue)
		}
	case SortByLessonsPurchased:
		return func(a, b models.AggregatedStudentMetrics) int {
			return compareInt(a.TotalLessonsPurchased, b.TotalLessonsPurchased)
		}
	case SortByCredits:
		return func(a, b models.AggregatedStudentMetrics) int {
			return compareInt(a.LessonCredits, b.LessonCredits)
		}
	case SortByFirstLesson:
		return func(a, b models.AggregatedStudentMetrics) int {
			return compareTimePtr(a.FirstLessonDate, b.FirstLessonDate)
		}
	case SortByLastLesson:
		return func(a, b models.AggregatedStudentMetrics) int {
			return compareTimePtr(a.LastLessonDate, b.LastLessonDate)
		}
	case SortByAvgRevenue:
		return func(a, b models.AggregatedStudentMetrics) int {
			return a.AvgRevenuePerLesson.Cmp(b.AvgRevenuePerLesson)
		}
	}
	return nil
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// compareTimePtr treats nil as the lowest value.
func compareTimePtr(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case a.Before(*b):
		return -1
	case a.After(*b):
		return 1
	}
	return 0
}
