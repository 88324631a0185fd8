package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"courtside/models"

	"github.com/shopspring/decimal"
)

// Column pairs a field key with its header label. Exports render the
// same column set in CSV and PDF so the two artifacts always agree.
type Column struct {
	Key   string
	Label string
}

// StudentReportColumns is the default column set of the student table.
var StudentReportColumns = []Column{
	{Key: "name", Label: "Student"},
	{Key: "email", Label: "Email"},
	{Key: "revenue", Label: "Total Revenue"},
	{Key: "lessonsPurchased", Label: "Lessons Purchased"},
	{Key: "credits", Label: "Lesson Credits"},
	{Key: "avgRevenuePerLesson", Label: "Avg Revenue/Lesson"},
	{Key: "firstLesson", Label: "First Lesson"},
	{Key: "lastLesson", Label: "Last Lesson"},
	{Key: "leadSource", Label: "Lead Source"},
	{Key: "active", Label: "Active"},
}

// ToCSV renders the rows to CSV text: one header row, every field quoted,
// embedded quotes doubled, currency with two decimals and dates as
// MM/DD/YYYY. The output is complete or the call fails; no partial text
// is ever returned.
func ToCSV(rows []models.AggregatedStudentMetrics, cols []Column) (string, error) {
	if len(cols) == 0 {
		return "", NewExportError("no columns selected")
	}
	for _, col := range cols {
		if !knownColumn(col.Key) {
			return "", NewExportError("unknown column %q", col.Key)
		}
	}

	var b strings.Builder
	writeCSVRow(&b, labels(cols))
	for _, row := range rows {
		fields := make([]string, len(cols))
		for i, col := range cols {
			fields[i] = fieldValue(row, col.Key)
		}
		writeCSVRow(&b, fields)
	}
	return b.String(), nil
}

func writeCSVRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

func labels(cols []Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Label
	}
	return out
}

func knownColumn(key string) bool {
	switch key {
	case "name", "email", "revenue", "lessonsPurchased", "credits",
		"avgRevenuePerLesson", "firstLesson", "lastLesson", "leadSource", "active":
		return true
	}
	return false
}

func fieldValue(row models.AggregatedStudentMetrics, key string) string {
	switch key {
	case "name":
		return row.DisplayName
	case "email":
		return row.Email
	case "revenue":
		return formatMoney(row.TotalRevenue)
	case "lessonsPurchased":
		return strconv.Itoa(row.TotalLessonsPurchased)
	case "credits":
		return strconv.Itoa(row.LessonCredits)
	case "avgRevenuePerLesson":
		return formatMoney(row.AvgRevenuePerLesson)
	case "firstLesson":
		return formatDatePtr(row.FirstLessonDate)
	case "lastLesson":
		return formatDatePtr(row.LastLessonDate)
	case "leadSource":
		return row.LeadSource
	case "active":
		if row.IsActive {
			return "yes"
		}
		return "no"
	}
	return ""
}

func formatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatDate(t time.Time) string {
	return t.Format("01/02/2006")
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatDate(*t)
}

// ExportFileName builds the conventional download name:
// <prefix>-<all-time|year>-<YYYY-MM-DD>.<ext>.
func ExportFileName(prefix string, year *int, ext string, now time.Time) string {
	scope := "all-time"
	if year != nil {
		scope = strconv.Itoa(*year)
	}
	return fmt.Sprintf("%s-%s-%s.%s", prefix, scope, now.Format("2006-01-02"), ext)
}
