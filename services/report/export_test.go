package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"courtside/models"

	"github.com/shopspring/decimal"
)

func TestToCSV_RoundTripsWithStandardParser(t *testing.T) {
	rows := sampleRows()
	out, err := ToCSV(rows, StudentReportColumns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("standard parser rejected output: %v", err)
	}
	if len(parsed) != len(rows)+1 {
		t.Fatalf("got %d records, want %d (header + rows)", len(parsed), len(rows)+1)
	}
	for i, row := range rows {
		if parsed[i+1][0] != row.DisplayName {
			t.Fatalf("row %d name: got %q, want %q", i, parsed[i+1][0], row.DisplayName)
		}
		if parsed[i+1][2] != row.TotalRevenue.StringFixed(2) {
			t.Fatalf("row %d revenue: got %q, want %q", i, parsed[i+1][2], row.TotalRevenue.StringFixed(2))
		}
	}
}

func TestToCSV_QuotingAndEscaping(t *testing.T) {
	row := models.AggregatedStudentMetrics{
		StudentID:    "q",
		DisplayName:  `Nina "Ace" O'Neil, Jr.`,
		Email:        "nina@example.com",
		TotalRevenue: decimal.NewFromInt(10),
	}
	out, err := ToCSV([]models.AggregatedStudentMetrics{row}, StudentReportColumns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"Nina ""Ace"" O'Neil, Jr."`) {
		t.Fatalf("quote doubling missing in %q", out)
	}

	parsed, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed[1][0] != row.DisplayName {
		t.Fatalf("round trip: got %q, want %q", parsed[1][0], row.DisplayName)
	}
}

func TestToCSV_CurrencyAndDateFormatting(t *testing.T) {
	first := date(2024, 1, 10)
	last := date(2024, 12, 3)
	row := models.AggregatedStudentMetrics{
		StudentID:           "a",
		DisplayName:         "Ada",
		TotalRevenue:        decimal.RequireFromString("1234.5"),
		AvgRevenuePerLesson: decimal.RequireFromString("246.9"),
		FirstLessonDate:     &first,
		LastLessonDate:      &last,
	}
	out, err := ToCSV([]models.AggregatedStudentMetrics{row}, StudentReportColumns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"1234.50"`) || !strings.Contains(out, `"246.90"`) {
		t.Fatalf("currency not two-decimal in %q", out)
	}
	if !strings.Contains(out, `"01/10/2024"`) || !strings.Contains(out, `"12/03/2024"`) {
		t.Fatalf("dates not MM/DD/YYYY in %q", out)
	}
}

func TestToCSV_UnknownColumnFailsWhole(t *testing.T) {
	out, err := ToCSV(sampleRows(), []Column{{Key: "name", Label: "Student"}, {Key: "nope", Label: "?"}})
	if err == nil {
		t.Fatal("expected error for unknown column")
	}
	if out != "" {
		t.Fatalf("partial output returned: %q", out)
	}
	if _, ok := err.(*ExportError); !ok {
		t.Fatalf("got %T, want *ExportError", err)
	}
}

func TestToPDF_ProducesCompleteDocument(t *testing.T) {
	rows := sampleRows()
	summary := Summarize(rows, nil)

	data, err := ToPDF(rows, StudentReportColumns, summary, "Courtside - Student Revenue Report", date(2026, 8, 29))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not start with PDF header: %q", data[:8])
	}
	if !bytes.Contains(data, []byte("%%EOF")) {
		t.Fatal("output missing EOF trailer")
	}
}

func TestToPDF_UnknownColumnFailsWhole(t *testing.T) {
	data, err := ToPDF(sampleRows(), []Column{{Key: "nope", Label: "?"}}, models.ReportSummary{}, "t", date(2026, 1, 1))
	if err == nil {
		t.Fatal("expected error for unknown column")
	}
	if data != nil {
		t.Fatal("partial binary returned")
	}
}

func TestSummarize_UsesOnlyPassedRows(t *testing.T) {
	all := sampleRows()
	min := decimal.NewFromInt(400)
	filtered := ApplyFilters(all, FilterCriteria{RevenueMin: &min})

	summary := Summarize(filtered, nil)
	if summary.TotalStudents != 1 {
		t.Fatalf("students: got %d, want 1", summary.TotalStudents)
	}
	if !summary.TotalRevenue.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("revenue: got %v, want 500 (filtered rows only)", summary.TotalRevenue)
	}
}

func TestSummarize_NetRevenueSubtractsExpenses(t *testing.T) {
	expenses := []models.Expense{
		{ID: "e1", Amount: decimal.NewFromInt(120), IncurredAt: date(2024, 3, 1), Category: "courts"},
		{ID: "e2", Amount: decimal.NewFromInt(80), IncurredAt: date(2024, 4, 1)},
	}
	summary := Summarize(sampleRows(), expenses)
	if !summary.TotalExpenses.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("expenses: got %v, want 200", summary.TotalExpenses)
	}
	if !summary.NetRevenue.Equal(decimal.NewFromInt(600)) {
		t.Fatalf("net: got %v, want 600 (800 - 200)", summary.NetRevenue)
	}
}

func TestExportFileName_Convention(t *testing.T) {
	now := date(2026, 8, 29)
	if got := ExportFileName("students", nil, "csv", now); got != "students-all-time-2026-08-29.csv" {
		t.Fatalf("all-time: got %q", got)
	}
	year := 2024
	if got := ExportFileName("students", &year, "pdf", now); got != "students-2024-2026-08-29.pdf" {
		t.Fatalf("year scope: got %q", got)
	}
}

func TestSummarizeExpenses_MonthlyBuckets(t *testing.T) {
	expenses := []models.Expense{
		{ID: "1", Amount: decimal.NewFromInt(100), IncurredAt: date(2024, 3, 5), Category: "courts"},
		{ID: "2", Amount: decimal.NewFromInt(50), IncurredAt: date(2024, 3, 20), Category: "equipment"},
		{ID: "3", Amount: decimal.NewFromInt(25), IncurredAt: date(2024, 1, 2)},
	}
	months := SummarizeExpenses(expenses)

	if len(months) != 2 {
		t.Fatalf("got %d months, want 2", len(months))
	}
	if !months[0].Month.Before(months[1].Month) {
		t.Fatal("months not chronological")
	}
	march := months[1]
	if !march.Total.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("march total: got %v, want 150", march.Total)
	}
	if !march.ByCategory["courts"].Equal(decimal.NewFromInt(100)) {
		t.Fatalf("courts: got %v, want 100", march.ByCategory["courts"])
	}
	if !months[0].ByCategory["uncategorized"].Equal(decimal.NewFromInt(25)) {
		t.Fatalf("uncategorized: got %v", months[0].ByCategory["uncategorized"])
	}
}
