package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"courtside/models"

	"github.com/shopspring/decimal"
)

func TestBuildStudentReport_EndToEnd(t *testing.T) {
	svc := newFakeService()
	year := 2024

	result, err := svc.BuildStudentReport(context.Background(), FilterCriteria{Year: &year}, SortByRevenue, Descending)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Rows) != 1 || result.Rows[0].StudentID != "A" {
		t.Fatalf("got %d rows, want only A (Cleo has no 2024 lessons)", len(result.Rows))
	}
	if !result.Summary.TotalRevenue.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("summary revenue: got %v, want 500", result.Summary.TotalRevenue)
	}
	// Expenses scoped to the same year feed net revenue.
	if !result.Summary.NetRevenue.Equal(decimal.NewFromInt(400)) {
		t.Fatalf("net revenue: got %v, want 400", result.Summary.NetRevenue)
	}
	if !result.Sources.Students {
		t.Fatalf("sources: %+v", result.Sources)
	}
}

func TestBuildStudentReport_DegradesWhenLedgerMissing(t *testing.T) {
	svc := newFakeService()
	svc.Students = &fakeStudents{err: errors.New("ns not found: students")}

	result, err := svc.BuildStudentReport(context.Background(), FilterCriteria{}, "", Ascending)
	if err != nil {
		t.Fatalf("missing source must not be fatal: %v", err)
	}
	if len(result.Rows) != 0 {
		t.Fatalf("got %d rows, want 0", len(result.Rows))
	}
	if result.Sources.Students {
		t.Fatal("students source should be flagged unavailable")
	}
}

func TestBuildStudentReport_CancelledContext(t *testing.T) {
	svc := newFakeService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.BuildStudentReport(ctx, FilterCriteria{}, "", Ascending); err == nil {
		t.Fatal("expected context error after cancellation")
	}
}

func TestStudentPayments_ReturnsOnlyThatStudent(t *testing.T) {
	svc := newFakeService()
	svc.Payments = &fakePayments{records: []models.PaymentTransaction{
		{ID: "p1", StudentID: "A", Amount: decimal.NewFromInt(200), OccurredAt: date(2024, 1, 5)},
		{ID: "p2", StudentID: "C", Amount: decimal.NewFromInt(150), OccurredAt: date(2024, 2, 5)},
		{ID: "p3", StudentID: "A", Amount: decimal.NewFromInt(300), OccurredAt: date(2024, 3, 5)},
	}}

	payments, err := svc.StudentPayments(context.Background(), "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payments) != 2 {
		t.Fatalf("got %d payments, want 2", len(payments))
	}
	for _, p := range payments {
		if p.StudentID != "A" {
			t.Fatalf("foreign payment row leaked: %+v", p)
		}
	}

	boom := errors.New("ns not found: payment_transactions")
	svc.Payments = &fakePayments{err: boom}
	if _, err := svc.StudentPayments(context.Background(), "A"); err == nil {
		t.Fatal("expected store error to surface for the display list")
	}
}

func TestReferralLeaderboards_EndToEnd(t *testing.T) {
	svc := newFakeService()
	students := []struct {
		id, name   string
		revenue    int64
		referredBy string
	}{
		{"A", "Ada", 500, ""},
		{"B", "Bob", 0, "A"},
		{"C", "Cleo", 300, "A"},
	}
	var ledger fakeStudents
	for _, s := range students {
		st := student(s.id, s.name, s.revenue, 0)
		st.ReferredBy = s.referredBy
		ledger.records = append(ledger.records, st)
	}
	svc.Students = &ledger

	result, err := svc.ReferralLeaderboards(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.App) != 1 || result.App[0].ReferrerID != "A" || result.App[0].ReferralCount != 2 {
		t.Fatalf("app leaderboard: %+v", result.App)
	}
	if len(result.Website) != 1 || result.Website[0].ReferralCount != 2 {
		t.Fatalf("website leaderboard: %+v", result.Website)
	}
	if !result.Combined.TotalRevenue.Equal(decimal.NewFromInt(420)) {
		t.Fatalf("combined revenue: got %v, want 420", result.Combined.TotalRevenue)
	}
	if result.Combined.UniqueReferrers != 2 {
		t.Fatalf("unique referrers: got %d, want 2", result.Combined.UniqueReferrers)
	}
}

func TestExpenseSummary_ScopedToYear(t *testing.T) {
	svc := newFakeService()
	year := 2023

	result, err := svc.ExpenseSummary(context.Background(), &year)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Months) != 0 {
		t.Fatalf("2023 has no expenses, got %v", result.Months)
	}

	year = 2024
	result, err = svc.ExpenseSummary(context.Background(), &year)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Months) != 1 || !result.Months[0].Total.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("2024: got %v", result.Months)
	}
}

func TestExportStudentsCSV_ArtifactMatchesReport(t *testing.T) {
	svc := newFakeService()
	svc.nowFn = func() time.Time { return date(2026, 8, 29) }

	artifact, err := svc.ExportStudentsCSV(context.Background(), FilterCriteria{}, SortByName, Ascending)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if artifact.FileName != "students-all-time-2026-08-29.csv" {
		t.Fatalf("file name: got %q", artifact.FileName)
	}
	if artifact.ContentType != "text/csv" {
		t.Fatalf("content type: got %q", artifact.ContentType)
	}

	parsed, err := csv.NewReader(strings.NewReader(string(artifact.Data))).ReadAll()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(parsed) != 3 { // header + Ada + Cleo
		t.Fatalf("got %d records, want 3", len(parsed))
	}
}

func TestExportStudentsPDF_ArtifactIsComplete(t *testing.T) {
	svc := newFakeService()
	svc.nowFn = func() time.Time { return date(2026, 8, 29) }
	year := 2024

	artifact, err := svc.ExportStudentsPDF(context.Background(), FilterCriteria{Year: &year}, "", Ascending)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if artifact.FileName != "students-2024-2026-08-29.pdf" {
		t.Fatalf("file name: got %q", artifact.FileName)
	}
	if !bytes.HasPrefix(artifact.Data, []byte("%PDF")) {
		t.Fatal("artifact is not a PDF document")
	}
}
