package report

import (
	"testing"
	"time"

	"courtside/models"

	"github.com/shopspring/decimal"
)

func sampleRows() []models.AggregatedStudentMetrics {
	students := []models.StudentAccount{
		student("A", "Ada", 500, 5),
		student("B", "Bob", 0, 0),
		student("C", "Cleo", 300, 3),
	}
	students[0].IsActive = true
	students[0].LeadSource = models.LeadSourceReferral
	students[2].LeadSource = models.LeadSourceWebsite

	lessons := []models.LessonTransaction{
		lessonTaken("A", date(2024, 1, 10)),
		lessonTaken("A", date(2024, 2, 1)),
		lessonTaken("C", date(2023, 6, 15)),
	}
	return MetricsRows(Aggregate(students, nil, lessons))
}

func ids(rows []models.AggregatedStudentMetrics) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.StudentID
	}
	return out
}

func TestApplyFilters_RevenueBoundsInclusive(t *testing.T) {
	min := decimal.NewFromInt(100)
	max := decimal.NewFromInt(400)
	got := ApplyFilters(sampleRows(), FilterCriteria{RevenueMin: &min, RevenueMax: &max})

	if len(got) != 1 || got[0].StudentID != "C" {
		t.Fatalf("got %v, want [C]", ids(got))
	}
}

func TestApplyFilters_YearExcludesRowsWithoutDates(t *testing.T) {
	year := 2024
	got := ApplyFilters(sampleRows(), FilterCriteria{Year: &year})

	// B has no lesson dates and cannot satisfy a date filter; C attended
	// only in 2023.
	if len(got) != 1 || got[0].StudentID != "A" {
		t.Fatalf("got %v, want [A]", ids(got))
	}
}

func TestApplyFilters_MonthRestrictsWithinYear(t *testing.T) {
	year, month := 2024, 2
	got := ApplyFilters(sampleRows(), FilterCriteria{Year: &year, Month: &month})
	if len(got) != 1 || got[0].StudentID != "A" {
		t.Fatalf("feb 2024: got %v, want [A]", ids(got))
	}

	month = 3
	got = ApplyFilters(sampleRows(), FilterCriteria{Year: &year, Month: &month})
	if len(got) != 0 {
		t.Fatalf("mar 2024: got %v, want []", ids(got))
	}
}

func TestApplyFilters_MonthIgnoredWithoutYear(t *testing.T) {
	month := 2
	got := ApplyFilters(sampleRows(), FilterCriteria{Month: &month})
	if len(got) != 3 {
		t.Fatalf("month without year must not filter, got %v", ids(got))
	}
}

func TestApplyFilters_TextQueryCaseInsensitive(t *testing.T) {
	got := ApplyFilters(sampleRows(), FilterCriteria{TextQuery: "CLEO"})
	if len(got) != 1 || got[0].StudentID != "C" {
		t.Fatalf("name match: got %v, want [C]", ids(got))
	}

	got = ApplyFilters(sampleRows(), FilterCriteria{TextQuery: "bob@example"})
	if len(got) != 1 || got[0].StudentID != "B" {
		t.Fatalf("email match: got %v, want [B]", ids(got))
	}
}

func TestApplyFilters_ActiveDateWindow(t *testing.T) {
	from := date(2024, 1, 1)
	to := date(2024, 12, 31)
	got := ApplyFilters(sampleRows(), FilterCriteria{ActiveFrom: &from, ActiveTo: &to})

	if len(got) != 1 || got[0].StudentID != "A" {
		t.Fatalf("got %v, want [A]", ids(got))
	}
}

func TestApplyFilters_LeadSourcesAndActiveOnly(t *testing.T) {
	got := ApplyFilters(sampleRows(), FilterCriteria{LeadSources: []string{models.LeadSourceReferral, models.LeadSourceWebsite}})
	if len(got) != 2 {
		t.Fatalf("lead sources: got %v, want [A C]", ids(got))
	}

	got = ApplyFilters(sampleRows(), FilterCriteria{ActiveOnly: true})
	if len(got) != 1 || got[0].StudentID != "A" {
		t.Fatalf("activeOnly: got %v, want [A]", ids(got))
	}
}

func TestApplyFilters_OrderOfApplicationCommutes(t *testing.T) {
	year := 2024
	rows := sampleRows()

	once := ApplyFilters(ApplyFilters(rows, FilterCriteria{Year: &year}), FilterCriteria{ActiveOnly: true})
	swap := ApplyFilters(ApplyFilters(rows, FilterCriteria{ActiveOnly: true}), FilterCriteria{Year: &year})
	both := ApplyFilters(rows, FilterCriteria{Year: &year, ActiveOnly: true})

	if len(once) != len(swap) || len(once) != len(both) {
		t.Fatalf("filter composition not commutative: %v / %v / %v", ids(once), ids(swap), ids(both))
	}
	for i := range once {
		if once[i].StudentID != swap[i].StudentID || once[i].StudentID != both[i].StudentID {
			t.Fatalf("row %d differs: %v / %v / %v", i, ids(once), ids(swap), ids(both))
		}
	}
}

func TestApplyFilters_DoesNotMutateInput(t *testing.T) {
	rows := sampleRows()
	before := ids(rows)

	year := 2024
	_ = ApplyFilters(rows, FilterCriteria{Year: &year, ActiveOnly: true})

	after := ids(rows)
	if len(before) != len(after) {
		t.Fatalf("input length changed: %v -> %v", before, after)
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("input order changed at %d: %v -> %v", i, before, after)
		}
	}
}

func TestApplySort_StableWithNilsLowest(t *testing.T) {
	rows := sampleRows() // Ada, Bob, Cleo by name

	asc := ApplySort(rows, SortByFirstLesson, Ascending)
	// Bob has no dates and sorts lowest ascending.
	if asc[0].StudentID != "B" {
		t.Fatalf("ascending: got %v, want B first", ids(asc))
	}
	if asc[1].StudentID != "C" || asc[2].StudentID != "A" {
		t.Fatalf("ascending: got %v, want [B C A]", ids(asc))
	}

	desc := ApplySort(rows, SortByFirstLesson, Descending)
	if desc[0].StudentID != "A" || desc[2].StudentID != "B" {
		t.Fatalf("descending: got %v, want [A C B]", ids(desc))
	}
}

func TestApplySort_EqualKeysKeepPriorOrder(t *testing.T) {
	rows := []models.AggregatedStudentMetrics{
		{StudentID: "1", DisplayName: "Zoe", TotalRevenue: decimal.NewFromInt(100)},
		{StudentID: "2", DisplayName: "Ann", TotalRevenue: decimal.NewFromInt(100)},
		{StudentID: "3", DisplayName: "Mia", TotalRevenue: decimal.NewFromInt(100)},
	}
	got := ApplySort(rows, SortByRevenue, Ascending)
	want := []string{"1", "2", "3"}
	for i := range want {
		if got[i].StudentID != want[i] {
			t.Fatalf("stable sort violated: got %v, want %v", ids(got), want)
		}
	}
}

func TestApplySort_UnknownKeyReturnsCopyUnchanged(t *testing.T) {
	rows := sampleRows()
	got := ApplySort(rows, SortKey("bogus"), Ascending)
	if len(got) != len(rows) {
		t.Fatalf("got %d rows, want %d", len(got), len(rows))
	}
	for i := range rows {
		if got[i].StudentID != rows[i].StudentID {
			t.Fatalf("unknown key must preserve order, got %v", ids(got))
		}
	}
}

func TestStartEndOfDayNormalization(t *testing.T) {
	noon := time.Date(2024, 5, 10, 12, 30, 0, 0, time.UTC)
	if got := startOfDay(noon); got.Hour() != 0 || got.Day() != 10 {
		t.Fatalf("startOfDay: got %v", got)
	}
	if got := endOfDay(noon); got.Hour() != 23 || got.Day() != 10 {
		t.Fatalf("endOfDay: got %v", got)
	}
}
