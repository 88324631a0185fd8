package report

import (
	"context"
	"time"

	"courtside/database/repository"
	"courtside/models"

	"github.com/go-redis/redis/v8"
)

// ReportService is the read-side reconciliation engine behind the studio's
// revenue, referral and expense screens. All methods rebuild their view
// from the record sources on every call; nothing is mutated after a view
// is produced.
type ReportService interface {
	BuildStudentReport(ctx context.Context, criteria FilterCriteria, key SortKey, dir SortDirection) (*StudentReportResult, error)
	StudentPayments(ctx context.Context, studentID string) ([]models.PaymentTransaction, error)
	ReferralLeaderboards(ctx context.Context) (*ReferralReportResult, error)
	ExpenseSummary(ctx context.Context, year *int) (*ExpenseReportResult, error)
	ExportStudentsCSV(ctx context.Context, criteria FilterCriteria, key SortKey, dir SortDirection) (*ExportArtifact, error)
	ExportStudentsPDF(ctx context.Context, criteria FilterCriteria, key SortKey, dir SortDirection) (*ExportArtifact, error)
}

// StudentReportResult is the filtered, sorted student table plus the
// diagnostics the UI needs to label missing sources.
type StudentReportResult struct {
	Rows    []models.AggregatedStudentMetrics `json:"rows"`
	Summary models.ReportSummary              `json:"summary"`
	Sources SourceAvailability                `json:"sources"`
}

// ReferralReportResult carries both leaderboards and the combined totals.
type ReferralReportResult struct {
	App      []models.ReferrerSummary      `json:"app"`
	Website  []models.ReferrerSummary      `json:"website"`
	Combined models.CombinedReferrerTotals `json:"combined"`
	Sources  SourceAvailability            `json:"sources"`
}

// ExpenseReportResult is the monthly expense breakdown.
type ExpenseReportResult struct {
	Months  []models.MonthlyExpenseSummary `json:"months"`
	Sources SourceAvailability             `json:"sources"`
}

// ExportArtifact is a fully rendered download: either the whole artifact
// is present or the export call failed.
type ExportArtifact struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"-"`
}

// DefaultReportService implements ReportService over the five record
// sources. Cache is optional; when nil, rendered exports are not cached.
type DefaultReportService struct {
	Students repository.StudentLedgerRepository
	Payments repository.PaymentRepository
	Lessons  repository.LessonLogRepository
	Expenses repository.ExpenseRepository
	Bookings repository.WebsiteBookingRepository

	Cache *redis.Client

	// nowFn is overridable in tests; zero value means time.Now.
	nowFn func() time.Time
}

func (s *DefaultReportService) now() time.Time {
	if s.nowFn != nil {
		return s.nowFn()
	}
	return time.Now()
}
