package report

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
	"time"

	"courtside/config"
	"courtside/models"
	"courtside/utils"

	"go.uber.org/zap"
)

// BuildStudentReport runs the full pipeline: collect, aggregate, filter,
// sort, summarize. Source failures degrade to empty data and are
// reported through the Sources flags, never as an error.
func (s *DefaultReportService) BuildStudentReport(ctx context.Context, criteria FilterCriteria, key SortKey, dir SortDirection) (*StudentReportResult, error) {
	data := s.Collect(ctx)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	metrics := Aggregate(data.Students, data.Payments, data.Lessons)
	rows := ApplyFilters(MetricsRows(metrics), criteria)
	rows = ApplySort(rows, key, dir)

	expenses := ScopeExpensesToYear(data.Expenses, criteria.Year)
	return &StudentReportResult{
		Rows:    rows,
		Summary: Summarize(rows, expenses),
		Sources: data.Sources,
	}, nil
}

// ReferralLeaderboards resolves both referral statistics and their
// combined totals.
func (s *DefaultReportService) ReferralLeaderboards(ctx context.Context) (*ReferralReportResult, error) {
	data := s.Collect(ctx)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	app := ResolveAppReferrals(data.Students)
	website := ResolveWebsiteReferrals(data.Bookings)
	return &ReferralReportResult{
		App:      RankReferrers(app),
		Website:  RankReferrers(website),
		Combined: Combine(app, website),
		Sources:  data.Sources,
	}, nil
}

// StudentPayments returns one student's payment history for the display
// list shown next to the ledger. The rows are presentation detail only;
// revenue totals always come from the ledger fields.
func (s *DefaultReportService) StudentPayments(ctx context.Context, studentID string) ([]models.PaymentTransaction, error) {
	return s.Payments.ListByStudent(ctx, studentID)
}

// ExpenseSummary returns the monthly expense breakdown, optionally
// scoped to one year.
func (s *DefaultReportService) ExpenseSummary(ctx context.Context, year *int) (*ExpenseReportResult, error) {
	data := s.Collect(ctx)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &ExpenseReportResult{
		Months:  SummarizeExpenses(ScopeExpensesToYear(data.Expenses, year)),
		Sources: data.Sources,
	}, nil
}

// ExportStudentsCSV renders the filtered, sorted student table as a CSV
// download. Rendered artifacts are cached briefly so repeated downloads
// of the same view skip the pipeline.
func (s *DefaultReportService) ExportStudentsCSV(ctx context.Context, criteria FilterCriteria, key SortKey, dir SortDirection) (*ExportArtifact, error) {
	cacheKey := exportCacheKey("csv", criteria, key, dir)
	if cached := s.cachedArtifact(ctx, cacheKey, "text/csv"); cached != nil {
		return cached, nil
	}

	result, err := s.BuildStudentReport(ctx, criteria, key, dir)
	if err != nil {
		return nil, err
	}
	csv, err := ToCSV(result.Rows, StudentReportColumns)
	if err != nil {
		return nil, err
	}

	artifact := &ExportArtifact{
		FileName:    ExportFileName("students", criteria.Year, "csv", s.now()),
		ContentType: "text/csv",
		Data:        []byte(csv),
	}
	s.storeArtifact(ctx, cacheKey, artifact)
	return artifact, nil
}

// ExportStudentsPDF renders the same view as a paginated PDF report.
func (s *DefaultReportService) ExportStudentsPDF(ctx context.Context, criteria FilterCriteria, key SortKey, dir SortDirection) (*ExportArtifact, error) {
	cacheKey := exportCacheKey("pdf", criteria, key, dir)
	if cached := s.cachedArtifact(ctx, cacheKey, "application/pdf"); cached != nil {
		return cached, nil
	}

	result, err := s.BuildStudentReport(ctx, criteria, key, dir)
	if err != nil {
		return nil, err
	}
	title := config.AppConfig.StudioName
	if title == "" {
		title = "Student Revenue Report"
	} else {
		title += " - Student Revenue Report"
	}
	data, err := ToPDF(result.Rows, StudentReportColumns, result.Summary, title, s.now())
	if err != nil {
		return nil, err
	}

	artifact := &ExportArtifact{
		FileName:    ExportFileName("students", criteria.Year, "pdf", s.now()),
		ContentType: "application/pdf",
		Data:        data,
	}
	s.storeArtifact(ctx, cacheKey, artifact)
	return artifact, nil
}

// exportCacheKey fingerprints the view so each filter/sort combination
// caches independently. The fingerprint is built from the dereferenced
// criteria values, never from the pointers themselves, so equal filters
// from different requests share a key and distinct filters never collide.
func exportCacheKey(format string, criteria FilterCriteria, key SortKey, dir SortDirection) string {
	parts := []string{format, string(key), string(dir)}
	if criteria.Year != nil {
		parts = append(parts, "year="+strconv.Itoa(*criteria.Year))
	}
	if criteria.Month != nil {
		parts = append(parts, "month="+strconv.Itoa(*criteria.Month))
	}
	if q := strings.ToLower(strings.TrimSpace(criteria.TextQuery)); q != "" {
		parts = append(parts, "q="+q)
	}
	if criteria.RevenueMin != nil {
		parts = append(parts, "min="+criteria.RevenueMin.String())
	}
	if criteria.RevenueMax != nil {
		parts = append(parts, "max="+criteria.RevenueMax.String())
	}
	if criteria.ActiveFrom != nil {
		parts = append(parts, "from="+criteria.ActiveFrom.Format("2006-01-02"))
	}
	if criteria.ActiveTo != nil {
		parts = append(parts, "to="+criteria.ActiveTo.Format("2006-01-02"))
	}
	if len(criteria.LeadSources) > 0 {
		sources := append([]string(nil), criteria.LeadSources...)
		sort.Strings(sources)
		parts = append(parts, "lead="+strings.Join(sources, ","))
	}
	if criteria.ActiveOnly {
		parts = append(parts, "activeOnly")
	}
	sum := sha1.Sum([]byte(strings.Join(parts, "|")))
	return "export:" + hex.EncodeToString(sum[:])
}

func (s *DefaultReportService) cachedArtifact(ctx context.Context, cacheKey, contentType string) *ExportArtifact {
	if s.Cache == nil {
		return nil
	}
	payload, err := s.Cache.Get(ctx, cacheKey).Bytes()
	if err != nil {
		return nil
	}
	name, err := s.Cache.Get(ctx, cacheKey+":name").Result()
	if err != nil {
		return nil
	}
	return &ExportArtifact{FileName: name, ContentType: contentType, Data: payload}
}

func (s *DefaultReportService) storeArtifact(ctx context.Context, cacheKey string, artifact *ExportArtifact) {
	if s.Cache == nil {
		return
	}
	ttl := time.Duration(config.AppConfig.ExportCacheTTLMin) * time.Minute
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	logger := utils.GetLogger()
	if err := s.Cache.Set(ctx, cacheKey, artifact.Data, ttl).Err(); err != nil {
		logger.Warn("failed to cache export artifact", zap.Error(err))
		return
	}
	if err := s.Cache.Set(ctx, cacheKey+":name", artifact.FileName, ttl).Err(); err != nil {
		logger.Warn("failed to cache export file name", zap.Error(err))
	}
}
