package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"courtside/services/report"
	"courtside/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ReportHandler serves the reconciled report views.
type ReportHandler struct {
	Svc report.ReportService
}

func NewReportHandler(svc report.ReportService) *ReportHandler {
	return &ReportHandler{Svc: svc}
}

// GetStudentReport returns the filtered, sorted student table.
func (h *ReportHandler) GetStudentReport(c *gin.Context) {
	criteria, key, dir, ok := parseReportQuery(c)
	if !ok {
		return
	}
	result, err := h.Svc.BuildStudentReport(c.Request.Context(), criteria, key, dir)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to build student report", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetStudentPayments returns one student's payment history, newest
// first. This feeds the payment display list; totals on the report come
// from the ledger, never from these rows.
func (h *ReportHandler) GetStudentPayments(c *gin.Context) {
	studentID := c.Param("id")
	if studentID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing student id", "")
		return
	}
	payments, err := h.Svc.StudentPayments(c.Request.Context(), studentID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load payment history", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

// GetReferralReport returns both leaderboards and the combined totals.
func (h *ReportHandler) GetReferralReport(c *gin.Context) {
	result, err := h.Svc.ReferralLeaderboards(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to build referral report", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetSummary returns only the summary block for the filtered view.
func (h *ReportHandler) GetSummary(c *gin.Context) {
	criteria, key, dir, ok := parseReportQuery(c)
	if !ok {
		return
	}
	result, err := h.Svc.BuildStudentReport(c.Request.Context(), criteria, key, dir)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to build summary", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": result.Summary, "sources": result.Sources})
}

// GetExpenseReport returns the monthly expense breakdown.
func (h *ReportHandler) GetExpenseReport(c *gin.Context) {
	var year *int
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid year", raw)
			return
		}
		year = &y
	}
	result, err := h.Svc.ExpenseSummary(c.Request.Context(), year)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to build expense report", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// parseReportQuery reads the shared filter/sort query parameters. Month
// without year is a caller mistake and is rejected rather than silently
// ignored.
func parseReportQuery(c *gin.Context) (report.FilterCriteria, report.SortKey, report.SortDirection, bool) {
	var criteria report.FilterCriteria

	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid year", raw)
			return criteria, "", "", false
		}
		criteria.Year = &y
	}
	if raw := c.Query("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			utils.JSONError(c, http.StatusBadRequest, "invalid month", raw)
			return criteria, "", "", false
		}
		if criteria.Year == nil {
			utils.JSONError(c, http.StatusBadRequest, "month requires year", raw)
			return criteria, "", "", false
		}
		criteria.Month = &m
	}
	criteria.TextQuery = c.Query("q")
	if raw := c.Query("revenueMin"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid revenueMin", raw)
			return criteria, "", "", false
		}
		criteria.RevenueMin = &min
	}
	if raw := c.Query("revenueMax"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid revenueMax", raw)
			return criteria, "", "", false
		}
		criteria.RevenueMax = &max
	}
	if raw := c.Query("activeFrom"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid activeFrom, want YYYY-MM-DD", raw)
			return criteria, "", "", false
		}
		criteria.ActiveFrom = &t
	}
	if raw := c.Query("activeTo"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid activeTo, want YYYY-MM-DD", raw)
			return criteria, "", "", false
		}
		criteria.ActiveTo = &t
	}
	if raw := c.Query("leadSources"); raw != "" {
		for _, src := range strings.Split(raw, ",") {
			if src = strings.TrimSpace(src); src != "" {
				criteria.LeadSources = append(criteria.LeadSources, src)
			}
		}
	}
	criteria.ActiveOnly = c.Query("activeOnly") == "true"

	key := report.SortKey(c.Query("sortBy"))
	dir := report.SortDirection(c.DefaultQuery("sortDir", string(report.Ascending)))
	return criteria, key, dir, true
}
