package handlers

import (
	"net/http"

	"courtside/utils"

	"github.com/gin-gonic/gin"
)

// ExportStudentsCSV streams the filtered student table as a CSV download.
func (h *ReportHandler) ExportStudentsCSV(c *gin.Context) {
	criteria, key, dir, ok := parseReportQuery(c)
	if !ok {
		return
	}
	artifact, err := h.Svc.ExportStudentsCSV(c.Request.Context(), criteria, key, dir)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "csv export failed", err.Error())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+artifact.FileName+`"`)
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

// ExportStudentsPDF streams the same view as a PDF report.
func (h *ReportHandler) ExportStudentsPDF(c *gin.Context) {
	criteria, key, dir, ok := parseReportQuery(c)
	if !ok {
		return
	}
	artifact, err := h.Svc.ExportStudentsPDF(c.Request.Context(), criteria, key, dir)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "pdf export failed", err.Error())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+artifact.FileName+`"`)
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

// Health reports the last known status of the external stores.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
