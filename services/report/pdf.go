package report

import (
	"bytes"
	"strconv"
	"time"

	"courtside/models"

	"github.com/jung-kurt/gofpdf"
)

// Column widths in mm for a landscape A4 table; indexed in step with
// StudentReportColumns.
var pdfColumnWidths = map[string]float64{
	"name":                40,
	"email":               52,
	"revenue":             26,
	"lessonsPurchased":    24,
	"credits":             22,
	"avgRevenuePerLesson": 28,
	"firstLesson":         24,
	"lastLesson":          24,
	"leadSource":          24,
	"active":              14,
}

// ToPDF renders the rows into a paginated report: a title block, the
// generation timestamp, the summary computed from the same row set, then
// the table with column headers repeated on every page. The byte slice
// is a complete document or the call fails.
func ToPDF(rows []models.AggregatedStudentMetrics, cols []Column, summary models.ReportSummary, title string, generatedAt time.Time) ([]byte, error) {
	if len(cols) == 0 {
		return nil, NewExportError("no columns selected")
	}
	for _, col := range cols {
		if !knownColumn(col.Key) {
			return nil, NewExportError("unknown column %q", col.Key)
		}
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(0, 6, "Generated on "+generatedAt.Format("01/02/2006 15:04"), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(2)

	writeSummaryBlock(pdf, summary)
	pdf.Ln(4)

	writeTableHeader(pdf, cols)
	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		if pdf.GetY() > 180 {
			pdf.AddPage()
			writeTableHeader(pdf, cols)
			pdf.SetFont("Helvetica", "", 9)
		}
		for _, col := range cols {
			pdf.CellFormat(pdfColumnWidths[col.Key], 7, fieldValue(row, col.Key), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, NewExportError("pdf rendering failed: %v", err)
	}
	return buf.Bytes(), nil
}

func writeSummaryBlock(pdf *gofpdf.Fpdf, summary models.ReportSummary) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	lines := [][2]string{
		{"Total revenue", formatMoney(summary.TotalRevenue)},
		{"Total expenses", formatMoney(summary.TotalExpenses)},
		{"Net revenue", formatMoney(summary.NetRevenue)},
		{"Total students", strconv.Itoa(summary.TotalStudents)},
		{"Active students", strconv.Itoa(summary.ActiveStudents)},
		{"Lessons sold", strconv.Itoa(summary.TotalLessonsSold)},
	}
	for _, line := range lines {
		pdf.CellFormat(40, 6, line[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, line[1], "", 1, "L", false, 0, "")
	}
}

func writeTableHeader(pdf *gofpdf.Fpdf, cols []Column) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(235, 235, 235)
	for _, col := range cols {
		pdf.CellFormat(pdfColumnWidths[col.Key], 7, col.Label, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
}
