package routes

import (
	"time"

	"courtside/handlers"
	"courtside/middleware"
	"courtside/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter assembles the gin engine with the shared middleware chain.
func NewRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(utils.ErrorHandler())
	r.Use(gin.Logger())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RateLimitMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Disposition"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))
	return r
}

// RegisterReportRoutes registers the report and export endpoints.
func RegisterReportRoutes(r *gin.Engine, h *handlers.ReportHandler) {
	api := r.Group("/api/reports")
	{
		api.GET("/students", h.GetStudentReport)
		api.GET("/students/:id/payments", h.GetStudentPayments)
		api.GET("/referrals", h.GetReferralReport)
		api.GET("/summary", h.GetSummary)
		api.GET("/expenses", h.GetExpenseReport)
		api.GET("/export/csv", h.ExportStudentsCSV)
		api.GET("/export/pdf", h.ExportStudentsPDF)
	}

	r.GET("/health", handlers.Health)
}
