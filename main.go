// File: courtside/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"courtside/config"
	"courtside/database"
	"courtside/database/repository"
	"courtside/handlers"
	"courtside/routes"
	"courtside/services/report"
	"courtside/utils"

	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	reportService := &report.DefaultReportService{
		Students: repository.NewMongoStudentLedgerRepo(),
		Payments: repository.NewMongoPaymentRepo(),
		Lessons:  repository.NewMongoLessonLogRepo(),
		Expenses: repository.NewMongoExpenseRepo(),
		Bookings: repository.NewMongoWebsiteBookingRepo(),
		Cache:    utils.GetCacheClient(),
	}
	reportHandler := handlers.NewReportHandler(reportService)

	router := routes.NewRouter()
	routes.RegisterReportRoutes(router, reportHandler)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("starting server", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("forced shutdown: %v", err)
	}
	logger.Info("server stopped")
}
