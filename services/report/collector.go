package report

import (
	"context"
	"sync"

	"courtside/models"
	"courtside/utils"

	"go.uber.org/zap"
)

// SourceAvailability records, per record source, whether the read
// succeeded. A false flag means the source could not be read at all
// (missing collection, connection failure); it is distinct from a source
// that exists but holds zero records.
type SourceAvailability struct {
	Students bool `json:"students"`
	Payments bool `json:"payments"`
	Lessons  bool `json:"lessons"`
	Expenses bool `json:"expenses"`
	Bookings bool `json:"bookings"`
}

// CollectedData is the Collector's output: one record list per source
// plus its availability flag. Lists are empty, never nil, for sources
// that failed, so downstream stages need no nil checks.
type CollectedData struct {
	Students []models.StudentAccount
	Payments []models.PaymentTransaction
	Lessons  []models.LessonTransaction
	Expenses []models.Expense
	Bookings []models.WebsiteBooking
	Sources  SourceAvailability
}

// Collect reads all five record sources. Each fetch runs in its own
// goroutine and writes only its own slot; a failing source is logged,
// flagged unavailable and replaced with an empty list. Collect itself
// never returns an error for an individual source's absence.
func (s *DefaultReportService) Collect(ctx context.Context) CollectedData {
	logger := utils.GetLogger()
	var data CollectedData
	var wg sync.WaitGroup
	wg.Add(5)

	go func() {
		defer wg.Done()
		students, err := s.Students.ListAll(ctx)
		if err != nil {
			logger.Warn("student ledger unavailable", zap.Error(err))
			data.Students = []models.StudentAccount{}
			return
		}
		data.Students = students
		data.Sources.Students = true
	}()

	go func() {
		defer wg.Done()
		payments, err := s.Payments.ListAll(ctx)
		if err != nil {
			logger.Warn("payment store unavailable", zap.Error(err))
			data.Payments = []models.PaymentTransaction{}
			return
		}
		data.Payments = payments
		data.Sources.Payments = true
	}()

	go func() {
		defer wg.Done()
		lessons, err := s.Lessons.ListAll(ctx)
		if err != nil {
			logger.Warn("lesson log unavailable", zap.Error(err))
			data.Lessons = []models.LessonTransaction{}
			return
		}
		data.Lessons = lessons
		data.Sources.Lessons = true
	}()

	go func() {
		defer wg.Done()
		expenses, err := s.Expenses.ListAll(ctx)
		if err != nil {
			logger.Warn("expense store unavailable", zap.Error(err))
			data.Expenses = []models.Expense{}
			return
		}
		data.Expenses = expenses
		data.Sources.Expenses = true
	}()

	go func() {
		defer wg.Done()
		bookings, err := s.Bookings.ListAll(ctx)
		if err != nil {
			logger.Warn("website booking table unavailable", zap.Error(err))
			data.Bookings = []models.WebsiteBooking{}
			return
		}
		data.Bookings = bookings
		data.Sources.Bookings = true
	}()

	wg.Wait()
	return data
}
