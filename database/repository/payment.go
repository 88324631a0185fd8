// database/repository/payment.go
package repository

import (
	"context"
	"time"

	"courtside/config"
	"courtside/database"
	"courtside/models"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PaymentRepository reads the payment transaction store.
type PaymentRepository interface {
	ListAll(ctx context.Context) ([]models.PaymentTransaction, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.PaymentTransaction, error)
}

type paymentDoc struct {
	ID           string    `bson:"id"`
	StudentID    string    `bson:"student_id"`
	Amount       float64   `bson:"amount"`
	CreditsDelta int       `bson:"credits_delta"`
	Method       string    `bson:"method"`
	OccurredAt   time.Time `bson:"occurred_at"`
	Notes        string    `bson:"notes,omitempty"`
}

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	coll *mongo.Collection
}

func NewMongoPaymentRepo() *MongoPaymentRepo {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoPaymentRepo{coll: db.Collection("payment_transactions")}
}

func (r *MongoPaymentRepo) ListAll(ctx context.Context) ([]models.PaymentTransaction, error) {
	return r.list(ctx, bson.M{})
}

// ListByStudent returns a student's payment history, newest first. The
// rows feed the payment display list only; totals come from the ledger.
func (r *MongoPaymentRepo) ListByStudent(ctx context.Context, studentID string) ([]models.PaymentTransaction, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"student_id": studentID},
		options.Find().SetSort(bson.D{{Key: "occurred_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	return decodePayments(ctx, cursor)
}

func (r *MongoPaymentRepo) list(ctx context.Context, filter bson.M) ([]models.PaymentTransaction, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	return decodePayments(ctx, cursor)
}

func decodePayments(ctx context.Context, cursor *mongo.Cursor) ([]models.PaymentTransaction, error) {
	var docs []paymentDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	payments := make([]models.PaymentTransaction, 0, len(docs))
	for _, d := range docs {
		payments = append(payments, models.PaymentTransaction{
			ID:           d.ID,
			StudentID:    d.StudentID,
			Amount:       decimal.NewFromFloat(d.Amount),
			CreditsDelta: d.CreditsDelta,
			Method:       d.Method,
			OccurredAt:   d.OccurredAt,
			Notes:        d.Notes,
		})
	}
	return payments, nil
}
