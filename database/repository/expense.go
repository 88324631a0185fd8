// database/repository/expense.go
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
)

// ExpenseRepository reads the studio expense store. The store is optional:
// studios that never enabled expense tracking have no collection at all,
// which surfaces here as a read error the Collector downgrades to an
// availability flag.
type ExpenseRepository interface {
	ListAll(ctx context.Context) ([]models.Expense, error)
}

type expenseDoc struct {
	ID         string    `bson:"id"`
	Name       string    `bson:"name"`
	Amount     float64   `bson:"amount"`
	IncurredAt time.Time `bson:"incurred_at"`
	Category   string    `bson:"category,omitempty"`
	Notes      string    `bson:"notes,omitempty"`
}

// MongoExpenseRepo implements ExpenseRepository using MongoDB.
type MongoExpenseRepo struct {
	coll *mongo.Collection
}

func NewMongoExpenseRepo() *MongoExpenseRepo {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoExpenseRepo{coll: db.Collection("expenses")}
}

func (r *MongoExpenseRepo) ListAll(ctx context.Context) ([]models.Expense, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []expenseDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	expenses := make([]models.Expense, 0, len(docs))
	for _, d := range docs {
		expenses = append(expenses, models.Expense{
			ID:         d.ID,
			Name:       d.Name,
			Amount:     decimal.NewFromFloat(d.Amount),
			IncurredAt: d.IncurredAt,
			Category:   d.Category,
			Notes:      d.Notes,
		})
	}
	return expenses, nil
}
