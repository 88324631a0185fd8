// database/repository/student_ledger.go
package repository

import (
	"context"

	"courtside/config"
	"courtside/database"
	"courtside/models"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// StudentLedgerRepository reads the coaching-app student ledger.
type StudentLedgerRepository interface {
	ListAll(ctx context.Context) ([]models.StudentAccount, error)
}

// studentDoc is the stored shape; money is persisted as float64 and
// converted to decimal at the boundary.
type studentDoc struct {
	ID                    string  `bson:"id"`
	DisplayName           string  `bson:"display_name"`
	Email                 string  `bson:"email"`
	LessonCredits         int     `bson:"lesson_credits"`
	TotalRevenue          float64 `bson:"total_revenue"`
	TotalLessonsPurchased int     `bson:"total_lessons_purchased"`
	LeadSource            string  `bson:"lead_source,omitempty"`
	ReferredBy            string  `bson:"referred_by,omitempty"`
	IsActive              bool    `bson:"is_active"`
}

// MongoStudentLedgerRepo implements StudentLedgerRepository using MongoDB.
type MongoStudentLedgerRepo struct {
	coll *mongo.Collection
}

// NewMongoStudentLedgerRepo returns a StudentLedgerRepository backed by the
// "students" collection.
func NewMongoStudentLedgerRepo() *MongoStudentLedgerRepo {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoStudentLedgerRepo{coll: db.Collection("students")}
}

func (r *MongoStudentLedgerRepo) ListAll(ctx context.Context) ([]models.StudentAccount, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []studentDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	students := make([]models.StudentAccount, 0, len(docs))
	for _, d := range docs {
		students = append(students, models.StudentAccount{
			ID:                    d.ID,
			DisplayName:           d.DisplayName,
			Email:                 d.Email,
			LessonCredits:         d.LessonCredits,
			TotalRevenue:          decimal.NewFromFloat(d.TotalRevenue),
			TotalLessonsPurchased: d.TotalLessonsPurchased,
			LeadSource:            d.LeadSource,
			ReferredBy:            d.ReferredBy,
			IsActive:              d.IsActive,
		})
	}
	return students, nil
}
