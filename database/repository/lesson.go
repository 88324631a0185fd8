// database/repository/lesson.go
package repository

import (
	"context"
	"time"

	"courtside/config"
	"courtside/database"
	"courtside/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// LessonLogRepository reads the per-lesson transaction log.
type LessonLogRepository interface {
	ListAll(ctx context.Context) ([]models.LessonTransaction, error)
}

type lessonDoc struct {
	ID         string    `bson:"id"`
	StudentID  string    `bson:"student_id"`
	Type       string    `bson:"type"`
	OccurredAt time.Time `bson:"occurred_at"`
}

// MongoLessonLogRepo implements LessonLogRepository using MongoDB.
type MongoLessonLogRepo struct {
	coll *mongo.Collection
}

func NewMongoLessonLogRepo() *MongoLessonLogRepo {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoLessonLogRepo{coll: db.Collection("lesson_transactions")}
}

func (r *MongoLessonLogRepo) ListAll(ctx context.Context) ([]models.LessonTransaction, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []lessonDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	lessons := make([]models.LessonTransaction, 0, len(docs))
	for _, d := range docs {
		lessons = append(lessons, models.LessonTransaction{
			ID:         d.ID,
			StudentID:  d.StudentID,
			Type:       d.Type,
			OccurredAt: d.OccurredAt,
		})
	}
	return lessons, nil
}
