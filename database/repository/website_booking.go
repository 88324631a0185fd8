// database/repository/website_booking.go
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

// WebsiteBookingRepository reads the booking table synced from the public
// website. Like the expense store it may be absent entirely.
type WebsiteBookingRepository interface {
	ListAll(ctx context.Context) ([]models.WebsiteBooking, error)
}

type websiteBookingDoc struct {
	ID            string    `bson:"id"`
	CustomerName  string    `bson:"customer_name"`
	CustomerEmail string    `bson:"customer_email"`
	ReferralCode  string    `bson:"referral_code,omitempty"`
	PackageName   string    `bson:"package_name"`
	Price         float64   `bson:"price"`
	CreatedAt     time.Time `bson:"created_at"`
}

// MongoWebsiteBookingRepo implements WebsiteBookingRepository using MongoDB.
type MongoWebsiteBookingRepo struct {
	coll *mongo.Collection
}

func NewMongoWebsiteBookingRepo() *MongoWebsiteBookingRepo {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoWebsiteBookingRepo{coll: db.Collection("website_bookings")}
}

func (r *MongoWebsiteBookingRepo) ListAll(ctx context.Context) ([]models.WebsiteBooking, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []websiteBookingDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	bookings := make([]models.WebsiteBooking, 0, len(docs))
	for _, d := range docs {
		bookings = append(bookings, models.WebsiteBooking{
			ID:            d.ID,
			CustomerName:  d.CustomerName,
			CustomerEmail: d.CustomerEmail,
			ReferralCode:  d.ReferralCode,
			PackageName:   d.PackageName,
			Price:         decimal.NewFromFloat(d.Price),
			CreatedAt:     d.CreatedAt,
		})
	}
	return bookings, nil
}
