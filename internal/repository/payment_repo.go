package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Ashfatul/drawcademi-server/internal/models"
)

type PaymentRepository struct {
	coll *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{coll: db.Collection("payment")}
}

func (r *PaymentRepository) Record(ctx context.Context, record *models.PaymentRecord) (*mongo.InsertOneResult, error) {
	return r.coll.InsertOne(ctx, record)
}

func (r *PaymentRepository) HistoryByAuthID(ctx context.Context, authID string) ([]models.PaymentRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdOn", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"authID": authID}, opts)
	if err != nil {
		return nil, err
	}

	var records []models.PaymentRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
