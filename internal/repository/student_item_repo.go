package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Ashfatul/drawcademi-server/internal/models"
)

type FinalizeEnrollmentInput struct {
	TransactionID string
	Status        string
	CreatedOn     time.Time
	PaidAmount    float64
}

type StudentItemRepository struct {
	coll *mongo.Collection
}

func NewStudentItemRepository(db *mongo.Database) *StudentItemRepository {
	return &StudentItemRepository{coll: db.Collection("studentItems")}
}

func (r *StudentItemRepository) ListByAuthID(ctx context.Context, authID string) ([]models.StudentItem, error) {
	return r.list(ctx, bson.M{"authID": authID})
}

func (r *StudentItemRepository) ListByAuthIDAndStatus(ctx context.Context, authID, status string) ([]models.StudentItem, error) {
	return r.list(ctx, bson.M{"authID": authID, "status": status})
}

func (r *StudentItemRepository) list(ctx context.Context, filter bson.M) ([]models.StudentItem, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var items []models.StudentItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *StudentItemRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.StudentItem, error) {
	var item models.StudentItem
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Select records a student picking a class; the item always starts "selected".
func (r *StudentItemRepository) Select(ctx context.Context, authID string, classItem bson.M) (*mongo.InsertOneResult, error) {
	item := models.StudentItem{
		AuthID:    authID,
		ClassItem: classItem,
		Status:    "selected",
	}
	return r.coll.InsertOne(ctx, item)
}

func (r *StudentItemRepository) Finalize(ctx context.Context, id primitive.ObjectID, input FinalizeEnrollmentInput) (*mongo.UpdateResult, error) {
	set := bson.M{
		"transactionID": input.TransactionID,
		"status":        input.Status,
		"createdOn":     input.CreatedOn,
		"paidAmount":    input.PaidAmount,
	}
	opts := options.Update().SetUpsert(true)
	return r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts)
}

func (r *StudentItemRepository) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return r.coll.DeleteOne(ctx, bson.M{"_id": id})
}
