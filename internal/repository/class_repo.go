package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Ashfatul/drawcademi-server/internal/models"
)

const popularClassLimit = 6

type UpdateClassInput struct {
	Name           *string
	Image          *string
	Description    *string
	InstructorName *string
	Email          *string
	Price          *float64
	AvailableSeats *int
}

type ClassRepository struct {
	coll *mongo.Collection
}

func NewClassRepository(db *mongo.Database) *ClassRepository {
	return &ClassRepository{coll: db.Collection("classes")}
}

func (r *ClassRepository) ListPopular(ctx context.Context) ([]models.Class, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "enrolled_student", Value: -1}}).
		SetLimit(popularClassLimit)
	return r.list(ctx, bson.M{"status": "approved"}, opts)
}

func (r *ClassRepository) ListApproved(ctx context.Context) ([]models.Class, error) {
	return r.list(ctx, bson.M{"status": "approved"})
}

func (r *ClassRepository) ListAll(ctx context.Context) ([]models.Class, error) {
	return r.list(ctx, bson.M{})
}

func (r *ClassRepository) ListByInstructor(ctx context.Context, authID string) ([]models.Class, error) {
	return r.list(ctx, bson.M{"authID": authID})
}

func (r *ClassRepository) ListApprovedByInstructor(ctx context.Context, authID string) ([]models.Class, error) {
	return r.list(ctx, bson.M{"authID": authID, "status": "approved"})
}

func (r *ClassRepository) list(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Class, error) {
	cursor, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}

	var classes []models.Class
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *ClassRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Class, error) {
	var class models.Class
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&class)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *ClassRepository) Create(ctx context.Context, class *models.Class) (*mongo.InsertOneResult, error) {
	return r.coll.InsertOne(ctx, class)
}

// SetStatus moves a class through its approval lifecycle. No upsert: a
// missing id reports zero matched documents.
func (r *ClassRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	return r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
}

func (r *ClassRepository) SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (*mongo.UpdateResult, error) {
	return r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"feedback": feedback}})
}

// Update merges the provided fields onto the class and forces its status back
// to "pending" so edits go through re-approval. Update-only: a missing id
// returns ErrNotFound instead of inserting a divergent document.
func (r *ClassRepository) Update(ctx context.Context, id primitive.ObjectID, input UpdateClassInput) (*mongo.UpdateResult, error) {
	set := bson.M{"status": "pending"}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Image != nil {
		set["image"] = *input.Image
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.InstructorName != nil {
		set["instructorName"] = *input.InstructorName
	}
	if input.Email != nil {
		set["email"] = *input.Email
	}
	if input.Price != nil {
		set["price"] = *input.Price
	}
	if input.AvailableSeats != nil {
		set["availableSeats"] = *input.AvailableSeats
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return result, nil
}

// ConsumeSeat takes one seat on the class in a single conditional update, so
// two concurrent enrollments against the last seat cannot both succeed. The
// availableSeats guard lives in the filter; a matched count of zero is then
// disambiguated into "class missing" or "sold out".
func (r *ClassRepository) ConsumeSeat(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	filter := bson.M{"_id": id, "availableSeats": bson.M{"$gt": 0}}
	update := bson.M{"$inc": bson.M{"availableSeats": -1, "enrolled_student": 1}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		err := r.coll.FindOne(ctx, bson.M{"_id": id}).Err()
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, err
		}
		return nil, ErrNoSeats
	}
	return result, nil
}
