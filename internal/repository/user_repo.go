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

type UpdateProfileInput struct {
	Name    *string
	Email   *string
	Photo   *string
	Gender  *string
	Phone   *string
	Address *string
	Role    *string
}

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection("users")}
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ListInstructors returns users with the instructor role. A limit of 0 means
// no limit, matching the driver's query semantics.
func (r *UserRepository) ListInstructors(ctx context.Context, limit int64) ([]models.User, error) {
	opts := options.Find().SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{"role": "instructor"}, opts)
	if err != nil {
		return nil, err
	}

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) GetByAuthID(ctx context.Context, authID string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"authID": authID}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) (*mongo.InsertOneResult, error) {
	return r.coll.InsertOne(ctx, user)
}

func (r *UserRepository) UpdateRole(ctx context.Context, id primitive.ObjectID, role string) (*mongo.UpdateResult, error) {
	opts := options.Update().SetUpsert(true)
	return r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": role}}, opts)
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, input UpdateProfileInput) (*mongo.UpdateResult, error) {
	set := bson.M{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Email != nil {
		set["email"] = *input.Email
	}
	if input.Photo != nil {
		set["photo"] = *input.Photo
	}
	if input.Gender != nil {
		set["gender"] = *input.Gender
	}
	if input.Phone != nil {
		set["phone"] = *input.Phone
	}
	if input.Address != nil {
		set["address"] = *input.Address
	}
	if input.Role != nil {
		set["role"] = *input.Role
	}

	opts := options.Update().SetUpsert(true)
	return r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts)
}
