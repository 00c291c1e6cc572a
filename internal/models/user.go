package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	AuthID  string             `bson:"authID,omitempty" json:"authID,omitempty"`
	Role    string             `bson:"role,omitempty" json:"role,omitempty"`
	Name    string             `bson:"name,omitempty" json:"name,omitempty"`
	Email   string             `bson:"email,omitempty" json:"email,omitempty"`
	Photo   string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Gender  string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Phone   string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address string             `bson:"address,omitempty" json:"address,omitempty"`
}
