package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StudentItem links a student to a class they picked. It is created with
// status "selected" and flips to "paid" once the payment goes through, at
// which point the transaction fields are filled in.
type StudentItem struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	AuthID        string             `bson:"authID,omitempty" json:"authID,omitempty"`
	ClassItem     bson.M             `bson:"classItem,omitempty" json:"classItem,omitempty"`
	Status        string             `bson:"status,omitempty" json:"status,omitempty"`
	TransactionID string             `bson:"transactionID,omitempty" json:"transactionID,omitempty"`
	CreatedOn     *time.Time         `bson:"createdOn,omitempty" json:"createdOn,omitempty"`
	PaidAmount    float64            `bson:"paidAmount,omitempty" json:"paidAmount,omitempty"`
}
