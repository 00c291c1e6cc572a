package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentRecord is an append-only history entry; nothing updates it after insert.
type PaymentRecord struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	AuthID        string             `bson:"authID,omitempty" json:"authID,omitempty"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`
	TransactionID string             `bson:"transactionID,omitempty" json:"transactionID,omitempty"`
	ClassName     string             `bson:"className,omitempty" json:"className,omitempty"`
	PaidAmount    float64            `bson:"paidAmount,omitempty" json:"paidAmount,omitempty"`
	CreatedOn     *time.Time         `bson:"createdOn,omitempty" json:"createdOn,omitempty"`
}
