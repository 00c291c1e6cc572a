package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Class lifecycle: every class starts out "pending", an admin moves it to
// "approved" or "denied", and any instructor edit drops it back to "pending".
type Class struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name            string             `bson:"name,omitempty" json:"name,omitempty"`
	Image           string             `bson:"image,omitempty" json:"image,omitempty"`
	Description     string             `bson:"description,omitempty" json:"description,omitempty"`
	InstructorName  string             `bson:"instructorName,omitempty" json:"instructorName,omitempty"`
	Email           string             `bson:"email,omitempty" json:"email,omitempty"`
	AuthID          string             `bson:"authID,omitempty" json:"authID,omitempty"`
	Price           float64            `bson:"price,omitempty" json:"price,omitempty"`
	AvailableSeats  int                `bson:"availableSeats" json:"availableSeats"`
	EnrolledStudent int                `bson:"enrolled_student" json:"enrolled_student"`
	Status          string             `bson:"status,omitempty" json:"status,omitempty"`
	Feedback        string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
}
