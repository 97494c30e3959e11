package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Description string             `bson:"description" json:"description"`
	Date        string             `bson:"date" json:"date"`
	Time        string             `bson:"time" json:"time"`
	Venue       string             `bson:"venue" json:"venue"`
	ContactNo   string             `bson:"contactNo" json:"contactNo"`
	Fee         *string            `bson:"fee" json:"fee"`
	TotalSeats  int                `bson:"totalSeats" json:"totalSeats"`
	CreatedBy   primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
