package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Registration is one student's sign-up for one event. A unique compound
// index on (event, user) makes per-student uniqueness a hard guarantee.
type Registration struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Event          primitive.ObjectID `bson:"event" json:"event"`
	User           primitive.ObjectID `bson:"user" json:"user"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email" validate:"required,email"`
	PaymentDetails string             `bson:"paymentDetails" json:"paymentDetails"`
	Contact        string             `bson:"contact" json:"contact"`
	CollegeName    string             `bson:"collegeName" json:"collegeName"`
	Branch         string             `bson:"branch" json:"branch"`
	Year           string             `bson:"year" json:"year"`
	TeamSize       int                `bson:"teamSize" json:"teamSize"`
	Account        *Student           `bson:"-" json:"account,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}
