package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

type Student struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email" validate:"required,email"`
	Password       string             `bson:"password,omitempty" json:"-"`
	Phone          string             `bson:"phone" json:"phone"`
	CollegeName    string             `bson:"collegeName" json:"collegeName"`
	Branch         string             `bson:"branch" json:"branch"`
	Year           string             `bson:"year" json:"year"`
	PaymentDetails string             `bson:"paymentDetails" json:"paymentDetails"`
	Role           string             `bson:"role" json:"role"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}

type Admin struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	Password  string             `bson:"password,omitempty" json:"-"`
	Phone     string             `bson:"phone" json:"phone"`
	Role      string             `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
