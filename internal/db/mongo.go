package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	StudentsCollection      = "students"
	AdminsCollection        = "admins"
	EventsCollection        = "events"
	RegistrationsCollection = "registrations"
)

// MongoDB connection instance
var MongoClient *mongo.Client

var dbName string

// ConnectMongoDB initializes the database connection
func ConnectMongoDB(uri, name string) *mongo.Database {
	clientOptions := options.Client().ApplyURI(uri)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("MongoDB connection failed: %v", err)
	}

	// Ping the database to verify connection
	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatalf("MongoDB ping failed: %v", err)
	}

	fmt.Println("✅ Connected to MongoDB")
	MongoClient = client
	dbName = name
	return client.Database(name)
}

// GetCollection returns a MongoDB collection
func GetCollection(collectionName string) *mongo.Collection {
	return MongoClient.Database(dbName).Collection(collectionName)
}

// EnsureIndexes creates the indexes the services rely on: unique email per
// account collection, one registration per (event, user), and the ownership
// lookup on events.
func EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	for _, coll := range []string{StudentsCollection, AdminsCollection} {
		_, err := GetCollection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: unique,
		})
		if err != nil {
			return fmt.Errorf("failed to create email index on %s: %w", coll, err)
		}
	}

	_, err := GetCollection(RegistrationsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "event", Value: 1}, {Key: "user", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("failed to create registration index: %w", err)
	}

	_, err = GetCollection(EventsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdBy", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create event owner index: %w", err)
	}

	return nil
}
