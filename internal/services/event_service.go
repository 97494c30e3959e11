package services

import (
	"context"
	"time"

	"github.com/shaikhsiddique/EventPlaner/internal/db"
	"github.com/shaikhsiddique/EventPlaner/internal/httperr"
	"github.com/shaikhsiddique/EventPlaner/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EventData struct {
	Name        string
	Image       string
	Description string
	Date        string
	Time        string
	Venue       string
	ContactNo   string
	Fee         *string
	TotalSeats  int
}

// EventPatch carries a partial update; nil fields are left untouched.
// Merge is shallow field overwrite.
type EventPatch struct {
	Name        *string
	Image       *string
	Description *string
	Date        *string
	Time        *string
	Venue       *string
	ContactNo   *string
	Fee         *string
	TotalSeats  *int
}

// CreateEvent persists a new event owned by the given admin. The admin's
// created-events list is not stored anywhere; it is derived on demand by
// IDsByOwner, so there is no second write to keep consistent.
func CreateEvent(ctx context.Context, data EventData, ownerID primitive.ObjectID) (models.Event, error) {
	now := time.Now()
	event := models.Event{
		ID:          primitive.NewObjectID(),
		Name:        data.Name,
		Image:       data.Image,
		Description: data.Description,
		Date:        data.Date,
		Time:        data.Time,
		Venue:       data.Venue,
		ContactNo:   data.ContactNo,
		Fee:         data.Fee,
		TotalSeats:  data.TotalSeats,
		CreatedBy:   ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := db.GetCollection(db.EventsCollection).InsertOne(ctx, event)
	if err != nil {
		return models.Event{}, err
	}
	return event, nil
}

// UpdateEvent shallow-merges the patch into an existing event. Only the
// owning admin may update.
func UpdateEvent(ctx context.Context, eventID string, patch EventPatch, requesterID primitive.ObjectID) (models.Event, error) {
	objID, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return models.Event{}, httperr.BadRequest("Invalid event ID")
	}

	collection := db.GetCollection(db.EventsCollection)

	var event models.Event
	if err := collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&event); err != nil {
		return models.Event{}, httperr.NotFound("Event not found")
	}
	if event.CreatedBy != requesterID {
		return models.Event{}, httperr.Forbidden("Not allowed to edit this event")
	}

	set := bson.M{"updated_at": time.Now()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Date != nil {
		set["date"] = *patch.Date
	}
	if patch.Time != nil {
		set["time"] = *patch.Time
	}
	if patch.Venue != nil {
		set["venue"] = *patch.Venue
	}
	if patch.ContactNo != nil {
		set["contactNo"] = *patch.ContactNo
	}
	if patch.Fee != nil {
		set["fee"] = *patch.Fee
	}
	if patch.TotalSeats != nil {
		set["totalSeats"] = *patch.TotalSeats
	}

	var updated models.Event
	err = collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return models.Event{}, httperr.NotFound("Event not found")
	}

	return updated, nil
}

// DeleteEvent removes an event. Only the owning admin may delete.
func DeleteEvent(ctx context.Context, eventID string, requesterID primitive.ObjectID) error {
	objID, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return httperr.BadRequest("Invalid event ID")
	}

	collection := db.GetCollection(db.EventsCollection)

	var event models.Event
	if err := collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&event); err != nil {
		return httperr.NotFound("Event not found")
	}
	if event.CreatedBy != requesterID {
		return httperr.Forbidden("Not allowed to delete this event")
	}

	_, err = collection.DeleteOne(ctx, bson.M{"_id": objID})
	return err
}

// ListEvents returns all events, newest first. Filtering happens client-side.
func ListEvents(ctx context.Context) ([]models.Event, error) {
	cursor, err := db.GetCollection(db.EventsCollection).Find(
		ctx,
		bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	events := []models.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetEventByID returns a single event.
func GetEventByID(ctx context.Context, eventID string) (models.Event, error) {
	objID, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return models.Event{}, httperr.BadRequest("Invalid event ID")
	}

	var event models.Event
	err = db.GetCollection(db.EventsCollection).FindOne(ctx, bson.M{"_id": objID}).Decode(&event)
	if err != nil {
		return models.Event{}, httperr.NotFound("Event not found")
	}
	return event, nil
}

// IDsByOwner derives an admin's created-events list from the events
// collection.
func IDsByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]primitive.ObjectID, error) {
	cursor, err := db.GetCollection(db.EventsCollection).Find(
		ctx,
		bson.M{"createdBy": ownerID},
		options.Find().SetProjection(bson.M{"_id": 1}).SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids, nil
}
