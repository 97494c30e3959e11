package services

import (
	"context"
	"time"

	"github.com/shaikhsiddique/EventPlaner/internal/db"
	"github.com/shaikhsiddique/EventPlaner/internal/httperr"
	"github.com/shaikhsiddique/EventPlaner/internal/models"
	"github.com/shaikhsiddique/EventPlaner/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RegistrationData struct {
	User           primitive.ObjectID
	Name           string
	Email          string
	PaymentDetails string
	Contact        string
	CollegeName    string
	Branch         string
	Year           string
	TeamSize       int
}

// RegistrationPatch carries a partial entry update; nil fields are left
// untouched.
type RegistrationPatch struct {
	Name           *string
	Email          *string
	PaymentDetails *string
	Contact        *string
	CollegeName    *string
	Branch         *string
	Year           *string
	TeamSize       *int
}

// Register signs a student up for an event. The unique (event, user) index
// makes the duplicate check atomic: a concurrent second attempt loses the
// insert race and gets the same duplicate failure.
func Register(ctx context.Context, eventID string, data RegistrationData) (models.Registration, error) {
	eventObjID, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return models.Registration{}, httperr.BadRequest("Invalid event ID")
	}

	now := time.Now()
	entry := models.Registration{
		ID:             primitive.NewObjectID(),
		Event:          eventObjID,
		User:           data.User,
		Name:           data.Name,
		Email:          data.Email,
		PaymentDetails: data.PaymentDetails,
		Contact:        data.Contact,
		CollegeName:    data.CollegeName,
		Branch:         data.Branch,
		Year:           data.Year,
		TeamSize:       data.TeamSize,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err = db.GetCollection(db.RegistrationsCollection).InsertOne(ctx, entry)
	if mongo.IsDuplicateKeyError(err) {
		return models.Registration{}, httperr.BadRequest("Student already registered for this event")
	}
	if err != nil {
		return models.Registration{}, err
	}

	return entry, nil
}

// ListForEvent returns an event's sign-ups oldest-first, an empty slice when
// there are none. With resolve set, each entry also carries the student's
// stored account, fetched in parallel.
func ListForEvent(ctx context.Context, eventID string, resolve bool) ([]models.Registration, error) {
	eventObjID, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return nil, httperr.BadRequest("Invalid event ID")
	}

	cursor, err := db.GetCollection(db.RegistrationsCollection).Find(
		ctx,
		bson.M{"event": eventObjID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []models.Registration{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	if resolve && len(entries) > 0 {
		tasks := make([]utils.ParallelTask, len(entries))
		for i := range entries {
			userID := entries[i].User
			tasks[i] = func() (interface{}, error) {
				student, err := GetStudent(ctx, userID)
				return student, err
			}
		}
		results, errs := utils.RunParallelTasks(tasks)
		for i := range entries {
			if errs[i] != nil {
				continue // account deleted since sign-up, leave unresolved
			}
			student := results[i].(models.Student)
			entries[i].Account = &student
		}
	}

	return entries, nil
}

// UpdateEntry shallow-merges a patch into one sign-up. The two not-found
// cases (no sign-ups for the event at all vs. this entry missing) surface
// distinct messages.
func UpdateEntry(ctx context.Context, eventID, entryID string, patch RegistrationPatch) (models.Registration, error) {
	eventObjID, entryObjID, err := registrationIDs(eventID, entryID)
	if err != nil {
		return models.Registration{}, err
	}

	collection := db.GetCollection(db.RegistrationsCollection)

	set := bson.M{"updated_at": time.Now()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.PaymentDetails != nil {
		set["paymentDetails"] = *patch.PaymentDetails
	}
	if patch.Contact != nil {
		set["contact"] = *patch.Contact
	}
	if patch.CollegeName != nil {
		set["collegeName"] = *patch.CollegeName
	}
	if patch.Branch != nil {
		set["branch"] = *patch.Branch
	}
	if patch.Year != nil {
		set["year"] = *patch.Year
	}
	if patch.TeamSize != nil {
		set["teamSize"] = *patch.TeamSize
	}

	var updated models.Registration
	err = collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": entryObjID, "event": eventObjID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return models.Registration{}, entryNotFound(ctx, collection, eventObjID)
	}

	return updated, nil
}

// DeleteEntry removes one sign-up from an event.
func DeleteEntry(ctx context.Context, eventID, entryID string) error {
	eventObjID, entryObjID, err := registrationIDs(eventID, entryID)
	if err != nil {
		return err
	}

	collection := db.GetCollection(db.RegistrationsCollection)
	result, err := collection.DeleteOne(ctx, bson.M{"_id": entryObjID, "event": eventObjID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return entryNotFound(ctx, collection, eventObjID)
	}
	return nil
}

func registrationIDs(eventID, entryID string) (primitive.ObjectID, primitive.ObjectID, error) {
	eventObjID, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, httperr.BadRequest("Invalid event ID")
	}
	entryObjID, err := primitive.ObjectIDFromHex(entryID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, httperr.BadRequest("Invalid registration ID")
	}
	return eventObjID, entryObjID, nil
}

func entryNotFound(ctx context.Context, collection *mongo.Collection, eventObjID primitive.ObjectID) error {
	count, err := collection.CountDocuments(ctx, bson.M{"event": eventObjID})
	if err == nil && count == 0 {
		return httperr.NotFound("Registration not found")
	}
	return httperr.NotFound("Student registration not found")
}
