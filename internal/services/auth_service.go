package services

import (
	"context"
	"strings"
	"time"

	"github.com/shaikhsiddique/EventPlaner/internal/db"
	"github.com/shaikhsiddique/EventPlaner/internal/httperr"
	"github.com/shaikhsiddique/EventPlaner/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

// AccountSummary is the password-free account shape returned by auth
// operations and attached to authenticated requests.
type AccountSummary struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
	Role  string             `json:"role"`
}

type StudentData struct {
	Name           string
	Email          string
	Phone          string
	Password       string
	CollegeName    string
	Branch         string
	Year           string
	PaymentDetails string
}

type AdminData struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifyPassword compares a plain password with a hashed password
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CreateStudent registers a new student account. Email uniqueness is checked
// case-insensitively within the students collection.
func CreateStudent(ctx context.Context, data StudentData) (AccountSummary, error) {
	collection := db.GetCollection(db.StudentsCollection)
	email := strings.ToLower(data.Email)

	var existing models.Student
	err := collection.FindOne(ctx, bson.M{"email": email}).Decode(&existing)
	if err == nil {
		return AccountSummary{}, httperr.BadRequest("Email already in use")
	}

	hashedPassword, err := HashPassword(data.Password)
	if err != nil {
		return AccountSummary{}, err
	}

	if data.PaymentDetails == "" {
		data.PaymentDetails = "none"
	}

	student := models.Student{
		ID:             primitive.NewObjectID(),
		Name:           data.Name,
		Email:          email,
		Password:       hashedPassword,
		Phone:          data.Phone,
		CollegeName:    data.CollegeName,
		Branch:         data.Branch,
		Year:           data.Year,
		PaymentDetails: data.PaymentDetails,
		Role:           models.RoleStudent,
		CreatedAt:      time.Now(),
	}
	_, err = collection.InsertOne(ctx, student)
	if mongo.IsDuplicateKeyError(err) {
		return AccountSummary{}, httperr.BadRequest("Email already in use")
	}
	if err != nil {
		return AccountSummary{}, err
	}

	return AccountSummary{ID: student.ID, Name: student.Name, Email: student.Email, Role: student.Role}, nil
}

// CreateAdmin registers a new administrator account.
func CreateAdmin(ctx context.Context, data AdminData) (AccountSummary, error) {
	collection := db.GetCollection(db.AdminsCollection)
	email := strings.ToLower(data.Email)

	var existing models.Admin
	err := collection.FindOne(ctx, bson.M{"email": email}).Decode(&existing)
	if err == nil {
		return AccountSummary{}, httperr.BadRequest("Admin already exists with this email")
	}

	hashedPassword, err := HashPassword(data.Password)
	if err != nil {
		return AccountSummary{}, err
	}

	admin := models.Admin{
		ID:        primitive.NewObjectID(),
		Name:      data.Name,
		Email:     email,
		Password:  hashedPassword,
		Phone:     data.Phone,
		Role:      models.RoleAdmin,
		CreatedAt: time.Now(),
	}
	_, err = collection.InsertOne(ctx, admin)
	if mongo.IsDuplicateKeyError(err) {
		return AccountSummary{}, httperr.BadRequest("Admin already exists with this email")
	}
	if err != nil {
		return AccountSummary{}, err
	}

	return AccountSummary{ID: admin.ID, Name: admin.Name, Email: admin.Email, Role: admin.Role}, nil
}

// Authenticate checks a credential pair against the role's collection. The
// no-such-account and wrong-password cases return the same failure so callers
// cannot enumerate accounts.
func Authenticate(ctx context.Context, email, password, role string) (AccountSummary, error) {
	var collName string
	switch role {
	case models.RoleAdmin:
		collName = db.AdminsCollection
	case models.RoleStudent:
		collName = db.StudentsCollection
	default:
		return AccountSummary{}, httperr.BadRequest("Invalid role")
	}

	var account struct {
		ID       primitive.ObjectID `bson:"_id"`
		Name     string             `bson:"name"`
		Email    string             `bson:"email"`
		Password string             `bson:"password"`
		Role     string             `bson:"role"`
	}
	err := db.GetCollection(collName).FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&account)
	if err != nil {
		return AccountSummary{}, httperr.Unauthenticated("Invalid credentials")
	}

	if !VerifyPassword(password, account.Password) {
		return AccountSummary{}, httperr.Unauthenticated("Invalid credentials")
	}

	return AccountSummary{ID: account.ID, Name: account.Name, Email: account.Email, Role: account.Role}, nil
}

// FindAccount loads the password-free summary of an account by id from the
// role-selected collection.
func FindAccount(ctx context.Context, id primitive.ObjectID, role string) (AccountSummary, error) {
	var collName string
	switch role {
	case models.RoleAdmin:
		collName = db.AdminsCollection
	case models.RoleStudent:
		collName = db.StudentsCollection
	default:
		return AccountSummary{}, httperr.Unauthenticated("Invalid role")
	}

	var account struct {
		ID    primitive.ObjectID `bson:"_id"`
		Name  string             `bson:"name"`
		Email string             `bson:"email"`
		Role  string             `bson:"role"`
	}
	err := db.GetCollection(collName).
		FindOne(ctx, bson.M{"_id": id}, options.FindOne().SetProjection(bson.M{"password": 0})).
		Decode(&account)
	if err != nil {
		return AccountSummary{}, httperr.Unauthenticated("User not found")
	}

	return AccountSummary{ID: account.ID, Name: account.Name, Email: account.Email, Role: account.Role}, nil
}

// GetStudent returns a student's full record with the password projected out.
func GetStudent(ctx context.Context, id primitive.ObjectID) (models.Student, error) {
	var student models.Student
	err := db.GetCollection(db.StudentsCollection).
		FindOne(ctx, bson.M{"_id": id}, options.FindOne().SetProjection(bson.M{"password": 0})).
		Decode(&student)
	if err != nil {
		return models.Student{}, httperr.NotFound("Student not found")
	}
	return student, nil
}

// GetAdmin returns an admin's full record with the password projected out.
func GetAdmin(ctx context.Context, id primitive.ObjectID) (models.Admin, error) {
	var admin models.Admin
	err := db.GetCollection(db.AdminsCollection).
		FindOne(ctx, bson.M{"_id": id}, options.FindOne().SetProjection(bson.M{"password": 0})).
		Decode(&admin)
	if err != nil {
		return models.Admin{}, httperr.NotFound("Admin not found")
	}
	return admin, nil
}
