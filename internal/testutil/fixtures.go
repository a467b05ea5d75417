// internal/testutil/fixtures.go
package testutil

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/ahlihub/ahlihub/internal/domain/enums"
	"github.com/ahlihub/ahlihub/internal/domain/models"
)

// Fixtures inserts canned documents for store and handler tests.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	return &Fixtures{db: db, t: t}
}

// CreateUser inserts an active member account with the given username
// and the password "password123".
func (f *Fixtures) CreateUser(username, email string) *models.User {
	return f.createUser(username, email, enums.RoleMember)
}

// CreateAdmin inserts an active admin account.
func (f *Fixtures) CreateAdmin(username, email string) *models.User {
	return f.createUser(username, email, enums.RoleAdmin)
}

func (f *Fixtures) createUser(username, email, role string) *models.User {
	f.t.Helper()
	ctx, cancel := TestContext()
	defer cancel()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		f.t.Fatalf("bcrypt: %v", err)
	}
	now := time.Now().UTC()
	u := &models.User{
		ID:           primitive.NewObjectID(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Test " + username,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("insert user: %v", err)
	}
	return u
}

// CreateAhli inserts a membership record with the given membership
// number and name.
func (f *Fixtures) CreateAhli(idNo, fullName string) *models.Ahli {
	f.t.Helper()
	ctx, cancel := TestContext()
	defer cancel()

	now := time.Now().UTC()
	a := &models.Ahli{
		ID:        primitive.NewObjectID(),
		IDNo:      idNo,
		FullName:  fullName,
		Gender:    enums.GenderMale,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("ahli").InsertOne(ctx, a); err != nil {
		f.t.Fatalf("insert ahli: %v", err)
	}
	return a
}

// CreateMeeting inserts an active meeting created by creatorID,
// scheduled at the given time.
func (f *Fixtures) CreateMeeting(title string, at time.Time, creatorID primitive.ObjectID) *models.Meeting {
	f.t.Helper()
	ctx, cancel := TestContext()
	defer cancel()

	now := time.Now().UTC()
	m := &models.Meeting{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Datetime:  at,
		Place:     "Dewan Komuniti",
		CreatedBy: creatorID,
		Attendees: []models.RSVP{},
		IsActive:  true,
		Status:    enums.MeetingUpcoming,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("meetings").InsertOne(ctx, m); err != nil {
		f.t.Fatalf("insert meeting: %v", err)
	}
	return m
}
