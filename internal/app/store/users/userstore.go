// Package userstore persists sign-in accounts.
package userstore

import (
	"context"
	"errors"
	"strings"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ahlihub/ahlihub/internal/domain/enums"
	"github.com/ahlihub/ahlihub/internal/domain/models"
)

// bcryptCost matches the cost the login flow expects to verify.
const bcryptCost = 12

var (
	// ErrDuplicateUser is returned when a username or email collides
	// with an existing account.
	ErrDuplicateUser = errors.New("a user with this username or email already exists")

	// ErrMissingFields marks a create request without the required
	// identity fields. Handlers map it to a validation failure.
	ErrMissingFields = errors.New("username, email, and password are required")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// GetByID loads a user by ObjectID. Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByLogin looks up an active account whose username or email matches
// login. Email comparison is done against the stored lowercased form.
func (s *Store) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	login = strings.TrimSpace(login)
	var u models.User
	err := s.c.FindOne(ctx, bson.M{
		"is_active": true,
		"$or": []bson.M{
			{"username": login},
			{"email": strings.ToLower(login)},
		},
	}).Decode(&u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// NewUser holds the fields accepted when creating an account.
type NewUser struct {
	Username   string
	Email      string
	Password   string
	FullName   string
	ICNumber   string
	Occupation string
	Role       string
}

// Create inserts a new account after trimming, sanitizing the enum
// fields, and hashing the password. Unknown role values fall back to the
// ordinary member role; unknown occupations are dropped with a warning.
func (s *Store) Create(ctx context.Context, in NewUser) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if username == "" || email == "" || in.Password == "" {
		return nil, ErrMissingFields
	}

	role := enums.SanitizeRole(strings.TrimSpace(in.Role))
	if r := strings.TrimSpace(in.Role); r != "" && r != role {
		zap.L().Warn("dropping unknown role value", zap.String("role", r))
	}
	occupation := enums.SanitizeOccupation(strings.TrimSpace(in.Occupation))
	if o := strings.TrimSpace(in.Occupation); o != "" && occupation == "" {
		zap.L().Warn("dropping unknown occupation value", zap.String("occupation", o))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u := models.User{
		ID:           primitive.NewObjectID(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(in.FullName),
		ICNumber:     strings.TrimSpace(in.ICNumber),
		Occupation:   occupation,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	return &u, nil
}

// ProfileUpdate holds the optional fields of a profile update. Nil
// pointers leave the stored value untouched.
type ProfileUpdate struct {
	FullName *string
	Password *string
}

// UpdateProfile applies a partial update to the user's own profile.
// A new password is rehashed; an empty or whitespace name is ignored.
func (s *Store) UpdateProfile(ctx context.Context, id primitive.ObjectID, upd ProfileUpdate) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.FullName != nil {
		if name := strings.TrimSpace(*upd.FullName); name != "" {
			set["full_name"] = name
		}
	}
	if upd.Password != nil && *upd.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcryptCost)
		if err != nil {
			return err
		}
		set["password"] = string(hash)
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// VerifyPassword checks password against the stored bcrypt hash.
func VerifyPassword(u *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// Delete removes an account permanently. Returns mongo.ErrNoDocuments
// when no account matches.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// List returns all accounts, newest first.
func (s *Store) List(ctx context.Context) ([]models.User, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CountAdmins returns how many active accounts hold an admin role,
// counting records still carrying the legacy spelling.
func (s *Store) CountAdmins(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{
		"is_active": true,
		"role":      bson.M{"$in": []string{enums.RoleAdmin, enums.LegacyAdminRole}},
	})
}
