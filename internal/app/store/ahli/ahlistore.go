// Package ahlistore persists the membership registry. Registry records
// are independent of sign-in accounts; a person can be registered
// without ever having credentials.
package ahlistore

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

	"github.com/ahlihub/ahlihub/internal/domain/enums"
	"github.com/ahlihub/ahlihub/internal/domain/models"
)

var (
	// ErrDuplicateIDNo is returned when a membership number collides
	// with an existing record.
	ErrDuplicateIDNo = errors.New("a member with this membership number already exists")

	// ErrMissingFields marks a create request without the required
	// fields. Handlers map it to a validation failure.
	ErrMissingFields = errors.New("membership number and full name are required")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("ahli")}
}

// List returns all registry records, newest first. Display ordering by
// membership number is the client's job; lexicographic id_no order gets
// PAK-10 before PAK-2 wrong anyway.
func (s *Store) List(ctx context.Context) ([]models.Ahli, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var records []models.Ahli
	if err := cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// GetByID loads one record. Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Ahli, error) {
	var a models.Ahli
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a registry record. Membership number and full name are
// required; all string fields are trimmed and unknown enum values are
// dropped with a warning rather than rejecting the record.
func (s *Store) Create(ctx context.Context, in models.Ahli) (*models.Ahli, error) {
	in.IDNo = strings.TrimSpace(in.IDNo)
	in.FullName = strings.TrimSpace(in.FullName)
	if in.IDNo == "" || in.FullName == "" {
		return nil, ErrMissingFields
	}
	in.ICNumber = strings.TrimSpace(in.ICNumber)
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Address = strings.TrimSpace(in.Address)
	in.Gender = sanitizeGender(in.Gender)
	in.Job = sanitizeJob(in.Job)

	in.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	in.CreatedAt = now
	in.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, in); err != nil {
		if wafflemongo.IsDup(err) {
			return nil, ErrDuplicateIDNo
		}
		return nil, err
	}
	return &in, nil
}

// Update holds the optional fields of a partial update. Nil pointers
// leave the stored value untouched.
type Update struct {
	IDNo        *string
	FullName    *string
	ICNumber    *string
	PhoneNumber *string
	Email       *string
	Address     *string
	Gender      *string
	Job         *string
}

// Update applies a partial update. Returns mongo.ErrNoDocuments when no
// record matches and ErrDuplicateIDNo when a new membership number
// collides.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.IDNo != nil {
		if v := strings.TrimSpace(*upd.IDNo); v != "" {
			set["id_no"] = v
		}
	}
	if upd.FullName != nil {
		if v := strings.TrimSpace(*upd.FullName); v != "" {
			set["full_name"] = v
		}
	}
	if upd.ICNumber != nil {
		set["ic_number"] = strings.TrimSpace(*upd.ICNumber)
	}
	if upd.PhoneNumber != nil {
		set["phone_number"] = strings.TrimSpace(*upd.PhoneNumber)
	}
	if upd.Email != nil {
		set["email"] = strings.ToLower(strings.TrimSpace(*upd.Email))
	}
	if upd.Address != nil {
		set["address"] = strings.TrimSpace(*upd.Address)
	}
	if upd.Gender != nil {
		set["gender"] = sanitizeGender(*upd.Gender)
	}
	if upd.Job != nil {
		set["job"] = sanitizeJob(*upd.Job)
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateIDNo
		}
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a record permanently. Returns mongo.ErrNoDocuments
// when no record matches.
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

func sanitizeGender(v string) string {
	v = strings.TrimSpace(v)
	clean := enums.SanitizeGender(v)
	if v != "" && clean == "" {
		zap.L().Warn("dropping unknown gender value", zap.String("gender", v))
	}
	return clean
}

func sanitizeJob(v string) string {
	v = strings.TrimSpace(v)
	clean := enums.SanitizeOccupation(v)
	if v != "" && clean == "" {
		zap.L().Warn("dropping unknown job value", zap.String("job", v))
	}
	return clean
}
