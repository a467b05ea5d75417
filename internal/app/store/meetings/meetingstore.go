// Package meetingstore persists meetings and their RSVPs. Meetings are
// never hard-deleted; cancellation flips is_active off and the record
// drops out of every listing.
package meetingstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/ahlihub/ahlihub/internal/domain/enums"
	"github.com/ahlihub/ahlihub/internal/domain/models"
)

// upcomingLimit caps the dashboard's upcoming-meetings query.
const upcomingLimit = 5

var (
	// ErrMissingFields marks a create request without the required
	// fields. Handlers map it to a validation failure.
	ErrMissingFields = errors.New("title, datetime, and place are required")

	// ErrBadRSVP marks an RSVP submission outside the two answerable
	// statuses.
	ErrBadRSVP = errors.New("rsvp status must be attending or not_attending")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("meetings")}
}

// List returns all active meetings in date order, soonest first.
func (s *Store) List(ctx context.Context) ([]models.Meeting, error) {
	return s.find(ctx, bson.M{"is_active": true}, options.Find().
		SetSort(bson.D{{Key: "datetime", Value: 1}}))
}

// Upcoming returns at most five active meetings scheduled from now on,
// soonest first.
func (s *Store) Upcoming(ctx context.Context) ([]models.Meeting, error) {
	return s.find(ctx, bson.M{
		"is_active": true,
		"datetime":  bson.M{"$gte": time.Now().UTC()},
		"status":    enums.MeetingUpcoming,
	}, options.Find().
		SetSort(bson.D{{Key: "datetime", Value: 1}}).
		SetLimit(upcomingLimit))
}

func (s *Store) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Meeting, error) {
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var meetings []models.Meeting
	if err := cur.All(ctx, &meetings); err != nil {
		return nil, err
	}
	return meetings, nil
}

// GetByID loads one active meeting. Cancelled meetings are invisible;
// the lookup returns mongo.ErrNoDocuments for them too.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Meeting, error) {
	var m models.Meeting
	if err := s.c.FindOne(ctx, bson.M{"_id": id, "is_active": true}).Decode(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts a meeting created by creatorID. Title, datetime, and
// place are required. Agenda strings are trimmed and empty lines are
// dropped.
func (s *Store) Create(ctx context.Context, in models.Meeting, creatorID primitive.ObjectID) (*models.Meeting, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Place = strings.TrimSpace(in.Place)
	if in.Title == "" || in.Place == "" || in.Datetime.IsZero() {
		return nil, ErrMissingFields
	}
	in.Agenda = cleanAgenda(in.Agenda)
	if in.Status == "" || !contains(enums.MeetingStatuses, in.Status) {
		in.Status = enums.MeetingUpcoming
	}

	in.ID = primitive.NewObjectID()
	in.CreatedBy = creatorID
	in.Attendees = []models.RSVP{}
	in.IsActive = true
	now := time.Now().UTC()
	in.CreatedAt = now
	in.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, in); err != nil {
		return nil, err
	}
	return &in, nil
}

// Update holds the optional fields of a partial update. Nil pointers
// leave the stored value untouched.
type Update struct {
	Title    *string
	Datetime *time.Time
	Place    *string
	Agenda   *[]string
	Status   *string
}

// Update applies a partial update to an active meeting.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Title != nil {
		if v := strings.TrimSpace(*upd.Title); v != "" {
			set["title"] = v
		}
	}
	if upd.Datetime != nil && !upd.Datetime.IsZero() {
		set["datetime"] = *upd.Datetime
	}
	if upd.Place != nil {
		if v := strings.TrimSpace(*upd.Place); v != "" {
			set["place"] = v
		}
	}
	if upd.Agenda != nil {
		set["agenda"] = cleanAgenda(*upd.Agenda)
	}
	if upd.Status != nil {
		if contains(enums.MeetingStatuses, *upd.Status) {
			set["status"] = *upd.Status
		} else if *upd.Status != "" {
			zap.L().Warn("dropping unknown meeting status", zap.String("status", *upd.Status))
		}
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id, "is_active": true}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SoftDelete cancels a meeting by clearing is_active. The record stays
// in the collection but no listing or lookup returns it.
func (s *Store) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "is_active": true},
		bson.M{"$set": bson.M{
			"is_active":  false,
			"status":     enums.MeetingCancelled,
			"updated_at": time.Now().UTC(),
		}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SetRSVP records userID's answer on an active meeting. A second answer
// from the same user replaces the first; a meeting never holds two RSVP
// entries for one user.
func (s *Store) SetRSVP(ctx context.Context, meetingID, userID primitive.ObjectID, status string) error {
	if !enums.ValidSubmittedRSVP(status) {
		return ErrBadRSVP
	}
	now := time.Now().UTC()

	// Try the in-place update first.
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": meetingID, "is_active": true, "attendees.user_id": userID},
		bson.M{"$set": bson.M{
			"attendees.$.status":       status,
			"attendees.$.responded_at": now,
			"updated_at":               now,
		}})
	if err != nil {
		return err
	}
	if res.MatchedCount > 0 {
		return nil
	}

	// No existing entry for this user; append one.
	res, err = s.c.UpdateOne(ctx,
		bson.M{"_id": meetingID, "is_active": true},
		bson.M{
			"$push": bson.M{"attendees": models.RSVP{
				UserID:      userID,
				Status:      status,
				RespondedAt: now,
			}},
			"$set": bson.M{"updated_at": now},
		})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func cleanAgenda(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
