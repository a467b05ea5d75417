// internal/domain/models/meeting.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RSVP is one attendee's answer on a meeting. A meeting holds at most
// one RSVP per user; changing an answer updates the entry in place.
type RSVP struct {
	UserID      primitive.ObjectID `bson:"user_id" json:"userId"`
	Status      string             `bson:"status" json:"status"`
	RespondedAt time.Time          `bson:"responded_at" json:"respondedAt"`
}

// Meeting is a scheduled association meeting. CreatedBy and the RSVP
// user IDs are weak references: deleting a user does not touch the
// meetings they created or answered on. Deletion is soft via IsActive.
type Meeting struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Datetime  time.Time          `bson:"datetime" json:"datetime"`
	Place     string             `bson:"place" json:"place"`
	Agenda    []string           `bson:"agenda" json:"agenda"`
	CreatedBy primitive.ObjectID `bson:"created_by" json:"createdBy"`
	Attendees []RSVP             `bson:"attendees" json:"attendees"`
	IsActive  bool               `bson:"is_active" json:"isActive"`
	Status    string             `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
