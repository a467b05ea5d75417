// internal/domain/models/ahli.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ahli is a registered association member. It is a standalone roster
// record with no link to any User account, even when the same person
// holds both. IDNo is the association-issued member number and is
// globally unique.
type Ahli struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	IDNo        string             `bson:"id_no" json:"idNo"`
	FullName    string             `bson:"full_name" json:"fullName"`
	ICNumber    string             `bson:"ic_number,omitempty" json:"icNumber,omitempty"`
	PhoneNumber string             `bson:"phone_number,omitempty" json:"phoneNumber,omitempty"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty"`
	Address     string             `bson:"address,omitempty" json:"address,omitempty"`
	Gender      string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Job         string             `bson:"job,omitempty" json:"job,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
