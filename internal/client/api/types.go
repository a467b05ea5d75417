// internal/client/api/types.go
package api

import "time"

// User mirrors the account shape the server returns.
type User struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	FullName   string `json:"fullName"`
	ICNumber   string `json:"icNumber,omitempty"`
	Occupation string `json:"occupation,omitempty"`
	Role       string `json:"role"`
	IsActive   bool   `json:"isActive"`
}

// Ahli mirrors a membership registry record.
type Ahli struct {
	ID          string `json:"id"`
	IDNo        string `json:"idNo"`
	FullName    string `json:"fullName"`
	ICNumber    string `json:"icNumber,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
	Gender      string `json:"gender,omitempty"`
	Job         string `json:"job,omitempty"`
}

// RSVP mirrors one attendee's answer on a meeting.
type RSVP struct {
	UserID      string    `json:"userId"`
	Status      string    `json:"status"`
	RespondedAt time.Time `json:"respondedAt"`
}

// Meeting mirrors a scheduled meeting with its RSVPs.
type Meeting struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Datetime  time.Time `json:"datetime"`
	Place     string    `json:"place"`
	Agenda    []string  `json:"agenda"`
	CreatedBy string    `json:"createdBy"`
	Attendees []RSVP    `json:"attendees"`
	Status    string    `json:"status"`
}
