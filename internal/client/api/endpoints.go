// internal/client/api/endpoints.go
package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Login exchanges credentials for a token and the account snapshot.
func (c *Client) Login(ctx context.Context, login, password string) (string, *User, error) {
	var resp struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"login":    login,
		"password": password,
	}, &resp)
	if err != nil {
		return "", nil, err
	}
	return resp.Token, &resp.User, nil
}

// RegisterRequest is the self-registration payload.
type RegisterRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	FullName   string `json:"fullName,omitempty"`
	ICNumber   string `json:"icNumber,omitempty"`
	Occupation string `json:"occupation,omitempty"`
}

// Register creates a member account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var resp struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Verify checks the current token and returns the account it names.
func (c *Client) Verify(ctx context.Context) (*User, error) {
	var resp struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/verify", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// UpdateProfile changes the caller's name and/or password. Nil fields
// are left untouched.
func (c *Client) UpdateProfile(ctx context.Context, fullName, password *string) (*User, error) {
	var resp struct {
		User User `json:"user"`
	}
	body := map[string]*string{"fullName": fullName, "password": password}
	if err := c.do(ctx, http.MethodPut, "/api/auth/me", body, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// ListUsers returns every account (admin only).
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var resp struct {
		Users []User `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/users", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// CreateUser creates an account with any assignable role (admin only).
func (c *Client) CreateUser(ctx context.Context, req RegisterRequest, role string) (*User, error) {
	var resp struct {
		User User `json:"user"`
	}
	body := struct {
		RegisterRequest
		Role string `json:"role"`
	}{req, role}
	if err := c.do(ctx, http.MethodPost, "/api/auth/create", body, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// DeleteUser removes an account (admin only).
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/auth/users/"+url.PathEscape(id), nil, nil)
}

// ListAhli returns the membership registry (admin only).
func (c *Client) ListAhli(ctx context.Context) ([]Ahli, error) {
	var resp struct {
		Ahli []Ahli `json:"ahli"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/ahli/", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Ahli, nil
}

// GetAhli returns one registry record (admin only).
func (c *Client) GetAhli(ctx context.Context, id string) (*Ahli, error) {
	var resp struct {
		Ahli Ahli `json:"ahli"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/ahli/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Ahli, nil
}

// CreateAhli adds a registry record (admin only).
func (c *Client) CreateAhli(ctx context.Context, record Ahli) (*Ahli, error) {
	var resp struct {
		Ahli Ahli `json:"ahli"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/ahli/", record, &resp); err != nil {
		return nil, err
	}
	return &resp.Ahli, nil
}

// AhliUpdate is a partial registry update; nil fields are untouched.
type AhliUpdate struct {
	IDNo        *string `json:"idNo,omitempty"`
	FullName    *string `json:"fullName,omitempty"`
	ICNumber    *string `json:"icNumber,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Email       *string `json:"email,omitempty"`
	Address     *string `json:"address,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	Job         *string `json:"job,omitempty"`
}

// UpdateAhli applies a partial update to a registry record (admin only).
func (c *Client) UpdateAhli(ctx context.Context, id string, upd AhliUpdate) (*Ahli, error) {
	var resp struct {
		Ahli Ahli `json:"ahli"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/ahli/"+url.PathEscape(id), upd, &resp); err != nil {
		return nil, err
	}
	return &resp.Ahli, nil
}

// DeleteAhli removes a registry record (admin only).
func (c *Client) DeleteAhli(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/ahli/"+url.PathEscape(id), nil, nil)
}

// ListMeetings returns all active meetings, soonest first.
func (c *Client) ListMeetings(ctx context.Context) ([]Meeting, error) {
	var resp struct {
		Meetings []Meeting `json:"meetings"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/meetings/", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Meetings, nil
}

// UpcomingMeetings returns at most five meetings scheduled from now on.
func (c *Client) UpcomingMeetings(ctx context.Context) ([]Meeting, error) {
	var resp struct {
		Meetings []Meeting `json:"meetings"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/meetings/upcoming", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Meetings, nil
}

// GetMeeting returns one meeting with its RSVPs.
func (c *Client) GetMeeting(ctx context.Context, id string) (*Meeting, error) {
	var resp struct {
		Meeting Meeting `json:"meeting"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/meetings/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Meeting, nil
}

// CreateMeeting schedules a meeting owned by the caller.
func (c *Client) CreateMeeting(ctx context.Context, title string, at time.Time, place string, agenda []string) (*Meeting, error) {
	var resp struct {
		Meeting Meeting `json:"meeting"`
	}
	body := map[string]any{"title": title, "datetime": at, "place": place, "agenda": agenda}
	if err := c.do(ctx, http.MethodPost, "/api/meetings/create", body, &resp); err != nil {
		return nil, err
	}
	return &resp.Meeting, nil
}

// MeetingUpdate is a partial meeting update; nil fields are untouched.
type MeetingUpdate struct {
	Title    *string    `json:"title,omitempty"`
	Datetime *time.Time `json:"datetime,omitempty"`
	Place    *string    `json:"place,omitempty"`
	Agenda   *[]string  `json:"agenda,omitempty"`
	Status   *string    `json:"status,omitempty"`
}

// UpdateMeeting applies a partial update to a meeting (creator or admin).
func (c *Client) UpdateMeeting(ctx context.Context, id string, upd MeetingUpdate) (*Meeting, error) {
	var resp struct {
		Meeting Meeting `json:"meeting"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/meetings/"+url.PathEscape(id), upd, &resp); err != nil {
		return nil, err
	}
	return &resp.Meeting, nil
}

// DeleteMeeting cancels a meeting (creator or admin).
func (c *Client) DeleteMeeting(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/meetings/"+url.PathEscape(id), nil, nil)
}

// RSVP submits or replaces the caller's attendance answer.
func (c *Client) RSVP(ctx context.Context, meetingID, status string) (*Meeting, error) {
	var resp struct {
		Meeting Meeting `json:"meeting"`
	}
	body := map[string]string{"status": status}
	if err := c.do(ctx, http.MethodPost, "/api/meetings/"+url.PathEscape(meetingID)+"/rsvp", body, &resp); err != nil {
		return nil, err
	}
	return &resp.Meeting, nil
}

// SignupLink returns the self-registration URL (admin only).
func (c *Client) SignupLink(ctx context.Context) (string, error) {
	var resp struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/signup/link", nil, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

// SignupQR returns the registration QR code as PNG bytes (admin only).
func (c *Client) SignupQR(ctx context.Context, size int) ([]byte, error) {
	path := "/api/signup/qr"
	if size > 0 {
		path += "?size=" + strconv.Itoa(size)
	}
	return c.getBytes(ctx, path)
}
