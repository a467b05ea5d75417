// internal/app/features/meetings/manage.go
package meetings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	meetingstore "github.com/ahlihub/ahlihub/internal/app/store/meetings"
	"github.com/ahlihub/ahlihub/internal/app/system/auth"
	"github.com/ahlihub/ahlihub/internal/app/system/httpjson"
	"github.com/ahlihub/ahlihub/internal/app/system/timeouts"
	"github.com/ahlihub/ahlihub/internal/domain/enums"
	"github.com/ahlihub/ahlihub/internal/domain/models"
)

// agendaField accepts the agenda either as a JSON array of items or as
// one newline-separated string, the shape a textarea submits. Blank
// items are dropped by the store.
type agendaField []string

func (a *agendaField) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*a = items
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	*a = strings.Split(text, "\n")
	return nil
}

// HandleCreate schedules a meeting. Any signed-in user may create one;
// the caller becomes the meeting's owner.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Unauthenticated(w, "authentication required")
		return
	}

	var req struct {
		Title    string      `json:"title"`
		Datetime time.Time   `json:"datetime"`
		Place    string      `json:"place"`
		Agenda   agendaField `json:"agenda"`
	}
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Invalid(w, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	meeting, err := h.Meetings.Create(ctx, models.Meeting{
		Title:    req.Title,
		Datetime: req.Datetime,
		Place:    req.Place,
		Agenda:   []string(req.Agenda),
	}, user.ID)
	switch {
	case errors.Is(err, meetingstore.ErrMissingFields):
		httpjson.Invalid(w, err.Error())
	case err != nil:
		h.Log.Error("creating meeting", zap.Error(err))
		httpjson.ServerError(w, "could not create meeting")
	default:
		h.Log.Info("meeting created",
			zap.String("title", meeting.Title),
			zap.String("by", user.Username))
		httpjson.Created(w, "meeting created", httpjson.Fields{"meeting": meeting})
	}
}

// canManage reports whether user may edit or cancel the meeting:
// its creator, or any admin.
func canManage(user *models.User, meeting *models.Meeting) bool {
	return meeting.CreatedBy == user.ID || enums.IsAdminRole(user.Role)
}

// HandleUpdate applies a partial update, restricted to the creator or
// an admin.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user, meeting, ok := h.loadForManage(w, r)
	if !ok {
		return
	}

	var req struct {
		Title    *string      `json:"title"`
		Datetime *time.Time   `json:"datetime"`
		Place    *string      `json:"place"`
		Agenda   *agendaField `json:"agenda"`
		Status   *string      `json:"status"`
	}
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Invalid(w, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var agenda *[]string
	if req.Agenda != nil {
		items := []string(*req.Agenda)
		agenda = &items
	}
	err := h.Meetings.Update(ctx, meeting.ID, meetingstore.Update{
		Title:    req.Title,
		Datetime: req.Datetime,
		Place:    req.Place,
		Agenda:   agenda,
		Status:   req.Status,
	})
	if err != nil {
		h.Log.Error("updating meeting", zap.Error(err))
		httpjson.ServerError(w, "could not update meeting")
		return
	}

	updated, err := h.Meetings.GetByID(ctx, meeting.ID)
	if err != nil {
		h.Log.Error("reloading meeting", zap.Error(err))
		httpjson.ServerError(w, "could not update meeting")
		return
	}
	h.Log.Info("meeting updated",
		zap.String("id", meeting.ID.Hex()),
		zap.String("by", user.Username))
	httpjson.OK(w, "meeting updated", httpjson.Fields{"meeting": updated})
}

// HandleDelete cancels a meeting, restricted to the creator or an admin.
// The record is kept but disappears from every listing.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, meeting, ok := h.loadForManage(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Meetings.SoftDelete(ctx, meeting.ID); err != nil {
		h.Log.Error("cancelling meeting", zap.Error(err))
		httpjson.ServerError(w, "could not delete meeting")
		return
	}
	h.Log.Info("meeting cancelled",
		zap.String("id", meeting.ID.Hex()),
		zap.String("by", user.Username))
	httpjson.OK(w, "meeting deleted", nil)
}

// loadForManage resolves the meeting in the URL and checks the caller
// may manage it, writing the error response itself when not.
func (h *Handler) loadForManage(w http.ResponseWriter, r *http.Request) (*models.User, *models.Meeting, bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Unauthenticated(w, "authentication required")
		return nil, nil, false
	}
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Invalid(w, "invalid meeting id")
		return nil, nil, false
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	meeting, err := h.Meetings.GetByID(ctx, id)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		httpjson.NotFound(w, "meeting not found")
		return nil, nil, false
	case err != nil:
		h.Log.Error("loading meeting", zap.Error(err))
		httpjson.ServerError(w, "could not load meeting")
		return nil, nil, false
	}
	if !canManage(user, meeting) {
		httpjson.Forbidden(w, "only the meeting creator or an admin can do that")
		return nil, nil, false
	}
	return user, meeting, true
}
