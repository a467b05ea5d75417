// internal/app/features/meetings/rsvp.go
package meetings

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	meetingstore "github.com/ahlihub/ahlihub/internal/app/store/meetings"
	"github.com/ahlihub/ahlihub/internal/app/system/auth"
	"github.com/ahlihub/ahlihub/internal/app/system/httpjson"
	"github.com/ahlihub/ahlihub/internal/app/system/timeouts"
)

// HandleRSVP records the caller's attendance answer. Submitting again
// replaces the previous answer.
func (h *Handler) HandleRSVP(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Unauthenticated(w, "authentication required")
		return
	}
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Invalid(w, "invalid meeting id")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Invalid(w, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	switch err := h.Meetings.SetRSVP(ctx, id, user.ID, req.Status); {
	case errors.Is(err, meetingstore.ErrBadRSVP):
		httpjson.Invalid(w, err.Error())
	case errors.Is(err, mongo.ErrNoDocuments):
		httpjson.NotFound(w, "meeting not found")
	case err != nil:
		h.Log.Error("recording rsvp", zap.Error(err))
		httpjson.ServerError(w, "could not record rsvp")
	default:
		meeting, err := h.Meetings.GetByID(ctx, id)
		if err != nil {
			h.Log.Error("reloading meeting", zap.Error(err))
			httpjson.ServerError(w, "could not record rsvp")
			return
		}
		httpjson.OK(w, "rsvp recorded", httpjson.Fields{"meeting": meeting})
	}
}
