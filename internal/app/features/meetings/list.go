// internal/app/features/meetings/list.go
package meetings

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/ahlihub/ahlihub/internal/app/system/httpjson"
	"github.com/ahlihub/ahlihub/internal/app/system/timeouts"
)

// HandleList returns all active meetings, soonest first.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	meetings, err := h.Meetings.List(ctx)
	if err != nil {
		h.Log.Error("listing meetings", zap.Error(err))
		httpjson.ServerError(w, "could not list meetings")
		return
	}
	httpjson.OK(w, "", httpjson.Fields{"meetings": meetings})
}

// HandleUpcoming returns at most five meetings scheduled from now on,
// for the dashboard.
func (h *Handler) HandleUpcoming(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	meetings, err := h.Meetings.Upcoming(ctx)
	if err != nil {
		h.Log.Error("listing upcoming meetings", zap.Error(err))
		httpjson.ServerError(w, "could not list meetings")
		return
	}
	httpjson.OK(w, "", httpjson.Fields{"meetings": meetings})
}

// HandleGet returns one active meeting with its RSVPs.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Invalid(w, "invalid meeting id")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	meeting, err := h.Meetings.GetByID(ctx, id)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		httpjson.NotFound(w, "meeting not found")
	case err != nil:
		h.Log.Error("loading meeting", zap.Error(err))
		httpjson.ServerError(w, "could not load meeting")
	default:
		httpjson.OK(w, "", httpjson.Fields{"meeting": meeting})
	}
}
