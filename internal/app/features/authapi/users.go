// internal/app/features/authapi/users.go
package authapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	userstore "github.com/ahlihub/ahlihub/internal/app/store/users"
	"github.com/ahlihub/ahlihub/internal/app/system/auth"
	"github.com/ahlihub/ahlihub/internal/app/system/httpjson"
	"github.com/ahlihub/ahlihub/internal/app/system/timeouts"
)

// HandleMe returns the authenticated user's own account.
func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Unauthenticated(w, "authentication required")
		return
	}
	httpjson.OK(w, "", httpjson.Fields{"user": payload(user)})
}

// HandleUpdateMe applies a partial update to the caller's own profile.
// Only the display name and password can be changed this way.
func (h *Handler) HandleUpdateMe(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Unauthenticated(w, "authentication required")
		return
	}

	var req struct {
		FullName *string `json:"fullName"`
		Password *string `json:"password"`
	}
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Invalid(w, "invalid request body")
		return
	}
	if req.Password != nil && *req.Password != "" && len(*req.Password) < 6 {
		httpjson.Invalid(w, "password must be at least 6 characters")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err := h.Users.UpdateProfile(ctx, user.ID, userstore.ProfileUpdate{
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		h.Log.Error("updating profile", zap.Error(err))
		httpjson.ServerError(w, "could not update profile")
		return
	}

	updated, err := h.Users.GetByID(ctx, user.ID)
	if err != nil {
		h.Log.Error("reloading profile", zap.Error(err))
		httpjson.ServerError(w, "could not update profile")
		return
	}
	httpjson.OK(w, "profile updated", httpjson.Fields{"user": payload(updated)})
}

// HandleListUsers returns every account, newest first.
func (h *Handler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		h.Log.Error("listing users", zap.Error(err))
		httpjson.ServerError(w, "could not list users")
		return
	}

	out := make([]userPayload, 0, len(users))
	for i := range users {
		out = append(out, payload(&users[i]))
	}
	httpjson.OK(w, "", httpjson.Fields{"users": out})
}

// HandleDeleteUser removes an account. Admins cannot delete themselves;
// that would lock the last admin out mid-session.
func (h *Handler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Unauthenticated(w, "authentication required")
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Invalid(w, "invalid user id")
		return
	}
	if id == caller.ID {
		httpjson.Invalid(w, "you cannot delete your own account")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	switch err := h.Users.Delete(ctx, id); {
	case errors.Is(err, mongo.ErrNoDocuments):
		httpjson.NotFound(w, "user not found")
	case err != nil:
		h.Log.Error("deleting user", zap.Error(err))
		httpjson.ServerError(w, "could not delete user")
	default:
		h.Log.Info("user deleted",
			zap.String("id", id.Hex()),
			zap.String("by", caller.Username))
		httpjson.OK(w, "user deleted", nil)
	}
}
