// internal/app/features/authapi/login.go
package authapi

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	userstore "github.com/ahlihub/ahlihub/internal/app/store/users"
	"github.com/ahlihub/ahlihub/internal/app/system/auth"
	"github.com/ahlihub/ahlihub/internal/app/system/httpjson"
	"github.com/ahlihub/ahlihub/internal/app/system/timeouts"
	"github.com/ahlihub/ahlihub/internal/domain/models"
)

func payload(u *models.User) userPayload {
	return userPayload{
		ID:         u.ID.Hex(),
		Username:   u.Username,
		Email:      u.Email,
		FullName:   u.FullName,
		ICNumber:   u.ICNumber,
		Occupation: u.Occupation,
		Role:       u.Role,
		IsActive:   u.IsActive,
	}
}

// HandleLogin authenticates by username or email plus password and
// returns a bearer token. Unknown accounts and wrong passwords produce
// the same answer so the endpoint does not leak which logins exist.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Login    string `json:"login"`
		Username string `json:"username"` // accepted alias for login
		Password string `json:"password"`
	}
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Invalid(w, "invalid request body")
		return
	}
	login := req.Login
	if login == "" {
		login = req.Username
	}
	if login == "" || req.Password == "" {
		httpjson.Invalid(w, "login and password are required")
		return
	}
	if ok, reason := h.Limits.Check(r, login); !ok {
		httpjson.TooManyRequests(w, reason)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByLogin(ctx, login)
	if err != nil || !userstore.VerifyPassword(user, req.Password) {
		httpjson.Unauthenticated(w, "invalid credentials")
		return
	}
	h.Limits.ResetLogin(login)

	tok, err := h.Tokens.Issue(user.ID.Hex())
	if err != nil {
		h.Log.Error("issuing token", zap.Error(err))
		httpjson.ServerError(w, "could not complete login")
		return
	}

	h.Log.Info("user logged in", zap.String("username", user.Username))
	httpjson.OK(w, "login successful", httpjson.Fields{
		"token": tok,
		"user":  payload(user),
	})
}

// HandleVerify confirms the bearer token is still good and returns the
// account it belongs to. Reaching this handler at all means the
// middleware accepted the token.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Unauthenticated(w, "authentication required")
		return
	}
	httpjson.OK(w, "", httpjson.Fields{"user": payload(user)})
}
