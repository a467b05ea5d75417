// internal/app/features/authapi/register.go
package authapi

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	userstore "github.com/ahlihub/ahlihub/internal/app/store/users"
	"github.com/ahlihub/ahlihub/internal/app/system/httpjson"
	"github.com/ahlihub/ahlihub/internal/app/system/timeouts"
	"github.com/ahlihub/ahlihub/internal/domain/enums"
)

type registerRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	FullName   string `json:"fullName"`
	ICNumber   string `json:"icNumber"`
	Occupation string `json:"occupation"`
	Role       string `json:"role"`
}

// HandleRegister is the public self-registration endpoint. Whatever role
// the request carries, the account is created as an ordinary member.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Invalid(w, "invalid request body")
		return
	}
	req.Role = enums.RoleMember
	h.createUser(w, r, req)
}

// HandleCreateUser is the admin endpoint for creating accounts with any
// assignable role.
func (h *Handler) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Invalid(w, "invalid request body")
		return
	}
	h.createUser(w, r, req)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request, req registerRequest) {
	if req.Username == "" || req.Email == "" || req.Password == "" || req.FullName == "" {
		httpjson.Invalid(w, "username, email, password, and full name are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := h.Users.Create(ctx, userstore.NewUser{
		Username:   req.Username,
		Email:      req.Email,
		Password:   req.Password,
		FullName:   req.FullName,
		ICNumber:   req.ICNumber,
		Occupation: req.Occupation,
		Role:       req.Role,
	})
	switch {
	case errors.Is(err, userstore.ErrDuplicateUser):
		httpjson.Conflict(w, err.Error())
		return
	case errors.Is(err, userstore.ErrMissingFields):
		httpjson.Invalid(w, err.Error())
		return
	case err != nil:
		h.Log.Error("creating user", zap.Error(err))
		httpjson.ServerError(w, "could not create user")
		return
	}

	h.Log.Info("user created",
		zap.String("username", user.Username),
		zap.String("role", user.Role))
	httpjson.Created(w, "user created", httpjson.Fields{"user": payload(user)})
}
