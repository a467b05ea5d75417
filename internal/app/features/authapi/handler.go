// internal/app/features/authapi/handler.go
package authapi

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	userstore "github.com/ahlihub/ahlihub/internal/app/store/users"
	"github.com/ahlihub/ahlihub/internal/app/system/ratelimit"
	"github.com/ahlihub/ahlihub/internal/app/system/token"
)

// Handler serves authentication and account management endpoints.
type Handler struct {
	Log    *zap.Logger
	Users  *userstore.Store
	Tokens *token.Manager
	Limits *ratelimit.LoginLimiter
}

func NewHandler(db *mongo.Database, tokens *token.Manager, logger *zap.Logger) *Handler {
	return &Handler{
		Log:    logger,
		Users:  userstore.New(db),
		Tokens: tokens,
		Limits: ratelimit.NewLoginLimiter(),
	}
}

// userPayload is the account shape returned to clients. The password
// hash never leaves the server.
type userPayload struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	FullName   string `json:"fullName"`
	ICNumber   string `json:"icNumber,omitempty"`
	Occupation string `json:"occupation,omitempty"`
	Role       string `json:"role"`
	IsActive   bool   `json:"isActive"`
}
