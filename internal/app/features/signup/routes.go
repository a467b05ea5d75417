// internal/app/features/signup/routes.go
package signup

import (
	"github.com/go-chi/chi/v5"

	"github.com/ahlihub/ahlihub/internal/app/system/auth"
	"github.com/ahlihub/ahlihub/internal/app/system/token"
)

// Routes mounts the signup-link endpoints, admin only. Typically:
// r.Mount("/api/signup", signup.Routes(handler, tokens, fetcher))
func Routes(h *Handler, tokens *token.Manager, fetcher auth.UserFetcher) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.Authenticate(tokens, fetcher))
	r.Use(auth.RequireAdmin)

	r.Get("/link", h.HandleLink)
	r.Get("/qr", h.HandleQR)

	return r
}
