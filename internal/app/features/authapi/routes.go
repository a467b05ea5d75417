// internal/app/features/authapi/routes.go
package authapi

import (
	"github.com/go-chi/chi/v5"

	"github.com/ahlihub/ahlihub/internal/app/system/auth"
)

// Routes mounts the auth endpoints. Typically:
// r.Mount("/api/auth", authapi.Routes(handler, fetcher))
func Routes(h *Handler, fetcher auth.UserFetcher) chi.Router {
	r := chi.NewRouter()
	authenticated := auth.Authenticate(h.Tokens, fetcher)

	// Public.
	r.Post("/login", h.HandleLogin)
	r.Post("/register", h.HandleRegister)

	// Any signed-in user.
	r.Group(func(pr chi.Router) {
		pr.Use(authenticated)
		pr.Get("/verify", h.HandleVerify)
		pr.Get("/me", h.HandleMe)
		pr.Put("/me", h.HandleUpdateMe)
	})

	// Admin only.
	r.Group(func(ar chi.Router) {
		ar.Use(authenticated)
		ar.Use(auth.RequireAdmin)
		ar.Post("/create", h.HandleCreateUser)
		ar.Get("/users", h.HandleListUsers)
		ar.Delete("/users/{id}", h.HandleDeleteUser)
	})

	return r
}
