// internal/app/features/ahli/routes.go
package ahli

import (
	"github.com/go-chi/chi/v5"

	"github.com/ahlihub/ahlihub/internal/app/system/auth"
	"github.com/ahlihub/ahlihub/internal/app/system/token"
)

// Routes mounts the registry endpoints. Typically:
// r.Mount("/api/ahli", ahli.Routes(handler, tokens, fetcher))
func Routes(h *Handler, tokens *token.Manager, fetcher auth.UserFetcher) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.Authenticate(tokens, fetcher))
	r.Use(auth.RequireAdmin)

	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)
	r.Get("/{id}", h.HandleGet)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)

	return r
}
