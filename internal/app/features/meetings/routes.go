// internal/app/features/meetings/routes.go
package meetings

import (
	"github.com/go-chi/chi/v5"

	"github.com/ahlihub/ahlihub/internal/app/system/auth"
	"github.com/ahlihub/ahlihub/internal/app/system/token"
)

// Routes mounts the meeting endpoints. Typically:
// r.Mount("/api/meetings", meetings.Routes(handler, tokens, fetcher))
func Routes(h *Handler, tokens *token.Manager, fetcher auth.UserFetcher) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.Authenticate(tokens, fetcher))

	r.Get("/", h.HandleList)
	r.Get("/upcoming", h.HandleUpcoming)
	r.Post("/create", h.HandleCreate)
	r.Get("/{id}", h.HandleGet)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
	r.Post("/{id}/rsvp", h.HandleRSVP)

	return r
}
