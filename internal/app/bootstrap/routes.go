// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	ahlifeature "github.com/ahlihub/ahlihub/internal/app/features/ahli"
	authapifeature "github.com/ahlihub/ahlihub/internal/app/features/authapi"
	healthfeature "github.com/ahlihub/ahlihub/internal/app/features/health"
	meetingsfeature "github.com/ahlihub/ahlihub/internal/app/features/meetings"
	signupfeature "github.com/ahlihub/ahlihub/internal/app/features/signup"
	userstore "github.com/ahlihub/ahlihub/internal/app/store/users"
	"github.com/ahlihub/ahlihub/internal/app/system/token"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and the Startup hook have completed. AhliHub mounts a JSON API: auth
// and account management, the membership registry, meetings with RSVP,
// signup links, and a health endpoint for probes.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	tokens := token.NewManager(appCfg.TokenSecret, appCfg.TokenTTL)

	// The fetcher reloads the account on every authenticated request so
	// role changes and deactivations take effect immediately.
	fetcher := userstore.NewFetcher(userstore.New(deps.MongoDatabase))

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Authentication and account management
	authHandler := authapifeature.NewHandler(deps.MongoDatabase, tokens, logger)
	r.Mount("/api/auth", authapifeature.Routes(authHandler, fetcher))

	// Membership registry (admin only)
	ahliHandler := ahlifeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/ahli", ahlifeature.Routes(ahliHandler, tokens, fetcher))

	// Meetings and RSVPs
	meetingsHandler := meetingsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/meetings", meetingsfeature.Routes(meetingsHandler, tokens, fetcher))

	// Signup links and QR codes (admin only)
	signupHandler := signupfeature.NewHandler(appCfg.BaseURL, logger)
	r.Mount("/api/signup", signupfeature.Routes(signupHandler, tokens, fetcher))

	return r, nil
}
