// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (ports, TLS, logging, CORS); AppConfig is
// everything specific to this application.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Bearer token configuration
	TokenSecret string        // HMAC secret for signing API tokens (must be strong in production)
	TokenTTL    time.Duration // Token validity window

	// Base URL used to build the self-registration link and QR code
	BaseURL string // e.g., "https://ahli.example.org" or "http://localhost:3000"

	// Admin bootstrap: when set and no admin account exists, Startup
	// creates one with these credentials.
	AdminUsername string
	AdminEmail    string
	AdminPassword string
}
