// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	userstore "github.com/ahlihub/ahlihub/internal/app/store/users"
	"github.com/ahlihub/ahlihub/internal/domain/enums"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
//
// AhliHub uses it to guarantee an admin account exists: a fresh install
// would otherwise have no way to reach the admin-gated endpoints.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.AdminUsername == "" {
		return nil
	}

	users := userstore.New(deps.MongoDatabase)
	n, err := users.CountAdmins(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	_, err = users.Create(ctx, userstore.NewUser{
		Username: appCfg.AdminUsername,
		Email:    appCfg.AdminEmail,
		Password: appCfg.AdminPassword,
		FullName: appCfg.AdminUsername,
		Role:     enums.RoleAdmin,
	})
	if err != nil {
		return err
	}
	logger.Info("bootstrap admin account created",
		zap.String("username", appCfg.AdminUsername))
	return nil
}
