// internal/app/features/ahli/handler.go
//
// The membership registry. Every endpoint is admin-gated: the registry
// holds personal data (IC numbers, addresses, phone numbers) that
// ordinary signed-in members have no business reading.
package ahli

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	ahlistore "github.com/ahlihub/ahlihub/internal/app/store/ahli"
)

type Handler struct {
	Log  *zap.Logger
	Ahli *ahlistore.Store
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Log:  logger,
		Ahli: ahlistore.New(db),
	}
}
