// internal/app/features/meetings/handler.go
package meetings

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	meetingstore "github.com/ahlihub/ahlihub/internal/app/store/meetings"
)

// Handler serves meeting scheduling and RSVP endpoints. Any signed-in
// user can read meetings and answer RSVPs; editing and cancelling are
// restricted to the meeting's creator or an admin.
type Handler struct {
	Log      *zap.Logger
	Meetings *meetingstore.Store
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Log:      logger,
		Meetings: meetingstore.New(db),
	}
}
