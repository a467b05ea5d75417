// internal/app/store/users/fetcher.go
package userstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ahlihub/ahlihub/internal/domain/models"
)

// Fetcher adapts the store to the authentication middleware, which
// carries user IDs as hex strings taken from token claims.
type Fetcher struct {
	store *Store
}

func NewFetcher(store *Store) *Fetcher {
	return &Fetcher{store: store}
}

func (f *Fetcher) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return f.store.GetByID(ctx, oid)
}
