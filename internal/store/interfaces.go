package store

import (
	"context"

	"github.com/MKhiriev/museum-user-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByName(ctx context.Context, userName string) (models.User, error)
}

// CollectionRepository persists the per-user favourites and history
// collections. Every method returns the collection as it is after the call,
// ordered by insertion time.
type CollectionRepository interface {
	GetItems(ctx context.Context, userID string, kind models.CollectionKind) (models.Collection, error)
	AddItem(ctx context.Context, userID string, kind models.CollectionKind, itemID string, limit int) (models.Collection, error)
	RemoveItem(ctx context.Context, userID string, kind models.CollectionKind, itemID string) (models.Collection, error)
}
