package service

import (
	"context"

	"github.com/MKhiriev/museum-user-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users, checks their credentials and issues and
// verifies credential tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (string, error)
	CheckUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Identity, error)
}

// CollectionService manages the favourites and history collections of a
// user. Every method returns the collection as it is after the call.
type CollectionService interface {
	GetFavourites(ctx context.Context, userID string) (models.Collection, error)
	AddFavourite(ctx context.Context, userID, itemID string) (models.Collection, error)
	RemoveFavourite(ctx context.Context, userID, itemID string) (models.Collection, error)

	GetHistory(ctx context.Context, userID string) (models.Collection, error)
	AddHistory(ctx context.Context, userID, itemID string) (models.Collection, error)
	RemoveHistory(ctx context.Context, userID, itemID string) (models.Collection, error)
}

// CollectionServiceWrapper defines middleware composition for CollectionService.
// Implementations wrap an existing CollectionService to add behavior such as
// validation.
type CollectionServiceWrapper interface {
	Wrap(CollectionService) CollectionService
}

// IDGenerator produces identifiers for new users.
type IDGenerator interface {
	Generate() string
}
