package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/museum-user-api/models"
)

// maxItemIDLength bounds item ids accepted from the path.
const maxItemIDLength = 128

// CollectionValidationService rejects calls with a missing user id or a
// malformed item id before they reach the wrapped CollectionService.
type CollectionValidationService struct {
	inner CollectionService
}

func NewCollectionValidationService() CollectionServiceWrapper {
	return &CollectionValidationService{}
}

func (v *CollectionValidationService) GetFavourites(ctx context.Context, userID string) (models.Collection, error) {
	if err := validateIDs(userID); err != nil {
		return nil, err
	}
	return v.inner.GetFavourites(ctx, userID)
}

func (v *CollectionValidationService) AddFavourite(ctx context.Context, userID, itemID string) (models.Collection, error) {
	if err := validateIDs(userID, itemID); err != nil {
		return nil, err
	}
	return v.inner.AddFavourite(ctx, userID, itemID)
}

func (v *CollectionValidationService) RemoveFavourite(ctx context.Context, userID, itemID string) (models.Collection, error) {
	if err := validateIDs(userID, itemID); err != nil {
		return nil, err
	}
	return v.inner.RemoveFavourite(ctx, userID, itemID)
}

func (v *CollectionValidationService) GetHistory(ctx context.Context, userID string) (models.Collection, error) {
	if err := validateIDs(userID); err != nil {
		return nil, err
	}
	return v.inner.GetHistory(ctx, userID)
}

func (v *CollectionValidationService) AddHistory(ctx context.Context, userID, itemID string) (models.Collection, error) {
	if err := validateIDs(userID, itemID); err != nil {
		return nil, err
	}
	return v.inner.AddHistory(ctx, userID, itemID)
}

func (v *CollectionValidationService) RemoveHistory(ctx context.Context, userID, itemID string) (models.Collection, error) {
	if err := validateIDs(userID, itemID); err != nil {
		return nil, err
	}
	return v.inner.RemoveHistory(ctx, userID, itemID)
}

func (v *CollectionValidationService) Wrap(wrapped CollectionService) CollectionService {
	v.inner = wrapped
	return v
}

func validateIDs(ids ...string) error {
	for _, id := range ids {
		if strings.TrimSpace(id) == "" || len(id) > maxItemIDLength {
			return ErrInvalidInput
		}
	}
	return nil
}
