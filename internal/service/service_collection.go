package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/museum-user-api/internal/logger"
	"github.com/MKhiriev/museum-user-api/internal/store"
	"github.com/MKhiriev/museum-user-api/models"
)

// collectionService is the concrete implementation of CollectionService on
// top of a CollectionRepository. Favourites and history share the same
// storage and differ only by kind.
type collectionService struct {
	repository store.CollectionRepository
	limit      int
	logger     *logger.Logger
}

// NewCollectionService constructs a CollectionService. limit caps every
// collection; a limit below one (see config.UnboundedCollectionLimit) means
// unbounded.
func NewCollectionService(repository store.CollectionRepository, limit int, logger *logger.Logger) CollectionService {
	return &collectionService{
		repository: repository,
		limit:      limit,
		logger:     logger,
	}
}

func (c *collectionService) GetFavourites(ctx context.Context, userID string) (models.Collection, error) {
	return c.get(ctx, userID, models.Favourites)
}

func (c *collectionService) AddFavourite(ctx context.Context, userID, itemID string) (models.Collection, error) {
	return c.add(ctx, userID, models.Favourites, itemID)
}

func (c *collectionService) RemoveFavourite(ctx context.Context, userID, itemID string) (models.Collection, error) {
	return c.remove(ctx, userID, models.Favourites, itemID)
}

func (c *collectionService) GetHistory(ctx context.Context, userID string) (models.Collection, error) {
	return c.get(ctx, userID, models.History)
}

func (c *collectionService) AddHistory(ctx context.Context, userID, itemID string) (models.Collection, error) {
	return c.add(ctx, userID, models.History, itemID)
}

func (c *collectionService) RemoveHistory(ctx context.Context, userID, itemID string) (models.Collection, error) {
	return c.remove(ctx, userID, models.History, itemID)
}

func (c *collectionService) get(ctx context.Context, userID string, kind models.CollectionKind) (models.Collection, error) {
	items, err := c.repository.GetItems(ctx, userID, kind)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Str("kind", kind.String()).Msg("error getting collection")
		return nil, internal(err)
	}

	return items, nil
}

func (c *collectionService) add(ctx context.Context, userID string, kind models.CollectionKind, itemID string) (models.Collection, error) {
	log := logger.FromContext(ctx)

	items, err := c.repository.AddItem(ctx, userID, kind, itemID, c.limit)
	if err != nil {
		log.Err(err).Str("user_id", userID).Str("kind", kind.String()).Str("item_id", itemID).Msg("error adding item")
		if errors.Is(err, store.ErrCollectionFull) || errors.Is(err, store.ErrNoUserWasFound) {
			return nil, collectionNotUpdated(kind, userID, err)
		}
		return nil, internal(err)
	}

	log.Debug().Str("user_id", userID).Str("kind", kind.String()).Str("item_id", itemID).Msg("item added")
	return items, nil
}

func (c *collectionService) remove(ctx context.Context, userID string, kind models.CollectionKind, itemID string) (models.Collection, error) {
	log := logger.FromContext(ctx)

	items, err := c.repository.RemoveItem(ctx, userID, kind, itemID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Str("kind", kind.String()).Str("item_id", itemID).Msg("error removing item")
		if errors.Is(err, store.ErrItemNotFound) {
			return nil, itemNotFound(kind, itemID)
		}
		return nil, internal(err)
	}

	log.Debug().Str("user_id", userID).Str("kind", kind.String()).Str("item_id", itemID).Msg("item removed")
	return items, nil
}
