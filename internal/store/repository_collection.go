package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/museum-user-api/internal/logger"
	"github.com/MKhiriev/museum-user-api/models"
)

// collectionRepository is the SQL-backed implementation of
// [CollectionRepository] over the "user_items" table.
type collectionRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewCollectionRepository constructs a [CollectionRepository].
func NewCollectionRepository(db *DB, logger *logger.Logger) CollectionRepository {
	logger.Debug().Msg("creating collection repository")
	return &collectionRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// GetItems returns the collection of kind for userID. An unknown user has an
// empty collection.
func (r *collectionRepository) GetItems(ctx context.Context, userID string, kind models.CollectionKind) (models.Collection, error) {
	return r.selectItems(ctx, r.db, userID, kind)
}

// AddItem appends itemID to the collection. Adding an item that is already
// present, including one stored concurrently, leaves the collection unchanged.
// A positive limit caps the collection size; exceeding it returns
// [ErrCollectionFull].
func (r *collectionRepository) AddItem(ctx context.Context, userID string, kind models.CollectionKind, itemID string, limit int) (models.Collection, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("error beginning transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	items, err := r.selectItems(ctx, tx, userID, kind)
	if err != nil {
		return nil, err
	}
	if items.Contains(itemID) {
		return items, tx.Commit()
	}
	if limit > 0 && len(items) >= limit {
		return nil, ErrCollectionFull
	}

	query, args, err := r.db.buildInsertItemQuery(userID, kind, itemID, r.now())
	if err != nil {
		log.Err(err).Msg("error building insert item query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("user_id", userID).Str("kind", kind.String()).Msg("error inserting item")
		return nil, r.db.classify(err, ErrExecutingStatement)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		// a concurrent request stored the same item after our select
		items, err = r.selectItems(ctx, tx, userID, kind)
		if err != nil {
			return nil, err
		}
	} else {
		items = append(items, itemID)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("error committing transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return items, nil
}

// RemoveItem deletes itemID from the collection and returns what remains.
// Removing an absent item returns [ErrItemNotFound].
func (r *collectionRepository) RemoveItem(ctx context.Context, userID string, kind models.CollectionKind, itemID string) (models.Collection, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("error beginning transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := r.db.buildDeleteItemQuery(userID, kind, itemID)
	if err != nil {
		log.Err(err).Msg("error building delete item query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("user_id", userID).Str("kind", kind.String()).Msg("error deleting item")
		return nil, r.db.classify(err, ErrExecutingStatement)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return nil, ErrItemNotFound
	}

	items, err := r.selectItems(ctx, tx, userID, kind)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("error committing transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return items, nil
}

func (r *collectionRepository) selectItems(ctx context.Context, q queryer, userID string, kind models.CollectionKind) (models.Collection, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildSelectItemsQuery(userID, kind)
	if err != nil {
		log.Err(err).Msg("error building select items query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("user_id", userID).Str("kind", kind.String()).Msg("error selecting items")
		return nil, r.db.classify(err, ErrExecutingQuery)
	}
	defer rows.Close()

	items := models.Collection{}
	for rows.Next() {
		var itemID string
		if err = rows.Scan(&itemID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, itemID)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}
